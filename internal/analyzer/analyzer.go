// Package analyzer orchestrates the conversation analytics pipeline: source
// adapters in, per-utterance classification, aggregate scores out.
package analyzer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"speech2sense-go/internal/classify"
	"speech2sense-go/internal/logger"
	"speech2sense-go/internal/metrics"
	"speech2sense-go/internal/scoring"
	"speech2sense-go/internal/speech"
	"speech2sense-go/internal/transcript"
	"speech2sense-go/internal/types"
)

// Config tunes one Analyzer instance.
type Config struct {
	Scoring scoring.Config
	// Concurrency bounds in-flight classifier calls within one conversation,
	// respecting the collaborator's rate limits. Result order is restored by
	// utterance index regardless.
	Concurrency int
	// TranscriptDir, when set, receives an exported transcript file for
	// every audio conversation.
	TranscriptDir string
}

// Analyzer runs complete conversations through classification and scoring.
// Instances are stateless across conversations and safe for concurrent use.
type Analyzer struct {
	classifier classify.Classifier
	engine     speech.Engine
	cfg        Config
	log        *logger.Logger
}

// New builds an Analyzer around the injected collaborators. engine may be
// nil when only text conversations are analyzed.
func New(classifier classify.Classifier, engine speech.Engine, cfg Config) *Analyzer {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.Scoring.RecencySpan == 0 && len(cfg.Scoring.CSATRatings) == 0 {
		cfg.Scoring = scoring.DefaultConfig()
	}
	return &Analyzer{
		classifier: classifier,
		engine:     engine,
		cfg:        cfg,
		log:        logger.New().WithComponent("analyzer"),
	}
}

var (
	ErrEmptyInput   = errors.New("empty or invalid text provided")
	ErrNoUtterances = errors.New("no valid speaker utterances found in the text")
)

// AnalyzeText analyzes "Speaker: message"-per-line conversation text. The
// domain string is only a contextual hint forwarded to the classifiers.
func (a *Analyzer) AnalyzeText(ctx context.Context, text, domain string) (types.ConversationSummary, error) {
	if strings.TrimSpace(text) == "" {
		metrics.ConversationsAnalyzed.WithLabelValues("text", "error").Inc()
		return types.ConversationSummary{}, ErrEmptyInput
	}
	utterances := transcript.ExtractUtterances(text)
	if len(utterances) == 0 {
		metrics.ConversationsAnalyzed.WithLabelValues("text", "error").Inc()
		return types.ConversationSummary{}, ErrNoUtterances
	}
	return a.analyze(ctx, utterances, text, domain, "text"), nil
}

// analyze runs classification and aggregation over extracted utterances.
// Individual classifier failures degrade to documented defaults; by this
// point nothing can fail the conversation anymore.
func (a *Analyzer) analyze(ctx context.Context, utterances []types.Utterance, fullText, domain, source string) types.ConversationSummary {
	start := time.Now()
	conversationID := "conv_" + uuid.New().String()
	log := a.log.WithConversation(conversationID)
	log.WithField("utterances", len(utterances)).Info("starting analysis")

	if domain == "" {
		domain = "general"
	}

	topic, err := a.classifier.ClassifyTopic(ctx, fullText, domain)
	if err != nil {
		log.WithError(err).Warn("topic classification failed, using default")
		metrics.ClassificationDegraded.WithLabelValues("topic").Inc()
		topic = classify.DefaultTopic()
	}

	annotated := make([]types.AnnotatedUtterance, len(utterances))
	sem := make(chan struct{}, a.cfg.Concurrency)
	var wg sync.WaitGroup
	for i, u := range utterances {
		wg.Add(1)
		go func(i int, u types.Utterance) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			// Indexed write restores sequence order no matter which call
			// finishes first.
			annotated[i] = a.classifyUtterance(ctx, u, domain, log)
		}(i, u)
	}
	wg.Wait()

	csat := a.cfg.Scoring.ComputeCSAT(annotated)
	performance, err := a.cfg.Scoring.ComputePerformance(annotated)
	if err != nil {
		performance = types.AgentPerformance{Error: err.Error()}
	}

	summary := types.ConversationSummary{
		ConversationID:    conversationID,
		TotalUtterances:   len(annotated),
		Speakers:          distinctSpeakers(annotated),
		TopicAnalysis:     topic,
		CSATAnalysis:      csat,
		AgentPerformance:  performance,
		Utterances:        annotated,
		AnalysisTimestamp: time.Now().UTC(),
		Domain:            domain,
	}

	metrics.ConversationsAnalyzed.WithLabelValues(source, "ok").Inc()
	metrics.AnalysisDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	log.WithField("duration_ms", time.Since(start).Milliseconds()).
		WithField("csat", csat.Score).
		Info("analysis complete")
	return summary
}

// classifyUtterance annotates one utterance. A failed collaborator call is
// degraded to the neutral default for that utterance only.
func (a *Analyzer) classifyUtterance(ctx context.Context, u types.Utterance, domain string, log *logger.Logger) types.AnnotatedUtterance {
	sentiment, err := a.classifier.ClassifySentiment(ctx, u.Sentence, domain)
	if err != nil {
		log.WithError(err).WithField("utterance_id", u.ID).Warn("sentiment classification degraded")
		metrics.ClassificationDegraded.WithLabelValues("sentiment").Inc()
		sentiment = classify.DefaultSentiment()
	}
	intent, err := a.classifier.ClassifyIntent(ctx, u.Sentence, domain)
	if err != nil {
		log.WithError(err).WithField("utterance_id", u.ID).Warn("intent classification degraded")
		metrics.ClassificationDegraded.WithLabelValues("intent").Inc()
		intent = classify.DefaultIntent()
	}
	return types.AnnotatedUtterance{
		Utterance:           u,
		Sentiment:           strings.ToLower(sentiment.Sentiment),
		Score:               sentiment.Score,
		Reason:              sentiment.Reason,
		Keywords:            sentiment.Keywords,
		SentimentConfidence: sentiment.Confidence,
		Intent:              strings.ToLower(intent.Intent),
		SecondaryIntents:    intent.SecondaryIntents,
		IntentConfidence:    intent.Confidence,
		IntentReasoning:     intent.Reasoning,
	}
}

func distinctSpeakers(utterances []types.AnnotatedUtterance) []string {
	seen := map[string]bool{}
	var out []string
	for _, u := range utterances {
		if !seen[u.Speaker] {
			seen[u.Speaker] = true
			out = append(out, u.Speaker)
		}
	}
	return out
}
