// Package classify talks to the external text classification collaborator
// (sentiment, intent, topic) and validates its answers.
package classify

import (
	"context"

	"speech2sense-go/internal/types"
)

// Classifier is the collaborator contract consumed by the analyzer. It is
// injected at construction time so tests can substitute deterministic fakes.
type Classifier interface {
	ClassifySentiment(ctx context.Context, text, domain string) (types.SentimentResult, error)
	ClassifyIntent(ctx context.Context, text, domain string) (types.IntentResult, error)
	ClassifyTopic(ctx context.Context, conversation, domain string) (types.TopicAnalysis, error)
}

// DefaultSentiment is the documented degradation when a sentiment call fails.
func DefaultSentiment() types.SentimentResult {
	return types.SentimentResult{
		Sentiment:  types.SentimentNeutral,
		Score:      0.5,
		Reason:     "Analysis unavailable",
		Keywords:   []string{},
		Confidence: 0.5,
	}
}

// DefaultIntent is the documented degradation when an intent call fails.
func DefaultIntent() types.IntentResult {
	return types.IntentResult{
		Intent:           types.IntentUnknown,
		SecondaryIntents: []string{},
		Confidence:       0.5,
		Reasoning:        "Analysis unavailable",
	}
}

// DefaultTopic is the documented degradation when the topic collaborator is
// unavailable; it never fails the conversation.
func DefaultTopic() types.TopicAnalysis {
	return types.TopicAnalysis{
		Topics:       []string{"general"},
		PrimaryTopic: "general",
		Confidence:   0.5,
	}
}
