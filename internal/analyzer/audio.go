package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"speech2sense-go/internal/align"
	"speech2sense-go/internal/metrics"
	"speech2sense-go/internal/roles"
	"speech2sense-go/internal/speech"
	"speech2sense-go/internal/transcript"
	"speech2sense-go/internal/types"
)

// AnalyzeAudio runs the full audio pipeline: transcode, transcribe, diarize,
// align transcript segments to speakers, infer Agent/Customer roles, then
// the same classification and scoring path as text conversations.
func (a *Analyzer) AnalyzeAudio(ctx context.Context, audioPath, domain string) (types.ConversationSummary, error) {
	if a.engine == nil {
		return types.ConversationSummary{}, errors.New("audio engine not configured")
	}
	log := a.log.WithField("audio_path", audioPath)

	processPath := audioPath
	wav, err := speech.Transcode(ctx, audioPath, "")
	if err != nil {
		// The collaborators may still accept the original container.
		log.WithError(err).Warn("audio transcode failed, using original file")
	} else {
		processPath = wav
		defer os.Remove(wav)
	}

	segments, err := a.engine.Transcribe(ctx, processPath)
	if err != nil {
		metrics.ConversationsAnalyzed.WithLabelValues("audio", "error").Inc()
		return types.ConversationSummary{}, fmt.Errorf("transcription failed: %w", err)
	}
	for i := range segments {
		segments[i].Text = transcript.CleanText(segments[i].Text)
	}

	speakers, err := a.engine.Diarize(ctx, processPath)
	if err != nil {
		// Zero speaker segments is a documented aligner case, not a failure.
		log.WithError(err).Warn("diarization failed, continuing without speaker segments")
		speakers = nil
	}

	aligned := align.Align(segments, speakers)
	if len(aligned) == 0 {
		metrics.ConversationsAnalyzed.WithLabelValues("audio", "error").Inc()
		return types.ConversationSummary{}, ErrNoUtterances
	}
	mapped := roles.Apply(aligned, roles.Infer(aligned))

	utterances := make([]types.Utterance, len(mapped))
	for i, seg := range mapped {
		utterances[i] = types.Utterance{
			ID:       i + 1,
			Speaker:  seg.Speaker,
			Sentence: seg.Text,
			Start:    seg.Start,
			End:      seg.End,
		}
	}

	summary := a.analyze(ctx, utterances, transcript.FormatConversation(mapped), domain, "audio")

	if a.cfg.TranscriptDir != "" {
		if path, err := transcript.Export(a.cfg.TranscriptDir, summary.ConversationID, mapped); err != nil {
			log.WithError(err).Warn("transcript export failed")
		} else {
			log.WithField("transcript_file", path).Info("transcript exported")
		}
	}
	return summary, nil
}
