// Package speech wraps the external speech-to-text and speaker-diarization
// collaborators behind one Engine contract.
package speech

import (
	"context"

	"speech2sense-go/internal/types"
)

// Engine is the audio collaborator pair consumed by the analyzer. Injected
// at construction time so tests can substitute deterministic fakes.
type Engine interface {
	Transcribe(ctx context.Context, audioPath string) ([]types.TranscriptSegment, error)
	Diarize(ctx context.Context, audioPath string) ([]types.SpeakerSegment, error)
}
