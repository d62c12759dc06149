package transcript

import (
	"fmt"
	"os"
	"path/filepath"

	"speech2sense-go/internal/types"
)

// Export writes a speaker-labeled, timestamped transcript to
// <dir>/<conversationID>.txt and returns the file path.
func Export(dir, conversationID string, segments []types.AlignedSegment) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create transcript dir: %w", err)
	}
	path := filepath.Join(dir, conversationID+".txt")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create transcript file: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "=== Detailed Transcript ===")
	for _, seg := range segments {
		text := CleanText(seg.Text)
		if text == "" {
			continue
		}
		if _, err := fmt.Fprintf(f, "[%.2f-%.2f] %s: %s\n", seg.Start, seg.End, seg.Speaker, text); err != nil {
			return "", fmt.Errorf("write transcript: %w", err)
		}
	}
	return path, nil
}
