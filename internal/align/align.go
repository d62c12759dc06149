// Package align attributes transcript segments to diarized speakers by
// maximal temporal overlap.
package align

import (
	"strings"

	"speech2sense-go/internal/types"
)

// Align assigns each transcript segment the speaker label whose diarization
// interval overlaps it the most. Ties keep the first speaker segment
// encountered; diarization boundaries are frequently coincident, so the
// stable argmax is deliberate. Segments with empty trimmed text are dropped.
// When nothing overlaps at all the sentinel SPEAKER_UNKNOWN is assigned.
// Output order matches input transcript order.
func Align(transcript []types.TranscriptSegment, speakers []types.SpeakerSegment) []types.AlignedSegment {
	merged := make([]types.AlignedSegment, 0, len(transcript))
	for _, seg := range transcript {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		best := types.SpeakerUnknown
		maxOverlap := 0.0
		for _, sp := range speakers {
			if ov := overlap(seg.Start, seg.End, sp.Start, sp.End); ov > maxOverlap {
				maxOverlap = ov
				best = sp.Speaker
			}
		}
		merged = append(merged, types.AlignedSegment{
			Start:   seg.Start,
			End:     seg.End,
			Text:    text,
			Speaker: best,
		})
	}
	return merged
}

// overlap is the shared duration of [aStart,aEnd] and [bStart,bEnd].
// Inverted intervals yield zero rather than a negative value.
func overlap(aStart, aEnd, bStart, bEnd float64) float64 {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}
