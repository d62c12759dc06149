// Package scoring turns per-utterance classifier output into bounded,
// comparable conversation-level scores.
package scoring

import (
	"math"
	"strings"

	"speech2sense-go/internal/types"
)

// Normalize remaps a raw classifier score into the canonical sub-range owned
// by its sentiment label. The upstream classifier's raw confidence is not
// guaranteed to agree with its own label, so every downstream aggregate uses
// this value and never the raw score. A raw score pointing the wrong way for
// its bucket falls back to the bucket's fixed midpoint.
func Normalize(sentimentLabel string, rawScore float64) float64 {
	switch strings.ToLower(sentimentLabel) {
	case types.SentimentExtremePositive:
		if rawScore > 0.5 {
			return clamp(rawScore, 0.85, 1.0)
		}
		return 0.9
	case types.SentimentPositive:
		if rawScore > 0.5 {
			return clamp(rawScore, 0.65, 0.84)
		}
		return 0.75
	case types.SentimentNeutral:
		if math.Abs(rawScore-0.5) < 0.15 {
			return clamp(rawScore, 0.45, 0.64)
		}
		return 0.5
	case types.SentimentNegative:
		if rawScore < 0.5 {
			return clamp(rawScore, 0.15, 0.35)
		}
		return 0.25
	case types.SentimentExtremeNegative:
		if rawScore < 0.5 {
			return clamp(rawScore, 0.0, 0.14)
		}
		return 0.1
	default:
		return rawScore
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
