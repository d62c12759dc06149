// Package roles maps anonymous diarization labels onto the Agent and
// Customer roles of a two-party exchange.
package roles

import (
	"sort"
	"strings"

	"speech2sense-go/internal/types"
)

var agentKeywords = []string{"help", "assist", "support", "company", "policy", "thank you for calling"}
var customerKeywords = []string{"problem", "issue", "my order", "i need", "complaint", "refund"}

type labelStats struct {
	label         string
	agentScore    int
	customerScore int
	duration      float64
	isFirst       bool
}

// Infer builds the raw-label→role mapping for the given aligned segments.
// The label ranking tuple is (agentScore−customerScore, isFirstSpeaker,
// totalDuration), compared lexicographically, descending. The top label maps
// to Agent, the second to Customer. With a single distinct label both roles
// collapse onto it; labels beyond the top two stay unmapped.
func Infer(segments []types.AlignedSegment) map[string]string {
	if len(segments) == 0 {
		return map[string]string{}
	}

	stats := map[string]*labelStats{}
	order := []string{}
	for _, seg := range segments {
		st, ok := stats[seg.Speaker]
		if !ok {
			st = &labelStats{label: seg.Speaker}
			stats[seg.Speaker] = st
			order = append(order, seg.Speaker)
		}
		text := strings.ToLower(seg.Text)
		for _, k := range agentKeywords {
			if strings.Contains(text, k) {
				st.agentScore++
			}
		}
		for _, k := range customerKeywords {
			if strings.Contains(text, k) {
				st.customerScore++
			}
		}
		st.duration += seg.End - seg.Start
	}
	stats[segments[0].Speaker].isFirst = true

	ranked := make([]*labelStats, 0, len(order))
	for _, label := range order {
		ranked = append(ranked, stats[label])
	}
	// Multi-key comparator instead of tuple sort so the tie-break order is
	// explicit and testable.
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		ka, kb := a.agentScore-a.customerScore, b.agentScore-b.customerScore
		if ka != kb {
			return ka > kb
		}
		if a.isFirst != b.isFirst {
			return a.isFirst
		}
		return a.duration > b.duration
	})

	mapping := map[string]string{ranked[0].label: types.SpeakerAgent}
	if len(ranked) > 1 {
		mapping[ranked[1].label] = types.SpeakerCustomer
	} else {
		// Degenerate single-speaker conversation: both roles collapse onto
		// the one label, Customer last so satisfaction still gets data.
		mapping[ranked[0].label] = types.SpeakerCustomer
	}
	return mapping
}

// Apply rewrites segment speakers through the mapping. Labels outside the
// mapping (a third speaker, the unknown sentinel) pass through unchanged.
func Apply(segments []types.AlignedSegment, mapping map[string]string) []types.AlignedSegment {
	out := make([]types.AlignedSegment, len(segments))
	for i, seg := range segments {
		if role, ok := mapping[seg.Speaker]; ok {
			seg.Speaker = role
		}
		out[i] = seg
	}
	return out
}
