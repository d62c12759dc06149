// Package insight turns a conversation summary into a short coaching card.
package insight

import (
	"fmt"

	"speech2sense-go/internal/types"
)

type Card struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// Generate picks the weakest signal in the analysis and suggests a concrete
// follow-up for it.
func Generate(s types.ConversationSummary) Card {
	if s.AgentPerformance.Error != "" {
		return Card{
			Insight: "No agent participation detected in this conversation",
			Action:  "Verify call routing and recording configuration",
			Impact:  "Unscored conversations hide coaching opportunities",
		}
	}

	perf := s.AgentPerformance
	if s.CSATAnalysis.CustomerUtterances > 0 && s.CSATAnalysis.Score < 50 {
		return Card{
			Insight: fmt.Sprintf("Low customer satisfaction (%.0f, %s) on topic %q",
				s.CSATAnalysis.Score, s.CSATAnalysis.Rating, s.TopicAnalysis.PrimaryTopic),
			Action: "Queue for supervisor review and customer follow-up within 24h",
			Impact: "Recover at-risk customer before churn",
		}
	}

	// Rank the four weighted components against their maxima (30/30/20/20).
	type component struct {
		name   string
		share  float64
		action string
	}
	components := []component{
		{"agent sentiment", perf.Breakdown.AgentProfessionalism / 30, "Coach on keeping a positive tone through difficult exchanges"},
		{"professional language", perf.Breakdown.ProfessionalLanguage / 30, "Reinforce courteous phrasing and ownership language"},
		{"customer improvement", perf.Breakdown.CustomerImprovement / 20, "Review de-escalation techniques; the customer left no better than they arrived"},
		{"issue resolution", perf.Breakdown.IssueResolution / 20, "Audit whether the underlying issue was actually resolved"},
	}
	weakest := components[0]
	for _, c := range components[1:] {
		if c.share < weakest.share {
			weakest = c
		}
	}

	if weakest.share >= 0.75 {
		return Card{
			Insight: fmt.Sprintf("Balanced performance (%.0f, %s), no weak component", perf.OverallScore, perf.Rating),
			Action:  "Monitor and collect more conversations",
			Impact:  "Low immediate intervention",
		}
	}
	return Card{
		Insight: fmt.Sprintf("Weakest performance component: %s (overall %.0f, %s)",
			weakest.name, perf.OverallScore, perf.Rating),
		Action: weakest.action,
		Impact: "Targeted coaching lifts the lowest scoring dimension first",
	}
}
