package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"speech2sense-go/internal/types"
)

func TestGenerateNoAgent(t *testing.T) {
	card := Generate(types.ConversationSummary{
		AgentPerformance: types.AgentPerformance{Error: "no agent utterances found"},
	})
	assert.Contains(t, card.Insight, "No agent participation")
}

func TestGenerateLowCSAT(t *testing.T) {
	card := Generate(types.ConversationSummary{
		CSATAnalysis: types.CSATAnalysis{
			Score:              32,
			Rating:             "Poor",
			CustomerUtterances: 4,
		},
		TopicAnalysis: types.TopicAnalysis{PrimaryTopic: "billing"},
	})
	assert.Contains(t, card.Insight, "Low customer satisfaction")
	assert.Contains(t, card.Insight, "billing")
}

func TestGenerateWeakestComponent(t *testing.T) {
	card := Generate(types.ConversationSummary{
		CSATAnalysis: types.CSATAnalysis{Score: 70, CustomerUtterances: 2},
		AgentPerformance: types.AgentPerformance{
			OverallScore: 62,
			Rating:       "Satisfactory",
			Breakdown: types.PerformanceBreakdown{
				AgentProfessionalism: 25,
				ProfessionalLanguage: 24,
				CustomerImprovement:  5,
				IssueResolution:      16,
			},
		},
	})
	assert.Contains(t, card.Insight, "customer improvement")
}

func TestGenerateBalanced(t *testing.T) {
	card := Generate(types.ConversationSummary{
		CSATAnalysis: types.CSATAnalysis{Score: 85, CustomerUtterances: 2},
		AgentPerformance: types.AgentPerformance{
			OverallScore: 88,
			Rating:       "Excellent",
			Breakdown: types.PerformanceBreakdown{
				AgentProfessionalism: 27,
				ProfessionalLanguage: 27,
				CustomerImprovement:  17,
				IssueResolution:      18,
			},
		},
	})
	assert.Contains(t, card.Insight, "Balanced performance")
}
