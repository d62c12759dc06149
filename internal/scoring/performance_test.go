package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"speech2sense-go/internal/types"
)

func TestComputePerformanceNoAgent(t *testing.T) {
	cfg := DefaultConfig()
	_, err := cfg.ComputePerformance([]types.AnnotatedUtterance{
		customerUtterance(1, types.SentimentNegative, 0.3),
	})
	assert.ErrorIs(t, err, ErrNoAgentUtterances)
}

func TestComputePerformanceWorkedExample(t *testing.T) {
	cfg := DefaultConfig()
	res, err := cfg.ComputePerformance([]types.AnnotatedUtterance{
		agentUtterance(1, types.SentimentPositive, 0.75, "Happy to help you with that"),
		customerUtterance(2, types.SentimentNegative, 0.25),
		agentUtterance(3, types.SentimentPositive, 0.75, "The weather is nice today"),
		customerUtterance(4, types.SentimentPositive, 0.75),
	})
	require.NoError(t, err)

	// agent sentiment: 0.75 avg -> 22.5; language: 1/2 -> 15;
	// improvement: (0.75-0.25)*100=50 -> (50+50)*0.2=20; resolution: 80 -> 16.
	// total 73.5, truncated to 73.
	assert.Equal(t, 73.0, res.OverallScore)
	assert.Equal(t, "Good", res.Rating)
	assert.InDelta(t, 0.75, res.AgentSentimentAvg, 1e-9)
	assert.InDelta(t, 50.0, res.ProfessionalismScore, 1e-9)
	assert.InDelta(t, 50.0, res.CustomerImprovement, 1e-9)
	assert.InDelta(t, 80.0, res.ResolutionScore, 1e-9)
	assert.Equal(t, 2, res.TotalResponses)
	assert.Equal(t, 1, res.ProfessionalResponses)
	assert.InDelta(t, 22.5, res.Breakdown.AgentProfessionalism, 1e-9)
	assert.InDelta(t, 15.0, res.Breakdown.ProfessionalLanguage, 1e-9)
	assert.InDelta(t, 20.0, res.Breakdown.CustomerImprovement, 1e-9)
	assert.InDelta(t, 16.0, res.Breakdown.IssueResolution, 1e-9)
}

func TestComputePerformanceSingleNegativeCustomer(t *testing.T) {
	cfg := DefaultConfig()
	res, err := cfg.ComputePerformance([]types.AnnotatedUtterance{
		agentUtterance(1, types.SentimentNeutral, 0.5, "okay"),
		customerUtterance(2, types.SentimentExtremeNegative, 0.1),
	})
	require.NoError(t, err)
	assert.InDelta(t, -25.0, res.CustomerImprovement, 1e-9)
	assert.InDelta(t, 10.0, res.ResolutionScore, 1e-9)
	// improvement component floors at zero: max(0, 50-25)*0.2 = 5.
	assert.InDelta(t, 5.0, res.Breakdown.CustomerImprovement, 1e-9)
}

func TestComputePerformanceNoCustomerDefaults(t *testing.T) {
	cfg := DefaultConfig()
	res, err := cfg.ComputePerformance([]types.AnnotatedUtterance{
		agentUtterance(1, types.SentimentNeutral, 0.5, "okay"),
	})
	require.NoError(t, err)
	assert.Zero(t, res.CustomerImprovement)
	assert.InDelta(t, 50.0, res.ResolutionScore, 1e-9)
	// 0.5*100*0.3 + 0 + (50+0)*0.2 + 50*0.2 = 15+10+10 = 35
	assert.Equal(t, 35.0, res.OverallScore)
	assert.Equal(t, "Needs Improvement", res.Rating)
}

func TestComputePerformanceScoreClampedToRange(t *testing.T) {
	cfg := DefaultConfig()
	res, err := cfg.ComputePerformance([]types.AnnotatedUtterance{
		agentUtterance(1, types.SentimentExtremePositive, 0.95, "Absolutely glad to help, thank you"),
		customerUtterance(2, types.SentimentExtremeNegative, 0.1),
		customerUtterance(3, types.SentimentExtremePositive, 0.95),
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.OverallScore, 100.0)
	assert.GreaterOrEqual(t, res.OverallScore, 0.0)
	assert.Equal(t, res.OverallScore, float64(int(res.OverallScore)), "score is a whole number")
}
