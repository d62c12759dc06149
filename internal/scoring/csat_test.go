package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"speech2sense-go/internal/types"
)

func customerUtterance(id int, sentiment string, score float64) types.AnnotatedUtterance {
	return types.AnnotatedUtterance{
		Utterance: types.Utterance{ID: id, Speaker: types.SpeakerCustomer, Sentence: "text"},
		Sentiment: sentiment,
		Score:     score,
	}
}

func agentUtterance(id int, sentiment string, score float64, sentence string) types.AnnotatedUtterance {
	return types.AnnotatedUtterance{
		Utterance: types.Utterance{ID: id, Speaker: types.SpeakerAgent, Sentence: sentence},
		Sentiment: sentiment,
		Score:     score,
	}
}

func TestComputeCSATNoCustomerData(t *testing.T) {
	cfg := DefaultConfig()
	res := cfg.ComputeCSAT([]types.AnnotatedUtterance{
		agentUtterance(1, types.SentimentNeutral, 0.5, "hello"),
	})
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, "No customer data", res.Rating)
	assert.Zero(t, res.CustomerUtterances)
}

func TestComputeCSATRecencyWeights(t *testing.T) {
	cfg := DefaultConfig()
	// two customer utterances: weights 1.0 and 2.5
	res := cfg.ComputeCSAT([]types.AnnotatedUtterance{
		customerUtterance(1, types.SentimentNegative, 0.3), // normalized 0.3
		customerUtterance(2, types.SentimentPositive, 0.8), // normalized 0.8
	})
	want := (0.3*1.0 + 0.8*2.5) / 3.5 * 100
	assert.InDelta(t, math.Round(want*10)/10, res.Score, 1e-9)
	assert.Equal(t, "Good", res.Rating)
	assert.Equal(t, 2, res.CustomerUtterances)
	assert.Equal(t, types.SentimentPositive, res.FinalCustomerSentiment)
	assert.Equal(t, map[string]int{
		types.SentimentNegative: 1,
		types.SentimentPositive: 1,
	}, res.SentimentDistribution)
}

func TestCSATWeightsNonDecreasingAndSpan(t *testing.T) {
	cfg := DefaultConfig()
	for _, n := range []int{2, 3, 5, 10} {
		weights := make([]float64, n)
		for i := range weights {
			weights[i] = 1.0 + float64(i)/math.Max(1, float64(n-1))*cfg.RecencySpan
		}
		for i := 1; i < n; i++ {
			assert.GreaterOrEqual(t, weights[i], weights[i-1])
		}
		assert.InDelta(t, 2.5*weights[0], weights[n-1], 1e-9, "last weight is 2.5x the first for n=%d", n)
	}
}

func TestComputeCSATSingleUtterance(t *testing.T) {
	cfg := DefaultConfig()
	res := cfg.ComputeCSAT([]types.AnnotatedUtterance{
		customerUtterance(1, types.SentimentExtremePositive, 0.95),
	})
	assert.InDelta(t, 95.0, res.Score, 1e-9)
	assert.Equal(t, "Excellent", res.Rating)
}

func TestComputeCSATRatingThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		sentiment string
		score     float64
		rating    string
	}{
		{types.SentimentExtremePositive, 0.9, "Excellent"},  // 90
		{types.SentimentPositive, 0.7, "Good"},              // 70
		{types.SentimentNeutral, 0.5, "Satisfactory"},       // 50
		{types.SentimentNegative, 0.33, "Poor"},             // 33
		{types.SentimentExtremeNegative, 0.1, "Very Poor"},  // 10
	}
	for _, c := range cases {
		res := cfg.ComputeCSAT([]types.AnnotatedUtterance{customerUtterance(1, c.sentiment, c.score)})
		assert.Equal(t, c.rating, res.Rating, "sentiment=%s", c.sentiment)
	}
}
