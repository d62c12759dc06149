package scoring

import (
	"fmt"
	"math"
	"strings"

	"speech2sense-go/internal/types"
)

// ComputeCSAT aggregates customer-side sentiment into a 0-100 satisfaction
// score. Later utterances weigh more because they best reflect the resolved
// state of the interaction. With no customer utterances an explicit "No
// customer data" result is returned instead of a misleading number.
func (c Config) ComputeCSAT(utterances []types.AnnotatedUtterance) types.CSATAnalysis {
	var customer []types.AnnotatedUtterance
	for _, u := range utterances {
		if strings.EqualFold(u.Speaker, types.SpeakerCustomer) {
			customer = append(customer, u)
		}
	}
	if len(customer) == 0 {
		return types.CSATAnalysis{
			Score:       0,
			Rating:      "No customer data",
			Methodology: "No customer utterances found",
		}
	}

	totalWeighted := 0.0
	totalWeight := 0.0
	for i, u := range customer {
		// Weights run linearly from 1.0 on the first customer utterance to
		// 1.0+RecencySpan on the last.
		weight := 1.0 + float64(i)/math.Max(1, float64(len(customer)-1))*c.RecencySpan
		totalWeighted += Normalize(u.Sentiment, u.Score) * weight
		totalWeight += weight
	}
	score := totalWeighted / totalWeight * 100

	distribution := map[string]int{}
	for _, u := range customer {
		distribution[u.Sentiment]++
	}

	return types.CSATAnalysis{
		Score:  round1(score),
		Rating: rating(c.CSATRatings, score),
		Methodology: fmt.Sprintf(
			"Weighted average of %d customer sentiment scores with recency bias and normalization",
			len(customer)),
		CustomerUtterances:     len(customer),
		SentimentDistribution:  distribution,
		FinalCustomerSentiment: customer[len(customer)-1].Sentiment,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
