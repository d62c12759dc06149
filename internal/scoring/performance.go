package scoring

import (
	"errors"
	"math"
	"strings"

	"speech2sense-go/internal/types"
)

// Keywords counted as professional agent language.
var professionalKeywords = []string{
	"help", "assist", "solve", "resolve", "understand", "sorry", "apologize",
	"thank", "please", "certainly", "absolutely", "definitely", "glad", "happy",
	"everything", "right", "fix", "support",
}

// ErrNoAgentUtterances means performance cannot be scored at all.
var ErrNoAgentUtterances = errors.New("no agent utterances found for performance analysis")

// ComputePerformance scores the agent side of the conversation from four
// components: mean normalized agent sentiment (30%), professional language
// rate (30%), customer sentiment improvement (20%) and issue resolution
// inferred from the final customer sentiment (20%).
func (c Config) ComputePerformance(utterances []types.AnnotatedUtterance) (types.AgentPerformance, error) {
	var agent, customer []types.AnnotatedUtterance
	for _, u := range utterances {
		switch {
		case strings.EqualFold(u.Speaker, types.SpeakerAgent):
			agent = append(agent, u)
		case strings.EqualFold(u.Speaker, types.SpeakerCustomer):
			customer = append(customer, u)
		}
	}
	if len(agent) == 0 {
		return types.AgentPerformance{}, ErrNoAgentUtterances
	}

	// 1. Mean normalized agent sentiment.
	sum := 0.0
	for _, u := range agent {
		sum += Normalize(u.Sentiment, u.Score)
	}
	avgAgentSentiment := sum / float64(len(agent))

	// 2. Share of agent utterances using professional language.
	professional := 0
	for _, u := range agent {
		text := strings.ToLower(u.Sentence)
		for _, k := range professionalKeywords {
			if strings.Contains(text, k) {
				professional++
				break
			}
		}
	}
	professionalism := float64(professional) / float64(len(agent)) * 100

	// 3. Customer sentiment trajectory, first to last.
	improvement := 0.0
	switch {
	case len(customer) >= 2:
		first := Normalize(customer[0].Sentiment, customer[0].Score)
		last := Normalize(customer[len(customer)-1].Sentiment, customer[len(customer)-1].Score)
		improvement = (last - first) * 100
	case len(customer) == 1:
		s := customer[0].Sentiment
		if s == types.SentimentNegative || s == types.SentimentExtremeNegative {
			improvement = -25
		}
	}

	// 4. Resolution indicator from the final customer sentiment.
	resolution := 50.0
	if len(customer) > 0 {
		switch customer[len(customer)-1].Sentiment {
		case types.SentimentExtremePositive:
			resolution = 95
		case types.SentimentPositive:
			resolution = 80
		case types.SentimentNeutral:
			resolution = 60
		case types.SentimentNegative:
			resolution = 25
		default:
			resolution = 10
		}
	}

	agentComponent := avgAgentSentiment * 100 * 0.30
	languageComponent := professionalism * 0.30
	improvementComponent := math.Max(0, 50+improvement) * 0.20
	resolutionComponent := resolution * 0.20

	score := agentComponent + languageComponent + improvementComponent + resolutionComponent
	score = math.Max(0, math.Min(100, math.Trunc(score)))

	breakdown := types.PerformanceBreakdown{
		AgentProfessionalism: round1(agentComponent),
		ProfessionalLanguage: round1(languageComponent),
		CustomerImprovement:  round1(improvementComponent),
		IssueResolution:      round1(resolutionComponent),
	}

	return types.AgentPerformance{
		OverallScore:          score,
		Rating:                rating(c.PerformanceRatings, score),
		AgentSentimentAvg:     math.Round(avgAgentSentiment*100) / 100,
		ProfessionalismScore:  round1(professionalism),
		CustomerImprovement:   round1(improvement),
		ResolutionScore:       round1(resolution),
		TotalResponses:        len(agent),
		ProfessionalResponses: professional,
		Breakdown:             breakdown,
	}, nil
}
