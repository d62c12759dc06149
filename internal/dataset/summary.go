package dataset

import (
	"sort"

	"speech2sense-go/internal/types"
)

// BatchReport condenses a batch of conversation analyses into the numbers a
// reviewer scans first.
type BatchReport struct {
	TotalConversations int            `json:"total_conversations"`
	Failed             int            `json:"failed"`
	AvgCSAT            float64        `json:"avg_csat"`
	AvgPerformance     float64        `json:"avg_performance"`
	CSATRatings        map[string]int `json:"csat_ratings"`
	TopTopics          []string       `json:"top_topics"`
}

// Summarize aggregates batch results. failed counts inputs that produced no
// summary at all (empty transcripts, zero utterances).
func Summarize(summaries []types.ConversationSummary, failed int) BatchReport {
	report := BatchReport{
		TotalConversations: len(summaries) + failed,
		Failed:             failed,
		CSATRatings:        map[string]int{},
	}
	if len(summaries) == 0 {
		return report
	}

	csatSum := 0.0
	csatCount := 0
	perfSum := 0.0
	perfCount := 0
	topicCounts := map[string]int{}
	for _, s := range summaries {
		report.CSATRatings[s.CSATAnalysis.Rating]++
		if s.CSATAnalysis.CustomerUtterances > 0 {
			csatSum += s.CSATAnalysis.Score
			csatCount++
		}
		if s.AgentPerformance.Error == "" {
			perfSum += s.AgentPerformance.OverallScore
			perfCount++
		}
		topicCounts[s.TopicAnalysis.PrimaryTopic]++
	}
	if csatCount > 0 {
		report.AvgCSAT = csatSum / float64(csatCount)
	}
	if perfCount > 0 {
		report.AvgPerformance = perfSum / float64(perfCount)
	}

	type tc struct {
		topic string
		count int
	}
	var ranked []tc
	for t, c := range topicCounts {
		ranked = append(ranked, tc{t, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].topic < ranked[j].topic
	})
	for i := 0; i < len(ranked) && i < 3; i++ {
		report.TopTopics = append(report.TopTopics, ranked[i].topic)
	}
	return report
}
