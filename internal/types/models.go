package types

import "time"

// Canonical speaker roles. The text adapter keeps unrecognized labels
// verbatim, so Speaker fields are plain strings compared against these.
const (
	SpeakerAgent    = "Agent"
	SpeakerCustomer = "Customer"
	SpeakerUnknown  = "SPEAKER_UNKNOWN"
)

// The five sentiment buckets, ordered worst to best.
const (
	SentimentExtremeNegative = "extreme negative"
	SentimentNegative        = "negative"
	SentimentNeutral         = "neutral"
	SentimentPositive        = "positive"
	SentimentExtremePositive = "extreme positive"
)

const IntentUnknown = "unknown"

// Utterance is one speaker turn. ID is 1-based and gap-free within a
// conversation. Start/End are seconds, zero for text-sourced conversations.
type Utterance struct {
	ID       int     `json:"utterance_id"`
	Speaker  string  `json:"speaker"`
	Sentence string  `json:"sentence"`
	Start    float64 `json:"start,omitempty"`
	End      float64 `json:"end,omitempty"`
}

// AnnotatedUtterance extends an Utterance with classification results.
type AnnotatedUtterance struct {
	Utterance
	Sentiment           string   `json:"sentiment"`
	Score               float64  `json:"score"`
	Reason              string   `json:"reason"`
	Keywords            []string `json:"keywords"`
	SentimentConfidence float64  `json:"sentiment_confidence"`
	Intent              string   `json:"intent"`
	SecondaryIntents    []string `json:"secondary_intents"`
	IntentConfidence    float64  `json:"intent_confidence"`
	IntentReasoning     string   `json:"intent_reasoning"`
}

// TranscriptSegment is a timestamped slice of transcribed speech.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// SpeakerSegment is one diarization interval with an anonymous label
// (e.g. "SPEAKER_00").
type SpeakerSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
}

// AlignedSegment is a transcript segment after speaker attribution.
type AlignedSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker"`
}

// SentimentResult is the sentiment collaborator's answer for one utterance.
type SentimentResult struct {
	Sentiment  string   `json:"sentiment"`
	Score      float64  `json:"score"`
	Reason     string   `json:"reason"`
	Keywords   []string `json:"keywords"`
	Confidence float64  `json:"confidence"`
}

// IntentResult is the intent collaborator's answer for one utterance.
type IntentResult struct {
	Intent           string   `json:"intent"`
	SecondaryIntents []string `json:"secondary_intents"`
	Confidence       float64  `json:"confidence"`
	Reasoning        string   `json:"reasoning"`
}

// TopicAnalysis is the once-per-conversation topic classification.
type TopicAnalysis struct {
	Topics       []string `json:"topics"`
	PrimaryTopic string   `json:"primary_topic"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning,omitempty"`
}

// CSATAnalysis is the customer-satisfaction aggregate.
type CSATAnalysis struct {
	Score                  float64        `json:"csat_score"`
	Rating                 string         `json:"csat_rating"`
	Methodology            string         `json:"methodology"`
	CustomerUtterances     int            `json:"customer_utterances_count,omitempty"`
	SentimentDistribution  map[string]int `json:"sentiment_distribution,omitempty"`
	FinalCustomerSentiment string         `json:"final_customer_sentiment,omitempty"`
}

// PerformanceBreakdown holds the four components of the agent performance
// score, each already scaled by its weight.
type PerformanceBreakdown struct {
	AgentProfessionalism float64 `json:"agent_professionalism"`
	ProfessionalLanguage float64 `json:"professional_language"`
	CustomerImprovement  float64 `json:"customer_improvement"`
	IssueResolution      float64 `json:"issue_resolution"`
}

// AgentPerformance is the agent-side aggregate. Error is set instead of the
// numeric fields when no agent utterances exist.
type AgentPerformance struct {
	OverallScore          float64              `json:"overall_score"`
	Rating                string               `json:"rating"`
	AgentSentimentAvg     float64              `json:"agent_sentiment_avg"`
	ProfessionalismScore  float64              `json:"professionalism_score"`
	CustomerImprovement   float64              `json:"customer_sentiment_improvement"`
	ResolutionScore       float64              `json:"resolution_score"`
	TotalResponses        int                  `json:"total_responses"`
	ProfessionalResponses int                  `json:"professional_responses"`
	Breakdown             PerformanceBreakdown `json:"metrics_breakdown"`
	Error                 string               `json:"error,omitempty"`
}

// ConversationSummary is the terminal aggregate handed back to the caller.
// No mutation happens after construction.
type ConversationSummary struct {
	ConversationID    string               `json:"conversation_id"`
	TotalUtterances   int                  `json:"total_utterances"`
	Speakers          []string             `json:"speakers"`
	TopicAnalysis     TopicAnalysis        `json:"topic_analysis"`
	CSATAnalysis      CSATAnalysis         `json:"csat_analysis"`
	AgentPerformance  AgentPerformance     `json:"agent_performance"`
	Utterances        []AnnotatedUtterance `json:"utterances"`
	AnalysisTimestamp time.Time            `json:"analysis_timestamp"`
	Domain            string               `json:"domain"`
}
