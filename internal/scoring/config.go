package scoring

// RatingThreshold maps a minimum score to its rating string. Thresholds are
// checked in order, first match wins.
type RatingThreshold struct {
	Min    float64 `yaml:"min"`
	Rating string  `yaml:"rating"`
}

// Config carries the tunable scoring constants. The source system shipped
// several slightly different weighting variants over time, so these are
// configuration, not invariants.
type Config struct {
	// RecencySpan is the extra weight the last customer utterance receives
	// over the first (weights run linearly from 1.0 to 1.0+RecencySpan).
	RecencySpan float64 `yaml:"recency_span"`

	CSATRatings        []RatingThreshold `yaml:"csat_ratings"`
	PerformanceRatings []RatingThreshold `yaml:"performance_ratings"`
}

// DefaultConfig returns the most complete, explicitly documented variant of
// the scoring constants.
func DefaultConfig() Config {
	return Config{
		RecencySpan: 1.5,
		CSATRatings: []RatingThreshold{
			{Min: 80, Rating: "Excellent"},
			{Min: 65, Rating: "Good"},
			{Min: 50, Rating: "Satisfactory"},
			{Min: 30, Rating: "Poor"},
			{Min: 0, Rating: "Very Poor"},
		},
		PerformanceRatings: []RatingThreshold{
			{Min: 80, Rating: "Excellent"},
			{Min: 65, Rating: "Good"},
			{Min: 50, Rating: "Satisfactory"},
			{Min: 35, Rating: "Needs Improvement"},
			{Min: 0, Rating: "Poor"},
		},
	}
}

func rating(thresholds []RatingThreshold, score float64) string {
	for _, t := range thresholds {
		if score >= t.Min {
			return t.Rating
		}
	}
	if len(thresholds) == 0 {
		return ""
	}
	return thresholds[len(thresholds)-1].Rating
}
