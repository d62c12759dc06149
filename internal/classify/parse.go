package classify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"speech2sense-go/internal/types"
)

// extractJSON finds the first balanced JSON object in a string, stripping
// common markdown fences first. Returns "" when none is found.
func extractJSON(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, fence := range []string{"```json", "```yaml", "```text", "```", "`json", "`"} {
		s = strings.ReplaceAll(s, fence, "")
	}

	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}
	return ""
}

// strictUnmarshal decodes raw into target and rejects any shape mismatch.
// A collaborator answer that does not deserialize cleanly is a collaborator
// error, never something to guess around.
func strictUnmarshal(raw string, target any) error {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	return nil
}

var validSentiments = map[string]bool{
	types.SentimentExtremePositive: true,
	types.SentimentPositive:        true,
	types.SentimentNeutral:         true,
	types.SentimentNegative:        true,
	types.SentimentExtremeNegative: true,
}

var validIntents = map[string]bool{
	"complaint":      true,
	"inquiry":        true,
	"feedback":       true,
	"request":        true,
	"acknowledgment": true,
	"escalation":     true,
}

func validateSentiment(r types.SentimentResult) error {
	if !validSentiments[strings.ToLower(r.Sentiment)] {
		return fmt.Errorf("unknown sentiment label %q", r.Sentiment)
	}
	if r.Score < 0 || r.Score > 1 {
		return fmt.Errorf("sentiment score %v out of [0,1]", r.Score)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("sentiment confidence %v out of [0,1]", r.Confidence)
	}
	return nil
}

func validateIntent(r types.IntentResult) error {
	if !validIntents[strings.ToLower(r.Intent)] {
		return fmt.Errorf("unknown intent label %q", r.Intent)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("intent confidence %v out of [0,1]", r.Confidence)
	}
	return nil
}

func validateTopic(r types.TopicAnalysis) error {
	if len(r.Topics) == 0 || r.PrimaryTopic == "" {
		return fmt.Errorf("topic response missing topics")
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("topic confidence %v out of [0,1]", r.Confidence)
	}
	return nil
}
