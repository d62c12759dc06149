package transcript

import (
	"regexp"
	"strings"

	"speech2sense-go/internal/logger"
	"speech2sense-go/internal/types"
)

var (
	agentWords    = []string{"agent", "support", "rep", "staff"}
	customerWords = []string{"customer", "client", "user", "caller"}
)

// ExtractUtterances parses "Speaker: message" conversation text into ordered
// utterances. Lines without a separator, or with an empty speaker or message,
// are skipped, not errors. Utterance IDs are assigned 1..N over the lines
// that survive.
func ExtractUtterances(text string) []types.Utterance {
	log := logger.New().WithField("component", "transcript")

	var out []types.Utterance
	for lineNum, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		speaker, message, found := strings.Cut(line, ":")
		if !found {
			log.WithField("line", lineNum+1).Warn("no speaker delimiter, skipping line")
			continue
		}
		speaker = strings.TrimSpace(speaker)
		message = strings.TrimSpace(message)
		if speaker == "" || message == "" {
			log.WithField("line", lineNum+1).Warn("empty speaker or message, skipping line")
			continue
		}
		out = append(out, types.Utterance{
			ID:       len(out) + 1,
			Speaker:  NormalizeSpeaker(speaker),
			Sentence: message,
		})
	}
	log.WithField("utterances", len(out)).Debug("extraction complete")
	return out
}

// NormalizeSpeaker maps a raw speaker label onto Agent/Customer by keyword.
// Labels matching neither set are kept verbatim.
func NormalizeSpeaker(label string) string {
	l := strings.ToLower(label)
	for _, w := range agentWords {
		if strings.Contains(l, w) {
			return types.SpeakerAgent
		}
	}
	for _, w := range customerWords {
		if strings.Contains(l, w) {
			return types.SpeakerCustomer
		}
	}
	return label
}

var fillerPattern = regexp.MustCompile(`(?i)\b(um+|uh+|ah+|erm|hmm|you know|like)\b`)
var multiSpace = regexp.MustCompile(`\s{2,}`)

// CleanText strips filler words from transcribed speech.
func CleanText(text string) string {
	text = fillerPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
}

// FormatConversation renders role-mapped segments as "Speaker: text" lines,
// the same shape the text adapter consumes.
func FormatConversation(segments []types.AlignedSegment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		lines = append(lines, seg.Speaker+": "+text)
	}
	return strings.Join(lines, "\n")
}
