package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"speech2sense-go/internal/types"
)

func TestExtractJSONPlainObject(t *testing.T) {
	got := extractJSON(`{"sentiment": "positive", "score": 0.8}`)
	assert.Equal(t, `{"sentiment": "positive", "score": 0.8}`, got)
}

func TestExtractJSONStripsFences(t *testing.T) {
	in := "Here is the analysis:\n```json\n{\"sentiment\": \"neutral\"}\n```\nHope that helps."
	assert.Equal(t, `{"sentiment": "neutral"}`, extractJSON(in))
}

func TestExtractJSONNestedObjects(t *testing.T) {
	in := `prefix {"outer": {"inner": 1}, "n": 2} trailing {"second": true}`
	assert.Equal(t, `{"outer": {"inner": 1}, "n": 2}`, extractJSON(in))
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	in := `{"reason": "user said \"}\" and {", "score": 0.5}`
	assert.Equal(t, in, extractJSON(in))
}

func TestExtractJSONNoObject(t *testing.T) {
	assert.Empty(t, extractJSON("no json here"))
	assert.Empty(t, extractJSON(""))
	assert.Empty(t, extractJSON(`{"unterminated": true`))
}

func TestStrictUnmarshalRejectsMalformed(t *testing.T) {
	var r types.SentimentResult
	assert.Error(t, strictUnmarshal(`{"sentiment": `, &r))
	require.NoError(t, strictUnmarshal(`{"sentiment": "positive", "score": 0.8}`, &r))
	assert.Equal(t, "positive", r.Sentiment)
	assert.InDelta(t, 0.8, r.Score, 1e-9)
}

func TestValidateSentiment(t *testing.T) {
	ok := types.SentimentResult{Sentiment: "Extreme Positive", Score: 0.9, Confidence: 0.8}
	assert.NoError(t, validateSentiment(ok))

	assert.Error(t, validateSentiment(types.SentimentResult{Sentiment: "ecstatic", Score: 0.9}))
	assert.Error(t, validateSentiment(types.SentimentResult{Sentiment: "positive", Score: 1.2}))
	assert.Error(t, validateSentiment(types.SentimentResult{Sentiment: "positive", Score: 0.8, Confidence: -0.1}))
}

func TestValidateIntent(t *testing.T) {
	assert.NoError(t, validateIntent(types.IntentResult{Intent: "complaint", Confidence: 0.7}))
	assert.Error(t, validateIntent(types.IntentResult{Intent: "smalltalk", Confidence: 0.7}))
	assert.Error(t, validateIntent(types.IntentResult{Intent: "inquiry", Confidence: 2}))
}

func TestValidateTopic(t *testing.T) {
	assert.NoError(t, validateTopic(types.TopicAnalysis{
		Topics: []string{"billing"}, PrimaryTopic: "billing", Confidence: 0.6,
	}))
	assert.Error(t, validateTopic(types.TopicAnalysis{PrimaryTopic: "billing", Confidence: 0.6}))
	assert.Error(t, validateTopic(types.TopicAnalysis{
		Topics: []string{"billing"}, PrimaryTopic: "billing", Confidence: 1.5,
	}))
}
