package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"speech2sense-go/internal/logger"
	"speech2sense-go/internal/types"
)

// LLMConfig configures the chat-completions gateway used for all three
// classification tasks.
type LLMConfig struct {
	URL          string
	APIKey       string
	Model        string
	Timeout      time.Duration
	MaxRetryTime time.Duration
	Temperature  float64
}

// LLMClient implements Classifier against an OpenAI-style chat endpoint.
type LLMClient struct {
	cfg  LLMConfig
	http *http.Client
	log  *logger.Logger
}

func NewLLMClient(cfg LLMConfig) (*LLMClient, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("llm gateway not configured")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 25 * time.Second
	}
	if cfg.MaxRetryTime == 0 {
		cfg.MaxRetryTime = 45 * time.Second
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.2
	}
	return &LLMClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger.New().WithComponent("classify"),
	}, nil
}

func (c *LLMClient) ClassifySentiment(ctx context.Context, text, domain string) (types.SentimentResult, error) {
	messages := make([]chatMessage, 0, len(sentimentFewShot)+2)
	messages = append(messages, chatMessage{Role: "system", Content: withDomainHint(sentimentPrompt, domain)})
	messages = append(messages, sentimentFewShot...)
	messages = append(messages, chatMessage{Role: "user", Content: text})

	raw, err := c.complete(ctx, messages)
	if err != nil {
		return types.SentimentResult{}, err
	}
	var res types.SentimentResult
	if err := strictUnmarshal(raw, &res); err != nil {
		return types.SentimentResult{}, fmt.Errorf("sentiment response: %w", err)
	}
	if err := validateSentiment(res); err != nil {
		return types.SentimentResult{}, fmt.Errorf("sentiment response: %w", err)
	}
	return res, nil
}

func (c *LLMClient) ClassifyIntent(ctx context.Context, text, domain string) (types.IntentResult, error) {
	messages := []chatMessage{
		{Role: "system", Content: withDomainHint(intentPrompt, domain)},
		{Role: "user", Content: text},
	}
	raw, err := c.complete(ctx, messages)
	if err != nil {
		return types.IntentResult{}, err
	}
	var res types.IntentResult
	if err := strictUnmarshal(raw, &res); err != nil {
		return types.IntentResult{}, fmt.Errorf("intent response: %w", err)
	}
	if err := validateIntent(res); err != nil {
		return types.IntentResult{}, fmt.Errorf("intent response: %w", err)
	}
	return res, nil
}

func (c *LLMClient) ClassifyTopic(ctx context.Context, conversation, domain string) (types.TopicAnalysis, error) {
	messages := []chatMessage{
		{Role: "system", Content: withDomainHint(topicPrompt, domain)},
		{Role: "user", Content: "Conversation text: " + conversation},
	}
	raw, err := c.complete(ctx, messages)
	if err != nil {
		return types.TopicAnalysis{}, err
	}
	var res types.TopicAnalysis
	if err := strictUnmarshal(raw, &res); err != nil {
		return types.TopicAnalysis{}, fmt.Errorf("topic response: %w", err)
	}
	if err := validateTopic(res); err != nil {
		return types.TopicAnalysis{}, fmt.Errorf("topic response: %w", err)
	}
	return res, nil
}

func withDomainHint(prompt, domain string) string {
	if domain == "" || domain == "general" {
		return prompt
	}
	return prompt + "\n\nThe conversation belongs to the \"" + domain + "\" domain. Use domain-appropriate interpretation."
}

// complete sends one chat request and returns the JSON object found in the
// model's reply. Retries transient failures with exponential backoff; 4xx
// responses are permanent.
func (c *LLMClient) complete(ctx context.Context, messages []chatMessage) (string, error) {
	reqBody := map[string]any{
		"model":           c.cfg.Model,
		"messages":        messages,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]string{"type": "json_object"},
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal llm request: %w", err)
	}

	var content string
	var lastErr error
	op := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.cfg.URL, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			c.log.WithError(err).Warn("llm request failed")
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("llm server error: status=%d", resp.StatusCode)
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("llm client error: status=%d body=%s", resp.StatusCode, truncate(body, 200))
			return backoff.Permanent(lastErr)
		}

		var parsed struct {
			Choices []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			} `json:"choices"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Choices) == 0 {
			lastErr = fmt.Errorf("unexpected llm response shape: %s", truncate(body, 200))
			return lastErr
		}
		inner := extractJSON(parsed.Choices[0].Message.Content)
		if inner == "" {
			lastErr = fmt.Errorf("no JSON object in llm output")
			return lastErr
		}
		content = inner
		lastErr = nil
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.cfg.MaxRetryTime
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return "", fmt.Errorf("llm call failed: %w", lastErr)
	}
	return content, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
