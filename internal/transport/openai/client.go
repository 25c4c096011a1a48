// Package openai implements the external generative model client over the
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/ashk12/phone-assistant/internal/domain"
	"github.com/ashk12/phone-assistant/internal/metrics"
)

// Client talks to an OpenAI-compatible chat completion API for intent
// classification, safety classification, and narrative generation.
type Client struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the generative model settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewClient creates a chat completion client.
func NewClient(cfg *Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Generate sends an assembled prompt and returns the completion text.
// No retries and no timeout here: callers needing cancellation wrap ctx.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, "generate", prompt)
}

// ClassifyIntent classifies the raw query into an IntentResult. A transport
// failure returns an error (the router substitutes the default result); an
// unparseable completion is recovered as Unknown with the raw text preserved.
func (c *Client) ClassifyIntent(ctx context.Context, query string) (domain.IntentResult, error) {
	raw, err := c.complete(ctx, "classify_intent", intentPrompt(query))
	if err != nil {
		return domain.IntentResult{}, fmt.Errorf("%w: %w", domain.ErrClassificationFailed, err)
	}
	return parseIntentResult(raw), nil
}

// ClassifySafety asks the model to label the query safe or unsafe.
func (c *Client) ClassifySafety(ctx context.Context, query string) (bool, error) {
	label, err := c.complete(ctx, "classify_safety", safetyPrompt(query))
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrClassificationFailed, err)
	}
	return strings.Contains(strings.ToLower(strings.TrimSpace(label)), "unsafe"), nil
}

// complete sends one chat completion request with transport-level metrics.
func (c *Client) complete(ctx context.Context, operation, prompt string) (string, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})

	duration := time.Since(start)

	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues(c.model, operation, "error").Inc()
		metrics.GenerationErrorsTotal.WithLabelValues(c.model, operation, "api_error").Inc()
		return "", parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.GenerationRequestsTotal.WithLabelValues(c.model, operation, "error").Inc()
		metrics.GenerationErrorsTotal.WithLabelValues(c.model, operation, "empty_response").Inc()
		return "", fmt.Errorf("empty completion response: %w", domain.ErrGenerationFailed)
	}

	metrics.GenerationRequestsTotal.WithLabelValues(c.model, operation, "success").Inc()
	metrics.GenerationRequestDuration.WithLabelValues(c.model, operation).Observe(duration.Seconds())

	if resp.Usage.TotalTokens > 0 {
		metrics.GenerationTokensTotal.WithLabelValues(c.model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.GenerationTokensTotal.WithLabelValues(c.model, "total").Add(float64(resp.Usage.TotalTokens))
	}

	return resp.Choices[0].Message.Content, nil
}

// intentWire mirrors the JSON shape the classifier is prompted to return.
type intentWire struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Parameters struct {
		domain.FilterSet
		PhoneNames []string `json:"phone_names"`
		Concept    *string  `json:"concept"`
	} `json:"parameters"`
	QueryType string `json:"query_type"`
}

// parseIntentResult decodes the classifier completion. Malformed output is
// not an error: it degrades to Unknown with the raw text preserved.
func parseIntentResult(raw string) domain.IntentResult {
	cleaned := stripFences(raw)

	var wire intentWire
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return domain.IntentResult{
			Intent:  domain.Unknown,
			RawText: raw,
		}
	}

	result := domain.IntentResult{
		Intent:     domain.ParseIntent(wire.Intent),
		Confidence: wire.Confidence,
		Filters:    wire.Parameters.FilterSet,
		PhoneNames: wire.Parameters.PhoneNames,
		QueryType:  domain.Semantic,
	}
	if wire.Parameters.Concept != nil {
		result.Concept = *wire.Parameters.Concept
	}
	if domain.QueryType(wire.QueryType) == domain.Structured {
		result.QueryType = domain.Structured
	}
	return result
}

// stripFences removes a ```json ... ``` wrapper some models add around JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(s, "```json"); ok {
		s = after
	} else if after, ok := strings.CutPrefix(s, "```"); ok {
		s = after
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseAPIError extracts a human-readable error from the API response.
// All errors wrap domain.ErrGenerationFailed for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrGenerationFailed

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("completion request failed: %w", wrap)
}
