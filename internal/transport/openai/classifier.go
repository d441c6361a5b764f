// Package openai implements the LLM paper classifier used by the
// catalog build pipeline (cmd/prepare).
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
)

// ErrClassifier marks any failure of the classification provider, so
// callers can detect and skip classification without aborting the
// pipeline.
var ErrClassifier = errors.New("classifier provider error")

// Classification is the category assignment for one paper title.
type Classification struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// Classifier assigns category/subcategory to paper titles using an
// OpenAI-compatible chat completion API.
type Classifier struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the classification provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewClassifier creates an OpenAI-compatible classifier.
func NewClassifier(cfg *Config) *Classifier {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

const systemPrompt = `You classify academic benchmark/dataset papers.
For each title, assign a short category (the research task family, e.g.
"Reasoning", "Code Generation", "Object Detection") and a more specific
subcategory. Respond with a JSON array, one object per title, in input
order, each object of the form {"category": "...", "subcategory": "..."}.
Respond with the JSON array only.`

// Classify assigns a category and subcategory to every title, in input
// order. The domain (e.g. "NLP") is given as context. A response whose
// length does not match the input is an error.
func (c *Classifier) Classify(ctx context.Context, domain string, titles []string) ([]Classification, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Research domain: %s\nTitles:\n", domain)
	for i, t := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: b.String()},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response: %w", ErrClassifier)
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)
	var out []Classification
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("parse classification response: %v: %w", err, ErrClassifier)
	}
	if len(out) != len(titles) {
		return nil, fmt.Errorf("classification count mismatch: got %d for %d titles: %w",
			len(out), len(titles), ErrClassifier)
	}

	c.logger.Debug("classified batch",
		zap.String("domain", domain),
		zap.Int("titles", len(titles)),
		zap.Duration("latency", time.Since(start)),
	)
	return out, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models add
// around JSON output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with ErrClassifier.
func parseAPIError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("classification API error %d: %w", reqErr.HTTPStatusCode, ErrClassifier)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("classification API error: %s: %w", apiErr.Message, ErrClassifier)
	}
	return fmt.Errorf("classification request: %v: %w", err, ErrClassifier)
}
