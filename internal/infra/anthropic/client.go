// Package anthropic is a minimal client for the Anthropic Messages API:
// one non-streaming completion per call, bearer-style key auth, no retries.
package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meddoc-validate/internal/domain"

	"github.com/go-resty/resty/v2"
)

const (
	apiVersion        = "2023-06-01"
	maxTokens         = 8000
	defaultTimeoutSec = 120
)

// Client calls the Anthropic Messages API
type Client struct {
	http   *resty.Client
	model  string
	logger domain.Logger
}

// NewClient creates a new Anthropic client for a fixed model identifier
func NewClient(baseURL, apiKey, model string, timeoutSeconds int, logger domain.Logger) *Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultTimeoutSec
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(time.Duration(timeoutSeconds)*time.Second).
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   http,
		model:  model,
		logger: logger,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one prompt as a single user message and returns the model's
// text response. Temperature is pinned to 0 so compliance analysis stays
// deterministic.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body := messagesRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: 0,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	var result messagesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post("/v1/messages")
	if err != nil {
		return "", fmt.Errorf("messages request failed: %w", err)
	}

	if resp.IsError() {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("messages API returned %d: %s", resp.StatusCode(), result.Error.Message)
		}
		return "", fmt.Errorf("messages API returned status %d", resp.StatusCode())
	}

	var sb strings.Builder
	for _, block := range result.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := sb.String()
	if text == "" {
		return "", domain.ErrEmptyCompletion
	}

	c.logger.Debug("Completion received", "model", c.model, "response_chars", len(text))
	return text, nil
}
