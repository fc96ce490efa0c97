// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package llm provides the HTTP client for the remote chat completion API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the completion client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches client errors by type so sentinel comparisons work through
// wrapped errors.
func (e *ClientError) Is(target error) bool {
	var ce *ClientError
	if errors.As(target, &ce) {
		return e.Type == ce.Type
	}
	return false
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeAuth
	ErrTypeRateLimited
	ErrTypeBadRequest
	ErrTypeServer
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "completion API is unreachable"}
	ErrAuth        = &ClientError{Type: ErrTypeAuth, Message: "API key rejected"}
	ErrRateLimited = &ClientError{Type: ErrTypeRateLimited, Message: "rate limited by the API"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the completion client.
type ClientConfig struct {
	// BaseURL of an OpenAI-compatible API (default: https://api.openai.com)
	BaseURL string

	// APIKey sent as a bearer token. May be empty for local endpoints.
	APIKey string

	// Model to request completions from (default: "gpt-4o-mini")
	Model string

	// Temperature for sampling (default: 0.7)
	Temperature float64

	// MaxTokens caps the reply length (default: 4096)
	MaxTokens int

	// Timeout for a completion request (default: 60s)
	Timeout time.Duration

	// RequestsPerMinute throttles outgoing calls client-side (default: 20)
	RequestsPerMinute int
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           "https://api.openai.com",
		Model:             "gpt-4o-mini",
		Temperature:       0.7,
		MaxTokens:         4096,
		Timeout:           60 * time.Second,
		RequestsPerMinute: 20,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to an OpenAI-compatible /v1/chat/completions endpoint.
//
// Requests are not retried: a failed generation surfaces to the caller,
// who decides whether to resend.
//
// The Client is thread-safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a completion client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a completion client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "https://api.openai.com"
	}
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}
	if config.Temperature == 0 {
		config.Temperature = 0.7
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 4096
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.RequestsPerMinute == 0 {
		config.RequestsPerMinute = 20
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(config.RequestsPerMinute)/60.0), 2),
	}
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatMessage is one turn in the completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// =============================================================================
// COMPLETION
// =============================================================================

// Complete sends the message list to the completion endpoint and returns
// the assistant's reply content.
func (c *Client) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", &ClientError{Type: ErrTypeTimeout, Message: "canceled while rate limited", Cause: err}
	}

	reqBody := completionRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeConnection, Message: "completion API is unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.statusError(resp)
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	if len(result.Choices) == 0 {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "response contained no choices"}
	}

	return result.Choices[0].Message.Content, nil
}

// statusError maps a non-200 response to a typed error, folding in the
// API's own error message when the body carries one.
func (c *Client) statusError(resp *http.Response) error {
	apiMsg := ""
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		var body completionResponse
		if json.Unmarshal(data, &body) == nil && body.Error != nil {
			apiMsg = body.Error.Message
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ClientError{Type: ErrTypeAuth, Message: "API key rejected", Cause: wrapAPIMsg(apiMsg)}
	case http.StatusTooManyRequests:
		return &ClientError{Type: ErrTypeRateLimited, Message: "rate limited by the API", Cause: wrapAPIMsg(apiMsg)}
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return &ClientError{Type: ErrTypeBadRequest, Message: "API rejected the request: " + resp.Status, Cause: wrapAPIMsg(apiMsg)}
	default:
		if resp.StatusCode >= 500 {
			return &ClientError{Type: ErrTypeServer, Message: "API server error: " + resp.Status, Cause: wrapAPIMsg(apiMsg)}
		}
		return &ClientError{Type: ErrTypeUnknown, Message: "unexpected status: " + resp.Status, Cause: wrapAPIMsg(apiMsg)}
	}
}

func wrapAPIMsg(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}
