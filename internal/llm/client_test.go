// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vexlabs/vex-tui/internal/model"
)

func testClient(url string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:           url,
		APIKey:            "test-key",
		Model:             "test-model",
		RequestsPerMinute: 6000,
	})
}

func TestCompleteSuccess(t *testing.T) {
	var gotReq completionRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatal(err)
		}
		fmt.Fprint(w, `{"choices": [{"message": {"role": "assistant", "content": "Hi there!"}}]}`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	reply, err := c.Complete(context.Background(), []ChatMessage{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: "Hello"},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "Hi there!" {
		t.Errorf("reply = %q", reply)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.Temperature != 0.7 {
		t.Errorf("temperature = %v, want default 0.7", gotReq.Temperature)
	}
	if gotReq.MaxTokens != 4096 {
		t.Errorf("max_tokens = %d, want default 4096", gotReq.MaxTokens)
	}
}

func TestCompleteAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), []ChatMessage{{Role: "user", Content: "x"}})
	if !errors.Is(err, ErrAuth) {
		t.Errorf("err = %v, want ErrAuth", err)
	}
	var ce *ClientError
	if !errors.As(err, &ce) {
		t.Fatal("expected *ClientError")
	}
	if ce.Cause == nil || ce.Cause.Error() != "Incorrect API key provided" {
		t.Errorf("API message not propagated: %v", ce.Cause)
	}
}

func TestCompleteRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), []ChatMessage{{Role: "user", Content: "x"}})
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}
}

func TestCompleteServerErrorNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), []ChatMessage{{Role: "user", Content: "x"}})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrTypeServer {
		t.Errorf("err = %v, want server error type", err)
	}
	if calls != 1 {
		t.Errorf("server called %d times, want exactly 1 (no retries)", calls)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), []ChatMessage{{Role: "user", Content: "x"}})
	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrTypeInvalidResponse {
		t.Errorf("err = %v, want invalid response type", err)
	}
}

func TestCompleteUnreachable(t *testing.T) {
	// Reserve a port and close it so nothing is listening.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := testClient(url).Complete(context.Background(), []ChatMessage{{Role: "user", Content: "x"}})
	var ce *ClientError
	if !errors.As(err, &ce) || ce.Type != ErrTypeConnection {
		t.Errorf("err = %v, want connection error type", err)
	}
}

func TestCompleteNoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"choices": [{"message": {"content": "ok"}}]}`)
	}))
	defer srv.Close()

	c := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL, RequestsPerMinute: 6000})
	if _, err := c.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "x"}}); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Errorf("unexpected auth header %q for keyless endpoint", gotAuth)
	}
}

func TestBuildMessagesRecencyWindow(t *testing.T) {
	var transcript []model.Message
	for i := 0; i < 15; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		transcript = append(transcript, model.Message{Role: role, Content: fmt.Sprintf("turn %d", i)})
	}

	msgs := BuildMessages(transcript)
	if len(msgs) != RecencyWindow+1 {
		t.Fatalf("got %d messages, want %d", len(msgs), RecencyWindow+1)
	}
	if msgs[0].Role != "system" || msgs[0].Content != SystemPrompt {
		t.Error("first message must be the system prompt")
	}
	if msgs[1].Content != "turn 5" {
		t.Errorf("window starts at %q, want turn 5", msgs[1].Content)
	}
	if msgs[len(msgs)-1].Content != "turn 14" {
		t.Errorf("window ends at %q, want turn 14", msgs[len(msgs)-1].Content)
	}
}

func TestBuildMessagesShortTranscript(t *testing.T) {
	msgs := BuildMessages([]model.Message{
		{Role: model.RoleUser, Content: "only one"},
	})
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[1].Role != "user" || msgs[1].Content != "only one" {
		t.Errorf("transcript turn mangled: %+v", msgs[1])
	}
}

func TestDefaultsFilled(t *testing.T) {
	c := NewClientWithConfig(&ClientConfig{})
	if c.config.Model != "gpt-4o-mini" {
		t.Errorf("model default = %q", c.config.Model)
	}
	if c.config.Temperature != 0.7 {
		t.Errorf("temperature default = %v", c.config.Temperature)
	}
	if c.config.MaxTokens != 4096 {
		t.Errorf("maxTokens default = %d", c.config.MaxTokens)
	}
	if c.config.BaseURL == "" {
		t.Error("base url default missing")
	}
}
