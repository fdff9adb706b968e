package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devdigger/digkit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIProvider_Defaults(t *testing.T) {
	p := NewOpenAIProvider("test-api-key")

	assert.Equal(t, config.DefaultChatModel, p.model)
	assert.Equal(t, 3, p.maxRetries)
	assert.Equal(t, 2*time.Second, p.initialDelay)
	assert.Equal(t, 2.0, p.backoffFactor)
}

func TestNewOpenAIProvider_WithOptions(t *testing.T) {
	p := NewOpenAIProvider("test-api-key",
		WithModel("gpt-4-turbo"),
		WithMaxRetries(1),
		WithInitialDelay(10*time.Millisecond),
		WithBackoffFactor(1.5),
	)

	assert.Equal(t, "gpt-4-turbo", p.model)
	assert.Equal(t, 1, p.maxRetries)
	assert.Equal(t, 10*time.Millisecond, p.initialDelay)
	assert.Equal(t, 1.5, p.backoffFactor)
}

func TestNewOpenAIProviderFromEndpoint_Unconfigured(t *testing.T) {
	_, err := NewOpenAIProviderFromEndpoint(config.Endpoint{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

// fakeEndpoint serves a minimal OpenAI-compatible chat completion API.
func fakeEndpoint(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func chatCompletionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]int{"prompt_tokens": 12, "completion_tokens": 7, "total_tokens": 19},
	})
	return string(body)
}

func providerFor(t *testing.T, baseURL string) *OpenAIProvider {
	t.Helper()
	p, err := NewOpenAIProviderFromEndpoint(config.NewEndpoint(
		config.WithAPIKey("test-api-key"),
		config.WithBaseURL(baseURL),
		config.WithMaxRetries(2),
	))
	require.NoError(t, err)
	p.initialDelay = time.Millisecond
	return p
}

func TestOpenAIProvider_ChatCompletion(t *testing.T) {
	server := fakeEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionBody("Go uses goroutines for concurrency.")))
	})

	p := providerFor(t, server.URL)
	resp, err := p.ChatCompletion(context.Background(), NewChatRequest([]Message{
		NewMessage(RoleSystem, "You answer from documentation."),
		NewMessage(RoleUser, "How does Go do concurrency?"),
	}))
	require.NoError(t, err)

	assert.Equal(t, "Go uses goroutines for concurrency.", resp.Content())
	assert.Equal(t, "stop", resp.FinishReason())
	assert.Equal(t, 19, resp.Usage().TotalTokens())
}

func TestOpenAIProvider_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := fakeEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionBody("recovered")))
	})

	p := providerFor(t, server.URL)
	resp, err := p.ChatCompletion(context.Background(), NewChatRequest([]Message{
		NewMessage(RoleUser, "hello"),
	}))
	require.NoError(t, err)

	assert.Equal(t, "recovered", resp.Content())
	assert.EqualValues(t, 2, calls.Load())
}

func TestOpenAIProvider_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := fakeEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	})

	p := providerFor(t, server.URL)
	_, err := p.ChatCompletion(context.Background(), NewChatRequest([]Message{
		NewMessage(RoleUser, "hello"),
	}))
	require.Error(t, err)

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode())
	assert.EqualValues(t, 1, calls.Load())
}

func TestOpenAIProvider_InterfaceCompliance(t *testing.T) {
	var _ ChatProvider = (*OpenAIProvider)(nil)
}
