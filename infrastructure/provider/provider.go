// Package provider implements chat completion against OpenAI-compatible
// endpoints for the ask-with-context flow.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when a chat operation is requested without
// an API key.
var ErrNotConfigured = errors.New("chat endpoint not configured")

// Message roles understood by OpenAI-compatible endpoints.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat message.
type Message struct {
	role    string
	content string
}

// NewMessage creates a Message.
func NewMessage(role, content string) Message {
	return Message{role: role, content: content}
}

// Role returns the message role.
func (m Message) Role() string { return m.role }

// Content returns the message text.
func (m Message) Content() string { return m.content }

// ChatRequest is a chat completion request.
type ChatRequest struct {
	messages    []Message
	maxTokens   int
	temperature float64
}

// NewChatRequest creates a ChatRequest.
func NewChatRequest(messages []Message) ChatRequest {
	return ChatRequest{messages: messages}
}

// WithMaxTokens returns a copy with the token cap set.
func (r ChatRequest) WithMaxTokens(n int) ChatRequest {
	r.maxTokens = n
	return r
}

// WithTemperature returns a copy with the sampling temperature set.
func (r ChatRequest) WithTemperature(t float64) ChatRequest {
	r.temperature = t
	return r
}

// Messages returns the conversation messages.
func (r ChatRequest) Messages() []Message { return r.messages }

// MaxTokens returns the token cap, 0 for the endpoint default.
func (r ChatRequest) MaxTokens() int { return r.maxTokens }

// Temperature returns the sampling temperature, 0 for the endpoint default.
func (r ChatRequest) Temperature() float64 { return r.temperature }

// Usage reports token consumption.
type Usage struct {
	promptTokens     int
	completionTokens int
	totalTokens      int
}

// NewUsage creates a Usage.
func NewUsage(prompt, completion, total int) Usage {
	return Usage{promptTokens: prompt, completionTokens: completion, totalTokens: total}
}

// PromptTokens returns the prompt token count.
func (u Usage) PromptTokens() int { return u.promptTokens }

// CompletionTokens returns the completion token count.
func (u Usage) CompletionTokens() int { return u.completionTokens }

// TotalTokens returns the total token count.
func (u Usage) TotalTokens() int { return u.totalTokens }

// ChatResponse is a chat completion response.
type ChatResponse struct {
	content      string
	finishReason string
	usage        Usage
}

// NewChatResponse creates a ChatResponse.
func NewChatResponse(content, finishReason string, usage Usage) ChatResponse {
	return ChatResponse{content: content, finishReason: finishReason, usage: usage}
}

// Content returns the assistant's reply text.
func (r ChatResponse) Content() string { return r.content }

// FinishReason returns the endpoint's finish reason.
func (r ChatResponse) FinishReason() string { return r.finishReason }

// Usage returns the token usage.
func (r ChatResponse) Usage() Usage { return r.usage }

// ChatProvider generates chat completions.
type ChatProvider interface {
	// ChatCompletion generates a completion for the conversation.
	ChatCompletion(ctx context.Context, req ChatRequest) (ChatResponse, error)

	// Close releases provider resources.
	Close() error
}

// Error wraps an endpoint failure with the operation and HTTP status.
type Error struct {
	operation  string
	statusCode int
	message    string
	cause      error
}

// NewError creates a provider Error.
func NewError(operation string, statusCode int, message string, cause error) *Error {
	return &Error{
		operation:  operation,
		statusCode: statusCode,
		message:    message,
		cause:      cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.statusCode > 0 {
		return fmt.Sprintf("provider %s: status %d: %s", e.operation, e.statusCode, e.message)
	}
	return fmt.Sprintf("provider %s: %s", e.operation, e.message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

// StatusCode returns the HTTP status, 0 when not an HTTP failure.
func (e *Error) StatusCode() int { return e.statusCode }
