package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/devdigger/digkit/application/service"
	"github.com/devdigger/digkit/infrastructure/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChat records the request and replies with a canned answer.
type stubChat struct {
	lastRequest provider.ChatRequest
	reply       string
	err         error
}

func (s *stubChat) ChatCompletion(_ context.Context, req provider.ChatRequest) (provider.ChatResponse, error) {
	s.lastRequest = req
	if s.err != nil {
		return provider.ChatResponse{}, s.err
	}
	return provider.NewChatResponse(s.reply, "stop", provider.NewUsage(10, 5, 15)), nil
}

func (s *stubChat) Close() error { return nil }

func TestAssistant_Ask(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	chat := &stubChat{reply: "Goroutines multiplex onto OS threads."}
	assistant := service.NewAssistant(reader, chat, 5, nil)

	answer, err := assistant.Ask(context.Background(), "goroutine")
	require.NoError(t, err)

	assert.Equal(t, "Goroutines multiplex onto OS threads.", answer.Text())
	require.Len(t, answer.Sources(), 1)
	assert.Equal(t, "https://go.dev/doc", answer.Sources()[0].URL())

	messages := chat.lastRequest.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, provider.RoleSystem, messages[0].Role())

	prompt := messages[1].Content()
	assert.True(t, strings.HasPrefix(prompt, "Context:\n"))
	assert.Contains(t, prompt, "Channels connect goroutines")
	assert.Contains(t, prompt, "Question: goroutine")
}

func TestAssistant_Ask_NoContext(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	chat := &stubChat{reply: "unused"}
	assistant := service.NewAssistant(reader, chat, 5, nil)

	_, err := assistant.Ask(context.Background(), "quantum chromodynamics")
	assert.ErrorIs(t, err, service.ErrNoContext)
}

func TestAssistant_Ask_ProviderFailure(t *testing.T) {
	reader, db := newReader(t)
	seedReader(t, db)

	chat := &stubChat{err: provider.NewError("chat_completion", 503, "overloaded", nil)}
	assistant := service.NewAssistant(reader, chat, 5, nil)

	_, err := assistant.Ask(context.Background(), "goroutine")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion")
}
