package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/devdigger/digkit/infrastructure/provider"
)

// ErrNoContext is returned when no document matches the question, so
// there is nothing to ground an answer on.
var ErrNoContext = errors.New("no matching documents for question")

// systemPrompt constrains the model to the retrieved documents.
const systemPrompt = "Answer based on the provided context."

// Answer is a grounded response with the documents it was built from.
type Answer struct {
	text    string
	sources []AnswerSource
}

// Text returns the assistant's reply.
func (a Answer) Text() string { return a.text }

// Sources returns the documents stuffed into the prompt.
func (a Answer) Sources() []AnswerSource { return a.sources }

// AnswerSource identifies one document used as context.
type AnswerSource struct {
	url   string
	title string
}

// URL returns the owning source's URL.
func (s AnswerSource) URL() string { return s.url }

// Title returns the owning source's title.
func (s AnswerSource) Title() string { return s.title }

// Assistant answers questions over the crawled documentation by stuffing
// substring-search results into a chat completion prompt.
type Assistant struct {
	reader Reader
	chat   provider.ChatProvider
	limit  int
	logger *slog.Logger
}

// NewAssistant creates an Assistant. limit caps how many documents are
// retrieved per question; non-positive values fall back to the reader's
// default.
func NewAssistant(reader Reader, chat provider.ChatProvider, limit int, logger *slog.Logger) Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	return Assistant{reader: reader, chat: chat, limit: limit, logger: logger}
}

// Ask retrieves documents matching the question and asks the chat
// endpoint to answer from them.
func (a Assistant) Ask(ctx context.Context, question string) (Answer, error) {
	hits, err := a.reader.Search(ctx, question, a.limit)
	if err != nil {
		return Answer{}, fmt.Errorf("retrieve context: %w", err)
	}
	if len(hits) == 0 {
		return Answer{}, ErrNoContext
	}

	chunks := make([]string, len(hits))
	sources := make([]AnswerSource, len(hits))
	for i, hit := range hits {
		chunks[i] = hit.Document().Content()
		sources[i] = AnswerSource{url: hit.URL(), title: hit.Title()}
	}
	contextBlock := strings.Join(chunks, "\n\n")

	resp, err := a.chat.ChatCompletion(ctx, provider.NewChatRequest([]provider.Message{
		provider.NewMessage(provider.RoleSystem, systemPrompt),
		provider.NewMessage(provider.RoleUser,
			fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextBlock, question)),
	}))
	if err != nil {
		return Answer{}, fmt.Errorf("chat completion: %w", err)
	}

	a.logger.Debug("answered question",
		"question", question,
		"context_documents", len(hits),
		"total_tokens", resp.Usage().TotalTokens(),
	)
	return Answer{text: resp.Content(), sources: sources}, nil
}
