// Package writer drafts WhatsApp broadcast posts with a LLM.
package writer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Persona is the system instruction that keeps generated posts safe to
// render in WhatsApp.
const Persona = "You are a professional copywriter creating WhatsApp broadcast messages. " +
	"Do not add *asterisks for headings, use # for headings. " +
	"Use *asterisks* ONLY for bolding full keywords or small phrases (not full paragraphs). " +
	"Do not mix bold and normal words in a way that breaks formatting. " +
	"Avoid using partial bold within sentences that could break markdown rendering in WhatsApp. " +
	"Avoid markdown other than asterisks. Do not use emojis, hashtags, or markdown titles."

//counterfeiter:generate . Model
type Model interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// A LLMWriter drafts posts with a langchaingo model.
type LLMWriter struct {
	logger  *slog.Logger
	persona string
	model   Model
	options []llms.CallOption
}

// NewLLMWriter creates a LLMWriter.
// The persona is set as the LLM system prompt. Any options are passed on every
// call to the model.
func NewLLMWriter(logger *slog.Logger, persona string, m Model, options ...llms.CallOption) *LLMWriter {
	return &LLMWriter{logger: logger, persona: persona, model: m, options: options}
}

// Generate sends the topic to the model as the only user message and returns
// the text of the first choice. It returns an empty string if the model
// produced no choices.
func (w *LLMWriter) Generate(ctx context.Context, topic string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(w.persona),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(topic),
			},
		},
	}

	w.logger.Info("generating post", "topic", topic)
	r, err := w.model.GenerateContent(ctx, messages, w.options...)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	if r == nil || len(r.Choices) == 0 {
		return "", nil
	}

	c := r.Choices[0]
	w.logger.Debug("AI says", "content", c.Content, "stop_reason", c.StopReason)
	return c.Content, nil
}
