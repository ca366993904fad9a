package writer

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

//counterfeiter:generate . GenAIModels
type GenAIModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// A GenAIWriter drafts posts with the native Gemini API.
type GenAIWriter struct {
	logger  *slog.Logger
	persona string
	model   string
	models  GenAIModels
}

// NewGenAIWriter creates a GenAIWriter for the named model.
// In production models is the Models service of a *genai.Client.
func NewGenAIWriter(logger *slog.Logger, persona, model string, models GenAIModels) *GenAIWriter {
	return &GenAIWriter{logger: logger, persona: persona, model: model, models: models}
}

// NewGenAIClient connects to the Gemini API with key.
func NewGenAIClient(ctx context.Context, key string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  key,
	})
}

// Generate sends the topic under the persona system instruction and returns
// the concatenated text of the response.
func (g *GenAIWriter) Generate(ctx context.Context, topic string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: g.persona}},
		},
	}

	g.logger.Info("generating post", "topic", topic, "model", g.model)
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(topic), config)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", nil
	}
	return resp.Text(), nil
}
