package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/acrmp/postbot/broadcast"
	"github.com/acrmp/postbot/config"
	"github.com/acrmp/postbot/whatsapp"
	"github.com/acrmp/postbot/writer"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/openai"
)

func newGenerator(ctx context.Context, logger *slog.Logger, cfg config.Config) (broadcast.Generator, error) {
	var opts []llms.CallOption
	if cfg.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(cfg.Temperature))
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := writer.NewGenAIClient(ctx, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini client: %w", err)
		}
		return writer.NewGenAIWriter(logger, writer.Persona, cfg.Model, client.Models), nil
	case config.ProviderAnthropic:
		m, err := anthropic.New(anthropic.WithToken(cfg.APIKey), anthropic.WithModel(cfg.Model))
		if err != nil {
			return nil, fmt.Errorf("initializing model: %w", err)
		}
		return writer.NewLLMWriter(logger, writer.Persona, m, opts...), nil
	default:
		m, err := openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithBaseURL(cfg.BaseURL),
			openai.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("initializing model: %w", err)
		}
		return writer.NewLLMWriter(logger, writer.Persona, m, opts...), nil
	}
}

func newSender(logger *slog.Logger, cfg config.Config) (broadcast.MessageSender, io.Closer, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	opener := whatsapp.NewBrowserChatOpener(logger, cfg.BrowserDir, cfg.Headless)
	var presser whatsapp.KeyPresser = opener
	if cfg.Keypress == config.KeypressCommand {
		presser = whatsapp.NewCommandKeyPresser(logger, cfg.KeypressCommand)
	}

	s := whatsapp.NewAutomationSender(
		logger,
		whatsapp.NewCronScheduler(logger, loc),
		opener,
		presser,
		cfg.ScheduleLead,
		cfg.LoadWait,
	)
	return s, opener, nil
}
