package ai

import (
	"context"
	"log/slog"

	"launchpad/config"
	"launchpad/internal/domain/service"

	"go.uber.org/fx"
)

// NewAIService returns the Ollama backed assistant, or one that always
// reports unavailable when ai.enabled is false.
func NewAIService(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.AIService, error) {
	if cfg.AI == nil || !cfg.AI.Enabled {
		logger.Info("AI assistant disabled")

		return NewUnavailableService(), nil
	}

	client, err := NewClient(*cfg.AI, nil, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewOllamaService(client, logger), nil
}
