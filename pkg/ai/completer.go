package ai

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// ErrEmptyCompletion is returned when the provider answered without any text
var ErrEmptyCompletion = errors.New("completion response has no text")

// Completer sends a single user prompt and returns the first completion text
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewCompleter builds the client for the configured provider. The provider's
// credential must be present; this is checked before any client is created.
func NewCompleter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Completer, error) {
	if err := cfg.ValidateExtractor(); err != nil {
		return nil, err
	}

	switch cfg.Extractor.Provider {
	case config.ProviderAnthropic:
		return NewAnthropicClient(&cfg.Anthropic, cfg.Extractor.MaxTokens, cfg.Extractor.Timeout), nil
	case config.ProviderGroq:
		return NewGroqClient(&cfg.Groq, cfg.Extractor.MaxTokens, cfg.Extractor.Timeout), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, &cfg.Gemini, cfg.Extractor.MaxTokens)
	}

	if logger != nil {
		logger.Error("unknown completion provider", zap.String("provider", cfg.Extractor.Provider))
	}
	return nil, fmt.Errorf("unknown completion provider %q", cfg.Extractor.Provider)
}
