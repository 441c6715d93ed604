package meeting

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/ai"
)

// Extractor turns transcript text into the model's raw answer
type Extractor struct {
	completer ai.Completer
	logger    *zap.Logger
}

// NewExtractor wraps a completion client
func NewExtractor(completer ai.Completer, logger *zap.Logger) *Extractor {
	return &Extractor{completer: completer, logger: logger}
}

// Extract sends one prompt and returns the trimmed completion text. The
// text is expected to be a JSON object but is not checked here.
func (e *Extractor) Extract(ctx context.Context, transcript string) (string, error) {
	if e == nil || e.completer == nil {
		return "", usecaseErrors.ErrExtractorNotSet
	}
	if strings.TrimSpace(transcript) == "" {
		return "", usecaseErrors.ErrEmptyTranscript
	}

	if e.logger != nil {
		e.logger.Info("🤖 Extracting meeting fields",
			zap.Int("transcript_chars", len([]rune(transcript))),
		)
	}

	raw, err := e.completer.Complete(ctx, BuildPrompt(transcript))
	if err != nil {
		if e.logger != nil {
			e.logger.Error("❌ Extraction request failed", zap.Error(err))
		}
		return "", fmt.Errorf("extract meeting fields: %w", err)
	}

	return strings.TrimSpace(raw), nil
}
