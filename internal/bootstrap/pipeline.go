package bootstrap

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/infrastructure/notion"
	slacknotify "github.com/johnquangdev/meeting-notes/internal/infrastructure/slack"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Pipeline is the wired meeting notes service plus the sinks it writes to
type Pipeline struct {
	Service  meeting.Service
	Writer   *notion.Writer
	Notifier *slacknotify.Notifier

	completer ai.Completer
}

// NewPipeline builds every stage from configuration. It fails with a
// *config.ConfigError when the extractor credential is missing; the
// Notion and Slack settings are checked when those stages run.
func NewPipeline(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Pipeline, error) {
	completer, err := ai.NewCompleter(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	writer := notion.NewWriter(&cfg.Notion, nil, logger)
	notifier := slacknotify.NewNotifier(cfg.Slack.WebhookURL, writer.PageURL, logger)

	return &Pipeline{
		Service:   meeting.NewService(meeting.NewExtractor(completer, logger), writer, notifier, logger),
		Writer:    writer,
		Notifier:  notifier,
		completer: completer,
	}, nil
}

// Close releases provider connections
func (p *Pipeline) Close() error {
	if closer, ok := p.completer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
