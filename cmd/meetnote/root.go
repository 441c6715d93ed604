package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/bootstrap"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-notes/pkg/logger"
)

// Deps holds what the commands need from the outside world.
type Deps struct {
	LoadConfig func() (*config.Config, error)
	NewLogger  func() (*zap.Logger, error)
	NewService func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (meeting.Service, io.Closer, error)
	Stdin      io.Reader
	Now        func() time.Time
}

// DefaultDeps returns the production wiring.
func DefaultDeps() *Deps {
	return &Deps{
		LoadConfig: config.Load,
		NewLogger:  pkglogger.NewQuiet,
		NewService: func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (meeting.Service, io.Closer, error) {
			p, err := bootstrap.NewPipeline(ctx, cfg, logger)
			if err != nil {
				return nil, nil, err
			}
			return p.Service, p, nil
		},
		Stdin: os.Stdin,
		Now:   time.Now,
	}
}

// NewRootCommand creates the meetnote command tree.
func NewRootCommand(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}

	cmd := &cobra.Command{
		Use:   "meetnote",
		Short: "Turn meeting transcripts into Notion meeting notes",
		Long: `meetnote sends a meeting transcript to the configured language model,
parses the structured notes it returns and files them as a Notion page.

Configuration is read from .env and the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newProcessCommand(deps))
	cmd.AddCommand(newStatusCommand(deps))

	return cmd
}
