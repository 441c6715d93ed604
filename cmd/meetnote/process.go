package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/pkg/runcontext"
)

type processOptions struct {
	output string
	dryRun bool
	notify bool
}

func newProcessCommand(deps *Deps) *cobra.Command {
	opts := &processOptions{}

	cmd := &cobra.Command{
		Use:   "process [file]",
		Short: "Extract meeting notes from a transcript",
		Long: `Extract meeting notes from a transcript file, or from stdin when no file
is given, and file them in the configured Notion database.

Examples:
  # File notes for a transcript
  meetnote process meeting.txt

  # Preview the extracted notes without writing anything
  meetnote process meeting.txt --dry-run -o json

  # Read from stdin and skip the Slack message
  cat meeting.txt | meetnote process --notify=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notifySet := cmd.Flags().Changed("notify")
			return runProcess(cmd, deps, opts, args, notifySet)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", formatText, "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Extract and parse only; do not write to Notion")
	cmd.Flags().BoolVar(&opts.notify, "notify", false, "Post a Slack summary (default: on when SLACK_WEBHOOK_URL is set)")

	return cmd
}

func runProcess(cmd *cobra.Command, deps *Deps, opts *processOptions, args []string, notifySet bool) error {
	if !validFormat(opts.output) {
		return fmt.Errorf("invalid output format: %s", opts.output)
	}

	transcript, err := readTranscript(deps.Stdin, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(transcript) == "" {
		return usecaseErrors.ErrEmptyTranscript
	}

	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if !opts.dryRun {
		if err := cfg.ValidateNotion(); err != nil {
			return err
		}
	}

	logger, err := deps.NewLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	svc, closer, err := deps.NewService(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	notify := cfg.Slack.WebhookURL != ""
	if notifySet {
		notify = opts.notify
	}

	ctx := runcontext.RunBegin(cmd.Context(), uuid.NewString(), runcontext.SourceCLI)
	result, err := svc.Process(ctx, transcript, meeting.Options{
		SkipWrite: opts.dryRun,
		Notify:    notify,
	})

	var parseErr *meeting.ParseError
	switch {
	case errors.As(err, &parseErr):
		fmt.Fprintln(cmd.ErrOrStderr(), "Model output could not be parsed; raw text follows:")
		fmt.Fprintln(cmd.ErrOrStderr(), parseErr.Raw)
		return err
	case errors.Is(err, usecaseErrors.ErrWriteFailed):
		fmt.Fprintln(cmd.ErrOrStderr(), "Notion write failed; extracted notes follow:")
		if renderErr := render(cmd.OutOrStdout(), opts.output, presenter.ToNotesResponse(result, deps.Now())); renderErr != nil {
			return renderErr
		}
		return err
	case err != nil:
		return err
	}

	return render(cmd.OutOrStdout(), opts.output, presenter.ToNotesResponse(result, deps.Now()))
}

func readTranscript(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading transcript: %w", err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading transcript from stdin: %w", err)
	}
	return string(b), nil
}
