package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

func newStatusCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Provider: %s\n", cfg.Extractor.Provider)

			secrets := cfg.Secrets()
			keys := make([]string, 0, len(secrets))
			for k := range secrets {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			for _, k := range keys {
				v := config.Mask(secrets[k])
				if v == "" {
					v = "(not set)"
				}
				fmt.Fprintf(out, "%-20s %s\n", k, v)
			}

			var cfgErr *config.ConfigError
			if err := cfg.Validate(); errors.As(err, &cfgErr) {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Missing:")
				for _, m := range cfgErr.Missing {
					fmt.Fprintf(out, "  - %s\n", m)
				}
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Ready.")
			return nil
		},
	}
}
