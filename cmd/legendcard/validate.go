package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := &sessionOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a card configuration",
		Long: "Normalize the configuration the way the card does and report lint findings.\n" +
			"Only a missing entity or unreadable file fails; findings are warnings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to card configuration (YAML or JSON)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runValidate(cmd *cobra.Command, root *rootFlags, opts *sessionOptions) error {
	s, err := openSession(cmd, root, "validate", *opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, finding := range s.lints {
		fmt.Fprintf(out, "warning: %v\n", finding)
	}

	cfg := s.card.Config()
	if len(s.lints) == 0 {
		fmt.Fprintf(out, "✓ %s is valid (%d legend items)\n", cfg.Entity, len(cfg.LegendItems))
		return nil
	}
	fmt.Fprintf(out, "%s renders with %d warning(s)\n", cfg.Entity, len(s.lints))
	return nil
}
