package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/legendcard/internal/card"
	"github.com/alexisbeaulieu97/legendcard/internal/config"
)

func newStubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Print the configuration a new card starts from",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Normalize(card.StubConfig())
			if err != nil {
				return err
			}
			data, err := config.EncodeYAML(*cfg)
			if err != nil {
				return newCommandError("stub", "encoding configuration", err, "Report this as a bug.")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	return cmd
}
