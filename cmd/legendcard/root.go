package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/legendcard/internal/logger"
)

type rootFlags struct {
	logLevel string
	logJSON  bool
}

// logger builds the command logger writing to the command's error stream.
func (f *rootFlags) logger(w io.Writer) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         f.logLevel,
		HumanReadable: !f.logJSON,
		Writer:        w,
	})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "legendcard",
		Short:         "Preview, check and edit sensor legend card configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON instead of console text")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newTapCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newStubCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
