package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/legendcard/internal/card"
)

type tapOptions struct {
	sessionOptions
	icon bool
}

func newTapCmd(root *rootFlags) *cobra.Command {
	opts := &tapOptions{}

	cmd := &cobra.Command{
		Use:   "tap",
		Short: "Simulate a tap on the card and print the resulting host effects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTap(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to card configuration (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.statesPath, "states", "s", "", "Path to a JSON snapshot of entity states")
	cmd.Flags().BoolVar(&opts.icon, "icon", false, "Tap the icon instead of the card body")
	cmd.MarkFlagRequired("config") //nolint:errcheck
	cmd.MarkFlagRequired("states") //nolint:errcheck

	return cmd
}

func runTap(cmd *cobra.Command, root *rootFlags, opts *tapOptions) error {
	s, err := openSession(cmd, root, "tap", opts.sessionOptions)
	if err != nil {
		return err
	}

	target := card.TargetBody
	if opts.icon {
		target = card.TargetIcon
	}

	ctx := context.Background()
	outcome, err := s.card.Tap(ctx, target)
	if err != nil {
		return newCommandError("tap", fmt.Sprintf("performing the %s action", target), err, "Check the action configuration with 'legendcard validate'.")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tap %s: %s\n", target, outcome)
	if s.host != nil {
		for _, effect := range s.host.Effects() {
			fmt.Fprintf(out, "  %s\n", effect)
		}
	}

	vm, err := s.card.View(ctx)
	if err != nil {
		return newCommandError("tap", "building the view", err, "Check the configuration with 'legendcard validate'.")
	}
	fmt.Fprintf(out, "state: %s\n", vm.DisplayText)
	return nil
}
