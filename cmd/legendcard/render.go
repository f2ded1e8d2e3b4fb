package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/legendcard/internal/render"
)

const maxPreviewWidth = 60

type renderOptions struct {
	sessionOptions
	jsonOutput bool
	legend     bool
	width      int
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the card for a snapshot of entity states",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to card configuration (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.statesPath, "states", "s", "", "Path to a JSON snapshot of entity states")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the view model as JSON")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "Also render the legend tooltip")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Card width in columns (defaults to the terminal width)")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions) error {
	s, err := openSession(cmd, root, "render", opts.sessionOptions)
	if err != nil {
		return err
	}

	vm, err := s.card.View(context.Background())
	if err != nil {
		return newCommandError("render", "building the view", err, "Check the configuration with 'legendcard validate'.")
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(vm)
	}

	r := render.New()
	if width := previewWidth(cmd, opts.width); width > 0 {
		r = r.WithWidth(width)
	}

	out := r.Card(vm)
	if opts.legend {
		out = r.Full(vm)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// previewWidth returns the requested width, or the terminal width capped at
// maxPreviewWidth when writing to a terminal. Zero sizes the card to content.
func previewWidth(cmd *cobra.Command, requested int) int {
	if requested > 0 {
		return requested
	}
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return min(width, maxPreviewWidth)
}
