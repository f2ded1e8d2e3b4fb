package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/legendcard/internal/card"
	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/editor"
	"github.com/alexisbeaulieu97/legendcard/internal/tui"
	"github.com/alexisbeaulieu97/legendcard/pkg/diff"
)

type editOptions struct {
	sessionOptions
	outputPath string
	dryRun     bool
}

var errNotInteractive = errors.New("standard input is not a terminal")

// editProgramRunner runs the interactive editor and returns its final model.
var editProgramRunner = runEditorProgram

func newEditCmd(root *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a card configuration interactively",
		Long: "Open the card editor. A missing configuration file starts from the stub\n" +
			"configuration. On save the changes are printed as a unified diff and written\n" +
			"to --output, or back to --config when no output is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to card configuration (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.statesPath, "states", "s", "", "Path to a JSON snapshot of entity states for the preview")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the edited configuration here instead of --config")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the diff without writing any file")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runEdit(cmd *cobra.Command, root *rootFlags, opts *editOptions) error {
	log, err := root.logger(cmd.ErrOrStderr())
	if err != nil {
		return newCommandError("edit", "configuring logging", err, "Use one of: trace, debug, info, warn, error.")
	}
	log = log.WithFields(map[string]any{"command": "edit"})

	raw, err := loadOrStub(opts.configPath)
	if err != nil {
		return configCommandError("edit", err)
	}
	ed := editor.New(config.Decode(raw))

	before, err := config.EncodeYAML(ed.Config())
	if err != nil {
		return newCommandError("edit", "encoding the original configuration", err, "Report this as a bug.")
	}

	ed.OnChange(func(cfg config.CardConfig) {
		log.Debug("configuration changed", "entity", cfg.Entity, "legend_items", len(cfg.LegendItems))
	})

	model := tui.NewModel(ed)
	if opts.statesPath != "" {
		snapshot, err := loadSnapshot(opts.statesPath, log)
		if err != nil {
			return newCommandError("edit", "loading states", err, "Omit --states to edit without a live preview.")
		}
		model = model.WithStates(snapshot)
	}

	final, err := editProgramRunner(cmd, model)
	if err != nil {
		if errors.Is(err, errNotInteractive) {
			return newCommandError("edit", "starting the editor", err, "Run edit from an interactive terminal.")
		}
		return newCommandError("edit", "running the editor", err, "Try again; your file was not changed.")
	}

	out := cmd.OutOrStdout()
	if !final.Saved() {
		fmt.Fprintln(out, "edit cancelled, nothing written")
		return nil
	}

	edited := final.Config()
	after, err := config.EncodeYAML(edited)
	if err != nil {
		return newCommandError("edit", "encoding the edited configuration", err, "Report this as a bug.")
	}

	target := opts.outputPath
	if target == "" {
		target = opts.configPath
	}

	changes := diff.GenerateUnifiedDiff(before, after, opts.configPath, target)
	if changes == "" {
		fmt.Fprintln(out, "no changes")
	} else {
		fmt.Fprint(out, changes)
	}

	if _, err := config.Normalize(edited.Map()); err != nil {
		fmt.Fprintf(out, "warning: %v\n", err)
	} else {
		for _, finding := range config.Lint(&edited) {
			fmt.Fprintf(out, "warning: %v\n", finding)
		}
	}

	if opts.dryRun {
		return nil
	}
	if _, statErr := os.Stat(target); changes == "" && statErr == nil && target == opts.configPath {
		return nil
	}
	if err := os.WriteFile(target, after, 0o644); err != nil {
		return newCommandError("edit", "writing "+target, err, "Check the file permissions.")
	}
	log.Info("configuration written", "path", target)
	return nil
}

// loadOrStub reads path, or returns the stub configuration when it does not exist.
func loadOrStub(path string) (map[string]any, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return card.StubConfig(), nil
	}
	return config.LoadRaw(path)
}

func runEditorProgram(cmd *cobra.Command, model tui.Model) (tui.Model, error) {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return model, errNotInteractive
	}

	result, err := tea.NewProgram(model,
		tea.WithInput(in),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return model, err
	}
	return result.(tui.Model), nil
}
