package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/tui"
)

// scriptedEditor replaces the interactive program with a fixed key sequence.
func scriptedEditor(t *testing.T, keys ...tea.Msg) {
	t.Helper()
	original := editProgramRunner
	t.Cleanup(func() { editProgramRunner = original })

	editProgramRunner = func(_ *cobra.Command, m tui.Model) (tui.Model, error) {
		for _, k := range keys {
			updated, _ := m.Update(k)
			m = updated.(tui.Model)
		}
		return m, nil
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestEditWritesDiffAndOutput(t *testing.T) {
	scriptedEditor(t,
		tea.KeyMsg{Type: tea.KeyTab},
		runes("Lounge"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	dir := t.TempDir()
	cfg := writeFile(t, dir, "card.yaml", cardYAML)
	out := filepath.Join(dir, "edited.yaml")

	output, _, err := execute(t, "edit", "-c", cfg, "-o", out)
	require.NoError(t, err)
	require.Contains(t, output, "+name: Lounge")
	require.Contains(t, output, "--- "+cfg)
	require.Contains(t, output, "+++ "+out)

	written, err := config.Load(out)
	require.NoError(t, err)
	require.Equal(t, "Lounge", *written.Name)
	require.Len(t, written.LegendItems, 3)

	original, err := os.ReadFile(cfg)
	require.NoError(t, err)
	require.Equal(t, cardYAML, string(original))
}

func TestEditKeepsNestedUnknownKeys(t *testing.T) {
	scriptedEditor(t,
		tea.KeyMsg{Type: tea.KeyTab},
		runes("Lounge"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	dir := t.TempDir()
	cfg := writeFile(t, dir, "card.yaml", `entity: sensor.lounge
legend_items:
  - text: Hot
    color: red
    min: 30
    icon: mdi:fire
tap_action:
  action: toggle
  confirmation:
    text: Sure?
`)

	output, _, err := execute(t, "edit", "-c", cfg)
	require.NoError(t, err)
	require.Contains(t, output, "+name: Lounge")

	written, err := config.Load(cfg)
	require.NoError(t, err)
	require.Equal(t, "Lounge", *written.Name)
	require.Equal(t, "mdi:fire", written.LegendItems[0].Extra["icon"])
	require.Equal(t, map[string]any{"text": "Sure?"}, written.TapAction.Extra["confirmation"])
}

func TestEditDryRunWritesNothing(t *testing.T) {
	scriptedEditor(t, tea.KeyMsg{Type: tea.KeyCtrlN}, runes("Hot"), tea.KeyMsg{Type: tea.KeyCtrlS})

	dir := t.TempDir()
	cfg := writeFile(t, dir, "card.yaml", cardYAML)

	output, _, err := execute(t, "edit", "-c", cfg, "--dry-run")
	require.NoError(t, err)
	require.Regexp(t, `(?m)^\+\s+- color: ""$`, output)
	require.Regexp(t, `(?m)^\+\s+text: Hot$`, output)

	original, err := os.ReadFile(cfg)
	require.NoError(t, err)
	require.Equal(t, cardYAML, string(original))
}

func TestEditCancelled(t *testing.T) {
	scriptedEditor(t, runes("x"), tea.KeyMsg{Type: tea.KeyEsc})

	dir := t.TempDir()
	cfg := writeFile(t, dir, "card.yaml", cardYAML)

	output, _, err := execute(t, "edit", "-c", cfg)
	require.NoError(t, err)
	require.Contains(t, output, "edit cancelled")

	original, err := os.ReadFile(cfg)
	require.NoError(t, err)
	require.Equal(t, cardYAML, string(original))
}

func TestEditStartsFromStubForNewFile(t *testing.T) {
	scriptedEditor(t, tea.KeyMsg{Type: tea.KeyCtrlS})

	dir := t.TempDir()
	cfg := filepath.Join(dir, "new.yaml")

	output, _, err := execute(t, "edit", "-c", cfg)
	require.NoError(t, err)
	require.Contains(t, output, "no changes")

	written, err := config.Load(cfg)
	require.NoError(t, err)
	require.Equal(t, "sensor.example", written.Entity)
}

func TestEditWarnsAboutMissingEntity(t *testing.T) {
	scriptedEditor(t,
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	dir := t.TempDir()
	cfg := writeFile(t, dir, "card.yaml", "entity: s.x\n")

	output, _, err := execute(t, "edit", "-c", cfg, "--dry-run")
	require.NoError(t, err)
	require.Contains(t, output, "warning: config error: entity: missing entity")
}

func TestEditRequiresTerminal(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "card.yaml", cardYAML)

	_, _, err := execute(t, "edit", "-c", cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "interactive terminal")
}
