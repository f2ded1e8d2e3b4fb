// Package tui is the interactive terminal editor for a sensor legend card.
//
// Every keystroke that changes an input becomes one editor operation, so the
// configuration held by the underlying editor.Editor is always current.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/editor"
	"github.com/alexisbeaulieu97/legendcard/internal/ports"
)

type fieldKind int

const (
	kindInput fieldKind = iota
	kindAction
)

type actionTarget int

const (
	targetTap actionTarget = iota
	targetIconTap
)

// field is one focusable control. Legend fields carry their row index; every
// other field has row -1.
type field struct {
	label  string
	kind   fieldKind
	input  textinput.Model
	row    int
	target actionTarget
	commit func(ed *editor.Editor, value string)
	shown  func(cfg config.CardConfig) bool
}

// Model contains the Bubbletea state for the card editor.
type Model struct {
	editor  *editor.Editor
	states  ports.StateReader
	fields  []field
	focus   int
	width   int
	saved   bool
	aborted bool
}

// NewModel constructs an editor model over ed. The first field is focused.
func NewModel(ed *editor.Editor) Model {
	m := Model{editor: ed}
	m.rebuild(nil)
	m.focusField(0)
	return m
}

// WithStates enables the live preview using states for entity lookups.
func (m Model) WithStates(states ports.StateReader) Model {
	m.states = states
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Config returns the configuration as last emitted by the editor.
func (m Model) Config() config.CardConfig {
	return m.editor.Config()
}

// Saved reports whether the user confirmed the edit.
func (m Model) Saved() bool {
	return m.saved
}

// Aborted reports whether the user cancelled the edit.
func (m Model) Aborted() bool {
	return m.aborted
}

// Focused returns the label of the focused field.
func (m Model) Focused() string {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return ""
	}
	return m.fields[m.focus].label
}

// fieldKey identifies an input across rebuilds.
type fieldKey struct {
	row   int
	label string
}

// rebuild regenerates every control from the editor's configuration. It runs
// on start and whenever legend rows are added or removed.
//
// Text typed into the previous controls is carried over, since an input can
// hold text the configuration does not (a non-numeric bound, for one). rowOf
// maps an old legend row to its new index, or to -1 when the row is gone; nil
// keeps no legend text.
func (m *Model) rebuild(rowOf func(int) int) {
	typed := make(map[fieldKey]string, len(m.fields))
	for _, f := range m.fields {
		if f.kind != kindInput {
			continue
		}
		row := f.row
		if row >= 0 {
			if rowOf == nil {
				continue
			}
			if row = rowOf(row); row < 0 {
				continue
			}
		}
		typed[fieldKey{row: row, label: f.label}] = f.input.Value()
	}

	cfg := m.editor.Config()

	fields := []field{
		inputField("Entity", cfg.Entity, func(ed *editor.Editor, v string) { ed.SetEntity(v) }),
		inputField("Name", deref(cfg.Name), scalar(editor.ScalarName)),
		inputField("Icon", deref(cfg.Icon), scalar(editor.ScalarIcon)),
		inputField("Decimals", formatInt(cfg.Decimals), scalar(editor.ScalarDecimals)),
		inputField("Unit", deref(cfg.Unit), scalar(editor.ScalarUnit)),
	}
	fields = append(fields, actionFields("Tap", targetTap, cfg.TapAction)...)
	fields = append(fields, actionFields("Icon tap", targetIconTap, cfg.IconTapAction)...)

	for i, item := range cfg.LegendItems {
		fields = append(fields,
			legendField(i, editor.FieldText, "Text", item.Text),
			legendField(i, editor.FieldColor, "Color", item.Color),
			legendField(i, editor.FieldMin, "Min", formatFloat(item.Min)),
			legendField(i, editor.FieldMax, "Max", formatFloat(item.Max)),
		)
	}

	for i := range fields {
		if fields[i].kind != kindInput {
			continue
		}
		if value, ok := typed[fieldKey{row: fields[i].row, label: fields[i].label}]; ok {
			fields[i].input.SetValue(value)
			fields[i].input.CursorEnd()
		}
	}

	m.fields = fields
	if m.focus >= len(m.fields) {
		m.focus = len(m.fields) - 1
	}
}

func inputField(label, value string, commit func(*editor.Editor, string)) field {
	in := textinput.New()
	in.Prompt = ""
	in.SetValue(value)
	in.CursorEnd()
	return field{label: label, kind: kindInput, input: in, row: -1, commit: commit}
}

func scalar(name string) func(*editor.Editor, string) {
	return func(ed *editor.Editor, v string) { ed.SetScalarField(name, v) }
}

func actionFields(label string, target actionTarget, current *config.ActionConfig) []field {
	set := func(ed *editor.Editor, patch editor.ActionPatch) {
		if target == targetIconTap {
			ed.SetIconTapAction(patch)
			return
		}
		ed.SetTapAction(patch)
	}
	kindOf := func(cfg config.CardConfig) config.ActionType {
		if target == targetIconTap {
			return cfg.IconTapAction.Kind()
		}
		return cfg.TapAction.Kind()
	}

	var path, url string
	if current != nil {
		path, url = current.NavigationPath, current.URL
	}

	selector := field{label: label + " action", kind: kindAction, row: -1, target: target}

	pathField := inputField(label+" path", path, func(ed *editor.Editor, v string) {
		set(ed, editor.WithNavigationPath(v))
	})
	pathField.shown = func(cfg config.CardConfig) bool { return kindOf(cfg) == config.ActionNavigate }

	urlField := inputField(label+" URL", url, func(ed *editor.Editor, v string) {
		set(ed, editor.WithURL(v))
	})
	urlField.shown = func(cfg config.CardConfig) bool { return kindOf(cfg) == config.ActionURL }

	return []field{selector, pathField, urlField}
}

func legendField(row int, column editor.LegendField, label, value string) field {
	f := inputField(label, value, func(ed *editor.Editor, v string) {
		ed.SetLegendField(row, column, v)
	})
	f.row = row
	return f
}

// visible reports whether field i is shown for the current configuration.
func (m Model) visible(i int) bool {
	f := m.fields[i]
	return f.shown == nil || f.shown(m.editor.Config())
}

// focusField moves focus to field i, blurring the previous field.
func (m *Model) focusField(i int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	if m.focus >= 0 && m.focus < len(m.fields) {
		m.fields[m.focus].input.Blur()
	}
	m.focus = i
	if m.fields[i].kind == kindInput {
		return m.fields[i].input.Focus()
	}
	return nil
}

// move shifts focus by delta, skipping hidden fields and wrapping around.
func (m *Model) move(delta int) tea.Cmd {
	n := len(m.fields)
	next := m.focus
	for range n {
		next = (next + delta + n) % n
		if m.visible(next) {
			return m.focusField(next)
		}
	}
	return nil
}

// actionKind returns the effective action type a selector field shows.
func (m Model) actionKind(f field) config.ActionType {
	cfg := m.editor.Config()
	if f.target == targetIconTap {
		return cfg.IconTapAction.Kind()
	}
	return cfg.TapAction.Kind()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return decimal.NewFromFloat(*f).String()
}
