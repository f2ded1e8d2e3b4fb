package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/editor"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyCtrlS:
		m.saved = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		return m, m.move(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.move(-1)
	case tea.KeyCtrlN:
		m.editor.AddLegendItem()
		m.rebuild(func(row int) int { return row })
		return m, m.focusField(len(m.fields) - 4)
	case tea.KeyCtrlD:
		return m, m.removeFocusedRow()
	}

	if len(m.fields) == 0 {
		return m, nil
	}
	f := &m.fields[m.focus]

	if f.kind == kindAction {
		switch msg.Type {
		case tea.KeyRight, tea.KeySpace, tea.KeyEnter:
			m.cycleAction(f, 1)
		case tea.KeyLeft:
			m.cycleAction(f, -1)
		}
		return m, nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if value := f.input.Value(); value != before {
		f.commit(m.editor, value)
	}
	return m, cmd
}

// cycleAction steps the selector through the supported action types.
func (m *Model) cycleAction(f *field, delta int) {
	current := m.actionKind(*f)
	index := 0
	for i, kind := range config.ActionTypes {
		if kind == current {
			index = i
			break
		}
	}
	n := len(config.ActionTypes)
	next := config.ActionTypes[(index+delta+n)%n]

	patch := editor.WithAction(next)
	if f.target == targetIconTap {
		m.editor.SetIconTapAction(patch)
		return
	}
	m.editor.SetTapAction(patch)
}

// removeFocusedRow deletes the legend row owning the focused field.
func (m *Model) removeFocusedRow() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	row := m.fields[m.focus].row
	if row < 0 {
		return nil
	}

	m.editor.RemoveLegendItem(row)
	m.fields[m.focus].input.Blur()
	m.rebuild(func(old int) int {
		switch {
		case old < row:
			return old
		case old == row:
			return -1
		default:
			return old - 1
		}
	})
	if m.fields[m.focus].row < 0 && m.focus > 0 {
		// Focus fell back into the action fields; step to a visible one.
		return m.move(-1)
	}
	return m.focusField(m.focus)
}
