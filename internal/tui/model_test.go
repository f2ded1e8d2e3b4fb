package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/editor"
)

func newTestModel(t *testing.T, cfg config.CardConfig) (Model, *[]config.CardConfig) {
	t.Helper()
	var emitted []config.CardConfig
	ed := editor.New(cfg, func(c config.CardConfig) { emitted = append(emitted, c) })
	return NewModel(ed), &emitted
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestNewModelFocusesEntity(t *testing.T) {
	t.Parallel()

	m, emitted := newTestModel(t, config.CardConfig{})

	require.Equal(t, "Entity", m.Focused())
	require.NotNil(t, m.Init())
	require.Empty(t, *emitted, "opening the editor does not emit")
	require.False(t, m.Saved())
	require.False(t, m.Aborted())
}

func TestNewModelLoadsExistingValues(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, config.CardConfig{
		Entity:   "sensor.attic_temperature",
		Name:     config.String("Attic"),
		Decimals: config.Int(2),
		LegendItems: []config.LegendItem{
			{Text: "Hot", Color: "red", Min: config.Float(30.5)},
		},
	})

	values := map[string]string{}
	for _, f := range m.fields {
		if f.kind == kindInput && f.row < 0 {
			values[f.label] = f.input.Value()
		}
	}
	require.Equal(t, "sensor.attic_temperature", values["Entity"])
	require.Equal(t, "Attic", values["Name"])
	require.Equal(t, "2", values["Decimals"])
	require.Equal(t, "", values["Unit"])

	var legend []string
	for _, f := range m.fields {
		if f.row == 0 {
			legend = append(legend, f.input.Value())
		}
	}
	require.Equal(t, []string{"Hot", "red", "30.5", ""}, legend)
}

func TestFocusSkipsHiddenActionInputs(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, config.CardConfig{})

	m = send(m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab))
	require.Equal(t, "Unit", m.Focused())

	m = send(m, key(tea.KeyTab))
	require.Equal(t, "Tap action", m.Focused())

	m = send(m, key(tea.KeyTab))
	require.Equal(t, "Icon tap action", m.Focused())

	m = send(m, key(tea.KeyTab))
	require.Equal(t, "Entity", m.Focused(), "focus wraps around")

	m = send(m, key(tea.KeyShiftTab))
	require.Equal(t, "Icon tap action", m.Focused())
}
