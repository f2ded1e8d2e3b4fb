package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/model"
	"github.com/alexisbeaulieu97/legendcard/internal/render"
	"github.com/alexisbeaulieu97/legendcard/internal/viewmodel"
)

const helpText = "tab/shift+tab move • ←/→ change action • ctrl+n add row • ctrl+d delete row • ctrl+s save • esc cancel"

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("Sensor legend card"))

	var (
		general []string
		actions []string
		legend  []string
		lastRow = -1
	)
	for i, f := range m.fields {
		if !m.visible(i) {
			continue
		}
		line := m.renderField(i, f)
		switch {
		case f.row >= 0:
			if f.row != lastRow {
				legend = append(legend, mutedStyle.Render(fmt.Sprintf("Row %d", f.row+1)))
				lastRow = f.row
			}
			legend = append(legend, line)
		case f.kind == kindAction || f.shown != nil:
			actions = append(actions, line)
		default:
			general = append(general, line)
		}
	}

	sections = append(sections, sectionStyle.Render("Card"), strings.Join(general, "\n"))
	sections = append(sections, sectionStyle.Render("Actions"), strings.Join(actions, "\n"))
	sections = append(sections, sectionStyle.Render("Legend"))
	if len(legend) == 0 {
		sections = append(sections, mutedStyle.Render("No legend rows. Press ctrl+n to add one."))
	} else {
		sections = append(sections, strings.Join(legend, "\n"))
	}

	if preview := m.preview(); preview != "" {
		sections = append(sections, sectionStyle.Render("Preview"), preview)
	}

	sections = append(sections, helpStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderField(i int, f field) string {
	marker := "  "
	label := labelStyle.Render(f.label)
	if i == m.focus {
		marker = focusedStyle.Render("> ")
		label = focusedStyle.Inherit(labelStyle).Render(f.label)
	}

	if f.kind == kindAction {
		return marker + label + selectorStyle.Render("‹ "+string(m.actionKind(f))+" ›")
	}
	return marker + label + f.input.View()
}

// preview renders the card as it would appear with the current configuration.
// It is empty until an entity is set.
func (m Model) preview() string {
	cfg := m.editor.Config()
	if strings.TrimSpace(cfg.Entity) == "" {
		return ""
	}

	normalized, err := config.Normalize(cfg.Map())
	if err != nil {
		return ""
	}

	var state *model.ObservedState
	if m.states != nil {
		if s, ok := m.states.State(normalized.Entity); ok {
			state = s
		}
	}

	r := render.New().WithStyle(previewStyle())
	if m.width > 0 {
		r = r.WithWidth(min(m.width, 60))
	}
	return r.Full(viewmodel.Build(normalized, state))
}
