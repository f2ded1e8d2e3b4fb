// Package render paints a card view model for a terminal with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/legendcard/internal/viewmodel"
)

// Style defines the visual appearance of the rendered card and tooltip.
type Style struct {
	// BorderStyle applies to the card's outer border.
	BorderStyle lipgloss.Style
	// TitleStyle applies to the entity name.
	TitleStyle lipgloss.Style
	// IconStyle applies to the icon name.
	IconStyle lipgloss.Style
	// ValueStyle applies to the value before the legend colour is added.
	ValueStyle lipgloss.Style
	// UnitStyle applies to the unit suffix.
	UnitStyle lipgloss.Style
	// RowStyle applies to each legend row.
	RowStyle lipgloss.Style
	// MutedStyle applies to ranges and inactive markers.
	MutedStyle lipgloss.Style
	// Width is the outer width of the card; zero sizes to content.
	Width int
}

// DefaultStyle returns the style used by the CLI preview.
func DefaultStyle() Style {
	return Style{
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		TitleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		IconStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ValueStyle: lipgloss.NewStyle().Bold(true),
		UnitStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		RowStyle:   lipgloss.NewStyle(),
		MutedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Renderer turns view models into terminal strings.
type Renderer struct {
	style Style
}

// New creates a renderer with the default style.
func New() *Renderer {
	return &Renderer{style: DefaultStyle()}
}

// WithStyle sets a custom style.
func (r *Renderer) WithStyle(style Style) *Renderer {
	r.style = style
	return r
}

// WithWidth sets the outer card width.
func (r *Renderer) WithWidth(width int) *Renderer {
	r.style.Width = width
	return r
}

// Card renders the card body: icon and name on the first line, then the value
// tinted with the matched legend colour and followed by the unit.
func (r *Renderer) Card(vm viewmodel.ViewModel) string {
	var header strings.Builder
	if vm.ShowIcon && vm.Icon != "" {
		header.WriteString(r.style.IconStyle.Render(vm.Icon))
		header.WriteString(" ")
	}
	header.WriteString(r.style.TitleStyle.Render(vm.Name))

	valueStyle := r.style.ValueStyle
	if vm.HasColor {
		valueStyle = valueStyle.Foreground(lipgloss.Color(vm.Color))
	}
	value := valueStyle.Render(vm.DisplayText)
	if vm.Unit != "" {
		value += " " + r.style.UnitStyle.Render(vm.Unit)
	}

	return r.frame(header.String() + "\n" + value)
}

// Tooltip renders the legend rows in configuration order. The row whose colour
// was applied is marked. Rows without a colour are shown without a swatch.
func (r *Renderer) Tooltip(vm viewmodel.ViewModel) string {
	if len(vm.LegendRows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(vm.LegendRows))
	for _, row := range vm.LegendRows {
		lines = append(lines, r.row(row))
	}
	return r.frame(strings.Join(lines, "\n"))
}

// Full renders the card with its tooltip underneath.
func (r *Renderer) Full(vm viewmodel.ViewModel) string {
	tooltip := r.Tooltip(vm)
	if tooltip == "" {
		return r.Card(vm)
	}
	return lipgloss.JoinVertical(lipgloss.Left, r.Card(vm), tooltip)
}

func (r *Renderer) row(row viewmodel.LegendRow) string {
	marker := r.style.MutedStyle.Render(" ")
	if row.Active {
		marker = "›"
	}

	swatch := " "
	if row.Color != "" {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color)).Render("●")
	}

	parts := []string{marker, swatch}
	if row.Text != "" {
		parts = append(parts, r.style.RowStyle.Render(row.Text))
	}
	if bounds := describeRange(row.Min, row.Max); bounds != "" {
		parts = append(parts, r.style.MutedStyle.Render("("+bounds+")"))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) frame(content string) string {
	style := r.style.BorderStyle
	if r.style.Width > 0 {
		style = style.Width(r.style.Width - horizontalBorderWidth(style))
	}
	return style.Render(content)
}

// horizontalBorderWidth sums left and right border sizes.
func horizontalBorderWidth(style lipgloss.Style) int {
	width := style.GetBorderLeftSize() + style.GetBorderRightSize()
	if width < 0 {
		return 0
	}
	return width
}

// describeRange prints the inclusive bounds of a legend row.
func describeRange(lower, upper *float64) string {
	switch {
	case lower != nil && upper != nil:
		return formatBound(*lower) + " to " + formatBound(*upper)
	case lower != nil:
		return "≥ " + formatBound(*lower)
	case upper != nil:
		return "≤ " + formatBound(*upper)
	default:
		return ""
	}
}

func formatBound(v float64) string {
	return decimal.NewFromFloat(v).String()
}
