// Package viewmodel composes configuration and observed state into the values a
// renderer paints: display text, colour, icon, name, unit and tooltip rows.
package viewmodel

import (
	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/icon"
	"github.com/alexisbeaulieu97/legendcard/internal/legend"
	"github.com/alexisbeaulieu97/legendcard/internal/model"
)

// Unavailable is shown when the host has no state for the entity.
const Unavailable = "N/A"

// LegendRow is one tooltip line.
type LegendRow struct {
	Text  string   `json:"text"`
	Color string   `json:"color,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	// Active marks the row whose colour was applied to the value.
	Active bool `json:"active,omitempty"`
}

// ViewModel is everything a renderer needs for one card.
type ViewModel struct {
	EntityID    string      `json:"entity_id"`
	Name        string      `json:"name"`
	DisplayText string      `json:"display_text"`
	Numeric     bool        `json:"numeric"`
	Unit        string      `json:"unit,omitempty"`
	Color       string      `json:"color,omitempty"`
	HasColor    bool        `json:"has_color"`
	Icon        string      `json:"icon,omitempty"`
	ShowIcon    bool        `json:"show_icon"`
	LegendRows  []LegendRow `json:"legend_rows"`
}

// Build derives the view model. state may be nil when the host has none.
func Build(cfg *config.CardConfig, state *model.ObservedState) ViewModel {
	vm := ViewModel{
		EntityID:    cfg.Entity,
		DisplayText: Unavailable,
		LegendRows:  make([]LegendRow, len(cfg.LegendItems)),
	}

	active := -1
	if state != nil {
		if value, ok := config.ParseNumber(state.State); ok {
			vm.Numeric = true
			vm.DisplayText = FormatValue(value, cfg.DecimalPlaces())
			active = legend.MatchIndex(value, cfg.LegendItems)
			if active >= 0 {
				vm.Color = cfg.LegendItems[active].Color
				vm.HasColor = true
			}
		} else {
			vm.DisplayText = state.State
		}
	}

	vm.Name = firstNonEmpty(deref(cfg.Name), state.FriendlyName(), cfg.Entity)
	vm.Unit = firstNonEmpty(deref(cfg.Unit), state.Unit())
	vm.Icon, vm.ShowIcon = icon.ForState(cfg.Entity, cfg.Icon, state)

	for i, item := range cfg.LegendItems {
		item = item.Clone()
		vm.LegendRows[i] = LegendRow{
			Text:   item.Text,
			Color:  item.Color,
			Min:    item.Min,
			Max:    item.Max,
			Active: i == active,
		}
	}

	return vm
}

// FormatValue renders value with exactly decimals digits after the point.
// Halves round away from zero; decimals is clamped to 0..config.MaxDecimals.
func FormatValue(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > config.MaxDecimals {
		decimals = config.MaxDecimals
	}
	return decimal.NewFromFloat(value).StringFixed(int32(decimals))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
