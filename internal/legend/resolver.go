// Package legend resolves the colour of a card value from its ordered legend ranges.
//
// Ranges are checked in declaration order and the first matching item that
// carries a colour wins. Overlapping ranges are allowed: authors place the most
// specific range first.
package legend

import (
	"github.com/alexisbeaulieu97/legendcard/internal/config"
)

// ColorFor returns the colour of the first item whose range contains value.
//
// Items without bounds are skipped. A matching item without a colour does not
// stop the scan. ok is false when nothing matches.
func ColorFor(value float64, items []config.LegendItem) (color string, ok bool) {
	index := MatchIndex(value, items)
	if index < 0 {
		return "", false
	}
	return items[index].Color, true
}

// MatchIndex returns the index of the item ColorFor would pick, or -1.
func MatchIndex(value float64, items []config.LegendItem) int {
	for i, item := range items {
		if !Matches(value, item) {
			continue
		}
		if item.Color != "" {
			return i
		}
	}
	return -1
}

// Matches reports whether value falls in the item's range.
//
// Both bounds form an inclusive range, a lone min means value >= min and a lone
// max means value <= max. An item without bounds never matches.
func Matches(value float64, item config.LegendItem) bool {
	switch {
	case item.Min != nil && item.Max != nil:
		return value >= *item.Min && value <= *item.Max
	case item.Min != nil:
		return value >= *item.Min
	case item.Max != nil:
		return value <= *item.Max
	default:
		return false
	}
}
