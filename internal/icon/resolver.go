// Package icon picks the icon shown next to a card value.
//
// Resolution walks four tiers and stops at the first that applies:
//
//  1. an explicit icon of "none" (any case, surrounding spaces ignored) hides the icon;
//  2. any other non-blank explicit icon is used verbatim;
//  3. a non-blank icon attribute on the observed state is used verbatim;
//  4. a default looked up by entity domain and device class.
//
// A blank explicit icon counts as absent and falls through to tier 3.
package icon

import (
	"strings"

	"github.com/alexisbeaulieu97/legendcard/internal/model"
)

// None is the explicit icon value that suppresses the icon.
const None = "none"

// Input carries everything the resolver looks at.
type Input struct {
	EntityID string
	// Explicit is the card's configured icon; nil means the key is not set.
	Explicit    *string
	StateIcon   string
	DeviceClass string
}

// Resolve returns the icon to show, or ok=false when the icon is suppressed.
func Resolve(in Input) (icon string, ok bool) {
	if in.Explicit != nil {
		explicit := strings.TrimSpace(*in.Explicit)
		if strings.EqualFold(explicit, None) {
			return "", false
		}
		if explicit != "" {
			return explicit, true
		}
	}

	if attr := strings.TrimSpace(in.StateIcon); attr != "" {
		return attr, true
	}

	return Default(model.Domain(in.EntityID), in.DeviceClass), true
}

// ForState is a convenience wrapper reading the state icon and device class from state.
func ForState(entityID string, explicit *string, state *model.ObservedState) (string, bool) {
	return Resolve(Input{
		EntityID:    entityID,
		Explicit:    explicit,
		StateIcon:   state.Icon(),
		DeviceClass: state.DeviceClass(),
	})
}
