package config

import (
	"encoding/json"
)

// Map renders the configuration as a JSON-compatible object.
//
// Absent optional fields are omitted, an explicit empty icon is kept, legend items
// are always present and unknown keys from Extra are re-emitted unchanged.
func (c CardConfig) Map() map[string]any {
	out := make(map[string]any, len(c.Extra)+8)
	for k, v := range c.Extra {
		out[k] = cloneValue(v)
	}

	out[KeyEntity] = c.Entity
	if c.Name != nil {
		out[KeyName] = *c.Name
	}
	if c.Unit != nil {
		out[KeyUnit] = *c.Unit
	}
	if c.Icon != nil {
		out[KeyIcon] = *c.Icon
	}
	if c.Decimals != nil {
		out[KeyDecimals] = *c.Decimals
	}

	items := make([]any, 0, len(c.LegendItems))
	for _, item := range c.LegendItems {
		items = append(items, item.Map())
	}
	out[KeyLegendItems] = items

	if c.TapAction != nil {
		out[KeyTapAction] = c.TapAction.Map()
	}
	if c.IconTapAction != nil {
		out[KeyIconTapAction] = c.IconTapAction.Map()
	}

	return out
}

// Map renders the legend item; bounds appear only when present and unknown
// row keys are re-emitted.
func (i LegendItem) Map() map[string]any {
	out := cloneExtra(i.Extra)
	if out == nil {
		out = make(map[string]any, 4)
	}
	out[KeyText] = i.Text
	out[KeyColor] = i.Color
	if i.Min != nil {
		out[KeyMin] = *i.Min
	}
	if i.Max != nil {
		out[KeyMax] = *i.Max
	}
	return out
}

// Map renders the action config, omitting empty fields and re-emitting unknown ones.
func (a ActionConfig) Map() map[string]any {
	out := cloneExtra(a.Extra)
	if out == nil {
		out = map[string]any{}
	}
	if a.Action != "" {
		out[KeyAction] = string(a.Action)
	}
	if a.NavigationPath != "" {
		out[KeyNavigationPath] = a.NavigationPath
	}
	if a.URL != "" {
		out[KeyURLPath] = a.URL
	}
	return out
}

// MarshalJSON encodes the configuration through Map so key order is stable.
func (c CardConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}

// MarshalYAML encodes the configuration through Map.
func (c CardConfig) MarshalYAML() (interface{}, error) {
	return c.Map(), nil
}
