package config

import (
	"math"
	"strings"

	cardErrors "github.com/alexisbeaulieu97/legendcard/pkg/errors"
)

var knownKeys = map[string]struct{}{
	KeyEntity:        {},
	KeyName:          {},
	KeyUnit:          {},
	KeyIcon:          {},
	KeyDecimals:      {},
	KeyLegendItems:   {},
	KeyTapAction:     {},
	KeyIconTapAction: {},
}

var knownLegendKeys = map[string]struct{}{
	KeyText:  {},
	KeyColor: {},
	KeyMin:   {},
	KeyMax:   {},
}

var knownActionKeys = map[string]struct{}{
	KeyAction:         {},
	KeyNavigationPath: {},
	KeyURLPath:        {},
	keyURLAlias:       {},
}

// Normalize turns a raw configuration object into a complete CardConfig.
//
// The entity is the only required field. Decimals defaults to zero and legend
// items to an empty list when the raw value is not a sequence; every other
// optional field keeps its absence. Unknown keys are carried in Extra.
func Normalize(raw map[string]any) (*CardConfig, error) {
	cfg := Decode(raw)
	if cfg.Entity == "" {
		return nil, cardErrors.MissingEntity()
	}
	if cfg.Decimals == nil {
		cfg.Decimals = Int(0)
	}
	return &cfg, nil
}

// Decode converts a raw configuration object without requiring an entity and
// without applying the decimals default. Editors use it for work-in-progress
// configurations that are not renderable yet.
func Decode(raw map[string]any) CardConfig {
	entity, _ := raw[KeyEntity].(string)

	cfg := CardConfig{
		Entity:        strings.TrimSpace(entity),
		Name:          optionalString(raw, KeyName),
		Unit:          optionalString(raw, KeyUnit),
		Icon:          optionalString(raw, KeyIcon),
		LegendItems:   decodeLegendItems(raw[KeyLegendItems]),
		TapAction:     decodeAction(raw[KeyTapAction]),
		IconTapAction: decodeAction(raw[KeyIconTapAction]),
	}

	if n, ok := CoerceNumber(raw[KeyDecimals]); ok {
		cfg.Decimals = Int(int(math.Trunc(n)))
	}

	cfg.Extra = unknownKeys(raw, knownKeys)
	return cfg
}

// unknownKeys copies every entry of raw whose key is not in known, or returns
// nil when there are none.
func unknownKeys(raw map[string]any, known map[string]struct{}) map[string]any {
	var extra map[string]any
	for key, value := range raw {
		if _, ok := known[key]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = cloneValue(value)
	}
	return extra
}

func optionalString(raw map[string]any, key string) *string {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return String(s)
}

func decodeLegendItems(value any) []LegendItem {
	items := []LegendItem{}
	switch typed := value.(type) {
	case []LegendItem:
		for _, item := range typed {
			items = append(items, item.Clone())
		}
	case []map[string]any:
		for _, entry := range typed {
			items = append(items, decodeLegendItem(entry))
		}
	case []any:
		for _, entry := range typed {
			if m, ok := asStringMap(entry); ok {
				items = append(items, decodeLegendItem(m))
			}
		}
	}
	return items
}

// decodeLegendItem converts one raw legend entry, coercing its bounds.
func decodeLegendItem(m map[string]any) LegendItem {
	item := LegendItem{
		Text:  stringValue(m[KeyText]),
		Color: stringValue(m[KeyColor]),
		Extra: unknownKeys(m, knownLegendKeys),
	}
	if n, ok := CoerceNumber(m[KeyMin]); ok {
		item.Min = Float(n)
	}
	if n, ok := CoerceNumber(m[KeyMax]); ok {
		item.Max = Float(n)
	}
	return item
}

func decodeAction(value any) *ActionConfig {
	switch typed := value.(type) {
	case *ActionConfig:
		return typed.Clone()
	case ActionConfig:
		return typed.Clone()
	}

	m, ok := asStringMap(value)
	if !ok {
		return nil
	}

	action := &ActionConfig{
		Action:         ActionType(stringValue(m[KeyAction])),
		NavigationPath: stringValue(m[KeyNavigationPath]),
		URL:            stringValue(m[KeyURLPath]),
		Extra:          unknownKeys(m, knownActionKeys),
	}
	if action.URL == "" {
		action.URL = stringValue(m[keyURLAlias])
	}
	return action
}

func asStringMap(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = v
		}
		return out, true
	default:
		return nil, false
	}
}

func stringValue(value any) string {
	s, _ := value.(string)
	return s
}
