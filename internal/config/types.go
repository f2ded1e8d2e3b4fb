package config

// CardType is the Lovelace type the editor stamps on configurations it creates.
const CardType = "custom:sensor-legend-card"

// Configuration keys as they appear in YAML and JSON documents.
const (
	KeyType          = "type"
	KeyEntity        = "entity"
	KeyName          = "name"
	KeyUnit          = "unit"
	KeyIcon          = "icon"
	KeyDecimals      = "decimals"
	KeyLegendItems   = "legend_items"
	KeyTapAction     = "tap_action"
	KeyIconTapAction = "icon_tap_action"

	KeyAction         = "action"
	KeyNavigationPath = "navigation_path"
	KeyURLPath        = "url_path"
	keyURLAlias       = "url"

	KeyText  = "text"
	KeyColor = "color"
	KeyMin   = "min"
	KeyMax   = "max"
)

// ActionType names what happens when the card or its icon is tapped.
type ActionType string

const (
	ActionMoreInfo ActionType = "more-info"
	ActionToggle   ActionType = "toggle"
	ActionNavigate ActionType = "navigate"
	ActionURL      ActionType = "url"
	ActionNone     ActionType = "none"
)

// ActionTypes lists the supported action types in the order editors present them.
var ActionTypes = []ActionType{ActionMoreInfo, ActionToggle, ActionNavigate, ActionURL, ActionNone}

// Known reports whether the action type is one the dispatcher acts on.
func (a ActionType) Known() bool {
	for _, known := range ActionTypes {
		if a == known {
			return true
		}
	}
	return false
}

// ActionConfig describes a tap behaviour. An empty Action reads as more-info.
type ActionConfig struct {
	Action         ActionType `yaml:"action,omitempty" json:"action,omitempty"`
	NavigationPath string     `yaml:"navigation_path,omitempty" json:"navigation_path,omitempty"`
	URL            string     `yaml:"url_path,omitempty" json:"url_path,omitempty"`

	// Extra holds keys the dispatcher does not act on, such as "confirmation".
	Extra map[string]any `yaml:"-" json:"-"`
}

// Kind resolves the effective action type; a nil config or missing action is more-info.
func (a *ActionConfig) Kind() ActionType {
	if a == nil || a.Action == "" {
		return ActionMoreInfo
	}
	return a.Action
}

// Clone returns an independent copy, or nil for a nil receiver.
func (a *ActionConfig) Clone() *ActionConfig {
	if a == nil {
		return nil
	}
	out := *a
	out.Extra = cloneExtra(a.Extra)
	return &out
}

// LegendItem is one tooltip row and, when it carries bounds, one colour range.
type LegendItem struct {
	Text  string   `yaml:"text" json:"text"`
	Color string   `yaml:"color" json:"color"`
	Min   *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max   *float64 `yaml:"max,omitempty" json:"max,omitempty"`

	// Extra holds per-row keys other than the four above.
	Extra map[string]any `yaml:"-" json:"-"`
}

// HasBounds reports whether the item takes part in colour matching.
func (i LegendItem) HasBounds() bool {
	return i.Min != nil || i.Max != nil
}

// Clone returns a copy that shares no pointers with the receiver.
func (i LegendItem) Clone() LegendItem {
	out := LegendItem{Text: i.Text, Color: i.Color, Extra: cloneExtra(i.Extra)}
	if i.Min != nil {
		out.Min = Float(*i.Min)
	}
	if i.Max != nil {
		out.Max = Float(*i.Max)
	}
	return out
}

// CardConfig is the normalized card configuration.
//
// Pointer fields distinguish "absent" from a zero value. Icon in particular keeps
// an explicit empty string apart from a missing key: "" means derive, nil means
// the key was never set.
type CardConfig struct {
	Entity        string
	Name          *string
	Unit          *string
	Icon          *string
	Decimals      *int
	LegendItems   []LegendItem
	TapAction     *ActionConfig
	IconTapAction *ActionConfig

	// Extra holds keys this package does not interpret (for example "type").
	Extra map[string]any
}

// DecimalPlaces returns the configured number of decimals, defaulting to zero.
func (c *CardConfig) DecimalPlaces() int {
	if c == nil || c.Decimals == nil {
		return 0
	}
	return *c.Decimals
}

// Clone returns a deep copy of the configuration.
func (c CardConfig) Clone() CardConfig {
	out := CardConfig{
		Entity:        c.Entity,
		Name:          cloneString(c.Name),
		Unit:          cloneString(c.Unit),
		Icon:          cloneString(c.Icon),
		TapAction:     c.TapAction.Clone(),
		IconTapAction: c.IconTapAction.Clone(),
	}
	if c.Decimals != nil {
		out.Decimals = Int(*c.Decimals)
	}
	if c.LegendItems != nil {
		out.LegendItems = make([]LegendItem, len(c.LegendItems))
		for i, item := range c.LegendItems {
			out.LegendItems[i] = item.Clone()
		}
	}
	out.Extra = cloneExtra(c.Extra)
	return out
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return String(*s)
}

func cloneExtra(extra map[string]any) map[string]any {
	if extra == nil {
		return nil
	}
	out := make(map[string]any, len(extra))
	for k, v := range extra {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, inner := range typed {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, inner := range typed {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}
