package editor

import (
	"math"

	"github.com/alexisbeaulieu97/legendcard/internal/config"
)

// LegendField names an editable column of a legend row.
type LegendField string

const (
	FieldText  LegendField = config.KeyText
	FieldColor LegendField = config.KeyColor
	FieldMin   LegendField = config.KeyMin
	FieldMax   LegendField = config.KeyMax
)

// Scalar field names accepted by SetScalarField.
const (
	ScalarName     = config.KeyName
	ScalarIcon     = config.KeyIcon
	ScalarUnit     = config.KeyUnit
	ScalarDecimals = config.KeyDecimals
)

// Operation is one user edit. Operations are plain values so an edit sequence
// can be recorded and replayed.
type Operation interface {
	apply(cfg *config.CardConfig)
}

// AddLegendItem appends an empty legend row.
type AddLegendItem struct{}

// RemoveLegendItem deletes the row at Index; later rows shift down.
type RemoveLegendItem struct {
	Index int
}

// SetLegendField changes one column of the row at Index from raw input text.
type SetLegendField struct {
	Index int
	Field LegendField
	Raw   string
}

// SetTapAction merges Patch into the card tap action.
type SetTapAction struct {
	Patch ActionPatch
}

// SetIconTapAction merges Patch into the icon tap action.
type SetIconTapAction struct {
	Patch ActionPatch
}

// SetScalarField changes name, icon, unit or decimals from raw input text.
type SetScalarField struct {
	Name string
	Raw  string
}

// SetEntity changes the observed entity.
type SetEntity struct {
	EntityID string
}

// ActionPatch is a partial ActionConfig; nil fields are left as they are.
type ActionPatch struct {
	Action         *config.ActionType
	NavigationPath *string
	URL            *string
}

// WithAction returns a patch that only sets the action type.
func WithAction(action config.ActionType) ActionPatch {
	return ActionPatch{Action: &action}
}

// WithNavigationPath returns a patch that only sets the navigation path.
func WithNavigationPath(path string) ActionPatch {
	return ActionPatch{NavigationPath: &path}
}

// WithURL returns a patch that only sets the URL.
func WithURL(url string) ActionPatch {
	return ActionPatch{URL: &url}
}

func (AddLegendItem) apply(cfg *config.CardConfig) {
	cfg.LegendItems = append(cfg.LegendItems, config.LegendItem{})
}

func (op RemoveLegendItem) apply(cfg *config.CardConfig) {
	if op.Index < 0 || op.Index >= len(cfg.LegendItems) {
		return
	}
	items := make([]config.LegendItem, 0, len(cfg.LegendItems)-1)
	items = append(items, cfg.LegendItems[:op.Index]...)
	items = append(items, cfg.LegendItems[op.Index+1:]...)
	cfg.LegendItems = items
}

func (op SetLegendField) apply(cfg *config.CardConfig) {
	if op.Index < 0 || op.Index >= len(cfg.LegendItems) {
		return
	}
	item := &cfg.LegendItems[op.Index]

	switch op.Field {
	case FieldText:
		item.Text = op.Raw
	case FieldColor:
		item.Color = op.Raw
	case FieldMin:
		item.Min = boundFromInput(op.Raw)
	case FieldMax:
		item.Max = boundFromInput(op.Raw)
	}
}

// boundFromInput returns nil for blank or non-numeric text, deleting the bound.
func boundFromInput(raw string) *float64 {
	n, ok := config.ParseNumber(raw)
	if !ok {
		return nil
	}
	return config.Float(n)
}

func (op SetTapAction) apply(cfg *config.CardConfig) {
	cfg.TapAction = op.Patch.mergeInto(cfg.TapAction)
}

func (op SetIconTapAction) apply(cfg *config.CardConfig) {
	cfg.IconTapAction = op.Patch.mergeInto(cfg.IconTapAction)
}

// mergeInto applies the patch on a copy of existing. The more-info default is
// only used when there was no sub-config before.
func (p ActionPatch) mergeInto(existing *config.ActionConfig) *config.ActionConfig {
	merged := existing.Clone()
	if merged == nil {
		merged = &config.ActionConfig{Action: config.ActionMoreInfo}
	}

	if p.Action != nil {
		merged.Action = *p.Action
		if merged.Action == "" {
			merged.Action = config.ActionMoreInfo
		}
	}
	if p.NavigationPath != nil {
		merged.NavigationPath = *p.NavigationPath
	}
	if p.URL != nil {
		merged.URL = *p.URL
	}
	return merged
}

func (op SetScalarField) apply(cfg *config.CardConfig) {
	switch op.Name {
	case ScalarName:
		cfg.Name = stringOrAbsent(op.Raw)
	case ScalarUnit:
		cfg.Unit = stringOrAbsent(op.Raw)
	case ScalarIcon:
		// An empty icon is kept as "" so the card derives one; nil would mean
		// the key was never written.
		cfg.Icon = config.String(op.Raw)
	case ScalarDecimals:
		if op.Raw == "" {
			cfg.Decimals = nil
			return
		}
		if n, ok := config.ParseNumber(op.Raw); ok {
			cfg.Decimals = config.Int(int(math.Trunc(n)))
		}
	}
}

func stringOrAbsent(raw string) *string {
	if raw == "" {
		return nil
	}
	return config.String(raw)
}

func (op SetEntity) apply(cfg *config.CardConfig) {
	cfg.Entity = op.EntityID
}
