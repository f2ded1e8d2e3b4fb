package editor

import (
	"github.com/alexisbeaulieu97/legendcard/internal/config"
)

// Listener receives the rebuilt configuration after every edit.
type Listener func(cfg config.CardConfig)

// Editor owns one editable configuration and notifies listeners synchronously,
// once per operation, before the operation call returns.
//
// Editor is not safe for concurrent use; each editor instance belongs to a
// single interaction loop.
type Editor struct {
	state     State
	listeners []Listener
}

// New creates an editor for cfg.
func New(cfg config.CardConfig, listeners ...Listener) *Editor {
	return &Editor{state: NewState(cfg), listeners: listeners}
}

// OnChange registers an additional listener.
func (e *Editor) OnChange(l Listener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

// SetConfig replaces the edited configuration without emitting a change.
func (e *Editor) SetConfig(cfg config.CardConfig) {
	e.state = NewState(cfg)
}

// State returns the current state.
func (e *Editor) State() State {
	return e.state
}

// Config returns a copy of the current configuration.
func (e *Editor) Config() config.CardConfig {
	return e.state.Config()
}

// Apply performs op, emits the rebuilt configuration and returns it.
func (e *Editor) Apply(op Operation) config.CardConfig {
	var cfg config.CardConfig
	e.state, cfg = Apply(e.state, op)
	for _, l := range e.listeners {
		if l != nil {
			l(cfg.Clone())
		}
	}
	return cfg
}

// AddLegendItem appends an empty legend row.
func (e *Editor) AddLegendItem() config.CardConfig {
	return e.Apply(AddLegendItem{})
}

// RemoveLegendItem deletes the row at index; out-of-range indexes change nothing.
func (e *Editor) RemoveLegendItem(index int) config.CardConfig {
	return e.Apply(RemoveLegendItem{Index: index})
}

// SetLegendField updates one column of a legend row from raw input text.
func (e *Editor) SetLegendField(index int, field LegendField, raw string) config.CardConfig {
	return e.Apply(SetLegendField{Index: index, Field: field, Raw: raw})
}

// SetTapAction merges patch into the card tap action.
func (e *Editor) SetTapAction(patch ActionPatch) config.CardConfig {
	return e.Apply(SetTapAction{Patch: patch})
}

// SetIconTapAction merges patch into the icon tap action.
func (e *Editor) SetIconTapAction(patch ActionPatch) config.CardConfig {
	return e.Apply(SetIconTapAction{Patch: patch})
}

// SetScalarField updates name, icon, unit or decimals from raw input text.
func (e *Editor) SetScalarField(name, raw string) config.CardConfig {
	return e.Apply(SetScalarField{Name: name, Raw: raw})
}

// SetEntity changes the observed entity.
func (e *Editor) SetEntity(entityID string) config.CardConfig {
	return e.Apply(SetEntity{EntityID: entityID})
}
