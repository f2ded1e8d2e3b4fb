// Package editor keeps an editable card configuration in sync with user input.
//
// Every edit rebuilds the whole configuration from the in-memory state and
// reports it; there are no partial or diffed updates. Apply is the pure core:
// the same starting State and the same sequence of operations always produce
// identical configurations. Editor wraps it with ownership and change
// notification.
package editor

import (
	"github.com/alexisbeaulieu97/legendcard/internal/config"
)

// State is an immutable snapshot of the editor. The zero value is an empty
// configuration with no entity.
type State struct {
	cfg config.CardConfig
}

// NewState prepares a configuration for editing. Legend items are copied so the
// caller's slice is never shared, decimals defaults to zero and the card type is
// stamped when missing.
func NewState(cfg config.CardConfig) State {
	owned := cfg.Clone()
	if owned.Decimals == nil {
		owned.Decimals = config.Int(0)
	}
	if owned.LegendItems == nil {
		owned.LegendItems = []config.LegendItem{}
	}
	if _, ok := owned.Extra[config.KeyType]; !ok {
		if owned.Extra == nil {
			owned.Extra = make(map[string]any)
		}
		owned.Extra[config.KeyType] = config.CardType
	}
	return State{cfg: owned}
}

// NewStateFromRaw decodes a loosely-typed configuration for editing. Unlike
// config.Normalize it accepts configurations without an entity.
func NewStateFromRaw(raw map[string]any) State {
	return NewState(config.Decode(raw))
}

// Config returns a copy of the configuration the state represents.
func (s State) Config() config.CardConfig {
	return s.cfg.Clone()
}

// Apply performs op on a copy of s and returns the new state together with the
// configuration to emit. s itself is left unchanged.
func Apply(s State, op Operation) (State, config.CardConfig) {
	next := s.cfg.Clone()
	if next.LegendItems == nil {
		next.LegendItems = []config.LegendItem{}
	}
	if op != nil {
		op.apply(&next)
	}
	state := State{cfg: next}
	return state, state.Config()
}

// Replay applies ops in order starting from s and returns the final state and
// the last emitted configuration.
func Replay(s State, ops ...Operation) (State, config.CardConfig) {
	cfg := s.Config()
	for _, op := range ops {
		s, cfg = Apply(s, op)
	}
	return s, cfg
}
