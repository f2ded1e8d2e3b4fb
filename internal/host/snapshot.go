// Package host provides a file-backed ports.Host for driving the card outside
// a live dashboard.
package host

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/alexisbeaulieu97/legendcard/internal/logger"
	"github.com/alexisbeaulieu97/legendcard/internal/model"
	cardErrors "github.com/alexisbeaulieu97/legendcard/pkg/errors"
)

// Effect operation names recorded by SnapshotHost.
const (
	OpToggle          = "toggle"
	OpMoreInfo        = "more-info"
	OpNavigate        = "navigate"
	OpLocationChanged = "location-changed"
	OpOpenURL         = "open-url"
)

// Effect is one capability invocation the card asked the host for.
type Effect struct {
	Op     string `json:"op"`
	Target string `json:"target,omitempty"`
}

func (e Effect) String() string {
	if e.Target == "" {
		return e.Op
	}
	return e.Op + " " + e.Target
}

// SnapshotHost answers state lookups from a JSON snapshot and records every
// effect instead of performing it.
//
// The snapshot is either the array returned by the Home Assistant
// /api/states endpoint or an object keyed by entity id. It is not safe for
// concurrent use.
type SnapshotHost struct {
	data      []byte
	overrides map[string]string
	effects   []Effect
	log       *logger.Logger
}

// NewSnapshotHost validates data and returns a host reading from it.
func NewSnapshotHost(data []byte, log *logger.Logger) (*SnapshotHost, error) {
	if !gjson.ValidBytes(data) {
		return nil, cardErrors.NewHostError("load snapshot", errors.New("invalid JSON"))
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() && !root.IsObject() {
		return nil, cardErrors.NewHostError("load snapshot", fmt.Errorf("expected an array or object of states, got %s", root.Type))
	}
	return &SnapshotHost{
		data:      data,
		overrides: make(map[string]string),
		log:       log,
	}, nil
}

// State returns the snapshot entry for entityID.
func (h *SnapshotHost) State(entityID string) (*model.ObservedState, bool) {
	if entityID == "" {
		return nil, false
	}

	entry := h.lookup(entityID)
	if !entry.Exists() || !entry.IsObject() {
		return nil, false
	}

	state := model.ObservedState{
		EntityID: entry.Get("entity_id").String(),
		State:    entry.Get("state").String(),
	}
	if state.EntityID == "" {
		state.EntityID = entityID
	}
	if attrs, ok := entry.Get("attributes").Value().(map[string]any); ok {
		state.Attributes = attrs
	}
	if override, ok := h.overrides[entityID]; ok {
		state.State = override
	}
	return &state, true
}

func (h *SnapshotHost) lookup(entityID string) gjson.Result {
	root := gjson.ParseBytes(h.data)
	if root.IsArray() {
		return root.Get(`#(entity_id==` + strconv.Quote(entityID) + `)`)
	}
	return root.Get(gjson.Escape(entityID))
}

// Toggle flips an on/off entity in the snapshot so later reads reflect it.
func (h *SnapshotHost) Toggle(_ context.Context, entityID string) error {
	if state, ok := h.State(entityID); ok {
		switch state.State {
		case model.StateOn:
			h.overrides[entityID] = model.StateOff
		case model.StateOff:
			h.overrides[entityID] = model.StateOn
		}
	}
	h.record(OpToggle, entityID)
	return nil
}

// ShowMoreInfo records a request for the entity details dialog.
func (h *SnapshotHost) ShowMoreInfo(_ context.Context, entityID string) error {
	h.record(OpMoreInfo, entityID)
	return nil
}

// Navigate records a location change.
func (h *SnapshotHost) Navigate(_ context.Context, path string) error {
	h.record(OpNavigate, path)
	return nil
}

// AnnounceLocationChange records the router notification.
func (h *SnapshotHost) AnnounceLocationChange(context.Context) error {
	h.record(OpLocationChanged, "")
	return nil
}

// OpenURL records an external link.
func (h *SnapshotHost) OpenURL(_ context.Context, url string) error {
	h.record(OpOpenURL, url)
	return nil
}

// Effects returns the effects recorded so far, oldest first.
func (h *SnapshotHost) Effects() []Effect {
	out := make([]Effect, len(h.effects))
	copy(out, h.effects)
	return out
}

func (h *SnapshotHost) record(op, target string) {
	h.effects = append(h.effects, Effect{Op: op, Target: target})
	if target == "" {
		h.log.Info("host effect", "op", op)
		return
	}
	h.log.Info("host effect", "op", op, "target", target)
}
