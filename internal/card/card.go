// Package card binds a configuration, a host and the tap dispatcher into the
// widget a dashboard places on screen.
package card

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/legendcard/internal/action"
	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/icon"
	"github.com/alexisbeaulieu97/legendcard/internal/logger"
	"github.com/alexisbeaulieu97/legendcard/internal/model"
	"github.com/alexisbeaulieu97/legendcard/internal/ports"
	"github.com/alexisbeaulieu97/legendcard/internal/viewmodel"
)

// Size is the layout height the card asks the dashboard for.
const Size = 2

// ErrNotConfigured is returned by View and Tap before a configuration was accepted.
var ErrNotConfigured = errors.New("card has no configuration")

// Target identifies where the user tapped.
type Target int

const (
	// TargetBody is anywhere on the card outside the icon.
	TargetBody Target = iota
	// TargetIcon is the entity icon.
	TargetIcon
)

func (t Target) String() string {
	if t == TargetIcon {
		return "icon"
	}
	return "body"
}

// Card is one sensor legend card. It is not safe for concurrent use.
type Card struct {
	cfg        *config.CardConfig
	host       ports.Host
	dispatcher *action.Dispatcher
	log        *logger.Logger
}

// New creates an unconfigured card observing host.
func New(host ports.Host, log *logger.Logger) *Card {
	c := &Card{log: log}
	c.Observe(host)
	return c
}

// SetConfig normalizes raw and makes it the active configuration. On error the
// previous configuration stays in place and the error is returned unchanged.
func (c *Card) SetConfig(raw map[string]any) error {
	cfg, err := config.Normalize(raw)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log.Debug("configuration accepted", "entity", cfg.Entity, "legend_items", len(cfg.LegendItems))
	return nil
}

// Config returns a copy of the active configuration, or nil when unconfigured.
func (c *Card) Config() *config.CardConfig {
	if c.cfg == nil {
		return nil
	}
	cfg := c.cfg.Clone()
	return &cfg
}

// Observe replaces the host the card reads state from and sends effects to.
func (c *Card) Observe(host ports.Host) {
	c.host = host
	c.dispatcher = action.NewDispatcher(host, c.log)
}

// Size returns the layout height of the card.
func (c *Card) Size() int {
	return Size
}

// View reads the entity's current state and builds what the card displays.
func (c *Card) View(ctx context.Context) (viewmodel.ViewModel, error) {
	if c.cfg == nil {
		return viewmodel.ViewModel{}, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return viewmodel.ViewModel{}, err
	}
	return viewmodel.Build(c.cfg, c.state()), nil
}

// Tap performs the action bound to target. A body tap uses tap_action and an
// icon tap uses icon_tap_action only. Tapping a suppressed icon does nothing.
func (c *Card) Tap(ctx context.Context, target Target) (action.Outcome, error) {
	if c.cfg == nil {
		return action.OutcomeSkipped, ErrNotConfigured
	}

	actionCfg := c.cfg.TapAction
	if target == TargetIcon {
		if _, shown := icon.ForState(c.cfg.Entity, c.cfg.Icon, c.state()); !shown {
			return action.OutcomeSkipped, nil
		}
		actionCfg = c.cfg.IconTapAction
	}

	c.log.Debug("tap", "target", target.String(), "entity", c.cfg.Entity)
	return c.dispatcher.Dispatch(ctx, c.cfg.Entity, actionCfg)
}

func (c *Card) state() *model.ObservedState {
	if c.host == nil {
		return nil
	}
	state, ok := c.host.State(c.cfg.Entity)
	if !ok {
		return nil
	}
	return state
}

// StubConfig is the configuration a dashboard inserts when the card is first added.
func StubConfig() map[string]any {
	return map[string]any{
		config.KeyEntity:      "sensor.example",
		config.KeyDecimals:    0,
		config.KeyUnit:        "",
		config.KeyLegendItems: []any{},
	}
}
