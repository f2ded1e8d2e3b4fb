package card

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/legendcard/internal/action"
	"github.com/alexisbeaulieu97/legendcard/internal/logger"
	"github.com/alexisbeaulieu97/legendcard/internal/model"
	cardErrors "github.com/alexisbeaulieu97/legendcard/pkg/errors"
)

type fakeHost struct {
	states map[string]*model.ObservedState
	calls  []string
}

func (h *fakeHost) State(id string) (*model.ObservedState, bool) {
	s, ok := h.states[id]
	return s, ok
}

func (h *fakeHost) Toggle(_ context.Context, id string) error {
	h.calls = append(h.calls, "toggle:"+id)
	return nil
}

func (h *fakeHost) ShowMoreInfo(_ context.Context, id string) error {
	h.calls = append(h.calls, "more-info:"+id)
	return nil
}

func (h *fakeHost) Navigate(_ context.Context, path string) error {
	h.calls = append(h.calls, "navigate:"+path)
	return nil
}

func (h *fakeHost) AnnounceLocationChange(context.Context) error {
	h.calls = append(h.calls, "location-changed")
	return nil
}

func (h *fakeHost) OpenURL(_ context.Context, url string) error {
	h.calls = append(h.calls, "open:"+url)
	return nil
}

func newHost() *fakeHost {
	return &fakeHost{states: map[string]*model.ObservedState{
		"sensor.pool_ph": {
			EntityID:   "sensor.pool_ph",
			State:      "7.44",
			Attributes: map[string]any{"friendly_name": "Pool pH"},
		},
	}}
}

func poolConfig() map[string]any {
	return map[string]any{
		"entity":   "sensor.pool_ph",
		"decimals": 1,
		"legend_items": []any{
			map[string]any{"text": "Acidic", "color": "#e67e22", "max": 7.2},
			map[string]any{"text": "Ideal", "color": "#27ae60", "min": 7.2, "max": 7.6},
			map[string]any{"text": "Basic", "color": "#8e44ad", "min": 7.6},
		},
		"tap_action":      map[string]any{"action": "navigate", "navigation_path": "/lovelace/pool"},
		"icon_tap_action": map[string]any{"action": "more-info"},
	}
}

func TestViewRequiresConfig(t *testing.T) {
	t.Parallel()

	c := New(newHost(), logger.Nop())

	_, err := c.View(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.Tap(context.Background(), TargetBody)
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestSetConfigSurfacesMissingEntity(t *testing.T) {
	t.Parallel()

	c := New(newHost(), logger.Nop())
	require.NoError(t, c.SetConfig(poolConfig()))

	err := c.SetConfig(map[string]any{"name": "No entity"})
	require.True(t, errors.Is(err, cardErrors.ErrMissingEntity))
	require.Equal(t, "sensor.pool_ph", c.Config().Entity, "previous configuration is kept")
}

func TestView(t *testing.T) {
	t.Parallel()

	c := New(newHost(), logger.Nop())
	require.NoError(t, c.SetConfig(poolConfig()))

	vm, err := c.View(context.Background())
	require.NoError(t, err)
	require.Equal(t, "7.4", vm.DisplayText)
	require.Equal(t, "#27ae60", vm.Color)
	require.Equal(t, "Pool pH", vm.Name)
	require.Equal(t, "mdi:gauge", vm.Icon)
	require.Len(t, vm.LegendRows, 3)
}

func TestViewWithoutState(t *testing.T) {
	t.Parallel()

	c := New(&fakeHost{}, logger.Nop())
	require.NoError(t, c.SetConfig(poolConfig()))

	vm, err := c.View(context.Background())
	require.NoError(t, err)
	require.Equal(t, "N/A", vm.DisplayText)
	require.False(t, vm.HasColor)
}

func TestBodyTapUsesTapAction(t *testing.T) {
	t.Parallel()

	host := newHost()
	c := New(host, logger.Nop())
	require.NoError(t, c.SetConfig(poolConfig()))

	outcome, err := c.Tap(context.Background(), TargetBody)
	require.NoError(t, err)
	require.Equal(t, action.OutcomeNavigated, outcome)
	require.Equal(t, []string{"navigate:/lovelace/pool", "location-changed"}, host.calls)
}

func TestIconTapNeverFiresBodyAction(t *testing.T) {
	t.Parallel()

	host := newHost()
	c := New(host, logger.Nop())
	require.NoError(t, c.SetConfig(poolConfig()))

	outcome, err := c.Tap(context.Background(), TargetIcon)
	require.NoError(t, err)
	require.Equal(t, action.OutcomeMoreInfo, outcome)
	require.Equal(t, []string{"more-info:sensor.pool_ph"}, host.calls)
}

func TestIconTapWithoutIconActionIsMoreInfo(t *testing.T) {
	t.Parallel()

	raw := poolConfig()
	delete(raw, "icon_tap_action")

	host := newHost()
	c := New(host, logger.Nop())
	require.NoError(t, c.SetConfig(raw))

	outcome, err := c.Tap(context.Background(), TargetIcon)
	require.NoError(t, err)
	require.Equal(t, action.OutcomeMoreInfo, outcome)
	require.Equal(t, []string{"more-info:sensor.pool_ph"}, host.calls)
}

func TestSuppressedIconTapIsNoop(t *testing.T) {
	t.Parallel()

	raw := poolConfig()
	raw["icon"] = "none"

	host := newHost()
	c := New(host, logger.Nop())
	require.NoError(t, c.SetConfig(raw))

	outcome, err := c.Tap(context.Background(), TargetIcon)
	require.NoError(t, err)
	require.Equal(t, action.OutcomeSkipped, outcome)
	require.Empty(t, host.calls)
}

func TestObserveSwitchesHost(t *testing.T) {
	t.Parallel()

	c := New(nil, logger.Nop())
	require.NoError(t, c.SetConfig(poolConfig()))

	outcome, err := c.Tap(context.Background(), TargetBody)
	require.NoError(t, err)
	require.Equal(t, action.OutcomeSkipped, outcome)

	host := newHost()
	c.Observe(host)
	_, err = c.Tap(context.Background(), TargetBody)
	require.NoError(t, err)
	require.NotEmpty(t, host.calls)
}

func TestStubConfigNormalizes(t *testing.T) {
	t.Parallel()

	c := New(nil, logger.Nop())
	require.NoError(t, c.SetConfig(StubConfig()))

	cfg := c.Config()
	require.Equal(t, "sensor.example", cfg.Entity)
	require.Equal(t, 0, *cfg.Decimals)
	require.Equal(t, "", *cfg.Unit)
	require.Empty(t, cfg.LegendItems)
	require.Equal(t, 2, c.Size())
}
