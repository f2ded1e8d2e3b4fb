package action

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/model"
	cardErrors "github.com/alexisbeaulieu97/legendcard/pkg/errors"
)

type fakeHost struct {
	calls []string
	fail  map[string]error
}

func (h *fakeHost) record(call string) error {
	h.calls = append(h.calls, call)
	return h.fail[call]
}

func (h *fakeHost) State(string) (*model.ObservedState, bool) { return nil, false }

func (h *fakeHost) Toggle(_ context.Context, id string) error { return h.record("toggle:" + id) }

func (h *fakeHost) ShowMoreInfo(_ context.Context, id string) error {
	return h.record("more-info:" + id)
}

func (h *fakeHost) Navigate(_ context.Context, path string) error {
	return h.record("navigate:" + path)
}

func (h *fakeHost) AnnounceLocationChange(context.Context) error {
	return h.record("location-changed")
}

func (h *fakeHost) OpenURL(_ context.Context, url string) error { return h.record("open:" + url) }

func TestDispatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		entity  string
		cfg     *config.ActionConfig
		outcome Outcome
		calls   []string
	}{
		{
			name:    "absent config is more-info",
			entity:  "sensor.x",
			outcome: OutcomeMoreInfo,
			calls:   []string{"more-info:sensor.x"},
		},
		{
			name:    "missing action is more-info",
			entity:  "sensor.x",
			cfg:     &config.ActionConfig{NavigationPath: "/ignored"},
			outcome: OutcomeMoreInfo,
			calls:   []string{"more-info:sensor.x"},
		},
		{
			name:    "more-info without entity",
			cfg:     &config.ActionConfig{Action: config.ActionMoreInfo},
			outcome: OutcomeSkipped,
		},
		{
			name:    "none",
			entity:  "sensor.x",
			cfg:     &config.ActionConfig{Action: config.ActionNone},
			outcome: OutcomeNone,
		},
		{
			name:    "toggle",
			entity:  "switch.fan",
			cfg:     &config.ActionConfig{Action: config.ActionToggle},
			outcome: OutcomeToggled,
			calls:   []string{"toggle:switch.fan"},
		},
		{
			name:    "toggle without entity",
			cfg:     &config.ActionConfig{Action: config.ActionToggle},
			outcome: OutcomeSkipped,
		},
		{
			name:    "navigate without path",
			entity:  "sensor.x",
			cfg:     &config.ActionConfig{Action: config.ActionNavigate},
			outcome: OutcomeSkipped,
		},
		{
			name:    "navigate",
			entity:  "sensor.x",
			cfg:     &config.ActionConfig{Action: config.ActionNavigate, NavigationPath: "/x"},
			outcome: OutcomeNavigated,
			calls:   []string{"navigate:/x", "location-changed"},
		},
		{
			name:    "url without target",
			entity:  "sensor.x",
			cfg:     &config.ActionConfig{Action: config.ActionURL},
			outcome: OutcomeSkipped,
		},
		{
			name:    "url",
			entity:  "sensor.x",
			cfg:     &config.ActionConfig{Action: config.ActionURL, URL: "https://example.com"},
			outcome: OutcomeOpenedURL,
			calls:   []string{"open:https://example.com"},
		},
		{
			name:    "unknown action",
			entity:  "sensor.x",
			cfg:     &config.ActionConfig{Action: "explode"},
			outcome: OutcomeIgnored,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			host := &fakeHost{}
			outcome, err := NewDispatcher(host, nil).Dispatch(context.Background(), tc.entity, tc.cfg)
			require.NoError(t, err)
			require.Equal(t, tc.outcome, outcome)
			require.Equal(t, tc.calls, host.calls)
		})
	}
}

func TestDispatchIsRepeatable(t *testing.T) {
	t.Parallel()

	host := &fakeHost{}
	d := NewDispatcher(host, nil)
	cfg := &config.ActionConfig{Action: config.ActionNavigate, NavigationPath: "/x"}

	for i := 0; i < 3; i++ {
		outcome, err := d.Dispatch(context.Background(), "sensor.x", cfg)
		require.NoError(t, err)
		require.Equal(t, OutcomeNavigated, outcome)
	}
	require.Len(t, host.calls, 6)
}

func TestDispatchSurfacesHostFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("service unavailable")
	host := &fakeHost{fail: map[string]error{"navigate:/x": boom}}

	outcome, err := NewDispatcher(host, nil).Dispatch(context.Background(), "sensor.x",
		&config.ActionConfig{Action: config.ActionNavigate, NavigationPath: "/x"})

	require.Equal(t, OutcomeNavigated, outcome)
	var hostErr *cardErrors.HostError
	require.ErrorAs(t, err, &hostErr)
	require.Equal(t, "navigate", hostErr.Op)
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"navigate:/x"}, host.calls, "location change is not announced after a failed navigation")
}

func TestDispatchWithoutHost(t *testing.T) {
	t.Parallel()

	outcome, err := NewDispatcher(nil, nil).Dispatch(context.Background(), "sensor.x", nil)
	require.NoError(t, err)
	require.Equal(t, OutcomeSkipped, outcome)
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "navigated", OutcomeNavigated.String())
	require.Equal(t, "Outcome(42)", Outcome(42).String())
}
