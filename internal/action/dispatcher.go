// Package action turns a tap on the card into exactly one host effect.
package action

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/legendcard/internal/config"
	"github.com/alexisbeaulieu97/legendcard/internal/logger"
	"github.com/alexisbeaulieu97/legendcard/internal/ports"
	cardErrors "github.com/alexisbeaulieu97/legendcard/pkg/errors"
)

// Outcome records which effect a dispatch produced.
type Outcome int

const (
	// OutcomeNone means the action was "none".
	OutcomeNone Outcome = iota
	// OutcomeToggled means the host toggle capability was invoked.
	OutcomeToggled
	// OutcomeMoreInfo means the host was asked to show entity details.
	OutcomeMoreInfo
	// OutcomeNavigated means the host navigated and announced the change.
	OutcomeNavigated
	// OutcomeOpenedURL means the host opened an external URL.
	OutcomeOpenedURL
	// OutcomeSkipped means a known action lacked its entity, path or URL.
	OutcomeSkipped
	// OutcomeIgnored means the action type is not one the card knows.
	OutcomeIgnored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeToggled:
		return "toggled"
	case OutcomeMoreInfo:
		return "more-info"
	case OutcomeNavigated:
		return "navigated"
	case OutcomeOpenedURL:
		return "opened-url"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeIgnored:
		return "ignored"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Dispatcher performs tap actions against a host. It keeps no state between calls.
type Dispatcher struct {
	host ports.Host
	log  *logger.Logger
}

// NewDispatcher creates a dispatcher. A nil host turns every dispatch into a skip.
func NewDispatcher(host ports.Host, log *logger.Logger) *Dispatcher {
	return &Dispatcher{host: host, log: log}
}

// Dispatch performs the effect described by cfg for entityID.
//
// A nil cfg or a missing action behaves as more-info. Unknown actions are
// ignored without error. The returned error only reports a failure the host
// itself raised while carrying out the effect.
func (d *Dispatcher) Dispatch(ctx context.Context, entityID string, cfg *config.ActionConfig) (Outcome, error) {
	if d == nil || d.host == nil {
		return OutcomeSkipped, nil
	}

	kind := cfg.Kind()
	log := d.log.WithFields(map[string]any{"entity": entityID, "action": string(kind)})

	switch kind {
	case config.ActionNone:
		return OutcomeNone, nil

	case config.ActionToggle:
		if entityID == "" {
			return OutcomeSkipped, nil
		}
		if err := d.host.Toggle(ctx, entityID); err != nil {
			return OutcomeToggled, d.fail(log, "toggle", err)
		}
		log.Debug("toggled entity")
		return OutcomeToggled, nil

	case config.ActionMoreInfo:
		if entityID == "" {
			return OutcomeSkipped, nil
		}
		if err := d.host.ShowMoreInfo(ctx, entityID); err != nil {
			return OutcomeMoreInfo, d.fail(log, "more-info", err)
		}
		log.Debug("requested more-info dialog")
		return OutcomeMoreInfo, nil

	case config.ActionNavigate:
		if cfg.NavigationPath == "" {
			return OutcomeSkipped, nil
		}
		if err := d.host.Navigate(ctx, cfg.NavigationPath); err != nil {
			return OutcomeNavigated, d.fail(log, "navigate", err)
		}
		if err := d.host.AnnounceLocationChange(ctx); err != nil {
			return OutcomeNavigated, d.fail(log, "location-changed", err)
		}
		log.Debug("navigated", "path", cfg.NavigationPath)
		return OutcomeNavigated, nil

	case config.ActionURL:
		if cfg.URL == "" {
			return OutcomeSkipped, nil
		}
		if err := d.host.OpenURL(ctx, cfg.URL); err != nil {
			return OutcomeOpenedURL, d.fail(log, "open-url", err)
		}
		log.Debug("opened url", "url", cfg.URL)
		return OutcomeOpenedURL, nil

	default:
		log.Debug("ignoring unknown action")
		return OutcomeIgnored, nil
	}
}

func (d *Dispatcher) fail(log *logger.Logger, op string, err error) error {
	wrapped := cardErrors.NewHostError(op, err)
	log.Warn("host failed to perform action", "error", err.Error())
	return wrapped
}
