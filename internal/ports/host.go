package ports

import (
	"context"

	"github.com/alexisbeaulieu97/legendcard/internal/model"
)

// StateReader exposes the host's live entity states.
type StateReader interface {
	// State returns the current snapshot for entityID, or ok=false when the
	// host has no state for it. The returned value must not be mutated.
	State(entityID string) (state *model.ObservedState, ok bool)
}

// Host is the set of capabilities the card needs from the runtime embedding it.
// Implementations decide how each effect is carried out; the card never reaches
// into global host objects.
type Host interface {
	StateReader

	// Toggle invokes the generic toggle service on the entity.
	Toggle(ctx context.Context, entityID string) error
	// ShowMoreInfo asks the host to open its details dialog for the entity.
	ShowMoreInfo(ctx context.Context, entityID string) error
	// Navigate changes the host's visible location to path.
	Navigate(ctx context.Context, path string) error
	// AnnounceLocationChange tells the host's router that the location changed.
	AnnounceLocationChange(ctx context.Context) error
	// OpenURL opens url in a new browsing context.
	OpenURL(ctx context.Context, url string) error
}
