package contestants

import (
	"context"

	"github.com/dmitrijs2005/oryn/internal/models"
)

// Repository describes operations on the contestant roster.
type Repository interface {
	// List returns the roster in persisted order, or the seed when the
	// roster was never written.
	List(ctx context.Context) []models.Contestant

	// Get looks a contestant up by id.
	Get(ctx context.Context, id string) (models.Contestant, bool)

	// Add appends a contestant; empty names and duplicate ids are rejected.
	Add(ctx context.Context, c models.Contestant) error

	// Remove deletes a contestant, reporting whether it existed.
	Remove(ctx context.Context, id string) (bool, error)

	// AdjustTally adds delta to the tally, clamping at zero and saturating at
	// math.MaxInt, and reports whether the contestant existed. A missing id is
	// a no-op. Mutations run as one store.Atomically unit.
	AdjustTally(ctx context.Context, id string, delta int) (bool, error)
}
