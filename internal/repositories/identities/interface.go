// Package identities keeps a directory of every identity that ever signed in.
package identities

import (
	"context"

	"github.com/dmitrijs2005/oryn/internal/models"
)

// Repository describes the identity directory.
type Repository interface {
	// Upsert replaces the identity with the same ID or appends it.
	Upsert(ctx context.Context, identity models.Identity) error

	// List returns identities in first-seen order.
	List(ctx context.Context) []models.Identity

	// Get looks an identity up by ID.
	Get(ctx context.Context, id string) (models.Identity, bool)
}
