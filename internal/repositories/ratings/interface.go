// Package ratings stores platform ratings. Aggregation is left to callers.
package ratings

import (
	"context"

	"github.com/dmitrijs2005/oryn/internal/models"
)

type Repository interface {
	// Append adds a rating; stars must be within [1,5]. Several ratings per
	// identity are allowed.
	Append(ctx context.Context, rating models.Rating) error

	// List returns ratings in submission order.
	List(ctx context.Context) []models.Rating
}
