// Package transactions records vote-package purchases. The log is
// append-only; settling a transaction happens outside the application.
package transactions

import (
	"context"

	"github.com/dmitrijs2005/oryn/internal/models"
)

type Repository interface {
	// Append adds tx to the end of the log without deduplication.
	Append(ctx context.Context, tx models.Transaction) error

	// List returns the log in append order.
	List(ctx context.Context) []models.Transaction
}
