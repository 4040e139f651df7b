package transactions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/store"
	"github.com/dmitrijs2005/oryn/internal/validate"
)

type StoreRepository struct {
	st *store.Store
}

func NewRepository(st *store.Store) *StoreRepository {
	return &StoreRepository{st: st}
}

func (r *StoreRepository) Append(ctx context.Context, tx models.Transaction) error {
	if err := validate.Struct(tx); err != nil {
		return err
	}

	list, err := store.Fetch(ctx, r.st, store.KeyTransactions, store.Empty[[]models.Transaction]())
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	if err := store.Save(ctx, r.st, store.KeyTransactions, append(list, tx)); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

func (r *StoreRepository) List(ctx context.Context) []models.Transaction {
	return store.Load(ctx, r.st, store.KeyTransactions, store.Empty[[]models.Transaction]())
}
