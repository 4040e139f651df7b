package ratings

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

func (r *StoreRepository) Append(ctx context.Context, rating models.Rating) error {
	if err := validate.Struct(rating); err != nil {
		return err
	}

	list, err := store.Fetch(ctx, r.st, store.KeyRatings, store.Empty[[]models.Rating]())
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}
	if err := store.Save(ctx, r.st, store.KeyRatings, append(list, rating)); err != nil {
		return fmt.Errorf("failed to save ratings: %w", err)
	}
	return nil
}

func (r *StoreRepository) List(ctx context.Context) []models.Rating {
	return store.Load(ctx, r.st, store.KeyRatings, store.Empty[[]models.Rating]())
}
