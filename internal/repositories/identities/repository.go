package identities

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/oryn/internal/common"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/store"
)

type StoreRepository struct {
	st *store.Store
}

func NewRepository(st *store.Store) *StoreRepository {
	return &StoreRepository{st: st}
}

func (r *StoreRepository) Upsert(ctx context.Context, identity models.Identity) error {
	if strings.TrimSpace(identity.ID) == "" {
		return fmt.Errorf("%w: identity id is required", common.ErrInvalidInput)
	}

	list, err := store.Fetch(ctx, r.st, store.KeyIdentities, store.Empty[[]models.Identity]())
	if err != nil {
		return fmt.Errorf("failed to load identities: %w", err)
	}

	replaced := false
	for i := range list {
		if list[i].ID == identity.ID {
			list[i] = identity
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, identity)
	}

	if err := store.Save(ctx, r.st, store.KeyIdentities, list); err != nil {
		return fmt.Errorf("failed to save identities: %w", err)
	}
	return nil
}

func (r *StoreRepository) List(ctx context.Context) []models.Identity {
	return store.Load(ctx, r.st, store.KeyIdentities, store.Empty[[]models.Identity]())
}

func (r *StoreRepository) Get(ctx context.Context, id string) (models.Identity, bool) {
	for _, identity := range r.List(ctx) {
		if identity.ID == id {
			return identity, true
		}
	}
	return models.Identity{}, false
}
