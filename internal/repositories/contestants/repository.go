package contestants

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/oryn/internal/common"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/store"
	"github.com/dmitrijs2005/oryn/internal/validate"
)

// StoreRepository implements Repository over a store.Store.
type StoreRepository struct {
	st *store.Store
}

func NewRepository(st *store.Store) *StoreRepository {
	return &StoreRepository{st: st}
}

func (r *StoreRepository) List(ctx context.Context) []models.Contestant {
	return store.Load(ctx, r.st, store.KeyContestants, models.DefaultContestants)
}

func (r *StoreRepository) Get(ctx context.Context, id string) (models.Contestant, bool) {
	for _, c := range r.List(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contestant{}, false
}

// load is the read half of read-modify-write: unlike List it surfaces backend
// failures so a transient error never overwrites the roster with the seed.
func (r *StoreRepository) load(ctx context.Context) ([]models.Contestant, error) {
	list, err := store.Fetch(ctx, r.st, store.KeyContestants, models.DefaultContestants)
	if err != nil {
		return nil, fmt.Errorf("failed to load contestants: %w", err)
	}
	return list, nil
}

func (r *StoreRepository) save(ctx context.Context, list []models.Contestant) error {
	if err := store.Save(ctx, r.st, store.KeyContestants, list); err != nil {
		return fmt.Errorf("failed to save contestants: %w", err)
	}
	return nil
}

func (r *StoreRepository) Add(ctx context.Context, c models.Contestant) error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	return r.st.Atomically(ctx, func(ctx context.Context, tx *store.Store) error {
		repo := NewRepository(tx)
		list, err := repo.load(ctx)
		if err != nil {
			return err
		}
		for _, existing := range list {
			if existing.ID == c.ID {
				return fmt.Errorf("%w: contestant id %q already exists", common.ErrInvalidInput, c.ID)
			}
		}
		return repo.save(ctx, append(list, c))
	})
}

func (r *StoreRepository) Remove(ctx context.Context, id string) (bool, error) {
	removed := false
	err := r.st.Atomically(ctx, func(ctx context.Context, tx *store.Store) error {
		repo := NewRepository(tx)
		list, err := repo.load(ctx)
		if err != nil {
			return err
		}

		kept := make([]models.Contestant, 0, len(list))
		for _, c := range list {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(list) {
			return nil
		}
		removed = true
		return repo.save(ctx, kept)
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (r *StoreRepository) AdjustTally(ctx context.Context, id string, delta int) (bool, error) {
	found := false
	err := r.st.Atomically(ctx, func(ctx context.Context, tx *store.Store) error {
		repo := NewRepository(tx)
		list, err := repo.load(ctx)
		if err != nil {
			return err
		}

		for i := range list {
			if list[i].ID != id {
				continue
			}
			found = true
			list[i].Votes = addTally(list[i].Votes, delta)
			return repo.save(ctx, list)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// addTally returns votes+delta clamped to [0, math.MaxInt].
func addTally(votes, delta int) int {
	if delta > 0 && votes > math.MaxInt-delta {
		return math.MaxInt
	}
	return max(0, votes+delta)
}
