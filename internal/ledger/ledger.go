// Package ledger enforces one vote per identity. The ownership map and the
// contestant tally are committed together so that a recorded vote always has
// its matching increment.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/oryn/internal/common"
	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/dmitrijs2005/oryn/internal/repositories/contestants"
	"github.com/dmitrijs2005/oryn/internal/store"
)

type Ledger struct {
	mu  sync.Mutex
	st  *store.Store
	log logging.Logger
}

func New(st *store.Store, log logging.Logger) *Ledger {
	return &Ledger{st: st, log: log.With("component", "ledger")}
}

// CastVote records identityID's vote for contestantID and increments the
// contestant's tally by one.
//
// It returns false with a nil error when the identity has already voted, and
// common.ErrNotFound when the contestant does not exist. In both cases nothing
// is written.
func (l *Ledger) CastVote(ctx context.Context, identityID, contestantID string) (bool, error) {
	if identityID == "" {
		return false, fmt.Errorf("%w: identity id is required", common.ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cast := false
	err := l.st.Atomically(ctx, func(ctx context.Context, tx *store.Store) error {
		votes, err := store.Fetch(ctx, tx, store.KeyVotes, store.Empty[map[string]string]())
		if err != nil {
			return fmt.Errorf("failed to load votes: %w", err)
		}
		if _, voted := votes[identityID]; voted {
			return nil
		}

		found, err := contestants.NewRepository(tx).AdjustTally(ctx, contestantID, 1)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: contestant %q", common.ErrNotFound, contestantID)
		}

		if votes == nil {
			votes = make(map[string]string)
		}
		votes[identityID] = contestantID
		if err := store.Save(ctx, tx, store.KeyVotes, votes); err != nil {
			return fmt.Errorf("failed to save votes: %w", err)
		}

		cast = true
		return nil
	})
	if err != nil {
		l.log.Warn(ctx, "vote rejected", "identity", identityID, "contestant", contestantID, "error", err)
		return false, err
	}

	if cast {
		l.log.Info(ctx, "vote cast", "identity", identityID, "contestant", contestantID)
	} else {
		l.log.Debug(ctx, "identity already voted", "identity", identityID)
	}
	return cast, nil
}

// VoteOf returns the contestant identityID voted for.
func (l *Ledger) VoteOf(ctx context.Context, identityID string) (string, bool) {
	id, ok := l.Ownership(ctx)[identityID]
	return id, ok
}

// Ownership returns a snapshot of the identity to contestant map.
func (l *Ledger) Ownership(ctx context.Context) map[string]string {
	votes := store.Load(ctx, l.st, store.KeyVotes, store.Empty[map[string]string]())
	if votes == nil {
		votes = make(map[string]string)
	}
	return votes
}
