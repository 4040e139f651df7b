// Package audit keeps the bounded, most-recent-first log of privileged
// mutations.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/oryn/internal/common"
	"github.com/dmitrijs2005/oryn/internal/models"
	"github.com/dmitrijs2005/oryn/internal/store"
	"github.com/google/uuid"
)

// Log records audit entries in a store collection capped at capacity.
type Log struct {
	st       *store.Store
	capacity int
	now      func() time.Time
}

type Option func(*Log)

// WithCapacity overrides the number of retained entries. Non-positive values
// are ignored.
func WithCapacity(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.capacity = n
		}
	}
}

// WithClock sets the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

func New(st *store.Store, opts ...Option) *Log {
	l := &Log{st: st, capacity: common.DefaultAuditCapacity, now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Record prepends an entry and drops everything past capacity.
func (l *Log) Record(ctx context.Context, actorID, actorName, action, target string) error {
	entries, err := store.Fetch(ctx, l.st, store.KeyAudit, store.Empty[[]models.AuditEntry]())
	if err != nil {
		return fmt.Errorf("failed to load audit log: %w", err)
	}

	entry := models.AuditEntry{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		ActorName: actorName,
		Action:    action,
		Target:    target,
		Timestamp: l.now().UTC(),
	}

	next := make([]models.AuditEntry, 0, min(len(entries)+1, l.capacity))
	next = append(next, entry)
	for _, e := range entries {
		if len(next) == l.capacity {
			break
		}
		next = append(next, e)
	}

	if err := store.Save(ctx, l.st, store.KeyAudit, next); err != nil {
		return fmt.Errorf("failed to save audit log: %w", err)
	}
	return nil
}

// List returns entries most recent first.
func (l *Log) List(ctx context.Context) []models.AuditEntry {
	return store.Load(ctx, l.st, store.KeyAudit, store.Empty[[]models.AuditEntry]())
}
