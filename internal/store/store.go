// Package store is the persistence layer of the tournament: a KV port with
// in-memory and SQLite implementations, and typed JSON collections on top.
//
// Reads fail soft. A missing or unparseable collection yields the caller's
// fallback and is never reported as an error; unparseable data is logged.
// Writes overwrite the whole collection.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/oryn/internal/logging"
)

// Collection keys. Each names one independently persisted value.
const (
	KeyIdentities   = "oryn_users"
	KeyContestants  = "oryn_editors"
	KeyTransactions = "oryn_transactions"
	KeyRatings      = "oryn_ratings"
	KeyVotes        = "oryn_votes_map"
	KeyAudit        = "oryn_audit_log"
	KeySession      = "oryn_current_user"
)

// Store binds a KV to a logger and provides typed access via Load, Fetch
// and Save.
type Store struct {
	kv  KV
	log logging.Logger
}

func New(kv KV, log logging.Logger) *Store {
	return &Store{kv: kv, log: log.With("component", "store")}
}

// Atomically runs fn with a Store whose writes commit together.
func (s *Store) Atomically(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	return s.kv.Atomically(ctx, func(ctx context.Context, kv KV) error {
		return fn(ctx, &Store{kv: kv, log: s.log})
	})
}

// Delete removes a collection.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, key)
}

// Fetch decodes the collection at key. Absent or malformed data yields
// fallback() with a nil error; only a backend failure is returned.
func Fetch[T any](ctx context.Context, s *Store, key string, fallback func() T) (T, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return fallback(), err
	}
	if len(raw) == 0 {
		return fallback(), nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn(ctx, "malformed persisted data, using default", "key", key, "error", err)
		return fallback(), nil
	}
	return v, nil
}

// Load is Fetch for callers that cannot act on a backend failure: the
// failure is logged and fallback() returned.
func Load[T any](ctx context.Context, s *Store, key string, fallback func() T) T {
	v, err := Fetch(ctx, s, key, fallback)
	if err != nil {
		s.log.Error(ctx, "store read failed, using default", "key", key, "error", err)
	}
	return v
}

// Save serializes v as JSON and overwrites the collection at key.
func Save[T any](ctx context.Context, s *Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error(ctx, "failed to serialize collection", "key", key, "error", err)
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Empty returns a fallback producing the zero value of T.
func Empty[T any]() func() T {
	return func() T {
		var zero T
		return zero
	}
}
