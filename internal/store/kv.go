package store

import "context"

// KV is the storage port. Values are opaque bytes; Get returns (nil, nil)
// for an absent key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Atomically runs fn against a KV whose writes become visible together
	// when fn returns nil and are discarded otherwise. Calling Atomically on
	// the KV handed to fn runs the nested fn in the same unit.
	Atomically(ctx context.Context, fn func(ctx context.Context, kv KV) error) error
}
