package store

import (
	"bytes"
	"context"
	"sync"
)

// Memory is an in-process KV. It is safe for concurrent use; Atomically
// units are serialized with respect to each other.
type Memory struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = bytes.Clone(value)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *Memory) Atomically(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	tx := &memoryTx{parent: m, writes: make(map[string][]byte)}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range tx.writes {
		if v == nil {
			delete(m.data, k)
			continue
		}
		m.data[k] = v
	}
	return nil
}

// memoryTx stages writes on top of its parent; a nil staged value is a delete.
type memoryTx struct {
	parent *Memory
	writes map[string][]byte
}

func (t *memoryTx) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := t.writes[key]; ok {
		return bytes.Clone(v), nil
	}
	return t.parent.Get(ctx, key)
}

func (t *memoryTx) Set(_ context.Context, key string, value []byte) error {
	v := bytes.Clone(value)
	if v == nil {
		v = []byte{}
	}
	t.writes[key] = v
	return nil
}

func (t *memoryTx) Delete(_ context.Context, key string) error {
	t.writes[key] = nil
	return nil
}

func (t *memoryTx) Atomically(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
	return fn(ctx, t)
}
