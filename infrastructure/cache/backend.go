package cache

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Backend.Get when a key has no stored value.
var ErrNotFound = errors.New("cache: key not found")

// Backend is the persistence layer under the Store: a namespaced key/value
// string storage. Implementations may have bounded capacity; Set failures are
// tolerated by the Store (logged, never surfaced to the read path).
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Clear wipes every entry in this backend's namespace.
	Clear(ctx context.Context) error
}

// MemoryBackend is an in-process Backend, used as the default when no
// external store is configured and as the fake in tests.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]string)}
}

func (b *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (b *MemoryBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = value
	return nil
}

func (b *MemoryBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = make(map[string]string)
	return nil
}
