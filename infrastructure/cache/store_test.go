package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration) (*Store, *MemoryBackend) {
	backend := NewMemoryBackend()
	return NewStore(backend, ttl), backend
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(24 * time.Hour)

	payload := map[string]string{"title": "Go Touch Grass"}
	store.Write(ctx, "channel_data", payload)

	entry, ok := store.Read(ctx, "channel_data")
	require.True(t, ok)

	var got map[string]string
	require.NoError(t, json.Unmarshal(entry.Data, &got))
	assert.Equal(t, payload, got)
	assert.LessOrEqual(t, entry.Age(time.Now()), time.Second)
	assert.False(t, store.IsExpired(entry))
}

func TestStoreMissOnUnknownKey(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	_, ok := store.Read(context.Background(), "nope")
	assert.False(t, ok)
}

func TestStoreCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	store, backend := newTestStore(time.Hour)

	require.NoError(t, backend.Set(ctx, "broken", "{not json"))
	_, ok := store.Read(ctx, "broken")
	assert.False(t, ok)
}

func TestStoreBackendFailureIsMiss(t *testing.T) {
	store := NewStore(&failingBackend{}, time.Hour)
	_, ok := store.Read(context.Background(), "any")
	assert.False(t, ok)
}

func TestStoreWriteFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&failingBackend{}, time.Hour)
	// Must not panic or surface the backend error.
	store.Write(ctx, "any", "value")
}

func TestStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(24 * time.Hour)

	now := time.Now()
	store.now = func() time.Time { return now }
	store.Write(ctx, "k", "v")

	entry, ok := store.Read(ctx, "k")
	require.True(t, ok)
	assert.False(t, store.IsExpired(entry))

	store.now = func() time.Time { return now.Add(25 * time.Hour) }
	assert.True(t, store.IsExpired(entry))
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(time.Hour)

	store.Write(ctx, "a", 1)
	store.Write(ctx, "b", 2)
	require.NoError(t, store.Clear(ctx))

	_, ok := store.Read(ctx, "a")
	assert.False(t, ok)
	_, ok = store.Read(ctx, "b")
	assert.False(t, ok)
}

type failingBackend struct{}

func (f *failingBackend) Get(context.Context, string) (string, error) {
	return "", assert.AnError
}

func (f *failingBackend) Set(context.Context, string, string) error {
	return assert.AnError
}

func (f *failingBackend) Clear(context.Context) error {
	return assert.AnError
}
