package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrFetchMissThenSuccess(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(24 * time.Hour)

	calls := 0
	producer := func(context.Context) (string, error) {
		calls++
		return "fresh-value", nil
	}

	got, source, err := GetOrFetch(ctx, store, "latest_uploads_50", producer)
	require.NoError(t, err)
	assert.Equal(t, "fresh-value", got)
	assert.Equal(t, SourceLive, source)
	assert.Equal(t, 1, calls)

	// The result was written through: a second call is a hit and the
	// producer stays untouched.
	got, source, err = GetOrFetch(ctx, store, "latest_uploads_50", producer)
	require.NoError(t, err)
	assert.Equal(t, "fresh-value", got)
	assert.Equal(t, SourceCacheFresh, source)
	assert.Equal(t, 1, calls)
}

func TestGetOrFetchFreshHitSkipsProducer(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(24 * time.Hour)
	store.Write(ctx, "channel_data", "cached")

	got, source, err := GetOrFetch(ctx, store, "channel_data", func(context.Context) (string, error) {
		t.Fatal("producer must not run on a fresh hit")
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "cached", got)
	assert.Equal(t, SourceCacheFresh, source)
}

func TestGetOrFetchStaleFallbackOnProducerFailure(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(24 * time.Hour)

	now := time.Now()
	store.now = func() time.Time { return now.Add(-48 * time.Hour) }
	store.Write(ctx, "channel_data", "stale-but-present")
	store.now = time.Now

	got, source, err := GetOrFetch(ctx, store, "channel_data", func(context.Context) (string, error) {
		return "", errors.New("youtube api: 403 quota exceeded")
	})
	require.NoError(t, err, "stale data must win over a producer error")
	assert.Equal(t, "stale-but-present", got)
	assert.Equal(t, SourceCacheStale, source)
}

func TestGetOrFetchTotalFailurePropagates(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(24 * time.Hour)

	upstreamErr := errors.New("network down")
	_, source, err := GetOrFetch(ctx, store, "never_seen", func(context.Context) (string, error) {
		return "", upstreamErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, upstreamErr)
	assert.Equal(t, SourceNone, source)
}

func TestGetOrFetchEmptyResultNotCached(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(24 * time.Hour)

	got, source, err := GetOrFetch(ctx, store, "empty_list", func(context.Context) ([]string, error) {
		return []string{}, nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, SourceLive, source)

	_, ok := store.Read(ctx, "empty_list")
	assert.False(t, ok, "empty results must not be written to the cache")
}

func TestGetOrFetchExpiredEntryRefreshes(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(time.Hour)

	store.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	store.Write(ctx, "k", "old")
	store.now = time.Now

	got, source, err := GetOrFetch(ctx, store, "k", func(context.Context) (string, error) {
		return "new", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", got)
	assert.Equal(t, SourceLive, source)

	// Cache now holds the refreshed value.
	entry, ok := store.Read(ctx, "k")
	require.True(t, ok)
	assert.False(t, store.IsExpired(entry))
}
