package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"portfolio-site/infrastructure/logger"
	"portfolio-site/infrastructure/metrics"
)

// Source tags which path satisfied a GetOrFetch call.
type Source string

const (
	// SourceCacheFresh: entry existed and was within TTL; the producer was
	// never invoked.
	SourceCacheFresh Source = "cache_fresh"
	// SourceLive: the producer ran and succeeded.
	SourceLive Source = "live"
	// SourceCacheStale: the producer failed but an expired entry existed and
	// was returned instead of the error.
	SourceCacheStale Source = "cache_stale"
	// SourceNone: nothing could satisfy the call; the producer's error is
	// propagated.
	SourceNone Source = "none"
)

// keyLocks serializes read-then-maybe-write per cache key so two concurrent
// fetches for the same key cannot interleave.
var keyLocks sync.Map

func lockKey(key string) *sync.Mutex {
	mu, _ := keyLocks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// GetOrFetch resolves key through the store with an availability-over-
// freshness policy:
//
//  1. A fresh cache entry is returned immediately.
//  2. Otherwise the producer runs; a non-zero result is written through and
//     returned.
//  3. On producer failure any existing entry (fresh or stale) is returned
//     instead of the error. Only when no entry exists at all does the
//     producer's failure reach the caller.
func GetOrFetch[T any](ctx context.Context, store *Store, key string, producer func(context.Context) (T, error)) (T, Source, error) {
	mu := lockKey(key)
	mu.Lock()
	defer mu.Unlock()

	var zero T

	entry, ok := store.Read(ctx, key)
	if ok && !store.IsExpired(entry) {
		var cached T
		if err := json.Unmarshal(entry.Data, &cached); err == nil {
			logger.GetLogger().WithField("key", key).Debug("Cache hit")
			metrics.CacheReads.WithLabelValues(string(SourceCacheFresh)).Inc()
			return cached, SourceCacheFresh, nil
		}
		// Entry decodes as JSON but not into T; fall through to the producer
		// as if it were a miss.
		logger.GetLogger().WithField("key", key).Warn("Cache entry has unexpected shape; refetching")
		ok = false
	}

	logger.GetLogger().WithField("key", key).Debug("Cache miss; invoking producer")
	fresh, err := producer(ctx)
	if err == nil {
		if !isZero(fresh) {
			store.Write(ctx, key, fresh)
		}
		metrics.CacheReads.WithLabelValues(string(SourceLive)).Inc()
		return fresh, SourceLive, nil
	}

	if ok {
		var stale T
		if uerr := json.Unmarshal(entry.Data, &stale); uerr == nil {
			logger.GetLogger().
				WithField("key", key).
				WithField("error", err).
				WithField("age", entry.Age(store.now()).String()).
				Warn("Producer failed; serving stale cache entry")
			metrics.CacheReads.WithLabelValues(string(SourceCacheStale)).Inc()
			return stale, SourceCacheStale, nil
		}
	}

	metrics.CacheReads.WithLabelValues(string(SourceNone)).Inc()
	return zero, SourceNone, fmt.Errorf("fetch %s: %w", key, err)
}

// isZero reports whether the produced value is empty (nil pointer/slice/map
// or the type's zero value); empty results are returned but not cached.
func isZero[T any](v T) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		return true
	}
	switch string(raw) {
	case "null", "{}", "[]", `""`:
		return true
	}
	return false
}
