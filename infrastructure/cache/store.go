package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"portfolio-site/infrastructure/logger"
	"portfolio-site/infrastructure/metrics"
)

// Entry is one cached value with the time it was written, in unix
// milliseconds. Entries are replaced wholesale on refresh and never
// partially updated.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Age returns how long ago the entry was written.
func (e *Entry) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(e.Timestamp))
}

// Store is a key/value cache with a fixed TTL over an injected persistence
// backend. Reads never fail: a missing, corrupt or unreachable entry is a
// miss. Writes are best-effort: persistence failures are logged and
// swallowed so they can never fail a caller's fetch path.
type Store struct {
	mu      sync.Mutex
	backend Backend
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(backend Backend, ttl time.Duration) *Store {
	return &Store{backend: backend, ttl: ttl, now: time.Now}
}

// TTL returns the store's configured time-to-live.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Read returns the entry for key, or ok=false on miss. Corruption and
// backend unavailability are both treated as a miss.
func (s *Store) Read(ctx context.Context, key string) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx, key)
}

func (s *Store) read(ctx context.Context, key string) (*Entry, bool) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Cache backend read failed; treating as miss")
		}
		return nil, false
	}
	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Corrupt cache entry; treating as miss")
		return nil, false
	}
	return &entry, true
}

// Write stores data under key with the current timestamp. A failure to
// persist (backend full, unreachable) is logged and swallowed.
func (s *Store) Write(ctx context.Context, key string, data any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(ctx, key, data)
}

func (s *Store) write(ctx context.Context, key string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Cache value not serializable; skipping write")
		return
	}
	entry := Entry{Data: raw, Timestamp: s.now().UnixMilli()}
	encoded, err := json.Marshal(&entry)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Cache entry not serializable; skipping write")
		return
	}
	if err := s.backend.Set(ctx, key, string(encoded)); err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Cache backend write failed")
	}
}

// IsExpired reports whether the entry is older than the store's TTL.
func (s *Store) IsExpired(entry *Entry) bool {
	return entry.Age(s.now()) > s.ttl
}

// Clear wipes all entries in this store's namespace.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Clear(ctx); err != nil {
		return err
	}
	metrics.CacheClears.Inc()
	logger.GetLogger().Info("Cache cleared")
	return nil
}
