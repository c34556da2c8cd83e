package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend persists the namespace as a single JSON document on disk. It
// is the default backend for the offline batch process, which has no Redis
// or database available.
type FileBackend struct {
	mu   sync.Mutex
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) load() (map[string]string, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	entries := map[string]string{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		// A corrupt file is treated as empty; the next Set rewrites it.
		return map[string]string{}, nil
	}
	return entries, nil
}

func (b *FileBackend) save(entries map[string]string) error {
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return err
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}

func (b *FileBackend) Get(_ context.Context, key string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries, err := b.load()
	if err != nil {
		return "", err
	}
	v, ok := entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (b *FileBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries, err := b.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return b.save(entries)
}

func (b *FileBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	err := os.Remove(b.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
