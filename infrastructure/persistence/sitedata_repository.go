package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"portfolio-site/domain/dto"
)

// SiteDataRepository reads and writes the generated YouTube payload file
// (the build-time data file the page render path treats as its primary
// source).
type SiteDataRepository struct {
	path string
}

func NewSiteDataRepository(dataDir, filename string) *SiteDataRepository {
	return &SiteDataRepository{path: filepath.Join(dataDir, filename)}
}

// Path returns the file location, mainly for log output.
func (r *SiteDataRepository) Path() string {
	return r.path
}

// Load reads the payload from disk. A missing file is returned as
// (nil, nil): the caller decides whether that means "generate" or
// "fall back".
func (r *SiteDataRepository) Load() (*dto.SiteData, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read site data: %w", err)
	}
	var data dto.SiteData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode site data: %w", err)
	}
	return &data, nil
}

// Save writes the payload atomically (write to temp file, then rename).
func (r *SiteDataRepository) Save(data *dto.SiteData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode site data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write site data: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("rename site data: %w", err)
	}
	return nil
}

// IsFresh reports whether the stored payload exists and was generated
// within ttl.
func (r *SiteDataRepository) IsFresh(ttl time.Duration) bool {
	data, err := r.Load()
	if err != nil || data == nil {
		return false
	}
	return data.IsFresh(ttl, time.Now())
}
