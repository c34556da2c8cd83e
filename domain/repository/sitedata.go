package repository

import (
	"time"

	"portfolio-site/domain/dto"
)

// ISiteData persists the generated site payload between batch runs and page
// renders. Load returns (nil, nil) when no payload has been generated yet.
type ISiteData interface {
	Load() (*dto.SiteData, error)
	Save(data *dto.SiteData) error
	IsFresh(ttl time.Duration) bool
	Path() string
}
