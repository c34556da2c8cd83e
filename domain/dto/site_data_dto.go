package dto

import (
	"time"

	"portfolio-site/domain/model"
)

// FeaturedVideos carries the most viewed longform video and short.
type FeaturedVideos struct {
	Long  *model.YouTubeVideo `json:"long,omitempty"`
	Short *model.YouTubeVideo `json:"short,omitempty"`
}

// SiteData is the payload the offline batch process writes to disk and the
// page render path reads as its primary data source. When fetching failed
// terminally (no API key), Error is set and the lists are empty.
type SiteData struct {
	GeneratedAt  time.Time             `json:"generated_at"`
	Error        string                `json:"error,omitempty"`
	Channel      *model.YouTubeChannel `json:"channel,omitempty"`
	Featured     FeaturedVideos        `json:"featured"`
	LatestVideos []model.YouTubeVideo  `json:"latest_videos"`
	LatestShorts []model.YouTubeVideo  `json:"latest_shorts"`
}

// IsFresh reports whether the payload was generated within ttl. Payloads
// carrying an error marker are never fresh; the next run retries.
func (d *SiteData) IsFresh(ttl time.Duration, now time.Time) bool {
	if d == nil || d.Error != "" || d.GeneratedAt.IsZero() {
		return false
	}
	return now.Sub(d.GeneratedAt) < ttl
}
