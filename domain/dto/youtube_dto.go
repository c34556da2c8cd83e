package dto

import "portfolio-site/domain/model"

// ChannelResponse wraps channel info with the data source that satisfied the
// request (site_data, cache_fresh, live, cache_stale, mock).
type ChannelResponse struct {
	Channel      *model.YouTubeChannel `json:"channel"`
	ResolvedFrom string                `json:"resolved_from"`
}

// VideoListResponse wraps a filtered video list with its resolution source.
type VideoListResponse struct {
	Videos       []model.YouTubeVideo `json:"videos"`
	ResolvedFrom string               `json:"resolved_from"`
}

// FeaturedResponse wraps the featured pair with its resolution source.
type FeaturedResponse struct {
	Featured     FeaturedVideos `json:"featured"`
	ResolvedFrom string         `json:"resolved_from"`
}

// SiteDataResponse wraps the full site payload with its resolution source.
type SiteDataResponse struct {
	Data         *SiteData `json:"data"`
	ResolvedFrom string    `json:"resolved_from"`
}
