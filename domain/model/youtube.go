package model

import "time"

// Thumbnail is a single thumbnail variant as returned by the YouTube API.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Thumbnails holds the size variants we keep. Maxres and Standard are only
// present on some videos; renderers pick the best available.
type Thumbnails struct {
	Default  Thumbnail `json:"default"`
	Medium   Thumbnail `json:"medium"`
	High     Thumbnail `json:"high"`
	Standard Thumbnail `json:"standard,omitempty"`
	Maxres   Thumbnail `json:"maxres,omitempty"`
}

// BestURL returns the largest thumbnail URL available.
func (t Thumbnails) BestURL() string {
	for _, tn := range []Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if tn.URL != "" {
			return tn.URL
		}
	}
	return ""
}

// YouTubeVideo represents a video record fetched from the YouTube Data API.
// Records are read-only after ingestion; lists are only filtered and sliced.
type YouTubeVideo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
	ChannelID   string     `json:"channel_id,omitempty"`
	ViewCount   int64      `json:"view_count"`
	LikeCount   int64      `json:"like_count,omitempty"`
	Duration    string     `json:"duration"` // ISO-8601, e.g. "PT1H2M10S"
	Thumbnails  Thumbnails `json:"thumbnails"`
	Tags        []string   `json:"tags,omitempty"`
}

// YouTubeChannel represents channel metadata. Immutable once fetched.
type YouTubeChannel struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	CustomURL         string     `json:"custom_url,omitempty"`
	PublishedAt       time.Time  `json:"published_at,omitempty"`
	SubscriberCount   int64      `json:"subscriber_count"`
	VideoCount        int64      `json:"video_count"`
	ViewCount         int64      `json:"view_count,omitempty"`
	UploadsPlaylistID string     `json:"uploads_playlist_id,omitempty"`
	Thumbnails        Thumbnails `json:"thumbnails"`
}

// UploadsPage is one page of the uploads playlist listing: the video IDs on
// the page and the cursor for the next one. An empty NextPageToken means the
// upstream is exhausted.
type UploadsPage struct {
	VideoIDs      []string `json:"video_ids"`
	NextPageToken string   `json:"next_page_token,omitempty"`
}
