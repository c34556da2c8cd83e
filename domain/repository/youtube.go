package repository

import (
	"context"

	"portfolio-site/domain/model"
)

// IYouTube defines the upstream YouTube Data API operations the site needs.
type IYouTube interface {
	// GetChannel returns channel metadata including the uploads playlist ID.
	GetChannel(ctx context.Context, channelID string) (*model.YouTubeChannel, error)
	// ListUploads returns one page of video IDs from a playlist. An empty
	// pageToken requests the first page; an empty NextPageToken in the result
	// means the listing is exhausted.
	ListUploads(ctx context.Context, playlistID, pageToken string, maxResults int64) (*model.UploadsPage, error)
	// GetVideosByIDs resolves full video records in one batched lookup.
	GetVideosByIDs(ctx context.Context, videoIDs []string) ([]model.YouTubeVideo, error)
	// GetMostViewed returns the channel's videos ordered by view count.
	GetMostViewed(ctx context.Context, channelID string, maxResults int64) ([]model.YouTubeVideo, error)
}
