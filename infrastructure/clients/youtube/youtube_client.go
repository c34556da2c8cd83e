package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"portfolio-site/domain/model"
	"portfolio-site/domain/repository"
	"portfolio-site/infrastructure/logger"
	"portfolio-site/infrastructure/metrics"
)

// requestTimeout bounds every single API call so a hung upstream can never
// stall a page render or the batch run.
const requestTimeout = 15 * time.Second

// Client talks to the YouTube Data API v3. Read paths only need an API key;
// OAuth credentials enable access to the authenticated channel.
type Client struct {
	service     *youtube.Service
	oauthConfig *oauth2.Config
	token       *oauth2.Token
	ctx         context.Context
}

// Config represents YouTube API credentials.
type Config struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	APIKey       string `json:"api_key"`
}

// NewYouTubeClient creates a new YouTube API client. With only an API key it
// runs in read-only mode; with OAuth tokens it refreshes them automatically.
func NewYouTubeClient(ctx context.Context, config *Config) (repository.IYouTube, error) {
	if (config.AccessToken == "" || config.RefreshToken == "") && config.APIKey != "" {
		service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
		}
		return &Client{service: service, ctx: ctx}, nil
	}

	oauth2Config := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURL,
		Scopes: []string{
			youtube.YoutubeReadonlyScope,
		},
		Endpoint: google.Endpoint,
	}

	token := &oauth2.Token{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-1 * time.Minute), // Force refresh on first use
	}

	httpClient := oauth2Config.Client(ctx, token)
	service, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service:     service,
		oauthConfig: oauth2Config,
		token:       token,
		ctx:         ctx,
	}, nil
}

// GetChannel retrieves channel metadata including the uploads playlist ID
// needed to walk the channel's full upload history.
func (c *Client) GetChannel(ctx context.Context, channelID string) (*model.YouTubeChannel, error) {
	if err := c.refreshTokenIfNeeded(); err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	response, err := c.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	metrics.ObserveUpstream("channels.list", err)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("no channel found for ID %s", channelID)
	}

	channel := response.Items[0]
	publishedAt, _ := time.Parse(time.RFC3339, channel.Snippet.PublishedAt)

	ytChannel := &model.YouTubeChannel{
		ID:          channel.Id,
		Title:       channel.Snippet.Title,
		Description: channel.Snippet.Description,
		CustomURL:   channel.Snippet.CustomUrl,
		PublishedAt: publishedAt,
	}

	if channel.Snippet.Thumbnails != nil {
		ytChannel.Thumbnails = convertThumbnails(channel.Snippet.Thumbnails)
	}
	if channel.Statistics != nil {
		ytChannel.ViewCount = int64(channel.Statistics.ViewCount)
		ytChannel.SubscriberCount = int64(channel.Statistics.SubscriberCount)
		ytChannel.VideoCount = int64(channel.Statistics.VideoCount)
	}
	if channel.ContentDetails != nil && channel.ContentDetails.RelatedPlaylists != nil {
		ytChannel.UploadsPlaylistID = channel.ContentDetails.RelatedPlaylists.Uploads
	}

	return ytChannel, nil
}

// ListUploads retrieves one page of video IDs from a playlist. Deleted or
// private entries come back without a video ID and are skipped.
func (c *Client) ListUploads(ctx context.Context, playlistID, pageToken string, maxResults int64) (*model.UploadsPage, error) {
	if err := c.refreshTokenIfNeeded(); err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	call := c.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	metrics.ObserveUpstream("playlistItems.list", err)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist %s: %w", playlistID, err)
	}

	page := &model.UploadsPage{
		VideoIDs:      make([]string, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		page.VideoIDs = append(page.VideoIDs, item.ContentDetails.VideoId)
	}

	return page, nil
}

// GetVideosByIDs resolves full video records in a single batched lookup.
// The API caps one call at 50 IDs, which matches the playlist page size.
func (c *Client) GetVideosByIDs(ctx context.Context, videoIDs []string) ([]model.YouTubeVideo, error) {
	if len(videoIDs) == 0 {
		return []model.YouTubeVideo{}, nil
	}
	if err := c.refreshTokenIfNeeded(); err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	response, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx).
		Do()
	metrics.ObserveUpstream("videos.list", err)
	if err != nil {
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}

	videos := make([]model.YouTubeVideo, 0, len(response.Items))
	for _, video := range response.Items {
		videos = append(videos, convertToYouTubeVideo(video))
	}

	return videos, nil
}

// GetMostViewed returns the channel's videos ordered by view count. The
// search API omits durations and exact counts, so results are re-resolved
// through a batched videos.list call.
func (c *Client) GetMostViewed(ctx context.Context, channelID string, maxResults int64) ([]model.YouTubeVideo, error) {
	if err := c.refreshTokenIfNeeded(); err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	searchCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	response, err := c.service.Search.List([]string{"id"}).
		ChannelId(channelID).
		Type("video").
		Order("viewCount").
		MaxResults(maxResults).
		Context(searchCtx).
		Do()
	metrics.ObserveUpstream("search.list", err)
	if err != nil {
		return nil, fmt.Errorf("failed to search most viewed: %w", err)
	}

	videoIDs := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		videoIDs = append(videoIDs, item.Id.VideoId)
	}
	if len(videoIDs) == 0 {
		return []model.YouTubeVideo{}, nil
	}

	videos, err := c.GetVideosByIDs(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	// videos.list does not preserve request order; restore the view ranking.
	byID := make(map[string]model.YouTubeVideo, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	ordered := make([]model.YouTubeVideo, 0, len(videoIDs))
	for _, id := range videoIDs {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}

	return ordered, nil
}

func convertToYouTubeVideo(video *youtube.Video) model.YouTubeVideo {
	publishedAt, _ := time.Parse(time.RFC3339, video.Snippet.PublishedAt)

	var viewCount, likeCount int64
	if video.Statistics != nil {
		viewCount = int64(video.Statistics.ViewCount)
		likeCount = int64(video.Statistics.LikeCount)
	}

	ytVideo := model.YouTubeVideo{
		ID:          video.Id,
		Title:       video.Snippet.Title,
		Description: video.Snippet.Description,
		PublishedAt: publishedAt,
		ChannelID:   video.Snippet.ChannelId,
		ViewCount:   viewCount,
		LikeCount:   likeCount,
		Tags:        video.Snippet.Tags,
	}
	if video.ContentDetails != nil {
		ytVideo.Duration = video.ContentDetails.Duration
	}
	if video.Snippet.Thumbnails != nil {
		ytVideo.Thumbnails = convertThumbnails(video.Snippet.Thumbnails)
	}

	return ytVideo
}

func convertThumbnails(details *youtube.ThumbnailDetails) model.Thumbnails {
	var t model.Thumbnails
	set := func(dst *model.Thumbnail, src *youtube.Thumbnail) {
		if src == nil {
			return
		}
		dst.URL = src.Url
		dst.Width = int(src.Width)
		dst.Height = int(src.Height)
	}
	set(&t.Default, details.Default)
	set(&t.Medium, details.Medium)
	set(&t.High, details.High)
	set(&t.Standard, details.Standard)
	set(&t.Maxres, details.Maxres)
	return t
}

// refreshTokenIfNeeded checks if the token is expired and refreshes it
// automatically. In API key mode there is nothing to do.
func (c *Client) refreshTokenIfNeeded() error {
	if c.oauthConfig == nil || c.token == nil {
		return nil
	}
	if c.token.Expiry.IsZero() || time.Until(c.token.Expiry) < 5*time.Minute {
		newToken, err := c.oauthConfig.TokenSource(c.ctx, c.token).Token()
		if err != nil {
			return fmt.Errorf("failed to refresh token: %w", err)
		}
		c.token = newToken
		httpClient := c.oauthConfig.Client(c.ctx, newToken)
		service, err := youtube.NewService(c.ctx, option.WithHTTPClient(httpClient))
		if err != nil {
			return fmt.Errorf("failed to recreate YouTube service with refreshed token: %w", err)
		}
		c.service = service
		logger.GetLogger().WithField("expiry", newToken.Expiry).Info("YouTube token refreshed")
	}
	return nil
}
