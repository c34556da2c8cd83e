package usecase

import (
	"context"
	"fmt"
	"strings"

	"portfolio-site/domain/dto"
	"portfolio-site/domain/model"
	"portfolio-site/domain/repository"
	"portfolio-site/infrastructure/cache"
	"portfolio-site/infrastructure/logger"
	"portfolio-site/infrastructure/metrics"
)

const (
	// SourceSiteData marks responses served from the generated data file.
	SourceSiteData = "site_data"
	// SourceMock marks responses served from the bundled fallback constants.
	SourceMock = "mock"

	// DefaultLatestVideos and DefaultLatestShorts are the list sizes the
	// generated payload carries and the API defaults to.
	DefaultLatestVideos = 10
	DefaultLatestShorts = 20

	// uploadsPageSize is the playlistItems.list page size (API maximum).
	uploadsPageSize = 50
)

// IYouTubeUseCase serves the YouTube sections of the site. Every read walks
// an ordered source chain: fresh generated data file, then the live API
// behind the TTL cache, then bundled mock data. The source that satisfied
// the request is tagged on the response.
type IYouTubeUseCase interface {
	GetChannelInfo(ctx context.Context) (*dto.ChannelResponse, error)
	GetFeatured(ctx context.Context) (*dto.FeaturedResponse, error)
	GetLatestVideos(ctx context.Context, limit int) (*dto.VideoListResponse, error)
	GetLatestShorts(ctx context.Context, limit int) (*dto.VideoListResponse, error)

	// CollectLatestUploads walks the uploads playlist page by page until it
	// has accumulated targetLongCount longform videos, the playlist is
	// exhausted, or maxPages pages were consumed.
	CollectLatestUploads(ctx context.Context, targetLongCount, maxPages int) ([]model.YouTubeVideo, error)
}

// YouTubeUseCase implements IYouTubeUseCase. youtubeRepo may be nil when no
// API key is configured; the source chain then skips the live step.
type YouTubeUseCase struct {
	youtubeRepo repository.IYouTube
	siteData    repository.ISiteData
	store       *cache.Store
	channelID   string
}

func NewYouTubeUseCase(youtubeRepo repository.IYouTube, siteData repository.ISiteData, store *cache.Store, channelID string) IYouTubeUseCase {
	return &YouTubeUseCase{
		youtubeRepo: youtubeRepo,
		siteData:    siteData,
		store:       store,
		channelID:   channelID,
	}
}

// GetChannelInfo resolves channel metadata through the source chain.
func (uc *YouTubeUseCase) GetChannelInfo(ctx context.Context) (*dto.ChannelResponse, error) {
	if data := uc.freshSiteData(); data != nil && data.Channel != nil {
		uc.resolved("channel", SourceSiteData)
		return &dto.ChannelResponse{Channel: data.Channel, ResolvedFrom: SourceSiteData}, nil
	}

	if uc.youtubeRepo != nil {
		channel, source, err := cache.GetOrFetch(ctx, uc.store, "channel:"+uc.channelID,
			func(ctx context.Context) (*model.YouTubeChannel, error) {
				return uc.youtubeRepo.GetChannel(ctx, uc.channelID)
			})
		if err == nil {
			uc.resolved("channel", string(source))
			return &dto.ChannelResponse{Channel: channel, ResolvedFrom: string(source)}, nil
		}
		logger.GetLogger().WithField("error", err).Warn("Channel fetch failed, falling back to mock data")
	}

	uc.resolved("channel", SourceMock)
	return &dto.ChannelResponse{Channel: mockChannel(), ResolvedFrom: SourceMock}, nil
}

// GetLatestVideos returns the most recent longform uploads, newest first.
func (uc *YouTubeUseCase) GetLatestVideos(ctx context.Context, limit int) (*dto.VideoListResponse, error) {
	if limit <= 0 {
		limit = DefaultLatestVideos
	}

	if data := uc.freshSiteData(); data != nil && len(data.LatestVideos) > 0 {
		uc.resolved("latest_videos", SourceSiteData)
		return &dto.VideoListResponse{Videos: clip(data.LatestVideos, limit), ResolvedFrom: SourceSiteData}, nil
	}

	uploads, source := uc.cachedUploads(ctx)
	if source != cache.SourceNone {
		uc.resolved("latest_videos", string(source))
		return &dto.VideoListResponse{Videos: clip(model.FilterLongform(uploads), limit), ResolvedFrom: string(source)}, nil
	}

	uc.resolved("latest_videos", SourceMock)
	return &dto.VideoListResponse{Videos: clip(model.FilterLongform(mockVideos()), limit), ResolvedFrom: SourceMock}, nil
}

// GetLatestShorts returns the most recent shorts, newest first.
func (uc *YouTubeUseCase) GetLatestShorts(ctx context.Context, limit int) (*dto.VideoListResponse, error) {
	if limit <= 0 {
		limit = DefaultLatestShorts
	}

	if data := uc.freshSiteData(); data != nil && len(data.LatestShorts) > 0 {
		uc.resolved("latest_shorts", SourceSiteData)
		return &dto.VideoListResponse{Videos: clip(data.LatestShorts, limit), ResolvedFrom: SourceSiteData}, nil
	}

	uploads, source := uc.cachedUploads(ctx)
	if source != cache.SourceNone {
		uc.resolved("latest_shorts", string(source))
		return &dto.VideoListResponse{Videos: clip(model.FilterShorts(uploads), limit), ResolvedFrom: string(source)}, nil
	}

	uc.resolved("latest_shorts", SourceMock)
	return &dto.VideoListResponse{Videos: clip(model.FilterShorts(mockVideos()), limit), ResolvedFrom: SourceMock}, nil
}

// GetFeatured returns the most viewed longform video and short.
func (uc *YouTubeUseCase) GetFeatured(ctx context.Context) (*dto.FeaturedResponse, error) {
	if data := uc.freshSiteData(); data != nil && (data.Featured.Long != nil || data.Featured.Short != nil) {
		uc.resolved("featured", SourceSiteData)
		return &dto.FeaturedResponse{Featured: data.Featured, ResolvedFrom: SourceSiteData}, nil
	}

	if uc.youtubeRepo != nil {
		mostViewed, source, err := cache.GetOrFetch(ctx, uc.store, "most_viewed:"+uc.channelID,
			func(ctx context.Context) ([]model.YouTubeVideo, error) {
				return uc.youtubeRepo.GetMostViewed(ctx, uc.channelID, 20)
			})
		if err == nil {
			uploads, _ := uc.cachedUploads(ctx)
			uc.resolved("featured", string(source))
			return &dto.FeaturedResponse{Featured: pickFeatured(mostViewed, uploads), ResolvedFrom: string(source)}, nil
		}
		logger.GetLogger().WithField("error", err).Warn("Most viewed fetch failed, falling back to mock data")
	}

	uc.resolved("featured", SourceMock)
	return &dto.FeaturedResponse{Featured: pickFeatured(mockVideos(), mockVideos()), ResolvedFrom: SourceMock}, nil
}

// CollectLatestUploads pages through the uploads playlist strictly
// sequentially. Each page's IDs are resolved with one batched lookup. A
// playlist shorter than the target is not an error; any failed call is.
func (uc *YouTubeUseCase) CollectLatestUploads(ctx context.Context, targetLongCount, maxPages int) ([]model.YouTubeVideo, error) {
	if uc.youtubeRepo == nil {
		return nil, fmt.Errorf("no YouTube API credentials configured")
	}

	playlistID, err := uc.resolveUploadsPlaylistID(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.GetLogger().WithField("playlist_id", playlistID)
	collected := make([]model.YouTubeVideo, 0, targetLongCount*uploadsPageSize/10)
	pageToken := ""

	for page := 0; page < maxPages; page++ {
		uploads, err := uc.youtubeRepo.ListUploads(ctx, playlistID, pageToken, uploadsPageSize)
		if err != nil {
			return nil, fmt.Errorf("list uploads page %d: %w", page+1, err)
		}
		if len(uploads.VideoIDs) == 0 {
			break
		}

		videos, err := uc.youtubeRepo.GetVideosByIDs(ctx, uploads.VideoIDs)
		if err != nil {
			return nil, fmt.Errorf("resolve uploads page %d: %w", page+1, err)
		}
		collected = append(collected, videos...)

		longCount := model.CountLongform(collected)
		log.WithField("page", page+1).WithField("longform_total", longCount).Debug("Uploads page collected")
		if longCount >= targetLongCount {
			break
		}
		if uploads.NextPageToken == "" {
			break
		}
		pageToken = uploads.NextPageToken
	}

	return collected, nil
}

// resolveUploadsPlaylistID asks the API for the channel's uploads playlist.
// When the channel lookup fails and the channel ID carries the standard UC
// prefix, the well-known UC->UU mapping is used instead.
func (uc *YouTubeUseCase) resolveUploadsPlaylistID(ctx context.Context) (string, error) {
	channel, err := uc.youtubeRepo.GetChannel(ctx, uc.channelID)
	if err == nil && channel.UploadsPlaylistID != "" {
		return channel.UploadsPlaylistID, nil
	}
	if strings.HasPrefix(uc.channelID, "UC") {
		return "UU" + uc.channelID[2:], nil
	}
	if err != nil {
		return "", fmt.Errorf("resolve uploads playlist: %w", err)
	}
	return "", fmt.Errorf("channel %s has no uploads playlist", uc.channelID)
}

// cachedUploads resolves the shared uploads collection through the TTL
// cache. SourceNone means no source could produce anything.
func (uc *YouTubeUseCase) cachedUploads(ctx context.Context) ([]model.YouTubeVideo, cache.Source) {
	if uc.youtubeRepo == nil {
		return nil, cache.SourceNone
	}
	uploads, source, err := cache.GetOrFetch(ctx, uc.store, "uploads:"+uc.channelID,
		func(ctx context.Context) ([]model.YouTubeVideo, error) {
			return uc.CollectLatestUploads(ctx, DefaultLatestVideos, 10)
		})
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Uploads fetch failed with no cached fallback")
		return nil, cache.SourceNone
	}
	return uploads, source
}

func (uc *YouTubeUseCase) freshSiteData() *dto.SiteData {
	if uc.siteData == nil || !uc.siteData.IsFresh(uc.store.TTL()) {
		return nil
	}
	data, err := uc.siteData.Load()
	if err != nil {
		return nil
	}
	return data
}

func (uc *YouTubeUseCase) resolved(request, source string) {
	metrics.SourceResolutions.WithLabelValues(request, source).Inc()
	logger.GetLogger().WithField("request", request).WithField("source", source).Info("Request resolved")
}

// pickFeatured selects the most viewed longform video and short, falling
// back to the newest upload of each kind when the ranking has none.
func pickFeatured(mostViewed, uploads []model.YouTubeVideo) dto.FeaturedVideos {
	var featured dto.FeaturedVideos
	for i := range mostViewed {
		v := &mostViewed[i]
		if featured.Long == nil && v.IsLongform() {
			featured.Long = v
		}
		if featured.Short == nil && v.IsShort() {
			featured.Short = v
		}
		if featured.Long != nil && featured.Short != nil {
			break
		}
	}
	if featured.Long == nil {
		if longs := model.FilterLongform(uploads); len(longs) > 0 {
			featured.Long = &longs[0]
		}
	}
	if featured.Short == nil {
		if shorts := model.FilterShorts(uploads); len(shorts) > 0 {
			featured.Short = &shorts[0]
		}
	}
	return featured
}

func clip(videos []model.YouTubeVideo, limit int) []model.YouTubeVideo {
	if limit > 0 && len(videos) > limit {
		return videos[:limit]
	}
	return videos
}
