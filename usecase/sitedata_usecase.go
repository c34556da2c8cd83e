package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio-site/domain/dto"
	"portfolio-site/domain/model"
	"portfolio-site/domain/repository"
	"portfolio-site/infrastructure/cache"
	"portfolio-site/infrastructure/logger"
	"portfolio-site/infrastructure/metrics"
)

// ISiteDataUseCase builds and serves the aggregated site payload: channel
// card, featured pair, latest longform videos and latest shorts.
type ISiteDataUseCase interface {
	// Build fetches everything from the live API and assembles a payload.
	Build(ctx context.Context) (*dto.SiteData, error)
	// BuildAndSave runs Build and persists the result to the data file.
	BuildAndSave(ctx context.Context) (*dto.SiteData, error)
	// GetSiteData resolves the payload through the source chain.
	GetSiteData(ctx context.Context) (*dto.SiteDataResponse, error)
}

type SiteDataUseCase struct {
	youtubeUC IYouTubeUseCase
	repo      repository.IYouTube
	siteData  repository.ISiteData
	store     *cache.Store
	channelID string
}

func NewSiteDataUseCase(youtubeUC IYouTubeUseCase, repo repository.IYouTube, siteData repository.ISiteData, store *cache.Store, channelID string) ISiteDataUseCase {
	return &SiteDataUseCase{
		youtubeUC: youtubeUC,
		repo:      repo,
		siteData:  siteData,
		store:     store,
		channelID: channelID,
	}
}

// Build issues the three upstream fetches concurrently and assembles the
// payload. Any failed fetch fails the whole build; the caller decides
// whether stale data stands in.
func (uc *SiteDataUseCase) Build(ctx context.Context) (*dto.SiteData, error) {
	if uc.repo == nil {
		return nil, fmt.Errorf("no YouTube API credentials configured")
	}

	var (
		channel    *model.YouTubeChannel
		uploads    []model.YouTubeVideo
		mostViewed []model.YouTubeVideo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		channel, err = uc.repo.GetChannel(gctx, uc.channelID)
		return err
	})
	g.Go(func() error {
		var err error
		uploads, err = uc.youtubeUC.CollectLatestUploads(gctx, DefaultLatestVideos, 10)
		return err
	})
	g.Go(func() error {
		var err error
		mostViewed, err = uc.repo.GetMostViewed(gctx, uc.channelID, 20)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build site data: %w", err)
	}

	payload := &dto.SiteData{
		GeneratedAt:  time.Now().UTC(),
		Channel:      channel,
		Featured:     pickFeatured(mostViewed, uploads),
		LatestVideos: clip(model.FilterLongform(uploads), DefaultLatestVideos),
		LatestShorts: clip(model.FilterShorts(uploads), DefaultLatestShorts),
	}
	return payload, nil
}

// BuildAndSave rebuilds the payload and writes it to the data file.
func (uc *SiteDataUseCase) BuildAndSave(ctx context.Context) (*dto.SiteData, error) {
	payload, err := uc.Build(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.siteData.Save(payload); err != nil {
		return nil, err
	}
	logger.GetLogger().
		WithField("path", uc.siteData.Path()).
		WithField("videos", len(payload.LatestVideos)).
		WithField("shorts", len(payload.LatestShorts)).
		Info("Site data saved")
	return payload, nil
}

// GetSiteData serves the payload for page renders: the fresh data file
// first, then a live rebuild behind the TTL cache, then mock data.
func (uc *SiteDataUseCase) GetSiteData(ctx context.Context) (*dto.SiteDataResponse, error) {
	if uc.siteData != nil && uc.siteData.IsFresh(uc.store.TTL()) {
		if data, err := uc.siteData.Load(); err == nil && data != nil {
			uc.resolved(SourceSiteData)
			return &dto.SiteDataResponse{Data: data, ResolvedFrom: SourceSiteData}, nil
		}
	}

	if uc.repo != nil {
		data, source, err := cache.GetOrFetch(ctx, uc.store, "site_data:"+uc.channelID,
			func(ctx context.Context) (*dto.SiteData, error) {
				return uc.Build(ctx)
			})
		if err == nil {
			uc.resolved(string(source))
			return &dto.SiteDataResponse{Data: data, ResolvedFrom: string(source)}, nil
		}
		logger.GetLogger().WithField("error", err).Warn("Site data build failed, falling back to mock data")
	}

	uc.resolved(SourceMock)
	return &dto.SiteDataResponse{Data: mockSiteData(), ResolvedFrom: SourceMock}, nil
}

func (uc *SiteDataUseCase) resolved(source string) {
	metrics.SourceResolutions.WithLabelValues("site_data", source).Inc()
	logger.GetLogger().WithField("request", "site_data").WithField("source", source).Info("Request resolved")
}

func mockSiteData() *dto.SiteData {
	videos := mockVideos()
	return &dto.SiteData{
		GeneratedAt:  time.Now().UTC(),
		Channel:      mockChannel(),
		Featured:     pickFeatured(videos, videos),
		LatestVideos: model.FilterLongform(videos),
		LatestShorts: model.FilterShorts(videos),
	}
}
