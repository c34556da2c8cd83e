package main

import (
	"context"
	"os"
	"time"

	"portfolio-site/domain/dto"
	"portfolio-site/domain/model"
	"portfolio-site/infrastructure/cache"
	youtubeclient "portfolio-site/infrastructure/clients/youtube"
	"portfolio-site/infrastructure/configuration"
	"portfolio-site/infrastructure/logger"
	"portfolio-site/infrastructure/persistence"
	"portfolio-site/usecase"
)

// fetchdata regenerates the site data file ahead of a front-end build. It is
// a no-op while the existing file is fresh. A missing API key is terminal
// but not an error: an explicit error payload with empty lists is written so
// the build still has a file to bundle. Only a failed fetch exits non-zero.
func main() {
	configuration.LoadEnvFromFile("config.env", ".env")

	log := logger.GetLogger()
	ttl := configuration.C.CacheTTL()
	siteDataRepo := persistence.NewSiteDataRepository(configuration.C.Data.Dir, configuration.C.Data.SiteDataFile)

	if siteDataRepo.IsFresh(ttl) {
		log.WithField("path", siteDataRepo.Path()).Info("Site data is fresh, nothing to do")
		return
	}

	ytConfig, err := configuration.GetYouTubeConfig()
	if err != nil {
		log.WithField("error", err).Error("Error while loading YouTube configuration")
		os.Exit(1)
	}

	if ytConfig.APIKey == "" && ytConfig.AccessToken == "" {
		log.Warn("No API key configured, writing error payload")
		payload := &dto.SiteData{
			GeneratedAt:  time.Now().UTC(),
			Error:        "No API Key",
			LatestVideos: []model.YouTubeVideo{},
			LatestShorts: []model.YouTubeVideo{},
		}
		if err := siteDataRepo.Save(payload); err != nil {
			log.WithField("error", err).Error("Error while writing error payload")
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()
	youtubeRepo, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
		ClientID:     ytConfig.ClientID,
		ClientSecret: ytConfig.ClientSecret,
		RedirectURL:  ytConfig.RedirectURL,
		AccessToken:  ytConfig.AccessToken,
		RefreshToken: ytConfig.RefreshToken,
		APIKey:       ytConfig.APIKey,
	})
	if err != nil {
		log.WithField("error", err).Error("Error while creating YouTube client")
		os.Exit(1)
	}

	store := cache.NewStore(cache.NewMemoryBackend(), ttl)
	youtubeUseCase := usecase.NewYouTubeUseCase(youtubeRepo, siteDataRepo, store, ytConfig.ChannelID)
	siteDataUseCase := usecase.NewSiteDataUseCase(youtubeUseCase, youtubeRepo, siteDataRepo, store, ytConfig.ChannelID)

	payload, err := siteDataUseCase.BuildAndSave(ctx)
	if err != nil {
		log.WithField("error", err).Error("Error while fetching site data")
		os.Exit(1)
	}

	log.WithField("path", siteDataRepo.Path()).
		WithField("videos", len(payload.LatestVideos)).
		WithField("shorts", len(payload.LatestShorts)).
		Info("Site data generated")
}
