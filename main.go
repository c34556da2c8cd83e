package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"portfolio-site/domain/repository"
	"portfolio-site/infrastructure/cache"
	youtubeclient "portfolio-site/infrastructure/clients/youtube"
	"portfolio-site/infrastructure/configuration"
	"portfolio-site/infrastructure/logger"
	"portfolio-site/infrastructure/persistence"
	httpHandler "portfolio-site/interfaces/http"
	"portfolio-site/server"
	"portfolio-site/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App
	ttl := configuration.C.CacheTTL()

	backend := initCacheBackend(ctx)
	store := cache.NewStore(backend, ttl)

	ytConfig, err := configuration.GetYouTubeConfig()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while loading YouTube configuration")
	}

	var youtubeRepo repository.IYouTube
	if ytConfig != nil && (ytConfig.APIKey != "" || ytConfig.AccessToken != "") {
		youtubeRepo, err = youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
			ClientID:     ytConfig.ClientID,
			ClientSecret: ytConfig.ClientSecret,
			RedirectURL:  ytConfig.RedirectURL,
			AccessToken:  ytConfig.AccessToken,
			RefreshToken: ytConfig.RefreshToken,
			APIKey:       ytConfig.APIKey,
		})
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("YouTube client unavailable - serving file/mock data only")
			youtubeRepo = nil
		}
	} else {
		logger.GetLogger().Warn("No YouTube credentials configured - serving file/mock data only")
	}

	channelID := ""
	if ytConfig != nil {
		channelID = ytConfig.ChannelID
	}

	siteDataRepo := persistence.NewSiteDataRepository(configuration.C.Data.Dir, configuration.C.Data.SiteDataFile)
	portfolioRepo := persistence.NewPortfolioRepository(configuration.C.Data.Dir)

	youtubeUseCase := usecase.NewYouTubeUseCase(youtubeRepo, siteDataRepo, store, channelID)
	siteDataUseCase := usecase.NewSiteDataUseCase(youtubeUseCase, youtubeRepo, siteDataRepo, store, channelID)
	portfolioUseCase := usecase.NewPortfolioUseCase(portfolioRepo)

	youtubeHandler := httpHandler.NewYouTubeHandler(youtubeUseCase, siteDataUseCase)
	portfolioHandler := httpHandler.NewPortfolioHandler(portfolioUseCase)
	adminHandler := httpHandler.NewAdminHandler(store, siteDataUseCase)

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.InitiateRouter(youtubeHandler, portfolioHandler, adminHandler, app.SecretKey, app.StaticDir)

	g.Go(func() error {
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", app.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}
		logger.GetLogger().WithField("port", app.Port).Info("Server started")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case sig := <-interrupt:
		logger.GetLogger().WithField("signal", sig.String()).Info("Shutdown signal received")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server terminated with error")
	}
	logger.GetLogger().Info("Server stopped")
}

// initCacheBackend selects the cache backend from configuration. Redis and
// Postgres degrade to the file backend when unreachable so the site keeps
// serving.
func initCacheBackend(ctx context.Context) cache.Backend {
	cfg := configuration.C.Cache
	switch cfg.Backend {
	case "redis":
		addr := fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port)
		client, err := cache.NewRedisClient(ctx, addr, configuration.C.RedisClient.Username, configuration.C.RedisClient.Password)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Redis not available - falling back to file cache")
			return cache.NewFileBackend(cfg.FilePath)
		}
		logger.GetLogger().Info("Redis cache backend connected")
		return cache.NewRedisBackend(client, cfg.Namespace)
	case "postgres":
		db, err := persistence.NewPostgreSQLDB()
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("PostgreSQL not available - falling back to file cache")
			return cache.NewFileBackend(cfg.FilePath)
		}
		if err := persistence.EnsureCacheSchema(db); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Cache schema setup failed - falling back to file cache")
			return cache.NewFileBackend(cfg.FilePath)
		}
		logger.GetLogger().Info("PostgreSQL cache backend connected")
		return persistence.NewPostgresCacheBackend(db, cfg.Namespace)
	case "memory":
		return cache.NewMemoryBackend()
	default:
		return cache.NewFileBackend(cfg.FilePath)
	}
}
