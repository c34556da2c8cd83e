package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpHandler "portfolio-site/interfaces/http"
	"portfolio-site/interfaces/middleware"
)

func InitiateRouter(
	youtubeHandler httpHandler.IYouTubeHandler,
	portfolioHandler httpHandler.IPortfolioHandler,
	adminHandler httpHandler.IAdminHandler,
	secretKey string,
	staticDir string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://el1asf.de", "https://www.el1asf.de", "http://localhost:5173", "http://localhost:4173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("api")
	api.GET("/site-data", youtubeHandler.GetSiteData)

	yt := api.Group("youtube")
	yt.GET("/channel", youtubeHandler.GetChannel)
	yt.GET("/featured", youtubeHandler.GetFeatured)
	yt.GET("/videos", youtubeHandler.GetLatestVideos)
	yt.GET("/shorts", youtubeHandler.GetLatestShorts)

	api.GET("/projects/film", portfolioHandler.GetFilmProjects)
	api.GET("/projects/other", portfolioHandler.GetOtherProjects)
	api.GET("/projects/:projectId", portfolioHandler.GetProjectByID)
	api.GET("/cv", portfolioHandler.GetCV)
	api.GET("/skills", portfolioHandler.GetSkills)
	api.GET("/socials", portfolioHandler.GetSocials)

	admin := api.Group("admin")
	admin.Use(middleware.Auth(secretKey))
	admin.POST("/cache/clear", adminHandler.ClearCache)
	admin.POST("/refresh", adminHandler.Refresh)

	// The built front-end is served as plain files; anything that is not an
	// API route falls through to it.
	if staticDir != "" {
		fileServer := http.FileServer(http.Dir(staticDir))
		router.NoRoute(func(ctx *gin.Context) {
			fileServer.ServeHTTP(ctx.Writer, ctx.Request)
		})
	}

	return router
}
