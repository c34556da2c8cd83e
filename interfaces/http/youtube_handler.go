package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-site/usecase"
)

// IYouTubeHandler defines the YouTube HTTP handlers.
type IYouTubeHandler interface {
	GetChannel(ctx *gin.Context)
	GetFeatured(ctx *gin.Context)
	GetLatestVideos(ctx *gin.Context)
	GetLatestShorts(ctx *gin.Context)
	GetSiteData(ctx *gin.Context)
}

type YouTubeHandler struct {
	youtubeUseCase  usecase.IYouTubeUseCase
	siteDataUseCase usecase.ISiteDataUseCase
}

func NewYouTubeHandler(youtubeUseCase usecase.IYouTubeUseCase, siteDataUseCase usecase.ISiteDataUseCase) IYouTubeHandler {
	return &YouTubeHandler{
		youtubeUseCase:  youtubeUseCase,
		siteDataUseCase: siteDataUseCase,
	}
}

// GetChannel handles GET /api/youtube/channel
func (h *YouTubeHandler) GetChannel(ctx *gin.Context) {
	response, err := h.youtubeUseCase.GetChannelInfo(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// GetFeatured handles GET /api/youtube/featured
func (h *YouTubeHandler) GetFeatured(ctx *gin.Context) {
	response, err := h.youtubeUseCase.GetFeatured(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// GetLatestVideos handles GET /api/youtube/videos?limit=
func (h *YouTubeHandler) GetLatestVideos(ctx *gin.Context) {
	response, err := h.youtubeUseCase.GetLatestVideos(ctx.Request.Context(), limitParam(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// GetLatestShorts handles GET /api/youtube/shorts?limit=
func (h *YouTubeHandler) GetLatestShorts(ctx *gin.Context) {
	response, err := h.youtubeUseCase.GetLatestShorts(ctx.Request.Context(), limitParam(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// GetSiteData handles GET /api/site-data
func (h *YouTubeHandler) GetSiteData(ctx *gin.Context) {
	response, err := h.siteDataUseCase.GetSiteData(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

func limitParam(ctx *gin.Context) int {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
