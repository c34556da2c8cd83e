package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-site/infrastructure/cache"
	"portfolio-site/infrastructure/logger"
	"portfolio-site/usecase"
)

// IAdminHandler defines the authenticated maintenance handlers.
type IAdminHandler interface {
	ClearCache(ctx *gin.Context)
	Refresh(ctx *gin.Context)
}

type AdminHandler struct {
	store           *cache.Store
	siteDataUseCase usecase.ISiteDataUseCase
}

func NewAdminHandler(store *cache.Store, siteDataUseCase usecase.ISiteDataUseCase) IAdminHandler {
	return &AdminHandler{store: store, siteDataUseCase: siteDataUseCase}
}

// ClearCache handles POST /api/admin/cache/clear. The next read after a
// clear goes to the live API.
func (h *AdminHandler) ClearCache(ctx *gin.Context) {
	if err := h.store.Clear(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	logger.GetLogger().Info("Cache cleared")
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "cache cleared"})
}

// Refresh handles POST /api/admin/refresh: force a rebuild of the site data
// file regardless of its age.
func (h *AdminHandler) Refresh(ctx *gin.Context) {
	payload, err := h.siteDataUseCase.BuildAndSave(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"generated_at":  payload.GeneratedAt,
		"latest_videos": len(payload.LatestVideos),
		"latest_shorts": len(payload.LatestShorts),
	}})
}
