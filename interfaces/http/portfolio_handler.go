package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-site/usecase"
)

// IPortfolioHandler defines the handlers for the static site content.
type IPortfolioHandler interface {
	GetFilmProjects(ctx *gin.Context)
	GetOtherProjects(ctx *gin.Context)
	GetProjectByID(ctx *gin.Context)
	GetCV(ctx *gin.Context)
	GetSkills(ctx *gin.Context)
	GetSocials(ctx *gin.Context)
}

type PortfolioHandler struct {
	portfolioUseCase usecase.IPortfolioUseCase
}

func NewPortfolioHandler(portfolioUseCase usecase.IPortfolioUseCase) IPortfolioHandler {
	return &PortfolioHandler{portfolioUseCase: portfolioUseCase}
}

// GetFilmProjects handles GET /api/projects/film
func (h *PortfolioHandler) GetFilmProjects(ctx *gin.Context) {
	projects, err := h.portfolioUseCase.GetFilmProjects(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": projects})
}

// GetOtherProjects handles GET /api/projects/other
func (h *PortfolioHandler) GetOtherProjects(ctx *gin.Context) {
	projects, err := h.portfolioUseCase.GetOtherProjects(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": projects})
}

// GetProjectByID handles GET /api/projects/:projectId
func (h *PortfolioHandler) GetProjectByID(ctx *gin.Context) {
	project, err := h.portfolioUseCase.GetProjectByID(ctx.Request.Context(), ctx.Param("projectId"))
	if err != nil {
		if errors.Is(err, usecase.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

// GetCV handles GET /api/cv
func (h *PortfolioHandler) GetCV(ctx *gin.Context) {
	entries, err := h.portfolioUseCase.GetCV(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// GetSkills handles GET /api/skills
func (h *PortfolioHandler) GetSkills(ctx *gin.Context) {
	skills, err := h.portfolioUseCase.GetSkills(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": skills})
}

// GetSocials handles GET /api/socials
func (h *PortfolioHandler) GetSocials(ctx *gin.Context) {
	socials, err := h.portfolioUseCase.GetSocials(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": socials})
}
