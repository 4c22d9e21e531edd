package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gamehub/internal/api/dto"
	"gamehub/internal/api/middleware"
	"gamehub/internal/catalog/model"
	"gamehub/internal/catalog/service"
	"gamehub/internal/thumbnail"
)

type CatalogHandler struct {
	svc        *service.CatalogService
	matcher    *service.Matcher
	thumbnails *thumbnail.Resolver
}

func NewCatalogHandler(svc *service.CatalogService, matcher *service.Matcher, thumbnails *thumbnail.Resolver) *CatalogHandler {
	return &CatalogHandler{svc: svc, matcher: matcher, thumbnails: thumbnails}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/stats", h.Stats)
	rg.GET("/duplicates", h.Duplicates)
	rg.POST("/match", h.Match)
	rg.GET("/:game_id", h.Get)
	rg.GET("/:game_id/thumbnail", h.Thumbnail)

	// Admin-only routes
	rg.PUT("/:game_id", middleware.RequireAdmin(), h.Update)
	rg.DELETE("/:game_id", middleware.RequireAdmin(), h.Delete)
}

func (h *CatalogHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	games, err := h.svc.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.GameResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, dto.FromGameToResponse(g))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("game_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	game, err := h.svc.Get(ctx, id)
	if errors.Is(err, model.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromGameToResponse(*game))
}

// Search looks up a single game by exact case-insensitive name.
func (h *CatalogHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	game, err := h.svc.FindByName(ctx, name)
	if errors.Is(err, model.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromGameToResponse(*game))
}

func (h *CatalogHandler) Thumbnail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("game_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	url, err := h.thumbnails.Resolve(ctx, id)
	if errors.Is(err, model.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if url == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no thumbnail"})
		return
	}
	c.Redirect(http.StatusFound, url)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("game_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.UpdateCatalogDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.svc.UpdateCatalogValues(ctx, id, in.ToCommand())
	if errors.Is(err, model.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.thumbnails.Invalidate(ctx, id)
	c.JSON(http.StatusOK, dto.FromGameToResponse(updated))
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("game_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err = h.svc.Delete(ctx, id)
	if errors.Is(err, model.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.thumbnails.Invalidate(ctx, id)
	c.JSON(http.StatusOK, gin.H{"message": "game deleted"})
}

// Match resolves an external record to a catalog game by Steam app id
// first, then exact name. No match is a normal answer, not an error.
func (h *CatalogHandler) Match(c *gin.Context) {
	var req dto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	match, err := h.matcher.FindMatch(ctx, req.ToCandidate())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if match == nil {
		c.JSON(http.StatusOK, dto.MatchResponse{Matched: false})
		return
	}
	c.JSON(http.StatusOK, dto.MatchResponse{
		Matched: true,
		GameID:  match.GameID.String(),
		Reason:  match.Reason,
	})
}

func (h *CatalogHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.svc.GetStoreStats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *CatalogHandler) Duplicates(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	groups, err := h.svc.FindDuplicatesByName(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make(map[string][]dto.GameResponse, len(groups))
	for name, group := range groups {
		entries := make([]dto.GameResponse, 0, len(group))
		for _, g := range group {
			entries = append(entries, dto.FromGameToResponse(g))
		}
		resp[name] = entries
	}
	c.JSON(http.StatusOK, gin.H{"duplicates": resp, "groups": len(resp)})
}
