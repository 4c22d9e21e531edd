package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gamehub/internal/api/middleware"
	"gamehub/internal/catalog/model"
	"gamehub/internal/enrichment"
)

type EnrichmentHandler struct {
	orchestrator *enrichment.Orchestrator
}

func NewEnrichmentHandler(orchestrator *enrichment.Orchestrator) *EnrichmentHandler {
	return &EnrichmentHandler{orchestrator: orchestrator}
}

func (h *EnrichmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/providers", h.Providers)

	// Enrichment hits external store APIs; admin only.
	rg.POST("/run", middleware.RequireAdmin(), h.EnrichAll)
	rg.POST("/run/:game_id", middleware.RequireAdmin(), h.EnrichGame)
}

func (h *EnrichmentHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": h.orchestrator.Providers()})
}

func (h *EnrichmentHandler) EnrichAll(c *gin.Context) {
	// Full-catalog passes are rate limited against Steam and can run long.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Minute)
	defer cancel()

	result, err := h.orchestrator.EnrichAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EnrichmentHandler) EnrichGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("game_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	result, err := h.orchestrator.EnrichGame(ctx, id)
	if errors.Is(err, model.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
