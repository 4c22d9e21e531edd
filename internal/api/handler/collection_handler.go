package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gamehub/internal/api/dto"
	"gamehub/internal/catalog/service"
	"gamehub/internal/collection"
)

type CollectionHandler struct {
	svc     *collection.Service
	catalog *service.CatalogService
}

func NewCollectionHandler(svc *collection.Service, catalog *service.CatalogService) *CollectionHandler {
	return &CollectionHandler{svc: svc, catalog: catalog}
}

func (h *CollectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.POST("/:game_id", h.Add)
	rg.PUT("/:game_id/flags", h.SetFlags)
}

func (h *CollectionHandler) List(c *gin.Context) {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user identity"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.svc.ListOwned(ctx, ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Hydrate with the catalog entries in one batch lookup. Entries
	// whose game has been deleted still list, just without game data.
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if id, err := uuid.Parse(e.GameID); err == nil {
			ids = append(ids, id)
		}
	}
	games, err := h.catalog.GetByIDs(ctx, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.CollectionEntryResponse, 0, len(entries))
	for _, e := range entries {
		entry := dto.FromEntryToResponse(e)
		if id, err := uuid.Parse(e.GameID); err == nil {
			if g, ok := games[id]; ok {
				gr := dto.FromGameToResponse(g)
				entry.Game = &gr
			}
		}
		resp = append(resp, entry)
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

func (h *CollectionHandler) Add(c *gin.Context) {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user identity"})
		return
	}

	gameID, err := uuid.Parse(c.Param("game_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.AddToCollection(ctx, ownerID, gameID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game added to collection"})
}

func (h *CollectionHandler) SetFlags(c *gin.Context) {
	ownerID, err := ownerFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user identity"})
		return
	}

	gameID, err := uuid.Parse(c.Param("game_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req dto.UpdateFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err = h.svc.SetFlags(ctx, ownerID, gameID, req.Played, req.Hidden, req.Later)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not in collection"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "flags updated"})
}
