package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gamehub/internal/api/dto"
	"gamehub/internal/catalog/service"
)

type ImportHandler struct {
	svc *service.ImportService
}

func NewImportHandler(svc *service.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

func (h *ImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Import)
	rg.POST("/single", h.ImportSingle)
}

// Import reconciles a batch of store records against the catalog. The
// whole batch is processed even when single items fail.
func (h *ImportHandler) Import(c *gin.Context) {
	var req dto.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, err := ownerFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user identity"})
		return
	}

	// Bulk imports hit the DB once per game; give them room.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	result := h.svc.ImportGames(ctx, req.ToCommands(), ownerID)
	c.JSON(http.StatusOK, result)
}

// ImportSingle reconciles one store record. Unlike the bulk endpoint,
// a failure here is the whole answer and reports as an error status.
func (h *ImportHandler) ImportSingle(c *gin.Context) {
	var req dto.GameImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, err := ownerFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user identity"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := h.svc.ImportGame(ctx, req.ToCommand(), ownerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func ownerFromContext(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetString("userID")
	return uuid.Parse(raw)
}
