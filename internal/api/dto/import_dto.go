package dto

import (
	"gamehub/internal/catalog/service"
)

// GameImportRequest is one store record in a POST /api/import payload.
type GameImportRequest struct {
	Name         string  `json:"name" binding:"required"`
	Store        string  `json:"store" binding:"required"`
	StoreID      *string `json:"store_id,omitempty"`
	StoreLink    *string `json:"store_link,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}

func (d GameImportRequest) ToCommand() service.ImportCommand {
	return service.ImportCommand{
		Name:         d.Name,
		Store:        d.Store,
		StoreID:      d.StoreID,
		StoreLink:    d.StoreLink,
		ThumbnailURL: d.ThumbnailURL,
	}
}

// BulkImportRequest is the full import payload.
type BulkImportRequest struct {
	Games []GameImportRequest `json:"games" binding:"required,min=1,dive"`
}

func (d BulkImportRequest) ToCommands() []service.ImportCommand {
	out := make([]service.ImportCommand, 0, len(d.Games))
	for _, g := range d.Games {
		out = append(out, g.ToCommand())
	}
	return out
}
