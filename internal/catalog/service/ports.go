package service

import (
	"context"

	"github.com/google/uuid"

	"gamehub/internal/catalog/model"
)

// CatalogRepository is the persistence port for canonical games.
// Lookups that can miss return model.ErrGameNotFound.
type CatalogRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.CanonicalGame, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (*model.CanonicalGame, error)
	FindBySteamAppID(ctx context.Context, appID int) (*model.CanonicalGame, error)
	FindByNameContaining(ctx context.Context, substr string) ([]model.CanonicalGame, error)
	FindAll(ctx context.Context) ([]model.CanonicalGame, error)
	FindAllByIDs(ctx context.Context, ids []uuid.UUID) ([]model.CanonicalGame, error)
	Save(ctx context.Context, game model.CanonicalGame) (model.CanonicalGame, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// CollectionPort is what the catalog needs from the collection module.
type CollectionPort interface {
	AddToCollection(ctx context.Context, ownerID, gameID uuid.UUID) error
	IsInCollection(ctx context.Context, ownerID, gameID uuid.UUID) (bool, error)
}
