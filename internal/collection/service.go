package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Store is the persistence surface the service needs.
type Store interface {
	Create(ctx context.Context, entry *PersonalizedGame) error
	Exists(ctx context.Context, ownerID, gameID string) (bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]PersonalizedGame, error)
	UpdateFlags(ctx context.Context, ownerID, gameID string, played, hidden, later bool) error
}

// Service manages per-user game collections. It satisfies the catalog's
// CollectionPort so imports can register newly created games for the importer.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// AddToCollection adds the game to the owner's collection. Adding a game
// the owner already has is a no-op, never a duplicate row.
func (s *Service) AddToCollection(ctx context.Context, ownerID, gameID uuid.UUID) error {
	exists, err := s.store.Exists(ctx, ownerID.String(), gameID.String())
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	entry := &PersonalizedGame{
		OwnerID: ownerID.String(),
		GameID:  gameID.String(),
	}
	if err := s.store.Create(ctx, entry); err != nil {
		return err
	}
	s.logger.Debug("game added to collection", "owner_id", ownerID, "game_id", gameID)
	return nil
}

func (s *Service) IsInCollection(ctx context.Context, ownerID, gameID uuid.UUID) (bool, error) {
	return s.store.Exists(ctx, ownerID.String(), gameID.String())
}

func (s *Service) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]PersonalizedGame, error) {
	return s.store.ListByOwner(ctx, ownerID.String())
}

// SetFlags updates the played/hidden/later markers on an owned game.
func (s *Service) SetFlags(ctx context.Context, ownerID, gameID uuid.UUID, played, hidden, later bool) error {
	if err := s.store.UpdateFlags(ctx, ownerID.String(), gameID.String(), played, hidden, later); err != nil {
		return fmt.Errorf("set collection flags for game %s: %w", gameID, err)
	}
	return nil
}
