package thumbnail

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"gamehub/internal/catalog/model"
)

// GameLookup is the slice of the catalog the resolver needs.
type GameLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.CanonicalGame, error)
}

// Resolver answers thumbnail lookups cache-first, falling back to the
// catalog. Cache failures are logged and treated as misses so Redis being
// down never breaks artwork.
type Resolver struct {
	cache  *Cache
	games  GameLookup
	logger *slog.Logger
}

func NewResolver(cache *Cache, games GameLookup, logger *slog.Logger) *Resolver {
	return &Resolver{cache: cache, games: games, logger: logger}
}

// Resolve returns the thumbnail URL for the game, or "" when the game has
// no artwork. Unknown game ids propagate model.ErrGameNotFound.
func (r *Resolver) Resolve(ctx context.Context, gameID uuid.UUID) (string, error) {
	url, err := r.cache.Get(ctx, gameID)
	if err != nil {
		r.logger.Warn("thumbnail cache read failed", "game_id", gameID, "error", err)
	}
	if url != "" {
		return url, nil
	}

	game, err := r.games.FindByID(ctx, gameID)
	if err != nil {
		return "", err
	}
	if game.ThumbnailURL == nil || *game.ThumbnailURL == "" {
		return "", nil
	}

	if err := r.cache.Put(ctx, gameID, *game.ThumbnailURL); err != nil {
		r.logger.Warn("thumbnail cache write failed", "game_id", gameID, "error", err)
	}
	return *game.ThumbnailURL, nil
}

// Invalidate drops the cached entry after the game's artwork changed.
func (r *Resolver) Invalidate(ctx context.Context, gameID uuid.UUID) {
	if err := r.cache.Evict(ctx, gameID); err != nil {
		r.logger.Warn("thumbnail cache evict failed", "game_id", gameID, "error", err)
	}
}
