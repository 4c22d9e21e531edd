package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gamehub/internal/catalog/model"
)

// memRepo is an in-memory CatalogRepository for service tests.
type memRepo struct {
	games    map[uuid.UUID]model.CanonicalGame
	saveErr  error
	saveFor  map[string]error // per-name save failures
	saveHits int
}

func newMemRepo() *memRepo {
	return &memRepo{games: make(map[uuid.UUID]model.CanonicalGame)}
}

func (r *memRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CanonicalGame, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return &g, nil
}

func (r *memRepo) FindByNameIgnoreCase(_ context.Context, name string) (*model.CanonicalGame, error) {
	for _, g := range r.games {
		if strings.EqualFold(g.Name, name) {
			out := g
			return &out, nil
		}
	}
	return nil, model.ErrGameNotFound
}

func (r *memRepo) FindBySteamAppID(_ context.Context, appID int) (*model.CanonicalGame, error) {
	for _, g := range r.games {
		if s := g.Steam(); s != nil && s.AppID != nil && *s.AppID == appID {
			out := g
			return &out, nil
		}
	}
	return nil, model.ErrGameNotFound
}

func (r *memRepo) FindByNameContaining(_ context.Context, substr string) ([]model.CanonicalGame, error) {
	var out []model.CanonicalGame
	for _, g := range r.games {
		if strings.Contains(strings.ToLower(g.Name), strings.ToLower(substr)) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memRepo) FindAll(_ context.Context) ([]model.CanonicalGame, error) {
	out := make([]model.CanonicalGame, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, g)
	}
	return out, nil
}

func (r *memRepo) FindAllByIDs(_ context.Context, ids []uuid.UUID) ([]model.CanonicalGame, error) {
	var out []model.CanonicalGame
	for _, id := range ids {
		if g, ok := r.games[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memRepo) Save(_ context.Context, game model.CanonicalGame) (model.CanonicalGame, error) {
	if r.saveErr != nil {
		return model.CanonicalGame{}, r.saveErr
	}
	if err, ok := r.saveFor[game.Name]; ok && err != nil {
		return model.CanonicalGame{}, err
	}
	r.saveHits++
	r.games[game.ID] = game
	return game, nil
}

func (r *memRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	delete(r.games, id)
	return nil
}

// memCollection is an in-memory CollectionPort.
type memCollection struct {
	added  map[string]bool
	addErr error
}

func newMemCollection() *memCollection {
	return &memCollection{added: make(map[string]bool)}
}

func collectionKey(ownerID, gameID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", ownerID, gameID)
}

func (c *memCollection) AddToCollection(_ context.Context, ownerID, gameID uuid.UUID) error {
	if c.addErr != nil {
		return c.addErr
	}
	c.added[collectionKey(ownerID, gameID)] = true
	return nil
}

func (c *memCollection) IsInCollection(_ context.Context, ownerID, gameID uuid.UUID) (bool, error) {
	return c.added[collectionKey(ownerID, gameID)], nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
