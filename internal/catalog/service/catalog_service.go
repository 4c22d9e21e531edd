package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gamehub/internal/catalog/model"
)

// UpdateCatalogCommand carries field-wise overrides for a catalog entry.
// Nil fields keep the existing value.
type UpdateCatalogCommand struct {
	SteamAppID      *int
	SteamName       *string
	GogID           *int64
	GogName         *string
	GogLink         *string
	EpicID          *string
	EpicName        *string
	EpicLink        *string
	MetacriticScore *int
	MetacriticName  *string
	MetacriticLink  *string
}

// StoreCount is the number of catalog entries carrying data for one store.
type StoreCount struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	StoreURL string `json:"store_url"`
}

// StoreStats summarizes store coverage over the whole catalog.
type StoreStats struct {
	TotalGames        int        `json:"total_games"`
	Steam             StoreCount `json:"steam"`
	Gog               StoreCount `json:"gog"`
	Epic              StoreCount `json:"epic"`
	Metacritic        StoreCount `json:"metacritic"`
	GamesWithoutStore int        `json:"games_without_store"`
}

// CatalogService exposes read and administrative update operations on
// the canonical catalog.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*model.CanonicalGame, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) GetAll(ctx context.Context) ([]model.CanonicalGame, error) {
	return s.repo.FindAll(ctx)
}

// GetByIDs batch-loads games and returns them keyed by id for lookup.
func (s *CatalogService) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.CanonicalGame, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]model.CanonicalGame{}, nil
	}
	games, err := s.repo.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]model.CanonicalGame, len(games))
	for _, g := range games {
		out[g.ID] = g
	}
	return out, nil
}

func (s *CatalogService) FindByName(ctx context.Context, name string) (*model.CanonicalGame, error) {
	return s.repo.FindByNameIgnoreCase(ctx, name)
}

func (s *CatalogService) Save(ctx context.Context, game model.CanonicalGame) (model.CanonicalGame, error) {
	return s.repo.Save(ctx, game)
}

// Delete removes a catalog entry for good. Unknown ids report
// model.ErrGameNotFound.
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}

// UpdateCatalogValues applies field-wise overrides to every store slot,
// carrying existing values forward where the command is silent.
func (s *CatalogService) UpdateCatalogValues(ctx context.Context, id uuid.UUID, cmd UpdateCatalogCommand) (model.CanonicalGame, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.CanonicalGame{}, err
	}

	draft := model.DraftFrom(*existing)

	steam := orZero(existing.Steam())
	draft.Steam = &model.SteamData{
		AppID: pick(cmd.SteamAppID, steam.AppID),
		Name:  pick(cmd.SteamName, steam.Name),
	}

	gog := orZeroGog(existing.Gog())
	draft.Gog = &model.GogData{
		GogID: pick(cmd.GogID, gog.GogID),
		Name:  pick(cmd.GogName, gog.Name),
		Link:  pick(cmd.GogLink, gog.Link),
	}

	epic := orZeroEpic(existing.Epic())
	draft.Epic = &model.EpicData{
		EpicID: pick(cmd.EpicID, epic.EpicID),
		Name:   pick(cmd.EpicName, epic.Name),
		Link:   pick(cmd.EpicLink, epic.Link),
	}

	mc := orZeroMetacritic(existing.Metacritic())
	draft.Metacritic = &model.MetacriticData{
		Score:    pick(cmd.MetacriticScore, mc.Score),
		GameName: pick(cmd.MetacriticName, mc.GameName),
		Link:     pick(cmd.MetacriticLink, mc.Link),
	}

	updated, err := draft.Build()
	if err != nil {
		return model.CanonicalGame{}, err
	}
	return s.repo.Save(ctx, updated)
}

// FindDuplicatesByName groups catalog entries by lowercased trimmed name
// and returns only the groups holding more than one game.
func (s *CatalogService) FindDuplicatesByName(ctx context.Context) (map[string][]model.CanonicalGame, error) {
	games, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	groups := make(map[string][]model.CanonicalGame)
	for _, g := range games {
		key := strings.ToLower(strings.TrimSpace(g.Name))
		groups[key] = append(groups[key], g)
	}
	for key, group := range groups {
		if len(group) < 2 {
			delete(groups, key)
		}
	}
	return groups, nil
}

// GetStoreStats counts per-store coverage across the catalog. A store
// counts when its slot carries usable data, not merely when it exists.
func (s *CatalogService) GetStoreStats(ctx context.Context) (StoreStats, error) {
	games, err := s.repo.FindAll(ctx)
	if err != nil {
		return StoreStats{}, fmt.Errorf("load catalog: %w", err)
	}

	stats := StoreStats{TotalGames: len(games)}
	for _, g := range games {
		hasSteam := g.Steam() != nil && g.Steam().AppID != nil
		hasGog := g.Gog() != nil && (g.Gog().GogID != nil || g.Gog().Link != nil)
		hasEpic := g.Epic() != nil && (g.Epic().EpicID != nil || g.Epic().Link != nil)
		hasMetacritic := g.Metacritic() != nil && g.Metacritic().Score != nil

		if hasSteam {
			stats.Steam.Count++
		}
		if hasGog {
			stats.Gog.Count++
		}
		if hasEpic {
			stats.Epic.Count++
		}
		if hasMetacritic {
			stats.Metacritic.Count++
		}
		if !hasSteam && !hasGog && !hasEpic {
			stats.GamesWithoutStore++
		}
	}

	stats.Steam.Name, stats.Steam.StoreURL = "Steam", "https://store.steampowered.com"
	stats.Gog.Name, stats.Gog.StoreURL = "GOG", "https://www.gog.com"
	stats.Epic.Name, stats.Epic.StoreURL = "Epic Games", "https://store.epicgames.com"
	stats.Metacritic.Name, stats.Metacritic.StoreURL = "Metacritic", "https://www.metacritic.com"
	return stats, nil
}

// pick returns override when set, else the current value.
func pick[T any](override, current *T) *T {
	if override != nil {
		return override
	}
	return current
}

func orZero(d *model.SteamData) model.SteamData {
	if d == nil {
		return model.SteamData{}
	}
	return *d
}

func orZeroGog(d *model.GogData) model.GogData {
	if d == nil {
		return model.GogData{}
	}
	return *d
}

func orZeroEpic(d *model.EpicData) model.EpicData {
	if d == nil {
		return model.EpicData{}
	}
	return *d
}

func orZeroMetacritic(d *model.MetacriticData) model.MetacriticData {
	if d == nil {
		return model.MetacriticData{}
	}
	return *d
}
