package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"gamehub/internal/catalog/model"
)

// Candidate is an externally-sourced game record to be matched against
// the catalog, e.g. a scraper result.
type Candidate struct {
	Name       string
	StoreLinks []CandidateStoreLink
}

// CandidateStoreLink is one store reference attached to a candidate.
type CandidateStoreLink struct {
	StoreName string
	StoreID   *string
	URL       string
}

// Match names the canonical game a candidate resolved to and why.
type Match struct {
	GameID uuid.UUID
	Reason string
}

// Matcher resolves candidates to existing canonical games using exact
// matching only: Steam app id first, then case-insensitive name. No
// fuzzy scoring, no ranking.
type Matcher struct {
	repo CatalogRepository
}

func NewMatcher(repo CatalogRepository) *Matcher {
	return &Matcher{repo: repo}
}

// FindMatch returns the first hit, or nil when the candidate is unknown
// to the catalog.
func (m *Matcher) FindMatch(ctx context.Context, c Candidate) (*Match, error) {
	// Steam app ids are the most reliable key.
	for _, link := range c.StoreLinks {
		if link.StoreName != "Steam" || link.StoreID == nil {
			continue
		}
		appID, err := strconv.Atoi(*link.StoreID)
		if err != nil {
			// Malformed Steam id, fall back to name matching.
			continue
		}
		match, err := m.FindBySteamAppID(ctx, appID)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
	}

	return m.FindByExactName(ctx, c.Name)
}

// FindBySteamAppID matches against existing Steam slots.
func (m *Matcher) FindBySteamAppID(ctx context.Context, appID int) (*Match, error) {
	game, err := m.repo.FindBySteamAppID(ctx, appID)
	if errors.Is(err, model.ErrGameNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by steam app id: %w", err)
	}
	return &Match{GameID: game.ID, Reason: fmt.Sprintf("Steam App ID: %d", appID)}, nil
}

// FindByExactName matches by exact case-insensitive name equality.
func (m *Matcher) FindByExactName(ctx context.Context, name string) (*Match, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}

	games, err := m.repo.FindByNameContaining(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find by name: %w", err)
	}
	for _, game := range games {
		if strings.EqualFold(game.Name, name) {
			return &Match{GameID: game.ID, Reason: "Name: " + name}, nil
		}
	}
	return nil, nil
}
