package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrBlankName is returned when a game is built without a usable name.
	ErrBlankName = errors.New("game name must not be blank")

	// ErrGameNotFound is returned by lookups for ids that do not exist.
	ErrGameNotFound = errors.New("game not found")
)

// CanonicalGame is the single deduplicated identity for one real-world
// game across all sources.
//
// Invariants:
//   - the name is never blank
//   - the id is generated once at first creation and never changes
//   - the store data map never holds a nil record for a present key
//
// Instances are only produced through Draft.Build; updates go through
// DraftFrom plus selective field overrides. Writing a store slot
// replaces it wholesale.
type CanonicalGame struct {
	ID           uuid.UUID
	Name         string
	ThumbnailURL *string
	Ratings      AggregatedRatings
	StoreData    map[StoreKind]StoreRecord
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Rating is the aggregated 0-100 score, recomputed from the source
// ratings on every call.
func (g CanonicalGame) Rating() int { return g.Ratings.Rating() }

// Steam returns the Steam slot, nil when absent.
func (g CanonicalGame) Steam() *SteamData {
	if d, ok := g.StoreData[StoreSteam].(SteamData); ok {
		return &d
	}
	return nil
}

// Gog returns the GOG slot, nil when absent.
func (g CanonicalGame) Gog() *GogData {
	if d, ok := g.StoreData[StoreGog].(GogData); ok {
		return &d
	}
	return nil
}

// Epic returns the Epic slot, nil when absent.
func (g CanonicalGame) Epic() *EpicData {
	if d, ok := g.StoreData[StoreEpic].(EpicData); ok {
		return &d
	}
	return nil
}

// Metacritic returns the Metacritic slot, nil when absent.
func (g CanonicalGame) Metacritic() *MetacriticData {
	if d, ok := g.StoreData[StoreMetacritic].(MetacriticData); ok {
		return &d
	}
	return nil
}

// Draft accumulates the fields of a canonical game before validation.
// A zero ID means Build generates a fresh one; a set ID is kept as-is.
// Each store field independently and wholesale replaces that slot.
type Draft struct {
	ID           uuid.UUID
	Name         string
	ThumbnailURL *string
	SteamRating  *SteamRating
	Steam        *SteamData
	Gog          *GogData
	Epic         *EpicData
	Metacritic   *MetacriticData
}

// NewDraft starts a build for a brand-new game.
func NewDraft(name string) Draft {
	return Draft{Name: name}
}

// DraftFrom seeds a draft with every field of an existing game. This is
// the carry-forward update path: callers override what changed and
// Build the rest back unchanged.
func DraftFrom(g CanonicalGame) Draft {
	return Draft{
		ID:           g.ID,
		Name:         g.Name,
		ThumbnailURL: g.ThumbnailURL,
		SteamRating:  g.Ratings.Steam,
		Steam:        g.Steam(),
		Gog:          g.Gog(),
		Epic:         g.Epic(),
		Metacritic:   g.Metacritic(),
	}
}

// Build validates the draft and produces the game. Fails with
// ErrBlankName when the name is blank; generates an id when none was
// carried forward.
func (d Draft) Build() (CanonicalGame, error) {
	if strings.TrimSpace(d.Name) == "" {
		return CanonicalGame{}, ErrBlankName
	}

	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	store := make(map[StoreKind]StoreRecord)
	if d.Steam != nil {
		store[StoreSteam] = *d.Steam
	}
	if d.Gog != nil {
		store[StoreGog] = *d.Gog
	}
	if d.Epic != nil {
		store[StoreEpic] = *d.Epic
	}
	if d.Metacritic != nil {
		store[StoreMetacritic] = *d.Metacritic
	}

	now := time.Now()
	return CanonicalGame{
		ID:           id,
		Name:         d.Name,
		ThumbnailURL: d.ThumbnailURL,
		Ratings:      AggregatedRatings{Steam: d.SteamRating},
		StoreData:    store,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
