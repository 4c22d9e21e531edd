// Package repository persists canonical games in Postgres through gorm.
// Store slots are flattened into columns; the domain model is rebuilt
// on the way out.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gamehub/internal/catalog/model"
)

type gameRow struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	Name         string  `gorm:"not null;index"`
	ThumbnailURL *string

	SteamAppID     *int `gorm:"index"`
	SteamName      *string
	SteamPositive  *int
	SteamNegative  *int
	SteamSentiment *int

	GogID   *int64
	GogName *string
	GogLink *string

	EpicID   *string
	EpicName *string
	EpicLink *string

	MetacriticScore *int
	MetacriticName  *string
	MetacriticLink  *string

	CreatedAt time.Time `gorm:"<-:create"`
	UpdatedAt time.Time
}

func (gameRow) TableName() string {
	return "canonical_games"
}

// AutoMigrate creates or updates the canonical_games table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&gameRow{})
}

// GameRepo implements the catalog's CatalogRepository port on gorm.
type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db: db}
}

func (r *GameRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CanonicalGame, error) {
	var row gameRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("find game by id: %w", err)
	}
	return fromRow(row)
}

func (r *GameRepo) FindByNameIgnoreCase(ctx context.Context, name string) (*model.CanonicalGame, error) {
	var row gameRow
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("find game by name: %w", err)
	}
	return fromRow(row)
}

func (r *GameRepo) FindBySteamAppID(ctx context.Context, appID int) (*model.CanonicalGame, error) {
	var row gameRow
	err := r.db.WithContext(ctx).Where("steam_app_id = ?", appID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrGameNotFound
		}
		return nil, fmt.Errorf("find game by steam app id: %w", err)
	}
	return fromRow(row)
}

func (r *GameRepo) FindByNameContaining(ctx context.Context, substr string) ([]model.CanonicalGame, error) {
	var rows []gameRow
	err := r.db.WithContext(ctx).Where("name ILIKE ?", "%"+substr+"%").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find games by name fragment: %w", err)
	}
	return fromRows(rows)
}

func (r *GameRepo) FindAll(ctx context.Context) ([]model.CanonicalGame, error) {
	var rows []gameRow
	if err := r.db.WithContext(ctx).Order("name asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find all games: %w", err)
	}
	return fromRows(rows)
}

func (r *GameRepo) FindAllByIDs(ctx context.Context, ids []uuid.UUID) ([]model.CanonicalGame, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}
	var rows []gameRow
	if err := r.db.WithContext(ctx).Where("id IN ?", strIDs).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find games by ids: %w", err)
	}
	return fromRows(rows)
}

func (r *GameRepo) Save(ctx context.Context, game model.CanonicalGame) (model.CanonicalGame, error) {
	row := toRow(game)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return model.CanonicalGame{}, fmt.Errorf("save game: %w", err)
	}
	saved, err := fromRow(row)
	if err != nil {
		return model.CanonicalGame{}, err
	}
	return *saved, nil
}

func (r *GameRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&gameRow{}, "id = ?", id.String()).Error; err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

func toRow(g model.CanonicalGame) gameRow {
	row := gameRow{
		ID:           g.ID.String(),
		Name:         g.Name,
		ThumbnailURL: g.ThumbnailURL,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}

	if s := g.Steam(); s != nil {
		row.SteamAppID = s.AppID
		row.SteamName = s.Name
	}
	if rating := g.Ratings.Steam; rating != nil {
		pos, neg, sentiment := rating.Positive, rating.Negative, rating.Sentiment.Score()
		row.SteamPositive = &pos
		row.SteamNegative = &neg
		row.SteamSentiment = &sentiment
	}
	if d := g.Gog(); d != nil {
		row.GogID = d.GogID
		row.GogName = d.Name
		row.GogLink = d.Link
	}
	if d := g.Epic(); d != nil {
		row.EpicID = d.EpicID
		row.EpicName = d.Name
		row.EpicLink = d.Link
	}
	if d := g.Metacritic(); d != nil {
		row.MetacriticScore = d.Score
		row.MetacriticName = d.GameName
		row.MetacriticLink = d.Link
	}
	return row
}

func fromRow(row gameRow) (*model.CanonicalGame, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("corrupt game id %q: %w", row.ID, err)
	}

	store := make(map[model.StoreKind]model.StoreRecord)
	// A slot exists when any of its columns carries data; the Steam row
	// also carries a name-only slot from imports with unparsable ids.
	if row.SteamAppID != nil || row.SteamName != nil {
		store[model.StoreSteam] = model.SteamData{AppID: row.SteamAppID, Name: row.SteamName}
	}
	if row.GogID != nil || row.GogName != nil || row.GogLink != nil {
		store[model.StoreGog] = model.GogData{GogID: row.GogID, Name: row.GogName, Link: row.GogLink}
	}
	if row.EpicID != nil || row.EpicName != nil || row.EpicLink != nil {
		store[model.StoreEpic] = model.EpicData{EpicID: row.EpicID, Name: row.EpicName, Link: row.EpicLink}
	}
	if row.MetacriticScore != nil || row.MetacriticName != nil || row.MetacriticLink != nil {
		store[model.StoreMetacritic] = model.MetacriticData{
			Score:    row.MetacriticScore,
			GameName: row.MetacriticName,
			Link:     row.MetacriticLink,
		}
	}

	var steamRating *model.SteamRating
	if row.SteamPositive != nil && row.SteamNegative != nil {
		sentiment := model.SentimentUndefined
		if row.SteamSentiment != nil {
			sentiment = model.SentimentFromScore(*row.SteamSentiment)
		}
		rating, err := model.NewSteamRating(*row.SteamPositive, *row.SteamNegative, sentiment)
		if err != nil {
			return nil, fmt.Errorf("corrupt steam rating for game %s: %w", row.ID, err)
		}
		steamRating = &rating
	}

	return &model.CanonicalGame{
		ID:           id,
		Name:         row.Name,
		ThumbnailURL: row.ThumbnailURL,
		Ratings:      model.AggregatedRatings{Steam: steamRating},
		StoreData:    store,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func fromRows(rows []gameRow) ([]model.CanonicalGame, error) {
	out := make([]model.CanonicalGame, 0, len(rows))
	for _, row := range rows {
		g, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, nil
}
