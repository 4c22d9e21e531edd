package collection

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the personalized_games table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&PersonalizedGame{})
}

// Repo persists personalized games.
type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, entry *PersonalizedGame) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create collection entry: %w", err)
	}
	return nil
}

func (r *Repo) Exists(ctx context.Context, ownerID, gameID string) (bool, error) {
	var entry PersonalizedGame
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND game_id = ?", ownerID, gameID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check collection entry: %w", err)
	}
	return true, nil
}

func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]PersonalizedGame, error) {
	var entries []PersonalizedGame
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("added_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	return entries, nil
}

func (r *Repo) UpdateFlags(ctx context.Context, ownerID, gameID string, played, hidden, later bool) error {
	result := r.db.WithContext(ctx).
		Model(&PersonalizedGame{}).
		Where("owner_id = ? AND game_id = ?", ownerID, gameID).
		Updates(map[string]any{"played": played, "hidden": hidden, "later": later})
	if result.Error != nil {
		return fmt.Errorf("update collection flags: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
