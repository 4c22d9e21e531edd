// Package collection tracks which canonical games belong to which
// owner. The catalog core only consults it through the CollectionPort.
package collection

import "time"

// PersonalizedGame is one owner's entry for a canonical game. It
// references the game by id only; user-facing flags live here, never on
// the canonical record.
type PersonalizedGame struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID string    `json:"owner_id" gorm:"type:uuid;not null;index:idx_owner_game,unique"`
	GameID  string    `json:"game_id" gorm:"type:uuid;not null;index:idx_owner_game,unique"`
	Played  bool      `json:"played"`
	Hidden  bool      `json:"hidden"`
	Later   bool      `json:"later"`
	AddedAt time.Time `json:"added_at" gorm:"autoCreateTime"`
}

func (PersonalizedGame) TableName() string {
	return "personalized_games"
}
