package dto

import (
	"time"

	"gamehub/internal/collection"
)

// CollectionEntryResponse is one owned game in a user's collection,
// hydrated with the catalog entry when it still exists.
type CollectionEntryResponse struct {
	GameID  string        `json:"game_id"`
	Game    *GameResponse `json:"game,omitempty"`
	Played  bool          `json:"played"`
	Hidden  bool          `json:"hidden"`
	Later   bool          `json:"later"`
	AddedAt time.Time     `json:"added_at"`
}

// UpdateFlagsRequest sets the played/hidden/later markers on an owned game.
type UpdateFlagsRequest struct {
	Played bool `json:"played"`
	Hidden bool `json:"hidden"`
	Later  bool `json:"later"`
}

func FromEntryToResponse(e collection.PersonalizedGame) CollectionEntryResponse {
	return CollectionEntryResponse{
		GameID:  e.GameID,
		Played:  e.Played,
		Hidden:  e.Hidden,
		Later:   e.Later,
		AddedAt: e.AddedAt,
	}
}
