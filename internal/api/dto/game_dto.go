package dto

import (
	"time"

	"gamehub/internal/catalog/model"
	"gamehub/internal/catalog/service"
)

// SteamStoreResponse is the Steam slot of a catalog entry.
type SteamStoreResponse struct {
	AppID *int    `json:"app_id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Link  *string `json:"link,omitempty"`
}

type GogStoreResponse struct {
	GogID *int64  `json:"gog_id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Link  *string `json:"link,omitempty"`
}

type EpicStoreResponse struct {
	EpicID *string `json:"epic_id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Link   *string `json:"link,omitempty"`
}

type MetacriticStoreResponse struct {
	Score *int    `json:"score,omitempty"`
	Name  *string `json:"name,omitempty"`
	Link  *string `json:"link,omitempty"`
}

type RatingsResponse struct {
	Overall        int     `json:"overall"`
	SteamRating    *int    `json:"steam_rating,omitempty"`
	SteamSentiment *string `json:"steam_sentiment,omitempty"`
}

// GameResponse is the full catalog entry as served over the API.
type GameResponse struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Slug         string                   `json:"slug"`
	ThumbnailURL *string                  `json:"thumbnail_url,omitempty"`
	Ratings      *RatingsResponse         `json:"ratings,omitempty"`
	Steam        *SteamStoreResponse      `json:"steam,omitempty"`
	Gog          *GogStoreResponse        `json:"gog,omitempty"`
	Epic         *EpicStoreResponse       `json:"epic,omitempty"`
	Metacritic   *MetacriticStoreResponse `json:"metacritic,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// UpdateCatalogDTO carries field-wise store overrides for PUT
// /api/catalog/:game_id. Omitted fields keep the existing value.
type UpdateCatalogDTO struct {
	SteamAppID      *int    `json:"steam_app_id,omitempty"`
	SteamName       *string `json:"steam_name,omitempty"`
	GogID           *int64  `json:"gog_id,omitempty"`
	GogName         *string `json:"gog_name,omitempty"`
	GogLink         *string `json:"gog_link,omitempty"`
	EpicID          *string `json:"epic_id,omitempty"`
	EpicName        *string `json:"epic_name,omitempty"`
	EpicLink        *string `json:"epic_link,omitempty"`
	MetacriticScore *int    `json:"metacritic_score,omitempty"`
	MetacriticName  *string `json:"metacritic_name,omitempty"`
	MetacriticLink  *string `json:"metacritic_link,omitempty"`
}

func (d UpdateCatalogDTO) ToCommand() service.UpdateCatalogCommand {
	return service.UpdateCatalogCommand{
		SteamAppID:      d.SteamAppID,
		SteamName:       d.SteamName,
		GogID:           d.GogID,
		GogName:         d.GogName,
		GogLink:         d.GogLink,
		EpicID:          d.EpicID,
		EpicName:        d.EpicName,
		EpicLink:        d.EpicLink,
		MetacriticScore: d.MetacriticScore,
		MetacriticName:  d.MetacriticName,
		MetacriticLink:  d.MetacriticLink,
	}
}

func FromGameToResponse(g model.CanonicalGame) GameResponse {
	resp := GameResponse{
		ID:           g.ID.String(),
		Name:         g.Name,
		Slug:         model.Slugify(g.Name),
		ThumbnailURL: g.ThumbnailURL,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}

	if steam := g.Steam(); steam != nil {
		resp.Steam = &SteamStoreResponse{AppID: steam.AppID, Name: steam.Name, Link: steam.StoreLink()}
	}
	if gog := g.Gog(); gog != nil {
		resp.Gog = &GogStoreResponse{GogID: gog.GogID, Name: gog.Name, Link: gog.StoreLink()}
	}
	if epic := g.Epic(); epic != nil {
		resp.Epic = &EpicStoreResponse{EpicID: epic.EpicID, Name: epic.Name, Link: epic.StoreLink()}
	}
	if mc := g.Metacritic(); mc != nil {
		resp.Metacritic = &MetacriticStoreResponse{Score: mc.Score, Name: mc.GameName, Link: mc.StoreLink()}
	}

	if g.Ratings.Steam != nil {
		rating := g.Ratings.Steam.Rating()
		sentiment := g.Ratings.Steam.Sentiment.String()
		resp.Ratings = &RatingsResponse{
			Overall:        g.Ratings.Rating(),
			SteamRating:    &rating,
			SteamSentiment: &sentiment,
		}
	}

	return resp
}
