package dto

import (
	"gamehub/internal/catalog/service"
)

// MatchStoreLink is one store reference attached to a match candidate.
type MatchStoreLink struct {
	StoreName string  `json:"store_name" binding:"required"`
	StoreID   *string `json:"store_id,omitempty"`
	URL       string  `json:"url,omitempty"`
}

// MatchRequest asks whether an external record resolves to a catalog game.
type MatchRequest struct {
	Name       string           `json:"name" binding:"required"`
	StoreLinks []MatchStoreLink `json:"store_links,omitempty"`
}

// MatchResponse names the resolved game, if any.
type MatchResponse struct {
	Matched bool   `json:"matched"`
	GameID  string `json:"game_id,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func (d MatchRequest) ToCandidate() service.Candidate {
	links := make([]service.CandidateStoreLink, 0, len(d.StoreLinks))
	for _, l := range d.StoreLinks {
		links = append(links, service.CandidateStoreLink{
			StoreName: l.StoreName,
			StoreID:   l.StoreID,
			URL:       l.URL,
		})
	}
	return service.Candidate{Name: d.Name, StoreLinks: links}
}
