// Package enrichment chains external-data providers over the catalog:
// each enabled provider in turn gets the current game record and may
// return an updated one, with per-provider failures isolated so a
// broken source never stops the rest.
package enrichment

import (
	"context"

	"gamehub/internal/catalog/model"
)

// Provider enriches a canonical game with data from one external
// source. An error return marks a provider failure; the orchestrator
// records it and moves on.
type Provider interface {
	Enrich(ctx context.Context, game model.CanonicalGame) (Result, error)
	Name() string
	Enabled() bool
}

// Result is the outcome of one provider call. Enriched reports whether
// Game differs from the input and should replace it.
type Result struct {
	Enriched bool
	Game     model.CanonicalGame
	Message  string
}

// Success marks the game as changed by this provider.
func Success(game model.CanonicalGame, message string) Result {
	return Result{Enriched: true, Game: game, Message: message}
}

// NoChange passes the game through untouched.
func NoChange(game model.CanonicalGame, message string) Result {
	return Result{Enriched: false, Game: game, Message: message}
}

// ProviderInfo describes a configured provider.
type ProviderInfo struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
