// Package metacritic will enrich catalog games with Metacritic scores.
package metacritic

import (
	"context"

	"gamehub/internal/catalog/model"
	"gamehub/internal/enrichment"
)

// Provider is a placeholder; Metacritic has no public API, so scores
// currently only arrive through imports.
type Provider struct{}

func NewProvider() *Provider { return &Provider{} }

func (p *Provider) Name() string { return "metacritic" }

// Enabled is false until the integration is implemented.
func (p *Provider) Enabled() bool { return false }

func (p *Provider) Enrich(_ context.Context, game model.CanonicalGame) (enrichment.Result, error) {
	return enrichment.NoChange(game, "Metacritic enrichment not yet implemented"), nil
}
