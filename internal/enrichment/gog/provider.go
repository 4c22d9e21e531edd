// Package gog will enrich catalog games with GOG store data.
package gog

import (
	"context"

	"gamehub/internal/catalog/model"
	"gamehub/internal/enrichment"
)

// Provider is a placeholder until the GOG embed API integration lands.
type Provider struct{}

func NewProvider() *Provider { return &Provider{} }

func (p *Provider) Name() string { return "gog" }

// Enabled is false until the integration is implemented.
func (p *Provider) Enabled() bool { return false }

func (p *Provider) Enrich(_ context.Context, game model.CanonicalGame) (enrichment.Result, error) {
	return enrichment.NoChange(game, "GOG enrichment not yet implemented"), nil
}
