// Package epic will enrich catalog games with Epic Games store data.
package epic

import (
	"context"

	"gamehub/internal/catalog/model"
	"gamehub/internal/enrichment"
)

// Provider is a placeholder until an Epic store integration lands.
type Provider struct{}

func NewProvider() *Provider { return &Provider{} }

func (p *Provider) Name() string { return "epic" }

// Enabled is false until the integration is implemented.
func (p *Provider) Enabled() bool { return false }

func (p *Provider) Enrich(_ context.Context, game model.CanonicalGame) (enrichment.Result, error) {
	return enrichment.NoChange(game, "Epic enrichment not yet implemented"), nil
}
