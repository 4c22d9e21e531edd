package steam

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gamehub/internal/catalog/model"
	"gamehub/internal/enrichment"
)

const providerName = "steam"

// Provider refreshes a game's Steam slot, thumbnail and review rating
// from the store API. Games without a Steam app id are passed through.
type Provider struct {
	client *Client
	logger *slog.Logger
}

func NewProvider(client *Client, logger *slog.Logger) *Provider {
	return &Provider{client: client, logger: logger}
}

func (p *Provider) Name() string { return providerName }

// Enabled is always true: the store endpoints need no API key.
func (p *Provider) Enabled() bool { return true }

func (p *Provider) Enrich(ctx context.Context, game model.CanonicalGame) (enrichment.Result, error) {
	steamData := game.Steam()
	if steamData == nil || steamData.AppID == nil {
		return enrichment.NoChange(game, "No Steam app ID available"), nil
	}
	appID := *steamData.AppID

	p.logger.Debug("enriching with steam data", "game", game.Name, "app_id", appID)

	details, err := p.client.AppDetails(ctx, appID)
	if err != nil {
		return enrichment.Result{}, err
	}

	draft := model.DraftFrom(game)

	officialName := details.Name
	if steamData.Name == nil || *steamData.Name != officialName {
		p.logger.Info("updating steam name", "from", strValue(steamData.Name), "to", officialName)
	}
	draft.Steam = &model.SteamData{AppID: &appID, Name: &officialName}

	if strings.TrimSpace(details.HeaderImage) != "" {
		header := details.HeaderImage
		draft.ThumbnailURL = &header
	}

	if rating := p.fetchRating(ctx, appID); rating != nil {
		draft.SteamRating = rating
	}

	enriched, err := draft.Build()
	if err != nil {
		return enrichment.Result{}, err
	}

	return enrichment.Success(enriched,
		fmt.Sprintf("Enriched with Steam data for '%s' (App ID: %d)", officialName, appID)), nil
}

// fetchRating pulls the review summary; review data is a nice-to-have,
// so a failure here only logs and the details-based enrichment stands.
func (p *Provider) fetchRating(ctx context.Context, appID int) *model.SteamRating {
	summary, err := p.client.AppReviews(ctx, appID)
	if err != nil {
		p.logger.Warn("could not fetch steam reviews", "app_id", appID, "error", err)
		return nil
	}

	rating, err := model.NewSteamRating(
		summary.TotalPositive,
		summary.TotalNegative,
		model.SentimentFromScore(summary.ReviewScore),
	)
	if err != nil {
		p.logger.Warn("invalid steam review counts", "app_id", appID, "error", err)
		return nil
	}
	return &rating
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
