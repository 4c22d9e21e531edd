package enrichment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"gamehub/internal/catalog/service"
)

// GameResult is the outcome of enriching one game.
type GameResult struct {
	Enriched      bool     `json:"enriched"`
	Failed        bool     `json:"failed"`
	ProvidersUsed []string `json:"providers_used"`
	Message       string   `json:"message"`
}

// GameDetail is the per-game entry in a batch result.
type GameDetail struct {
	GameID        uuid.UUID `json:"game_id"`
	GameName      string    `json:"game_name"`
	Enriched      bool      `json:"enriched"`
	ProvidersUsed []string  `json:"providers_used"`
	Message       string    `json:"message"`
}

// BatchResult summarizes an enrichment pass over the whole catalog.
type BatchResult struct {
	Enriched  int          `json:"enriched"`
	Unchanged int          `json:"unchanged"`
	Failed    int          `json:"failed"`
	Details   []GameDetail `json:"details"`
	Message   string       `json:"message"`
}

// Orchestrator runs the configured providers over catalog games in a
// fixed order, chaining each provider's output into the next and
// persisting once per game when anything changed. Games and providers
// run strictly sequentially.
type Orchestrator struct {
	repo      service.CatalogRepository
	providers []Provider
	logger    *slog.Logger
}

// NewOrchestrator wires the provider chain. Order of providers is the
// order they run in; it is the caller's configuration concern.
func NewOrchestrator(repo service.CatalogRepository, providers []Provider, logger *slog.Logger) *Orchestrator {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	logger.Info("initialized enrichment orchestrator", "providers", names)
	return &Orchestrator{repo: repo, providers: providers, logger: logger}
}

// EnrichAll runs every enabled provider over every catalog game. The
// batch always runs to completion; per-game problems are counted, not
// propagated.
func (o *Orchestrator) EnrichAll(ctx context.Context) (BatchResult, error) {
	o.logger.Info("starting enrichment for all games")

	games, err := o.repo.FindAll(ctx)
	if err != nil {
		return BatchResult{}, fmt.Errorf("load catalog: %w", err)
	}
	o.logger.Info("found games to enrich", "count", len(games))

	var out BatchResult
	for _, game := range games {
		result, err := o.EnrichGame(ctx, game.ID)
		if err != nil {
			// Game-level failure (e.g. a save error); count it and move on.
			o.logger.Error("enrichment failed for game", "game", game.Name, "error", err)
			result = GameResult{Failed: true, Message: err.Error()}
		}

		out.Details = append(out.Details, GameDetail{
			GameID:        game.ID,
			GameName:      game.Name,
			Enriched:      result.Enriched,
			ProvidersUsed: result.ProvidersUsed,
			Message:       result.Message,
		})

		switch {
		case result.Enriched:
			out.Enriched++
		case result.Failed:
			out.Failed++
		default:
			out.Unchanged++
		}
	}

	out.Message = fmt.Sprintf("Enrichment complete: %d enriched, %d unchanged, %d failed",
		out.Enriched, out.Unchanged, out.Failed)
	o.logger.Info(out.Message)
	return out, nil
}

// EnrichGame runs the provider chain over a single game, persisting the
// result only when at least one provider changed it. A provider error
// is recorded and the chain continues with the next provider.
func (o *Orchestrator) EnrichGame(ctx context.Context, gameID uuid.UUID) (GameResult, error) {
	game, err := o.repo.FindByID(ctx, gameID)
	if err != nil {
		return GameResult{}, err
	}

	o.logger.Debug("enriching game", "name", game.Name, "id", gameID)

	var (
		wasEnriched   bool
		hadFailure    bool
		providersUsed []string
		messages      []string
	)

	current := *game
	for _, provider := range o.providers {
		if !provider.Enabled() {
			o.logger.Debug("provider disabled, skipping", "provider", provider.Name())
			continue
		}

		result, err := provider.Enrich(ctx, current)
		if err != nil {
			hadFailure = true
			msg := fmt.Sprintf("error from provider %s: %v", provider.Name(), err)
			messages = append(messages, msg)
			o.logger.Error("provider failed", "provider", provider.Name(), "game", game.Name, "error", err)
			continue
		}

		if result.Enriched {
			// Output chains into the next provider's input.
			current = result.Game
			wasEnriched = true
			providersUsed = append(providersUsed, provider.Name())
			messages = append(messages, result.Message)
			o.logger.Debug("enriched", "provider", provider.Name(), "message", result.Message)
		} else {
			o.logger.Debug("no enrichment", "provider", provider.Name(), "message", result.Message)
		}
	}

	if wasEnriched {
		if _, err := o.repo.Save(ctx, current); err != nil {
			return GameResult{}, fmt.Errorf("save enriched game: %w", err)
		}
		o.logger.Info("enriched and saved game", "name", game.Name, "providers", providersUsed)
	}

	message := "No enrichment needed"
	if len(messages) > 0 {
		message = strings.Join(messages, "; ")
	}

	return GameResult{
		Enriched:      wasEnriched,
		Failed:        hadFailure,
		ProvidersUsed: providersUsed,
		Message:       message,
	}, nil
}

// Providers lists the configured chain in run order.
func (o *Orchestrator) Providers() []ProviderInfo {
	out := make([]ProviderInfo, 0, len(o.providers))
	for _, p := range o.providers {
		out = append(out, ProviderInfo{Name: p.Name(), Enabled: p.Enabled()})
	}
	return out
}
