package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gamehub/database"
	"gamehub/internal/catalog/repository"
	"gamehub/internal/config"
	"gamehub/internal/enrichment"
	"gamehub/internal/enrichment/epic"
	"gamehub/internal/enrichment/gog"
	"gamehub/internal/enrichment/metacritic"
	"gamehub/internal/enrichment/steam"
)

// One-shot enrichment pass over the whole catalog, meant for cron or
// manual runs outside the API server.
func main() {
	log.Println("[Enrich] Starting catalog enrichment run")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("[Fatal] could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Fatal] invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("[Fatal] failed to connect to database: %v", err)
	}

	gameRepo := repository.NewGameRepo(db)

	providers := make([]enrichment.Provider, 0, len(cfg.EnrichmentOrder))
	for _, name := range cfg.EnrichmentOrder {
		switch name {
		case "steam":
			providers = append(providers, steam.NewProvider(steam.NewClient(cfg.SteamAPIURL), logger))
		case "gog":
			providers = append(providers, gog.NewProvider())
		case "epic":
			providers = append(providers, epic.NewProvider())
		case "metacritic":
			providers = append(providers, metacritic.NewProvider())
		}
	}

	orchestrator := enrichment.NewOrchestrator(gameRepo, providers, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("[Enrich] Shutdown signal received, cancelling run")
		cancel()
	}()

	result, err := orchestrator.EnrichAll(ctx)
	if err != nil {
		log.Fatalf("[Fatal] enrichment run failed: %v", err)
	}

	log.Printf("[Enrich] %s", result.Message)
	for _, d := range result.Details {
		if d.Enriched {
			log.Printf("  - %s: %v", d.GameName, d.ProvidersUsed)
		}
	}
}
