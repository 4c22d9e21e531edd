package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"gamehub/database"
	"gamehub/internal/api/handler"
	"gamehub/internal/api/middleware"
	"gamehub/internal/auth"
	"gamehub/internal/catalog/repository"
	"gamehub/internal/catalog/service"
	"gamehub/internal/collection"
	"gamehub/internal/config"
	"gamehub/internal/enrichment"
	"gamehub/internal/enrichment/epic"
	"gamehub/internal/enrichment/gog"
	"gamehub/internal/enrichment/metacritic"
	"gamehub/internal/enrichment/steam"
	"gamehub/internal/seed"
	"gamehub/internal/thumbnail"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Repositories
	gameRepo := repository.NewGameRepo(db)
	userRepo := auth.NewUserRepository(db)
	collectionRepo := collection.NewRepo(db)

	// Redis is optional; the thumbnail cache degrades to a no-op without it.
	var cache *thumbnail.Cache
	if cfg.RedisAddr != "" {
		cache, err = thumbnail.NewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.ThumbnailTTL)
		if err != nil {
			logger.Warn("redis unavailable, thumbnail caching disabled", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	// Services
	collectionSvc := collection.NewService(collectionRepo, logger)
	catalogSvc := service.NewCatalogService(gameRepo)
	matcher := service.NewMatcher(gameRepo)
	importSvc := service.NewImportService(gameRepo, collectionSvc, logger)
	authSvc := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	resolver := thumbnail.NewResolver(cache, gameRepo, logger)

	orchestrator := enrichment.NewOrchestrator(gameRepo, buildProviders(cfg, logger), logger)

	// Seed an empty catalog from a legacy export, if configured.
	seeder := seed.NewSeeder(gameRepo, importSvc, cfg.SeedDataPath, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	if err := seeder.Run(ctx); err != nil {
		logger.Error("seeding failed", "error", err)
	}
	cancel()

	// HTTP surface
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(authSvc, int64(cfg.JWTExpiry.Seconds()))
	authHandler.RegisterRoutes(api.Group("/auth"))

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(authSvc))

	catalogHandler := handler.NewCatalogHandler(catalogSvc, matcher, resolver)
	catalogHandler.RegisterRoutes(protected.Group("/catalog"))

	importHandler := handler.NewImportHandler(importSvc)
	importHandler.RegisterRoutes(protected.Group("/import"))

	enrichmentHandler := handler.NewEnrichmentHandler(orchestrator)
	enrichmentHandler.RegisterRoutes(protected.Group("/enrichment"))

	collectionHandler := handler.NewCollectionHandler(collectionSvc, catalogSvc)
	collectionHandler.RegisterRoutes(protected.Group("/collection"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting API server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// buildProviders assembles the enrichment chain in configured order.
func buildProviders(cfg *config.Config, logger *slog.Logger) []enrichment.Provider {
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
	return providers
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
