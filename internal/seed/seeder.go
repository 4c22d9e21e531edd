package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"gamehub/internal/catalog/service"
)

// LegacyGame is one entry in the legacy export file.
type LegacyGame struct {
	Name         string  `json:"name"`
	Store        string  `json:"store"`
	StoreID      *string `json:"store_id,omitempty"`
	StoreLink    *string `json:"store_link,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
}

// Importer is the import pipeline the seeder feeds records into.
type Importer interface {
	ImportGames(ctx context.Context, commands []service.ImportCommand, ownerID uuid.UUID) service.BulkImportResult
}

// systemOwner marks seeded collection entries as belonging to the system,
// not a real user.
var systemOwner = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Seeder loads a legacy game export into an empty catalog on startup.
// A non-empty catalog or a missing path makes it a no-op.
type Seeder struct {
	repo     service.CatalogRepository
	importer Importer
	path     string
	logger   *slog.Logger
}

func NewSeeder(repo service.CatalogRepository, importer Importer, path string, logger *slog.Logger) *Seeder {
	return &Seeder{repo: repo, importer: importer, path: path, logger: logger}
}

func (s *Seeder) Run(ctx context.Context) error {
	if s.path == "" {
		s.logger.Debug("no seed data path configured, skipping seeding")
		return nil
	}

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("check catalog before seeding: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info("catalog already populated, skipping seeding", "games", len(existing))
		return nil
	}

	games, err := s.load()
	if err != nil {
		return err
	}
	if len(games) == 0 {
		s.logger.Warn("seed file contains no games", "path", s.path)
		return nil
	}

	commands := make([]service.ImportCommand, 0, len(games))
	for _, g := range games {
		commands = append(commands, service.ImportCommand{
			Name:         g.Name,
			Store:        g.Store,
			StoreID:      g.StoreID,
			StoreLink:    g.StoreLink,
			ThumbnailURL: g.ThumbnailURL,
		})
	}

	result := s.importer.ImportGames(ctx, commands, systemOwner)
	s.logger.Info("seeded catalog from legacy export",
		"path", s.path, "created", result.Created, "updated", result.Updated, "failed", result.Failed)

	if result.Failed > 0 {
		for _, r := range result.Results {
			if r.GameID == "" {
				s.logger.Warn("seed entry failed", "name", r.Name, "message", r.Message)
			}
		}
	}
	return nil
}

func (s *Seeder) load() ([]LegacyGame, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var games []LegacyGame
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", s.path, err)
	}
	return games, nil
}
