package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"gamehub/internal/catalog/model"
)

// ImportCommand describes one game to import from a store export.
type ImportCommand struct {
	Name         string
	Store        string
	StoreID      *string
	StoreLink    *string
	ThumbnailURL *string
}

// SingleImportResult is the outcome for one imported game.
type SingleImportResult struct {
	Name    string `json:"name"`
	GameID  string `json:"game_id,omitempty"`
	Created bool   `json:"created"`
	Message string `json:"message"`
}

// BulkImportResult summarizes a batch import.
type BulkImportResult struct {
	Created int                  `json:"created"`
	Updated int                  `json:"updated"`
	Failed  int                  `json:"failed"`
	Results []SingleImportResult `json:"results"`
}

// ImportService reconciles incoming store records against the catalog:
// it decides create-vs-update by trimmed case-insensitive name, replaces
// the relevant store slot wholesale and persists the merged game.
type ImportService struct {
	repo       CatalogRepository
	collection CollectionPort
	logger     *slog.Logger
}

func NewImportService(repo CatalogRepository, collection CollectionPort, logger *slog.Logger) *ImportService {
	return &ImportService{repo: repo, collection: collection, logger: logger}
}

// ImportGames imports a batch. One bad item never aborts the batch:
// per-item errors become failure entries and processing continues.
func (s *ImportService) ImportGames(ctx context.Context, commands []ImportCommand, ownerID uuid.UUID) BulkImportResult {
	s.logger.Info("starting bulk import", "count", len(commands), "owner", ownerID)

	var out BulkImportResult
	for _, cmd := range commands {
		result, err := s.ImportGame(ctx, cmd, ownerID)
		if err != nil {
			s.logger.Error("failed to import game", "name", cmd.Name, "error", err)
			out.Results = append(out.Results, SingleImportResult{
				Name:    cmd.Name,
				Message: "Error: " + err.Error(),
			})
			out.Failed++
			continue
		}
		out.Results = append(out.Results, result)
		if result.Created {
			out.Created++
		} else {
			out.Updated++
		}
	}

	s.logger.Info("bulk import completed",
		"created", out.Created, "updated", out.Updated, "failed", out.Failed)
	return out
}

// ImportGame imports a single game. When the trimmed name matches an
// existing canonical game case-insensitively the existing record is
// carried forward in full and only the command's store slot replaced;
// otherwise a new game is created and added to the owner's collection.
func (s *ImportService) ImportGame(ctx context.Context, cmd ImportCommand, ownerID uuid.UUID) (SingleImportResult, error) {
	name := strings.TrimSpace(cmd.Name)

	existing, err := s.repo.FindByNameIgnoreCase(ctx, name)
	if err != nil && !errors.Is(err, model.ErrGameNotFound) {
		return SingleImportResult{}, fmt.Errorf("lookup %q: %w", name, err)
	}

	var draft model.Draft
	created := existing == nil
	if existing != nil {
		draft = model.DraftFrom(*existing)
		if draft.ThumbnailURL == nil || strings.TrimSpace(*draft.ThumbnailURL) == "" {
			draft.ThumbnailURL = cmd.ThumbnailURL
		}
	} else {
		draft = model.NewDraft(name)
		draft.ThumbnailURL = cmd.ThumbnailURL
	}

	s.applyStoreData(&draft, cmd)

	game, err := draft.Build()
	if err != nil {
		return SingleImportResult{}, err
	}

	saved, err := s.repo.Save(ctx, game)
	if err != nil {
		return SingleImportResult{}, fmt.Errorf("save %q: %w", name, err)
	}

	if created {
		if err := s.collection.AddToCollection(ctx, ownerID, saved.ID); err != nil {
			return SingleImportResult{}, fmt.Errorf("add %q to collection: %w", name, err)
		}
	}

	message := "Created new game"
	if !created {
		message = "Updated existing game with " + cmd.Store + " data"
	}
	return SingleImportResult{
		Name:    name,
		GameID:  saved.ID.String(),
		Created: created,
		Message: message,
	}, nil
}

// applyStoreData sets the command's store slot on the draft. The slot is
// built from scratch, replacing any prior data for that store only.
// Unknown store codes are logged and skipped; the name/thumbnail update
// still goes through.
func (s *ImportService) applyStoreData(draft *model.Draft, cmd ImportCommand) {
	switch strings.ToLower(cmd.Store) {
	case "steam", "steam-family":
		// steam-family is Steam Family Sharing, same store.
		draft.Steam = &model.SteamData{
			AppID: parseIntPtr(cmd.StoreID),
			Name:  &cmd.Name,
		}
	case "gog":
		draft.Gog = &model.GogData{
			GogID: parseInt64Ptr(cmd.StoreID),
			Name:  &cmd.Name,
			Link:  cmd.StoreLink,
		}
	case "epic":
		draft.Epic = &model.EpicData{
			EpicID: cmd.StoreID,
			Name:   &cmd.Name,
			Link:   cmd.StoreLink,
		}
	default:
		s.logger.Warn("unknown store", "store", cmd.Store, "name", cmd.Name)
	}
}

// Malformed numeric ids are treated as absent, never as import failures.
func parseIntPtr(v *string) *int {
	if v == nil {
		return nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return nil
	}
	return &n
}

func parseInt64Ptr(v *string) *int64 {
	if v == nil {
		return nil
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
