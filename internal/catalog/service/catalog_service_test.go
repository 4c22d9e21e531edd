package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamehub/internal/catalog/model"
)

func TestGetMissingGame(t *testing.T) {
	svc := NewCatalogService(newMemRepo())
	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestGetByIDs(t *testing.T) {
	repo := newMemRepo()
	a := seedGame(t, repo, "A Short Hike", nil)
	b := seedGame(t, repo, "Baba Is You", nil)
	svc := NewCatalogService(repo)

	out, err := svc.GetByIDs(context.Background(), []uuid.UUID{a, b, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "A Short Hike", out[a].Name)
	assert.Equal(t, "Baba Is You", out[b].Name)

	empty, err := svc.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateCatalogValuesCarryForward(t *testing.T) {
	repo := newMemRepo()
	id := seedGame(t, repo, "The Witcher 3", intPtr(292030))
	svc := NewCatalogService(repo)
	ctx := context.Background()

	updated, err := svc.UpdateCatalogValues(ctx, id, UpdateCatalogCommand{
		GogID:           int64Ptr(1207664663),
		MetacriticScore: intPtr(92),
		MetacriticName:  strPtr("The Witcher 3: Wild Hunt"),
	})
	require.NoError(t, err)

	assert.Equal(t, id, updated.ID)
	require.NotNil(t, updated.Steam())
	assert.Equal(t, 292030, *updated.Steam().AppID, "silent fields keep existing values")
	require.NotNil(t, updated.Gog())
	assert.Equal(t, int64(1207664663), *updated.Gog().GogID)
	require.NotNil(t, updated.Metacritic())
	assert.Equal(t, 92, *updated.Metacritic().Score)
}

func TestDeleteGame(t *testing.T) {
	repo := newMemRepo()
	id := seedGame(t, repo, "Outer Wilds", nil)
	svc := NewCatalogService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, id))
	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, model.ErrGameNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, id), model.ErrGameNotFound)
}

func TestFindDuplicatesByName(t *testing.T) {
	repo := newMemRepo()
	seedGame(t, repo, "DOOM", nil)
	seedGame(t, repo, "doom ", nil)
	seedGame(t, repo, "Quake", nil)
	svc := NewCatalogService(repo)

	dupes, err := svc.FindDuplicatesByName(context.Background())
	require.NoError(t, err)
	require.Len(t, dupes, 1)
	assert.Len(t, dupes["doom"], 2)
}

func TestGetStoreStats(t *testing.T) {
	repo := newMemRepo()
	seedGame(t, repo, "Steam Only", intPtr(10))

	draft := model.NewDraft("GOG Only")
	draft.Gog = &model.GogData{GogID: int64Ptr(20)}
	g, err := draft.Build()
	require.NoError(t, err)
	_, err = repo.Save(context.Background(), g)
	require.NoError(t, err)

	seedGame(t, repo, "No Store", nil)

	svc := NewCatalogService(repo)
	stats, err := svc.GetStoreStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalGames)
	assert.Equal(t, 1, stats.Steam.Count)
	assert.Equal(t, 1, stats.Gog.Count)
	assert.Equal(t, 0, stats.Epic.Count)
	assert.Equal(t, 1, stats.GamesWithoutStore)
}

func int64Ptr(i int64) *int64 { return &i }
