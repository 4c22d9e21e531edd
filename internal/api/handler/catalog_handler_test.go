package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamehub/internal/api/handler"
	"gamehub/internal/catalog/model"
	"gamehub/internal/catalog/service"
	"gamehub/internal/thumbnail"
)

// --- IN-MEMORY CATALOG REPO ---

type memCatalogRepo struct {
	games map[uuid.UUID]model.CanonicalGame
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{games: make(map[uuid.UUID]model.CanonicalGame)}
}

func (m *memCatalogRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CanonicalGame, error) {
	g, ok := m.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return &g, nil
}

func (m *memCatalogRepo) FindByNameIgnoreCase(_ context.Context, name string) (*model.CanonicalGame, error) {
	for _, g := range m.games {
		if strings.EqualFold(g.Name, name) {
			return &g, nil
		}
	}
	return nil, model.ErrGameNotFound
}

func (m *memCatalogRepo) FindBySteamAppID(_ context.Context, appID int) (*model.CanonicalGame, error) {
	for _, g := range m.games {
		if s := g.Steam(); s != nil && s.AppID != nil && *s.AppID == appID {
			return &g, nil
		}
	}
	return nil, model.ErrGameNotFound
}

func (m *memCatalogRepo) FindByNameContaining(_ context.Context, substr string) ([]model.CanonicalGame, error) {
	var out []model.CanonicalGame
	for _, g := range m.games {
		if strings.Contains(strings.ToLower(g.Name), strings.ToLower(substr)) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memCatalogRepo) FindAll(_ context.Context) ([]model.CanonicalGame, error) {
	out := make([]model.CanonicalGame, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, g)
	}
	return out, nil
}

func (m *memCatalogRepo) FindAllByIDs(_ context.Context, ids []uuid.UUID) ([]model.CanonicalGame, error) {
	var out []model.CanonicalGame
	for _, id := range ids {
		if g, ok := m.games[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memCatalogRepo) Save(_ context.Context, game model.CanonicalGame) (model.CanonicalGame, error) {
	m.games[game.ID] = game
	return game, nil
}

func (m *memCatalogRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	delete(m.games, id)
	return nil
}

// --- SETUP ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedGame(t *testing.T, repo *memCatalogRepo, name string, appID *int) model.CanonicalGame {
	t.Helper()
	d := model.NewDraft(name)
	if appID != nil {
		d.Steam = &model.SteamData{AppID: appID, Name: &name}
	}
	g, err := d.Build()
	require.NoError(t, err)
	g, err = repo.Save(context.Background(), g)
	require.NoError(t, err)
	return g
}

func setupCatalogRouter(repo *memCatalogRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := service.NewCatalogService(repo)
	matcher := service.NewMatcher(repo)
	resolver := thumbnail.NewResolver(nil, repo, testLogger())
	h := handler.NewCatalogHandler(svc, matcher, resolver)

	rg := r.Group("/api/catalog")
	rg.GET("/", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/stats", h.Stats)
	rg.GET("/duplicates", h.Duplicates)
	rg.POST("/match", h.Match)
	rg.GET("/:game_id", h.Get)
	rg.GET("/:game_id/thumbnail", h.Thumbnail)
	rg.PUT("/:game_id", h.Update)
	rg.DELETE("/:game_id", h.Delete)
	return r
}

func intPtr(i int) *int { return &i }

// --- TESTS ---

func TestCatalogList(t *testing.T) {
	repo := newMemCatalogRepo()
	seedGame(t, repo, "Hades", intPtr(1145360))
	seedGame(t, repo, "Celeste", nil)

	r := setupCatalogRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
}

func TestCatalogGetNotFound(t *testing.T) {
	r := setupCatalogRouter(newMemCatalogRepo())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogGetBadID(t *testing.T) {
	r := setupCatalogRouter(newMemCatalogRepo())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogGetIncludesStoreData(t *testing.T) {
	repo := newMemCatalogRepo()
	game := seedGame(t, repo, "Hades", intPtr(1145360))

	r := setupCatalogRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/"+game.ID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Name  string `json:"name"`
		Slug  string `json:"slug"`
		Steam *struct {
			AppID *int    `json:"app_id"`
			Link  *string `json:"link"`
		} `json:"steam"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Hades", body.Name)
	assert.Equal(t, "hades", body.Slug)
	require.NotNil(t, body.Steam)
	require.NotNil(t, body.Steam.AppID)
	assert.Equal(t, 1145360, *body.Steam.AppID)
	require.NotNil(t, body.Steam.Link)
	assert.Equal(t, "https://store.steampowered.com/app/1145360", *body.Steam.Link)
}

func TestCatalogUpdateOverridesStoreValues(t *testing.T) {
	repo := newMemCatalogRepo()
	game := seedGame(t, repo, "Hades", intPtr(1145360))

	r := setupCatalogRouter(repo)
	w := httptest.NewRecorder()
	payload := `{"metacritic_score": 93, "metacritic_name": "Hades"}`
	req := httptest.NewRequest(http.MethodPut, "/api/catalog/"+game.ID.String(), strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	stored := repo.games[game.ID]
	require.NotNil(t, stored.Metacritic())
	assert.Equal(t, 93, *stored.Metacritic().Score)
	// Untouched slots survive the update.
	require.NotNil(t, stored.Steam())
	assert.Equal(t, 1145360, *stored.Steam().AppID)
}

func TestCatalogThumbnailRedirect(t *testing.T) {
	repo := newMemCatalogRepo()
	url := "https://cdn.example.com/hades.jpg"
	d := model.NewDraft("Hades")
	d.ThumbnailURL = &url
	g, err := d.Build()
	require.NoError(t, err)
	_, err = repo.Save(context.Background(), g)
	require.NoError(t, err)

	r := setupCatalogRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/"+g.ID.String()+"/thumbnail", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, url, w.Header().Get("Location"))
}

func TestCatalogSearchByName(t *testing.T) {
	repo := newMemCatalogRepo()
	seedGame(t, repo, "Hades", intPtr(1145360))

	r := setupCatalogRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/search?name=hades", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Hades"`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/catalog/search?name=unknown", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/catalog/search", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogDelete(t *testing.T) {
	repo := newMemCatalogRepo()
	game := seedGame(t, repo, "Hades", intPtr(1145360))

	r := setupCatalogRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/catalog/"+game.ID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.games)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/catalog/"+game.ID.String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogMatchBySteamAppID(t *testing.T) {
	repo := newMemCatalogRepo()
	game := seedGame(t, repo, "Hades", intPtr(1145360))

	r := setupCatalogRouter(repo)
	w := httptest.NewRecorder()
	payload := `{"name": "HADES (2020)", "store_links": [{"store_name": "Steam", "store_id": "1145360"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/match", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Matched bool   `json:"matched"`
		GameID  string `json:"game_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Matched)
	assert.Equal(t, game.ID.String(), body.GameID)
}

func TestCatalogMatchMiss(t *testing.T) {
	r := setupCatalogRouter(newMemCatalogRepo())
	w := httptest.NewRecorder()
	payload := `{"name": "Silksong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/match", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"matched":false`)
}

func TestCatalogStats(t *testing.T) {
	repo := newMemCatalogRepo()
	seedGame(t, repo, "Hades", intPtr(1145360))
	seedGame(t, repo, "Celeste", nil)

	r := setupCatalogRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats service.StoreStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalGames)
	assert.Equal(t, 1, stats.Steam.Count)
	assert.Equal(t, 1, stats.GamesWithoutStore)
}
