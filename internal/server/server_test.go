package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/questlog/internal/quests"
	"github.com/example/questlog/pkg/models"
)

type supplierFunc func(ctx context.Context) []models.Quest

func (f supplierFunc) GetDailyQuests(ctx context.Context) []models.Quest { return f(ctx) }

func sampleQuests() []models.Quest {
	return []models.Quest{{
		ID:         "quest-1",
		Title:      "Stretch Break",
		Points:     10,
		Difficulty: models.DifficultyEasy,
		Category:   models.CategoryGeneral,
		CreatedAt:  time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	}}
}

func newTestRouter(supplier QuestSupplier) http.Handler {
	return NewRouter(Config{Mode: "test"}, supplier, quests.Resources(), zap.NewNop())
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	h.ServeHTTP(w, req)
	return w
}

func TestQuestEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "daily", method: http.MethodGet, path: "/api/quests/daily"},
		{name: "generate", method: http.MethodPost, path: "/api/quests/generate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			router := newTestRouter(supplierFunc(func(context.Context) []models.Quest {
				calls++
				return sampleQuests()
			}))

			w := serve(router, tt.method, tt.path)
			require.Equal(t, http.StatusOK, w.Code)

			var resp models.DailyQuestsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, sampleQuests(), resp.Quests)
			assert.False(t, resp.GeneratedAt.IsZero())
			assert.Equal(t, 1, calls)
		})
	}
}

func TestQuestEndpointsRecoverFromPanic(t *testing.T) {
	tests := []struct {
		method  string
		path    string
		message string
	}{
		{method: http.MethodGet, path: "/api/quests/daily", message: "Failed to fetch quests"},
		{method: http.MethodPost, path: "/api/quests/generate", message: "Failed to generate quests"},
	}

	router := newTestRouter(supplierFunc(func(context.Context) []models.Quest {
		panic("generator exploded")
	}))

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := serve(router, tt.method, tt.path)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, w.Body.String())
		})
	}
}

func TestFallbackSupplyThroughRouter(t *testing.T) {
	router := newTestRouter(quests.NewSupply(nil, zap.NewNop()))

	w := serve(router, http.MethodGet, "/api/quests/daily")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DailyQuestsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Quests, quests.DailyCount)
}

func TestResources(t *testing.T) {
	w := serve(newTestRouter(supplierFunc(nil)), http.MethodGet, "/api/resources")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Resources []models.LearningResource `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, quests.Resources(), resp.Resources)
}

func TestHealthAndMetrics(t *testing.T) {
	router := newTestRouter(supplierFunc(nil))

	w := serve(router, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestCORS(t *testing.T) {
	router := NewRouter(Config{Mode: "test", AllowedOrigins: []string{"https://learn.example.com"}}, supplierFunc(nil), nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodOptions, "/api/quests/generate", nil)
	req.Header.Set("Origin", "https://learn.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://learn.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
