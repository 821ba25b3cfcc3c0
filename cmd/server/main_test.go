package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplog/hooplog/internal/api"
	"github.com/hooplog/hooplog/internal/factory"
	"github.com/hooplog/hooplog/internal/testutil"
	"github.com/hooplog/hooplog/internal/web"
)

func TestCombinedRoutersServesMetrics(t *testing.T) {
	app := factory.NewTestApp()
	t.Cleanup(app.Cleanup)

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:        testutil.NopLogger(),
		Metrics:       app.Metrics,
		AuthService:   app.AuthService,
		RosterService: app.RosterService,
		StatsService:  app.StatsService,
		AvatarStore:   app.AvatarStore,
		ExportService: app.ExportService,
	})
	webRouter, err := web.NewRouter(web.RouterConfig{
		Logger:        testutil.NopLogger(),
		Clock:         app.Clock,
		AuthService:   app.AuthService,
		RosterService: app.RosterService,
		StatsService:  app.StatsService,
		AvatarStore:   app.AvatarStore,
		ExportService: app.ExportService,
	})
	require.NoError(t, err)

	mux := combineRouters(apiRouter, webRouter)

	// Scrape endpoint is reachable on the assembled server
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	// API paths still land on the API router
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	// Everything else lands on the web router
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
