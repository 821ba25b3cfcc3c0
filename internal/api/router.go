package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hooplog/hooplog/internal/api/handler"
	apimiddleware "github.com/hooplog/hooplog/internal/api/middleware"
	"github.com/hooplog/hooplog/internal/metrics"
	"github.com/hooplog/hooplog/internal/middleware"
	"github.com/hooplog/hooplog/internal/services/auth"
	"github.com/hooplog/hooplog/internal/services/avatar"
	"github.com/hooplog/hooplog/internal/services/export"
	"github.com/hooplog/hooplog/internal/services/roster"
	"github.com/hooplog/hooplog/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	Metrics       metrics.Metrics
	AuthService   *auth.Service
	RosterService *roster.Service
	StatsService  *stats.Service
	AvatarStore   *avatar.Store
	ExportService *export.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService, cfg.RosterService)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)
	avatarHandler := handler.NewAvatarHandler(cfg.AvatarStore)
	adminHandler := handler.NewAdminHandler(cfg.RosterService, cfg.StatsService)
	exportHandler := handler.NewExportHandler(cfg.ExportService)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)
	adminMiddleware := apimiddleware.RequireAdmin()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)
	metricsMiddleware := middleware.Metrics(cfg.Metrics)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(metricsMiddleware)

	// Credential routes (no auth required)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Everything else requires a session
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)

	protected.HandleFunc("/players/logout", playerHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/players/me", playerHandler.GetMe).Methods(http.MethodGet)
	protected.HandleFunc("/players/me/profile", playerHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/players/me/avatar", avatarHandler.Put).Methods(http.MethodPut)
	protected.HandleFunc("/players/me/avatar", avatarHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/players", playerHandler.ListPlayers).Methods(http.MethodGet)
	protected.HandleFunc("/players/{name}", playerHandler.GetPlayer).Methods(http.MethodGet)
	protected.HandleFunc("/players/{name}/totals", statsHandler.Totals).Methods(http.MethodGet)
	protected.HandleFunc("/players/{name}/stats", statsHandler.History).Methods(http.MethodGet)
	protected.HandleFunc("/players/{name}/avatar", avatarHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/stats", statsHandler.Append).Methods(http.MethodPost)
	protected.HandleFunc("/stats/{date}", statsHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/leaderboard", statsHandler.Leaderboard).Methods(http.MethodGet)

	protected.HandleFunc("/export/stats", exportHandler.Stats).Methods(http.MethodGet)

	// Admin routes
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(adminMiddleware)
	admin.HandleFunc("/credentials", adminHandler.ListCredentials).Methods(http.MethodGet)
	admin.HandleFunc("/stats", adminHandler.WipeStats).Methods(http.MethodDelete)
	admin.HandleFunc("/export/players", exportHandler.Players).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
