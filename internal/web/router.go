package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hooplog/hooplog/internal/dependencies/clock"
	"github.com/hooplog/hooplog/internal/services/auth"
	"github.com/hooplog/hooplog/internal/services/avatar"
	"github.com/hooplog/hooplog/internal/services/export"
	"github.com/hooplog/hooplog/internal/services/roster"
	"github.com/hooplog/hooplog/internal/services/stats"
	"github.com/hooplog/hooplog/internal/web/handler"
	"github.com/hooplog/hooplog/internal/web/middleware"
	"github.com/hooplog/hooplog/internal/web/templates"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	Clock         clock.Clock
	AuthService   *auth.Service
	RosterService *roster.Service
	StatsService  *stats.Service
	AvatarStore   *avatar.Store
	ExportService *export.Service
	StaticDir     string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	t, err := templates.New()
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)
	adminMiddleware := middleware.RequireAdmin()

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, t)
	dashboardHandler := handler.NewDashboardHandler(cfg.RosterService, cfg.StatsService, t)
	statsHandler := handler.NewStatsHandler(cfg.StatsService, cfg.Clock, t)
	profileHandler := handler.NewProfileHandler(cfg.RosterService, cfg.AvatarStore, t)
	rosterHandler := handler.NewRosterHandler(cfg.RosterService, t)
	adminHandler := handler.NewAdminHandler(cfg.RosterService, cfg.StatsService, t)
	avatarHandler := handler.NewAvatarHandler(cfg.AvatarStore)
	exportHandler := handler.NewExportHandler(cfg.ExportService)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Login and registration (no auth required)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	public.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Everything else requires a session
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)

	protected.HandleFunc("/", dashboardHandler.Home).Methods(http.MethodGet)
	protected.HandleFunc("/stats", statsHandler.Page).Methods(http.MethodGet)
	protected.HandleFunc("/stats", statsHandler.Submit).Methods(http.MethodPost)
	protected.HandleFunc("/stats/delete", statsHandler.Delete).Methods(http.MethodPost)
	protected.HandleFunc("/profile", profileHandler.Page).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profileHandler.Update).Methods(http.MethodPost)
	protected.HandleFunc("/profile/avatar", profileHandler.AvatarUpload).Methods(http.MethodPost)
	protected.HandleFunc("/profile/avatar/delete", profileHandler.AvatarDelete).Methods(http.MethodPost)
	protected.HandleFunc("/roster", rosterHandler.Page).Methods(http.MethodGet)
	protected.HandleFunc("/avatars/{name}", avatarHandler.Serve).Methods(http.MethodGet)
	protected.HandleFunc("/export/stats", exportHandler.Stats).Methods(http.MethodGet)

	// Admin panel
	admin := protected.NewRoute().Subrouter()
	admin.Use(adminMiddleware)
	admin.HandleFunc("/admin", adminHandler.Page).Methods(http.MethodGet)
	admin.HandleFunc("/admin/wipe-stats", adminHandler.WipeStats).Methods(http.MethodPost)
	admin.HandleFunc("/export/players", exportHandler.Players).Methods(http.MethodGet)

	return r, nil
}
