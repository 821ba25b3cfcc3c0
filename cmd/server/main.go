package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hooplog/hooplog/internal/api"
	"github.com/hooplog/hooplog/internal/factory"
	"github.com/hooplog/hooplog/internal/metrics"
	"github.com/hooplog/hooplog/internal/services/auth"
	redisstorage "github.com/hooplog/hooplog/internal/storage/redis"
	"github.com/hooplog/hooplog/internal/web"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	authCfg := auth.DefaultConfig()
	if admins := os.Getenv("ADMIN_USERS"); admins != "" {
		for _, name := range strings.Split(admins, ",") {
			if name = strings.TrimSpace(name); name != "" {
				authCfg.AdminNames = append(authCfg.AdminNames, name)
			}
		}
	}

	cfg := factory.Config{
		AuthConfig:  authCfg,
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		DataDir:     envOr("HOOPLOG_DATA_DIR", "data"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
		AvatarDir:   envOr("AVATAR_DIR", "avatars"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Find static files directory
	staticDir := findStaticDir()

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		Metrics:       app.Metrics,
		AuthService:   app.AuthService,
		RosterService: app.RosterService,
		StatsService:  app.StatsService,
		AvatarStore:   app.AvatarStore,
		ExportService: app.ExportService,
	})

	// Create web router
	webRouter, err := web.NewRouter(web.RouterConfig{
		Logger:        logger,
		Clock:         app.Clock,
		AuthService:   app.AuthService,
		RosterService: app.RosterService,
		StatsService:  app.StatsService,
		AvatarStore:   app.AvatarStore,
		ExportService: app.ExportService,
		StaticDir:     staticDir,
	})
	if err != nil {
		logger.Error("failed to build web router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mux := combineRouters(apiRouter, webRouter)

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("value", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Sweep expired sessions in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				app.AuthService.CleanExpiredSessions()
			}
		}
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// combineRouters mounts the JSON API under /api/, the Prometheus scrape
// endpoint at /metrics and the web UI everywhere else
func combineRouters(apiRouter, webRouter http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/metrics", metrics.NewMetricsHandler())
	mux.Handle("/", webRouter)
	return mux
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		"./internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return "internal/web/static"
}
