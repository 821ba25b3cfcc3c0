package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/hooplog/hooplog/internal/dependencies/clock"
	"github.com/hooplog/hooplog/internal/metrics"
	"github.com/hooplog/hooplog/internal/services/auth"
	"github.com/hooplog/hooplog/internal/services/avatar"
	"github.com/hooplog/hooplog/internal/services/export"
	"github.com/hooplog/hooplog/internal/services/roster"
	"github.com/hooplog/hooplog/internal/services/stats"
	"github.com/hooplog/hooplog/internal/storage"
	"github.com/hooplog/hooplog/internal/storage/csvfile"
	"github.com/hooplog/hooplog/internal/storage/memory"
	redisstorage "github.com/hooplog/hooplog/internal/storage/redis"
	"github.com/hooplog/hooplog/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeCSV    = "csv"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock   clock.Clock
	Metrics metrics.Metrics

	// Services
	AuthService   *auth.Service
	RosterService *roster.Service
	StatsService  *stats.Service
	AvatarStore   *avatar.Store
	ExportService *export.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "csv", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// DataDir holds the csv tables (required if StorageType is "csv")
	DataDir string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// AvatarDir holds the avatar images; created if absent
	AvatarDir string
	// Metrics overrides the Prometheus collectors (optional, used by tests)
	Metrics metrics.Metrics
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeCSV:
		if cfg.DataDir == "" {
			return nil, errors.New("DataDir required when StorageType is csv")
		}
		csvStore, err := csvfile.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		store = csvStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'csv', 'redis' or 'sqlite'")
	}

	clk := clock.New()

	m := cfg.Metrics
	if m == nil {
		m = metrics.NewService()
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg.SessionDuration = auth.DefaultConfig().SessionDuration
	}

	avatarDir := cfg.AvatarDir
	if avatarDir == "" {
		avatarDir = "avatars"
	}

	return newWithDependencies(store, clk, m, authCfg, avatarDir, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, m metrics.Metrics, authCfg auth.Config, avatarDir string, logger *slog.Logger) (*App, error) {
	avatarStore, err := avatar.New(avatarDir, logger)
	if err != nil {
		return nil, err
	}

	authService := auth.New(store, clk, authCfg, logger, m)
	rosterService := roster.New(store, logger)
	statsService := stats.New(store, logger, m)
	exportService := export.New(store, clk)

	return &App{
		Storage:       store,
		Clock:         clk,
		Metrics:       m,
		AuthService:   authService,
		RosterService: rosterService,
		StatsService:  statsService,
		AvatarStore:   avatarStore,
		ExportService: exportService,
	}, nil
}
