package storage

import (
	"context"

	"github.com/hooplog/hooplog/internal/model"
)

// Storage defines the interface for data persistence.
//
// Row-level operations are the abstraction boundary: backends are free to
// implement them as whole-file rewrites (csvfile), keyed writes (redis) or SQL
// statements (sqlite) without the services above noticing.
type Storage interface {
	// Roster operations
	CreatePlayer(ctx context.Context, player *model.Player) error // ErrPlayerExists on duplicate name
	SavePlayer(ctx context.Context, player *model.Player) error   // ErrPlayerNotFound if absent
	GetPlayer(ctx context.Context, name string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Stat ledger operations
	AppendStat(ctx context.Context, entry *model.StatEntry) error
	StatsForPlayer(ctx context.Context, name string) ([]*model.StatEntry, error)
	ListStats(ctx context.Context) ([]*model.StatEntry, error)
	DeleteStats(ctx context.Context, name string, date model.GameDate) error // idempotent
	ClearStats(ctx context.Context) error
}
