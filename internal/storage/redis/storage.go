package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Roster rows are JSON values, the stat ledger is one LIST per player, and two
// SET indexes track which names exist.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Roster operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// SETNX gives us the uniqueness check atomically
	created, err := s.client.SetNX(ctx, playerKey(player.Name), data, 0).Result()
	if err != nil {
		return err
	}
	if !created {
		return model.ErrPlayerExists
	}

	return s.client.SAdd(ctx, rosterIndexKey(), player.Name).Err()
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	exists, err := s.client.Exists(ctx, playerKey(player.Name)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrPlayerNotFound
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, playerKey(player.Name), data, 0).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, name string) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	names, err := s.client.SMembers(ctx, rosterIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return []*model.Player{}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = playerKey(name)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // index may lag a deleted row
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // skip invalid data
		}
		players = append(players, &player)
	}

	// SMEMBERS order is unspecified; sort for a deterministic roster
	sort.Slice(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
	return players, nil
}

// Stat ledger operations

func (s *Storage) AppendStat(ctx context.Context, entry *model.StatEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// Pipeline keeps the list and the owners index in step
	pipe := s.client.Pipeline()
	pipe.RPush(ctx, statsKey(entry.PlayerName), data)
	pipe.SAdd(ctx, statOwnersIndexKey(), entry.PlayerName)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) StatsForPlayer(ctx context.Context, name string) ([]*model.StatEntry, error) {
	values, err := s.client.LRange(ctx, statsKey(name), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.StatEntry, 0, len(values))
	for _, val := range values {
		var entry model.StatEntry
		if err := json.Unmarshal([]byte(val), &entry); err != nil {
			continue // skip invalid data
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}

func (s *Storage) ListStats(ctx context.Context) ([]*model.StatEntry, error) {
	owners, err := s.client.SMembers(ctx, statOwnersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(owners)

	all := make([]*model.StatEntry, 0)
	for _, owner := range owners {
		entries, err := s.StatsForPlayer(ctx, owner)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

func (s *Storage) DeleteStats(ctx context.Context, name string, date model.GameDate) error {
	entries, err := s.StatsForPlayer(ctx, name)
	if err != nil {
		return err
	}

	kept := make([]any, 0, len(entries))
	for _, e := range entries {
		if e.Date == date {
			continue
		}
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		kept = append(kept, data)
	}

	if len(kept) == len(entries) {
		return nil // nothing matched; deletion is idempotent
	}

	// Rewrite the list in one pipeline
	pipe := s.client.Pipeline()
	pipe.Del(ctx, statsKey(name))
	if len(kept) > 0 {
		pipe.RPush(ctx, statsKey(name), kept...)
	} else {
		pipe.SRem(ctx, statOwnersIndexKey(), name)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ClearStats(ctx context.Context) error {
	owners, err := s.client.SMembers(ctx, statOwnersIndexKey()).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, owner := range owners {
		pipe.Del(ctx, statsKey(owner))
	}
	pipe.Del(ctx, statOwnersIndexKey())
	_, err = pipe.Exec(ctx)
	return err
}
