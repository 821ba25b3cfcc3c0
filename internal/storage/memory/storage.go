package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players map[string]*model.Player
	stats   []*model.StatEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[string]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Roster operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.Name]; ok {
		return model.ErrPlayerExists
	}
	p := *player
	s.players[player.Name] = &p
	return nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.Name]; !ok {
		return model.ErrPlayerNotFound
	}
	p := *player
	s.players[player.Name] = &p
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, name string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[name]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	p := *player
	return &p, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		p := *player
		players = append(players, &p)
	}
	// Map iteration order is random; sort for a deterministic roster
	sort.Slice(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
	return players, nil
}

// Stat ledger operations

func (s *Storage) AppendStat(ctx context.Context, entry *model.StatEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := *entry
	s.stats = append(s.stats, &e)
	return nil
}

func (s *Storage) StatsForPlayer(ctx context.Context, name string) ([]*model.StatEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]*model.StatEntry, 0)
	for _, entry := range s.stats {
		if entry.PlayerName == name {
			e := *entry
			entries = append(entries, &e)
		}
	}
	return entries, nil
}

func (s *Storage) ListStats(ctx context.Context) ([]*model.StatEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]*model.StatEntry, 0, len(s.stats))
	for _, entry := range s.stats {
		e := *entry
		entries = append(entries, &e)
	}
	return entries, nil
}

func (s *Storage) DeleteStats(ctx context.Context, name string, date model.GameDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.stats[:0]
	for _, entry := range s.stats {
		if entry.PlayerName == name && entry.Date == date {
			continue
		}
		kept = append(kept, entry)
	}
	s.stats = kept
	return nil
}

func (s *Storage) ClearStats(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = nil
	return nil
}
