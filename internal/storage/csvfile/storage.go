// Package csvfile persists the roster and stat ledger as two flat CSV files,
// matching the layout the league's original dashboard used, so existing data
// files keep working unchanged.
//
// Every mutation is read-whole-table, rewrite-whole-file. A process-local
// mutex serialises writers within one server, but nothing coordinates writers
// in separate processes pointed at the same directory: concurrent processes
// race with last-write-wins at file granularity. That matches the system this
// replaces and is acceptable for single-server deployments; use the sqlite or
// redis backend where that guarantee is too weak.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/storage"
)

// File names within the data directory
const (
	PlayersFile = "players_info.csv"
	StatsFile   = "players_stats.csv"
)

var (
	playersHeader = []string{"name", "password_hash", "height", "weight", "position", "role"}
	statsHeader   = []string{"name", "date", "goals", "rebounds", "steals", "blocks"}
)

// Storage is a CSV-file-backed implementation of the storage interface
type Storage struct {
	mu sync.Mutex

	playersPath string
	statsPath   string
}

// New opens (or initialises) a CSV storage rooted at dataDir. Both tables are
// created with headers on first start so a fresh deployment works without
// seeding files by hand.
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Storage{
		playersPath: filepath.Join(dataDir, PlayersFile),
		statsPath:   filepath.Join(dataDir, StatsFile),
	}

	if err := s.ensureFile(s.playersPath, playersHeader); err != nil {
		return nil, err
	}
	if err := s.ensureFile(s.statsPath, statsHeader); err != nil {
		return nil, err
	}

	return s, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) ensureFile(path string, header []string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return writeFile(path, [][]string{header})
}

// writeFile rewrites path via a temp file so a crash mid-write never leaves a
// half-written table behind.
func writeFile(path string, records [][]string) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// readFile reads all records of path, stripping a UTF-8 BOM and the header row
func readFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // legacy rows may lack the role column
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// Roster operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.loadPlayers()
	if err != nil {
		return err
	}

	for _, p := range players {
		if p.Name == player.Name {
			return model.ErrPlayerExists
		}
	}

	players = append(players, player)
	return s.storePlayers(players)
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.loadPlayers()
	if err != nil {
		return err
	}

	found := false
	for i, p := range players {
		if p.Name == player.Name {
			players[i] = player
			found = true
			break
		}
	}
	if !found {
		return model.ErrPlayerNotFound
	}

	return s.storePlayers(players)
}

func (s *Storage) GetPlayer(ctx context.Context, name string) (*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.loadPlayers()
	if err != nil {
		return nil, err
	}

	for _, p := range players {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPlayers()
}

// Stat ledger operations

func (s *Storage) AppendStat(ctx context.Context, entry *model.StatEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadStats()
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	return s.storeStats(entries)
}

func (s *Storage) StatsForPlayer(ctx context.Context, name string) ([]*model.StatEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadStats()
	if err != nil {
		return nil, err
	}

	matched := make([]*model.StatEntry, 0)
	for _, e := range entries {
		if e.PlayerName == name {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (s *Storage) ListStats(ctx context.Context) ([]*model.StatEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadStats()
}

func (s *Storage) DeleteStats(ctx context.Context, name string, date model.GameDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadStats()
	if err != nil {
		return err
	}

	kept := make([]*model.StatEntry, 0, len(entries))
	for _, e := range entries {
		if e.PlayerName == name && e.Date == date {
			continue
		}
		kept = append(kept, e)
	}

	if len(kept) == len(entries) {
		return nil // nothing matched; deletion is idempotent
	}
	return s.storeStats(kept)
}

func (s *Storage) ClearStats(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFile(s.statsPath, [][]string{statsHeader})
}

// Row codecs

func (s *Storage) loadPlayers() ([]*model.Player, error) {
	rows, err := readFile(s.playersPath)
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(rows))
	for _, row := range rows {
		p, err := playerFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.playersPath, err)
		}
		players = append(players, p)
	}
	return players, nil
}

func (s *Storage) storePlayers(players []*model.Player) error {
	records := make([][]string, 0, len(players)+1)
	records = append(records, playersHeader)
	for _, p := range players {
		records = append(records, []string{
			p.Name,
			p.PasswordHash,
			strconv.Itoa(p.Height),
			strconv.Itoa(p.Weight),
			string(p.Position),
			string(p.Role),
		})
	}
	return writeFile(s.playersPath, records)
}

func playerFromRow(row []string) (*model.Player, error) {
	if len(row) < 5 {
		return nil, fmt.Errorf("malformed player row: %d fields", len(row))
	}

	height, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, fmt.Errorf("bad height %q: %w", row[2], err)
	}
	weight, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil {
		return nil, fmt.Errorf("bad weight %q: %w", row[3], err)
	}

	// Tables written before roles existed have five columns
	role := model.RoleMember
	if len(row) >= 6 && row[5] != "" {
		role = model.Role(row[5])
	}

	return &model.Player{
		Name:         row[0],
		PasswordHash: row[1],
		Height:       height,
		Weight:       weight,
		Position:     model.Position(row[4]),
		Role:         role,
	}, nil
}

func (s *Storage) loadStats() ([]*model.StatEntry, error) {
	rows, err := readFile(s.statsPath)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.StatEntry, 0, len(rows))
	for _, row := range rows {
		e, err := statFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.statsPath, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *Storage) storeStats(entries []*model.StatEntry) error {
	records := make([][]string, 0, len(entries)+1)
	records = append(records, statsHeader)
	for _, e := range entries {
		records = append(records, []string{
			e.PlayerName,
			string(e.Date),
			strconv.Itoa(e.Goals),
			strconv.Itoa(e.Rebounds),
			strconv.Itoa(e.Steals),
			strconv.Itoa(e.Blocks),
		})
	}
	return writeFile(s.statsPath, records)
}

func statFromRow(row []string) (*model.StatEntry, error) {
	if len(row) < 6 {
		return nil, fmt.Errorf("malformed stat row: %d fields", len(row))
	}

	nums := make([]int, 4)
	for i, field := range row[2:6] {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("bad stat value %q: %w", field, err)
		}
		nums[i] = n
	}

	return &model.StatEntry{
		PlayerName: row[0],
		Date:       model.GameDate(row[1]),
		Goals:      nums[0],
		Rebounds:   nums[1],
		Steals:     nums[2],
		Blocks:     nums[3],
	}, nil
}
