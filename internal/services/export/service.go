package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/hooplog/hooplog/internal/dependencies/clock"
	"github.com/hooplog/hooplog/internal/storage"
)

// Excel mis-detects the encoding of a plain UTF-8 CSV, so snapshots carry a BOM
const utf8BOM = "\uFEFF"

// Service produces downloadable CSV snapshots of the roster and the stat
// ledger. Snapshots are built from storage on demand, not from the backing
// files, so they are correct for every backend.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

func New(store storage.Storage, clk clock.Clock) *Service {
	return &Service{
		storage: store,
		clock:   clk,
	}
}

// Snapshot is a named CSV document ready to send to a client
type Snapshot struct {
	Filename string
	Data     []byte
}

// Players returns all player rows, password hashes included, as
// players_info_<date>.csv
func (s *Service) Players(ctx context.Context) (*Snapshot, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{
		{"name", "password_hash", "height", "weight", "position", "role"},
	}
	for _, p := range players {
		rows = append(rows, []string{
			p.Name,
			p.PasswordHash,
			strconv.Itoa(p.Height),
			strconv.Itoa(p.Weight),
			string(p.Position),
			string(p.Role),
		})
	}

	data, err := encode(rows)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Filename: fmt.Sprintf("players_info_%s.csv", s.today()),
		Data:     data,
	}, nil
}

// Stats returns the full stat ledger as all_stats_<date>.csv
func (s *Service) Stats(ctx context.Context) (*Snapshot, error) {
	entries, err := s.storage.ListStats(ctx)
	if err != nil {
		return nil, err
	}

	rows := [][]string{
		{"name", "date", "goals", "rebounds", "steals", "blocks"},
	}
	for _, e := range entries {
		rows = append(rows, []string{
			e.PlayerName,
			string(e.Date),
			strconv.Itoa(e.Goals),
			strconv.Itoa(e.Rebounds),
			strconv.Itoa(e.Steals),
			strconv.Itoa(e.Blocks),
		})
	}

	data, err := encode(rows)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Filename: fmt.Sprintf("all_stats_%s.csv", s.today()),
		Data:     data,
	}, nil
}

func (s *Service) today() string {
	return s.clock.Now().Format("2006-01-02")
}

func encode(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return buf.Bytes(), nil
}
