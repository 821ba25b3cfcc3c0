// Package sqlite implements the storage interface on an embedded SQLite
// database, for deployments that have outgrown the flat CSV tables.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/storage"
)

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens (or creates) the database at path and ensures the schema exists.
// Use ":memory:" for an ephemeral database in tests.
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the underlying database handle
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func createTables(db *sql.DB) error {
	createPlayersTable := `
	CREATE TABLE IF NOT EXISTS players (
		name TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		height INTEGER NOT NULL,
		weight INTEGER NOT NULL,
		position TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'member'
	);`

	createStatsTable := `
	CREATE TABLE IF NOT EXISTS stat_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		date TEXT NOT NULL,
		goals INTEGER NOT NULL,
		rebounds INTEGER NOT NULL,
		steals INTEGER NOT NULL,
		blocks INTEGER NOT NULL
	);`

	createStatsIndex := `
	CREATE INDEX IF NOT EXISTS idx_stat_entries_name_date ON stat_entries (name, date);`

	for _, stmt := range []string{createPlayersTable, createStatsTable, createStatsIndex} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Roster operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (name, password_hash, height, weight, position, role)
		VALUES (?, ?, ?, ?, ?, ?)`,
		player.Name, player.PasswordHash, player.Height, player.Weight, player.Position, player.Role,
	)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
		return model.ErrPlayerExists
	}
	return err
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE players
		SET password_hash = ?, height = ?, weight = ?, position = ?, role = ?
		WHERE name = ?`,
		player.PasswordHash, player.Height, player.Weight, player.Position, player.Role, player.Name,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, name string) (*model.Player, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, password_hash, height, weight, position, role
		FROM players WHERE name = ?`, name)

	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrPlayerNotFound
	}
	return player, err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, password_hash, height, weight, position, role
		FROM players ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*model.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row scanner) (*model.Player, error) {
	var p model.Player
	if err := row.Scan(&p.Name, &p.PasswordHash, &p.Height, &p.Weight, &p.Position, &p.Role); err != nil {
		return nil, err
	}
	return &p, nil
}

// Stat ledger operations

func (s *Storage) AppendStat(ctx context.Context, entry *model.StatEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stat_entries (name, date, goals, rebounds, steals, blocks)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.PlayerName, entry.Date, entry.Goals, entry.Rebounds, entry.Steals, entry.Blocks,
	)
	return err
}

func (s *Storage) StatsForPlayer(ctx context.Context, name string) ([]*model.StatEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, date, goals, rebounds, steals, blocks
		FROM stat_entries WHERE name = ? ORDER BY id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStats(rows)
}

func (s *Storage) ListStats(ctx context.Context) ([]*model.StatEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, date, goals, rebounds, steals, blocks
		FROM stat_entries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStats(rows)
}

func scanStats(rows *sql.Rows) ([]*model.StatEntry, error) {
	entries := make([]*model.StatEntry, 0)
	for rows.Next() {
		var e model.StatEntry
		if err := rows.Scan(&e.PlayerName, &e.Date, &e.Goals, &e.Rebounds, &e.Steals, &e.Blocks); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (s *Storage) DeleteStats(ctx context.Context, name string, date model.GameDate) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM stat_entries WHERE name = ? AND date = ?`, name, date)
	return err
}

func (s *Storage) ClearStats(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM stat_entries`)
	return err
}
