package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hooplog/hooplog/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	storage, err := New(":memory:")
	s.Require().NoError(err)
	s.storage = storage
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

// Roster tests

func (s *StorageSuite) TestCreateAndGetPlayer() {
	player := model.NewPlayer("alice", "hash123")
	player.Weight = 82

	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Name)
	s.Equal("hash123", retrieved.PasswordHash)
	s.Equal(82, retrieved.Weight)
	s.Equal(model.RoleMember, retrieved.Role)
}

func (s *StorageSuite) TestCreatePlayerDuplicate() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("alice", "h1")))

	err := s.storage.CreatePlayer(s.ctx, model.NewPlayer("alice", "h2"))
	s.ErrorIs(err, model.ErrPlayerExists)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSavePlayer() {
	player := model.NewPlayer("alice", "hash123")
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))

	player.Height = 201
	player.Role = model.RoleAdmin
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(201, retrieved.Height)
	s.Equal(model.RoleAdmin, retrieved.Role)
}

func (s *StorageSuite) TestSavePlayerNotFound() {
	err := s.storage.SavePlayer(s.ctx, model.NewPlayer("ghost", "h"))
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersRegistrationOrder() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("carol", "h")))
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("alice", "h")))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("carol", players[0].Name)
	s.Equal("alice", players[1].Name)
}

// Stat ledger tests

func (s *StorageSuite) TestAppendAndListStats() {
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "alice", Date: "2024-01-05", Goals: 12, Rebounds: 4, Steals: 1, Blocks: 2}))
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "bob", Date: "2024-01-05", Goals: 8}))

	entries, err := s.storage.ListStats(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(12, entries[0].Goals)
	s.Equal(4, entries[0].Rebounds)
	s.Equal(1, entries[0].Steals)
	s.Equal(2, entries[0].Blocks)
}

func (s *StorageSuite) TestStatsForPlayer() {
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "alice", Date: "2024-01-05", Goals: 12}))
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "bob", Date: "2024-01-05", Goals: 8}))

	entries, err := s.storage.StatsForPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("alice", entries[0].PlayerName)
}

func (s *StorageSuite) TestDuplicateDateEntriesAccumulate() {
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "alice", Date: "2024-01-05", Goals: 12}))
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "alice", Date: "2024-01-05", Goals: 3}))

	entries, err := s.storage.StatsForPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(entries, 2)
}

func (s *StorageSuite) TestDeleteStats() {
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "alice", Date: "2024-01-05", Goals: 12}))
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "alice", Date: "2024-01-05", Goals: 3}))
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "alice", Date: "2024-01-12", Goals: 6}))

	s.Require().NoError(s.storage.DeleteStats(s.ctx, "alice", "2024-01-05"))

	entries, err := s.storage.StatsForPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(model.GameDate("2024-01-12"), entries[0].Date)
}

func (s *StorageSuite) TestDeleteStatsIdempotent() {
	s.NoError(s.storage.DeleteStats(s.ctx, "alice", "2024-01-05"))
}

func (s *StorageSuite) TestClearStats() {
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{PlayerName: "alice", Date: "2024-01-05", Goals: 12}))

	s.Require().NoError(s.storage.ClearStats(s.ctx))

	entries, err := s.storage.ListStats(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}
