package export

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hooplog/hooplog/internal/dependencies/mocks"
	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestPlayersSnapshot() {
	player := model.NewPlayer("alice", "hash123")
	player.Role = model.RoleAdmin
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))

	snap, err := s.service.Players(s.ctx)
	s.Require().NoError(err)

	s.Equal("players_info_2024-03-15.csv", snap.Filename)

	text := string(snap.Data)
	s.True(strings.HasPrefix(text, "\uFEFF"))
	s.Contains(text, "name,password_hash,height,weight,position,role")
	s.Contains(text, "alice,hash123,180,75,SF,admin")
}

func (s *ServiceSuite) TestStatsSnapshot() {
	s.Require().NoError(s.storage.AppendStat(s.ctx, &model.StatEntry{
		PlayerName: "alice", Date: "2024-01-05", Goals: 12, Rebounds: 4, Steals: 1, Blocks: 2,
	}))

	snap, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)

	s.Equal("all_stats_2024-03-15.csv", snap.Filename)

	text := string(snap.Data)
	s.True(strings.HasPrefix(text, "\uFEFF"))
	s.Contains(text, "name,date,goals,rebounds,steals,blocks")
	s.Contains(text, "alice,2024-01-05,12,4,1,2")
}

func (s *ServiceSuite) TestFilenameFollowsClock() {
	s.clock.Set(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC))

	snap, err := s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal("all_stats_2025-12-31.csv", snap.Filename)
}

func (s *ServiceSuite) TestEmptyTablesStillProduceHeaders() {
	snap, err := s.service.Players(s.ctx)
	s.Require().NoError(err)
	s.Equal("\uFEFFname,password_hash,height,weight,position,role\n", string(snap.Data))

	snap, err = s.service.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal("\uFEFFname,date,goals,rebounds,steals,blocks\n", string(snap.Data))
}
