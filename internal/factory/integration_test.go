package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/services/auth"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp("coach")
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.app.Cleanup()
}

// Test: a season's worth of activity across all services
func (s *IntegrationSuite) TestSeasonFlow() {
	// Register two members and the admin
	aliceSession, err := s.app.AuthService.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	_, err = s.app.AuthService.Register(s.ctx, "bob", "secret")
	s.Require().NoError(err)
	coachSession, err := s.app.AuthService.Register(s.ctx, "coach", "secret")
	s.Require().NoError(err)

	coach, err := s.app.AuthService.CurrentPlayer(s.ctx, coachSession.Token)
	s.Require().NoError(err)
	s.True(coach.IsAdmin())

	// Record a few games
	s.Require().NoError(s.app.StatsService.Append(s.ctx, "alice", "2024-01-05", 12, 4, 1, 2))
	s.Require().NoError(s.app.StatsService.Append(s.ctx, "alice", "2024-01-12", 6, 2, 0, 1))
	s.Require().NoError(s.app.StatsService.Append(s.ctx, "bob", "2024-01-05", 20, 1, 0, 0))

	// Leaderboard ranks bob first on goals
	board, err := s.app.StatsService.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(board, 2)
	s.Equal("bob", board[0].PlayerName)
	s.Equal("alice", board[1].PlayerName)
	s.Equal(18, board[1].Goals)

	// Alice updates her profile
	updated, err := s.app.RosterService.UpdateProfile(s.ctx, "alice", 192, 85, model.PositionPF)
	s.Require().NoError(err)
	s.Equal(192, updated.Height)

	// Her session still resolves to the fresh row
	alice, err := s.app.AuthService.CurrentPlayer(s.ctx, aliceSession.Token)
	s.Require().NoError(err)
	s.Equal(model.PositionPF, alice.Position)

	// Exports reflect the current tables and the mock clock's date
	snap, err := s.app.ExportService.Stats(s.ctx)
	s.Require().NoError(err)
	s.Equal("all_stats_2024-01-01.csv", snap.Filename)
	s.Contains(string(snap.Data), "bob,2024-01-05,20,1,0,0")

	// The coach wipes the ledger; the roster survives
	s.Require().NoError(s.app.StatsService.Wipe(s.ctx))

	board, err = s.app.StatsService.Leaderboard(s.ctx)
	s.Require().NoError(err)
	s.Empty(board)

	players, err := s.app.RosterService.List(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 3)
}

func (s *IntegrationSuite) TestSessionExpiryUnderMockClock() {
	session, err := s.app.AuthService.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	s.app.MockClock.Advance(23 * time.Hour)
	_, err = s.app.AuthService.ValidateSession(session.Token)
	s.NoError(err)

	s.app.MockClock.Advance(2 * time.Hour)
	_, err = s.app.AuthService.ValidateSession(session.Token)
	s.ErrorIs(err, auth.ErrInvalidSession)
}

func (s *IntegrationSuite) TestMetricsRecorded() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	_, err = s.app.AuthService.Login(s.ctx, "alice", "wrong")
	s.Require().Error(err)
	s.Require().NoError(s.app.StatsService.Append(s.ctx, "alice", "2024-01-05", 1, 0, 0, 0))

	s.Equal(1, s.app.MockMetrics.Registrations())
	s.Equal(1, s.app.MockMetrics.LoginFailures())
	s.Equal(1, s.app.MockMetrics.StatEntries())
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{StorageType: "csv"})
	if err == nil {
		t.Fatal("expected error for csv storage without DataDir")
	}

	_, err = New(Config{StorageType: "redis"})
	if err == nil {
		t.Fatal("expected error for redis storage without RedisConfig")
	}

	_, err = New(Config{StorageType: "bogus"})
	if err == nil {
		t.Fatal("expected error for unknown storage type")
	}
}
