package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/storage/memory"
	"github.com/hooplog/hooplog/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()

	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("alice", "hash")))
}

func (s *ServiceSuite) TestGet() {
	player, err := s.service.Get(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", player.Name)
}

func (s *ServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestList() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("bob", "hash")))

	players, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *ServiceSuite) TestUpdateProfile() {
	updated, err := s.service.UpdateProfile(s.ctx, "alice", 195, 90, model.PositionC)
	s.Require().NoError(err)
	s.Equal(195, updated.Height)
	s.Equal(90, updated.Weight)
	s.Equal(model.PositionC, updated.Position)

	player, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(195, player.Height)
}

func (s *ServiceSuite) TestUpdateProfileKeepsHashAndRole() {
	player, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	player.Role = model.RoleAdmin
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	_, err = s.service.UpdateProfile(s.ctx, "alice", 195, 90, model.PositionC)
	s.Require().NoError(err)

	after, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("hash", after.PasswordHash)
	s.Equal(model.RoleAdmin, after.Role)
}

func (s *ServiceSuite) TestUpdateProfileBounds() {
	_, err := s.service.UpdateProfile(s.ctx, "alice", model.MinHeight-1, 90, model.PositionC)
	s.ErrorIs(err, model.ErrHeightOutOfRange)

	_, err = s.service.UpdateProfile(s.ctx, "alice", model.MaxHeight+1, 90, model.PositionC)
	s.ErrorIs(err, model.ErrHeightOutOfRange)

	_, err = s.service.UpdateProfile(s.ctx, "alice", 195, model.MinWeight-1, model.PositionC)
	s.ErrorIs(err, model.ErrWeightOutOfRange)

	_, err = s.service.UpdateProfile(s.ctx, "alice", 195, model.MaxWeight+1, model.PositionC)
	s.ErrorIs(err, model.ErrWeightOutOfRange)
}

func (s *ServiceSuite) TestUpdateProfileBoundsInclusive() {
	_, err := s.service.UpdateProfile(s.ctx, "alice", model.MinHeight, model.MinWeight, model.PositionPG)
	s.NoError(err)

	_, err = s.service.UpdateProfile(s.ctx, "alice", model.MaxHeight, model.MaxWeight, model.PositionC)
	s.NoError(err)
}

func (s *ServiceSuite) TestUpdateProfileInvalidPosition() {
	_, err := s.service.UpdateProfile(s.ctx, "alice", 195, 90, model.Position("GK"))
	s.ErrorIs(err, model.ErrInvalidPosition)
}

func (s *ServiceSuite) TestUpdateProfileUnknownPlayer() {
	_, err := s.service.UpdateProfile(s.ctx, "ghost", 195, 90, model.PositionC)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
