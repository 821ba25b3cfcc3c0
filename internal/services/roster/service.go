package roster

import (
	"context"
	"log/slog"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/storage"
)

// Service exposes roster lookups and profile updates
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new roster Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Get returns the roster row for name
func (s *Service) Get(ctx context.Context, name string) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, name)
}

// List returns the full roster
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// UpdateProfile overwrites the three mutable measurables for name. The
// password hash and role are untouched.
func (s *Service) UpdateProfile(ctx context.Context, name string, height, weight int, position model.Position) (*model.Player, error) {
	if height < model.MinHeight || height > model.MaxHeight {
		return nil, model.ErrHeightOutOfRange
	}
	if weight < model.MinWeight || weight > model.MaxWeight {
		return nil, model.ErrWeightOutOfRange
	}
	if !position.Valid() {
		return nil, model.ErrInvalidPosition
	}

	player, err := s.storage.GetPlayer(ctx, name)
	if err != nil {
		return nil, err
	}

	player.Height = height
	player.Weight = weight
	player.Position = position

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", slog.String("player", name))
	return player, nil
}
