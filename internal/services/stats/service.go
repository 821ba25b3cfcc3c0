package stats

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/hooplog/hooplog/internal/metrics"
	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/storage"
)

// Service owns the stat ledger: per-game rows, career totals and the league
// leaderboard.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
	metrics metrics.Metrics
}

// New creates a new stats Service
func New(storage storage.Storage, logger *slog.Logger, m metrics.Metrics) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		metrics: m,
	}
}

// Append records one game's numbers for owner. The owner must exist on the
// roster. A second entry for the same (owner, date) is allowed and both count
// towards totals; corrections are a delete followed by a re-add.
func (s *Service) Append(ctx context.Context, owner string, date model.GameDate, goals, rebounds, steals, blocks int) error {
	if _, err := model.ParseGameDate(string(date)); err != nil {
		return err
	}
	if goals < 0 || rebounds < 0 || steals < 0 || blocks < 0 {
		return model.ErrNegativeStat
	}

	if _, err := s.storage.GetPlayer(ctx, owner); err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return model.ErrUnknownOwner
		}
		return err
	}

	entry := &model.StatEntry{
		PlayerName: owner,
		Date:       date,
		Goals:      goals,
		Rebounds:   rebounds,
		Steals:     steals,
		Blocks:     blocks,
	}

	if err := s.storage.AppendStat(ctx, entry); err != nil {
		return err
	}

	s.logger.Info("stat entry recorded",
		slog.String("player", owner),
		slog.String("date", string(date)),
	)
	s.metrics.IncStatEntries()
	return nil
}

// Delete removes every entry for (owner, date). Deleting when nothing matches
// is a no-op, so the operation is idempotent.
func (s *Service) Delete(ctx context.Context, owner string, date model.GameDate) error {
	if _, err := model.ParseGameDate(string(date)); err != nil {
		return err
	}
	return s.storage.DeleteStats(ctx, owner, date)
}

// Totals returns owner's career sums; all zeros when no rows exist
func (s *Service) Totals(ctx context.Context, owner string) (*model.StatTotals, error) {
	entries, err := s.storage.StatsForPlayer(ctx, owner)
	if err != nil {
		return nil, err
	}

	totals := &model.StatTotals{PlayerName: owner}
	for _, entry := range entries {
		totals.Add(entry)
	}
	return totals, nil
}

// Leaderboard groups the whole ledger by owner and sums the four metrics,
// sorted descending by goals. Ties are broken by name ascending so repeated
// calls over the same table give the same order.
func (s *Service) Leaderboard(ctx context.Context) ([]*model.StatTotals, error) {
	entries, err := s.storage.ListStats(ctx)
	if err != nil {
		return nil, err
	}

	byOwner := make(map[string]*model.StatTotals)
	order := make([]string, 0)
	for _, entry := range entries {
		totals, ok := byOwner[entry.PlayerName]
		if !ok {
			totals = &model.StatTotals{PlayerName: entry.PlayerName}
			byOwner[entry.PlayerName] = totals
			order = append(order, entry.PlayerName)
		}
		totals.Add(entry)
	}

	board := make([]*model.StatTotals, 0, len(byOwner))
	for _, name := range order {
		board = append(board, byOwner[name])
	}

	sort.SliceStable(board, func(i, j int) bool {
		if board[i].Goals != board[j].Goals {
			return board[i].Goals > board[j].Goals
		}
		return board[i].PlayerName < board[j].PlayerName
	})
	return board, nil
}

// History returns owner's entries sorted by date. The trend chart wants
// ascending order and the results table descending, so both are supported.
func (s *Service) History(ctx context.Context, owner string, order model.SortOrder) ([]*model.StatEntry, error) {
	entries, err := s.storage.StatsForPlayer(ctx, owner)
	if err != nil {
		return nil, err
	}

	model.SortEntriesByDate(entries, order)
	return entries, nil
}

// Wipe clears the entire ledger. Admin capability only; callers enforce that.
func (s *Service) Wipe(ctx context.Context) error {
	s.logger.Warn("stat ledger wiped")
	return s.storage.ClearStats(ctx)
}
