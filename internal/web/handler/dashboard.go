package handler

import (
	"net/http"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/services/roster"
	"github.com/hooplog/hooplog/internal/services/stats"
	"github.com/hooplog/hooplog/internal/web/middleware"
	"github.com/hooplog/hooplog/internal/web/templates"
)

// DashboardHandler renders the league dashboard
type DashboardHandler struct {
	rosterService *roster.Service
	statsService  *stats.Service
	templates     *templates.Templates
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(rosterService *roster.Service, statsService *stats.Service, t *templates.Templates) *DashboardHandler {
	return &DashboardHandler{
		rosterService: rosterService,
		statsService:  statsService,
		templates:     t,
	}
}

// LeaderboardRow is one ranked leaderboard line
type LeaderboardRow struct {
	Rank     int
	Name     string
	Goals    int
	Rebounds int
	Steals   int
	Blocks   int
}

// PlayerLookup is the per-player panel under the search box
type PlayerLookup struct {
	Player  *model.Player
	Totals  *model.StatTotals
	History []*model.StatEntry
}

// DashboardData is the view model for the dashboard page
type DashboardData struct {
	templates.PageData
	Leaderboard []LeaderboardRow
	Roster      []*model.Player
	Selected    string
	Lookup      *PlayerLookup
}

// Home handles GET /
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	board, err := h.statsService.Leaderboard(r.Context())
	if err != nil {
		renderError(w, r, h.templates, "Could not load the leaderboard")
		return
	}

	rows := make([]LeaderboardRow, len(board))
	for i, t := range board {
		rows[i] = LeaderboardRow{
			Rank:     i + 1,
			Name:     t.PlayerName,
			Goals:    t.Goals,
			Rebounds: t.Rebounds,
			Steals:   t.Steals,
			Blocks:   t.Blocks,
		}
	}

	allPlayers, err := h.rosterService.List(r.Context())
	if err != nil {
		renderError(w, r, h.templates, "Could not load the roster")
		return
	}

	// Default the lookup panel to the viewer's own card
	selected := r.URL.Query().Get("player")
	if selected == "" {
		selected = player.Name
	}

	var lookup *PlayerLookup
	if target, err := h.rosterService.Get(r.Context(), selected); err == nil {
		totals, err := h.statsService.Totals(r.Context(), selected)
		if err != nil {
			renderError(w, r, h.templates, "Could not load player totals")
			return
		}
		history, err := h.statsService.History(r.Context(), selected, model.SortDescending)
		if err != nil {
			renderError(w, r, h.templates, "Could not load player history")
			return
		}
		lookup = &PlayerLookup{Player: target, Totals: totals, History: history}
	}

	render(w, h.templates, "dashboard", DashboardData{
		PageData: templates.PageData{
			Title:  "Dashboard",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Leaderboard: rows,
		Roster:      allPlayers,
		Selected:    selected,
		Lookup:      lookup,
	})
}
