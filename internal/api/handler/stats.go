package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hooplog/hooplog/internal/api/middleware"
	"github.com/hooplog/hooplog/internal/api/request"
	"github.com/hooplog/hooplog/internal/api/response"
	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/services/stats"
)

// StatsHandler handles stat ledger endpoints
type StatsHandler struct {
	statsService *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Append handles POST /api/v1/stats
// Entries are always recorded against the authenticated player.
func (h *StatsHandler) Append(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.AppendStatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	err := h.statsService.Append(r.Context(), player.Name, model.GameDate(req.Date), req.Goals, req.Rebounds, req.Steals, req.Blocks)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.StatEntry{
		Name:     player.Name,
		Date:     req.Date,
		Goals:    req.Goals,
		Rebounds: req.Rebounds,
		Steals:   req.Steals,
		Blocks:   req.Blocks,
	})
}

// Delete handles DELETE /api/v1/stats/{date}
// Removes all of the authenticated player's entries for the date.
func (h *StatsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	date := mux.Vars(r)["date"]

	if err := h.statsService.Delete(r.Context(), player.Name, model.GameDate(date)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Totals handles GET /api/v1/players/{name}/totals
func (h *StatsHandler) Totals(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	totals, err := h.statsService.Totals(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatTotalsFromModel(totals))
}

// History handles GET /api/v1/players/{name}/stats?order=asc|desc
func (h *StatsHandler) History(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	order := model.SortAscending
	switch r.URL.Query().Get("order") {
	case "", "asc":
	case "desc":
		order = model.SortDescending
	default:
		WriteError(w, NewInvalidRequestError("order must be asc or desc"))
		return
	}

	entries, err := h.statsService.History(r.Context(), name, order)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatEntriesFromModel(entries))
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.statsService.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(board))
}
