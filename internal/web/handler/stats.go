package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hooplog/hooplog/internal/dependencies/clock"
	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/services/stats"
	"github.com/hooplog/hooplog/internal/web/middleware"
	"github.com/hooplog/hooplog/internal/web/templates"
)

// StatsHandler handles the stat entry page and actions
type StatsHandler struct {
	statsService *stats.Service
	clock        clock.Clock
	templates    *templates.Templates
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *stats.Service, clk clock.Clock, t *templates.Templates) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		clock:        clk,
		templates:    t,
	}
}

// StatsData is the view model for the stats page
type StatsData struct {
	templates.PageData
	Today   string
	History []*model.StatEntry
	Error   string
}

// Page handles GET /stats
func (h *StatsHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

// Submit handles POST /stats
func (h *StatsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, "Invalid form data")
		return
	}

	values, err := parseStatForm(r)
	if err != nil {
		h.renderPage(w, r, "Stat values must be whole numbers")
		return
	}

	err = h.statsService.Append(r.Context(), player.Name, model.GameDate(r.FormValue("date")),
		values.goals, values.rebounds, values.steals, values.blocks)
	if err != nil {
		h.renderPage(w, r, statErrorMessage(err))
		return
	}

	middleware.SetFlash(w, "success", "Game recorded")
	http.Redirect(w, r, "/stats", http.StatusSeeOther)
}

// Delete handles POST /stats/delete
func (h *StatsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := r.ParseForm(); err != nil {
		h.renderPage(w, r, "Invalid form data")
		return
	}

	if err := h.statsService.Delete(r.Context(), player.Name, model.GameDate(r.FormValue("date"))); err != nil {
		h.renderPage(w, r, statErrorMessage(err))
		return
	}

	middleware.SetFlash(w, "info", "Entries deleted")
	http.Redirect(w, r, "/stats", http.StatusSeeOther)
}

func (h *StatsHandler) renderPage(w http.ResponseWriter, r *http.Request, errMsg string) {
	player := middleware.GetPlayer(r.Context())

	history, err := h.statsService.History(r.Context(), player.Name, model.SortDescending)
	if err != nil {
		renderError(w, r, h.templates, "Could not load your game history")
		return
	}

	render(w, h.templates, "stats", StatsData{
		PageData: templates.PageData{
			Title:  "My Stats",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Today:   h.clock.Now().Format("2006-01-02"),
		History: history,
		Error:   errMsg,
	})
}

type statFormValues struct {
	goals, rebounds, steals, blocks int
}

func parseStatForm(r *http.Request) (statFormValues, error) {
	var v statFormValues
	var err error
	if v.goals, err = strconv.Atoi(r.FormValue("goals")); err != nil {
		return v, err
	}
	if v.rebounds, err = strconv.Atoi(r.FormValue("rebounds")); err != nil {
		return v, err
	}
	if v.steals, err = strconv.Atoi(r.FormValue("steals")); err != nil {
		return v, err
	}
	if v.blocks, err = strconv.Atoi(r.FormValue("blocks")); err != nil {
		return v, err
	}
	return v, nil
}

func statErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidDate):
		return "Date must be YYYY-MM-DD"
	case errors.Is(err, model.ErrNegativeStat):
		return "Stat values must not be negative"
	case errors.Is(err, model.ErrUnknownOwner):
		return "No such player on the roster"
	default:
		return "Could not save the entry"
	}
}
