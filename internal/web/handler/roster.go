package handler

import (
	"net/http"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/services/roster"
	"github.com/hooplog/hooplog/internal/web/middleware"
	"github.com/hooplog/hooplog/internal/web/templates"
)

// RosterHandler renders the roster gallery
type RosterHandler struct {
	rosterService *roster.Service
	templates     *templates.Templates
}

// NewRosterHandler creates a new RosterHandler
func NewRosterHandler(rosterService *roster.Service, t *templates.Templates) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		templates:     t,
	}
}

// RosterData is the view model for the roster page
type RosterData struct {
	templates.PageData
	Roster []*model.Player
}

// Page handles GET /roster
func (h *RosterHandler) Page(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.List(r.Context())
	if err != nil {
		renderError(w, r, h.templates, "Could not load the roster")
		return
	}

	render(w, h.templates, "roster", RosterData{
		PageData: templates.PageData{
			Title:  "Roster",
			Player: middleware.GetPlayer(r.Context()),
			Flash:  middleware.GetFlash(r.Context()),
		},
		Roster: players,
	})
}
