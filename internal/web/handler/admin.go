package handler

import (
	"net/http"

	"github.com/hooplog/hooplog/internal/model"
	"github.com/hooplog/hooplog/internal/services/roster"
	"github.com/hooplog/hooplog/internal/services/stats"
	"github.com/hooplog/hooplog/internal/web/middleware"
	"github.com/hooplog/hooplog/internal/web/templates"
)

// AdminHandler renders the admin panel. The router guards these routes with
// the RequireAdmin middleware.
type AdminHandler struct {
	rosterService *roster.Service
	statsService  *stats.Service
	templates     *templates.Templates
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(rosterService *roster.Service, statsService *stats.Service, t *templates.Templates) *AdminHandler {
	return &AdminHandler{
		rosterService: rosterService,
		statsService:  statsService,
		templates:     t,
	}
}

// AdminData is the view model for the admin page
type AdminData struct {
	templates.PageData
	Roster []*model.Player
}

// Page handles GET /admin
func (h *AdminHandler) Page(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.List(r.Context())
	if err != nil {
		renderError(w, r, h.templates, "Could not load the credential table")
		return
	}

	render(w, h.templates, "admin", AdminData{
		PageData: templates.PageData{
			Title:  "Admin",
			Player: middleware.GetPlayer(r.Context()),
			Flash:  middleware.GetFlash(r.Context()),
		},
		Roster: players,
	})
}

// WipeStats handles POST /admin/wipe-stats
func (h *AdminHandler) WipeStats(w http.ResponseWriter, r *http.Request) {
	if err := h.statsService.Wipe(r.Context()); err != nil {
		renderError(w, r, h.templates, "Could not wipe the stat ledger")
		return
	}

	middleware.SetFlash(w, "info", "Stat ledger wiped")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
