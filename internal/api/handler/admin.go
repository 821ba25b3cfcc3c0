package handler

import (
	"net/http"

	"github.com/hooplog/hooplog/internal/api/response"
	"github.com/hooplog/hooplog/internal/services/roster"
	"github.com/hooplog/hooplog/internal/services/stats"
)

// AdminHandler handles admin-only endpoints. The router guards these with the
// RequireAdmin middleware.
type AdminHandler struct {
	rosterService *roster.Service
	statsService  *stats.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(rosterService *roster.Service, statsService *stats.Service) *AdminHandler {
	return &AdminHandler{
		rosterService: rosterService,
		statsService:  statsService,
	}
}

// ListCredentials handles GET /api/v1/admin/credentials
// Returns full roster rows including password hashes.
func (h *AdminHandler) ListCredentials(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	rows := make([]response.CredentialRow, len(players))
	for i, p := range players {
		rows[i] = response.CredentialRowFromModel(p)
	}
	response.JSON(w, http.StatusOK, rows)
}

// WipeStats handles DELETE /api/v1/admin/stats
func (h *AdminHandler) WipeStats(w http.ResponseWriter, r *http.Request) {
	if err := h.statsService.Wipe(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
