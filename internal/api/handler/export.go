package handler

import (
	"fmt"
	"net/http"

	"github.com/hooplog/hooplog/internal/services/export"
)

// ExportHandler handles CSV snapshot downloads
type ExportHandler struct {
	exportService *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *export.Service) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// Players handles GET /api/v1/export/players
// Snapshot rows carry password hashes, so the route is admin-guarded.
func (h *ExportHandler) Players(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.exportService.Players(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	writeSnapshot(w, snapshot)
}

// Stats handles GET /api/v1/export/stats
func (h *ExportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.exportService.Stats(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	writeSnapshot(w, snapshot)
}

func writeSnapshot(w http.ResponseWriter, s *export.Snapshot) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.Data)
}
