package handler

import (
	"fmt"
	"net/http"

	"github.com/hooplog/hooplog/internal/services/export"
)

// ExportHandler serves the CSV download links on the settings page
type ExportHandler struct {
	exportService *export.Service
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *export.Service) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// Stats handles GET /export/stats
func (h *ExportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.exportService.Stats(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	serveSnapshot(w, snapshot)
}

// Players handles GET /export/players (admin-guarded)
func (h *ExportHandler) Players(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.exportService.Players(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	serveSnapshot(w, snapshot)
}

func serveSnapshot(w http.ResponseWriter, s *export.Snapshot) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.Data)
}
