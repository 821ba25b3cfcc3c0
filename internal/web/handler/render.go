package handler

import (
	"net/http"

	"github.com/hooplog/hooplog/internal/web/middleware"
	"github.com/hooplog/hooplog/internal/web/templates"
)

func render(w http.ResponseWriter, t *templates.Templates, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Render(w, page, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ErrorData is the view model for the error page
type ErrorData struct {
	templates.PageData
	Message string
}

// renderError renders the error page with a 500 status
func renderError(w http.ResponseWriter, r *http.Request, t *templates.Templates, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = t.Render(w, "error", ErrorData{
		PageData: templates.PageData{
			Title:  "Error",
			Player: middleware.GetPlayer(r.Context()),
		},
		Message: message,
	})
}
