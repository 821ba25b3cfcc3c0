// Package templates renders the server-side HTML pages. Each page template
// is parsed together with the shared layout at startup, so a bad template is
// a boot failure rather than a runtime 500.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/hooplog/hooplog/internal/model"
)

//go:embed *.html.tmpl
var files embed.FS

var pages = []string{
	"login",
	"register",
	"dashboard",
	"stats",
	"profile",
	"roster",
	"admin",
	"error",
}

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string
	Message string
}

// PageData carries the fields every page needs
type PageData struct {
	Title  string
	Player *model.Player
	Flash  *FlashMessage
}

// Templates holds the parsed page templates
type Templates struct {
	pages map[string]*template.Template
}

// New parses all page templates against the shared layout
func New() (*Templates, error) {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(files, "layout.html.tmpl", page+".html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		parsed[page] = t
	}
	return &Templates{pages: parsed}, nil
}

// Render writes the named page to w
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("unknown template %s", page)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
