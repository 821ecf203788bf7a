// Package view renders HTML pages. It is a thin collaborator around
// html/template; all page markup lives in the embedded templates directory.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/wonjunee/essayblog/internal/logger"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Renderer executes named page templates against the shared base layout.
type Renderer struct {
	pages  map[string]*template.Template
	logger *logger.Logger
}

var funcs = template.FuncMap{
	// nl2br escapes text and turns newlines into <br> tags so multi-line
	// content keeps its line breaks.
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
}

// New parses all embedded page templates.
func New(logger *logger.Logger) (*Renderer, error) {
	entries, err := fs.ReadDir(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "base.html" {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFiles, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{
		pages:  pages,
		logger: logger,
	}, nil
}

// Render writes the named page with the given data. Rendering failures are
// logged and answered with a generic 500; by that point part of the body
// may already be written.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	t, ok := r.pages[name]
	if !ok {
		r.logger.Error("view: unknown template", "name", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		r.logger.Error("view: failed to render template",
			"name", name,
			"error", err.Error())
	}
}
