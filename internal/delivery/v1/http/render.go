package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/jimlawless/whereami"
	"github.com/storekit/admin-backend/pkg/e"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer hands a named view and its data context to the template layer.
// Template syntax stays behind this boundary.
type Renderer interface {
	Render(w http.ResponseWriter, view string, data any) error
}

// HTMLRenderer renders the embedded admin templates.
type HTMLRenderer struct {
	templates *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	templates, err := template.New("admin").Funcs(template.FuncMap{
		"money": formatCents,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &HTMLRenderer{templates: templates}, nil
}

func (h *HTMLRenderer) Render(w http.ResponseWriter, view string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, view+".html", data); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
