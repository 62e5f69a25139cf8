package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders the HTML pages and fragments.
type Renderer struct {
	t *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("root").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

// RenderEvents writes the events container and pagination controls only.
func (r *Renderer) RenderEvents(w io.Writer, data EventsData) error {
	return r.render(w, "events_section", data)
}

// RenderPage writes the full events page.
func (r *Renderer) RenderPage(w io.Writer, data EventsData) error {
	return r.render(w, "events_page", data)
}

// RenderContact writes the FAQ and contact page.
func (r *Renderer) RenderContact(w io.Writer, data ContactData) error {
	return r.render(w, "contact_page", data)
}

// render buffers the output so a template error never leaves half a page behind.
func (r *Renderer) render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
