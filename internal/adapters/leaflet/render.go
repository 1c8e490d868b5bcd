package leaflet

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Renderer writes a map document as a self-contained HTML page. The
// page loads Leaflet and its plugins from CDNs; everything else is
// inlined.
type Renderer struct {
	outPath string
	tmpl    *template.Template
}

// NewRenderer creates a Renderer targeting the given output path.
func NewRenderer(outPath string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/map.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse map template: %w", err)
	}
	return &Renderer{outPath: outPath, tmpl: tmpl}, nil
}

// Render writes the page. The document is injected as one JSON blob;
// json.Marshal escapes <, > and & so the blob is safe inside the
// script element.
func (r *Renderer) Render(ctx context.Context, doc *domain.MapDocument) error {
	html, err := r.renderHTML(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.outPath, html, 0o644); err != nil {
		return fmt.Errorf("write map page: %w", err)
	}
	return nil
}

func (r *Renderer) renderHTML(doc *domain.MapDocument) ([]byte, error) {
	data, err := json.Marshal(buildPayload(doc))
	if err != nil {
		return nil, fmt.Errorf("encode map payload: %w", err)
	}

	var buf bytes.Buffer
	err = r.tmpl.Execute(&buf, struct {
		Title   string
		Payload template.JS
	}{
		Title:   doc.Title,
		Payload: template.JS(data),
	})
	if err != nil {
		return nil, fmt.Errorf("execute map template: %w", err)
	}
	return buf.Bytes(), nil
}
