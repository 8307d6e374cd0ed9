package share

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"devfestsite/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// renderer implements domain.ShareRenderer using the embedded page template.
// html/template's contextual escaping covers every interpolation, including
// the script-based redirect.
type renderer struct {
	tmpl *template.Template
}

// NewRenderer returns a ShareRenderer backed by the embedded template.
func NewRenderer() (domain.ShareRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/share_page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse share template: %w", err)
	}
	return &renderer{tmpl: tmpl}, nil
}

// Render executes the page template and returns the self-contained HTML.
func (r *renderer) Render(page domain.SharePage) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("render share page: %w", err)
	}
	return buf.String(), nil
}
