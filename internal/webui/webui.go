// Package webui serves the dashboard page and a debug view of the loaded
// tables.
package webui

import (
	"embed"
	"fmt"
	"html/template"

	"sdgdash.org/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

// WebUI renders HTML pages from the application's dashboard.
type WebUI struct {
	*app.Application
	page  *template.Template
	debug *template.Template
}

// NewWebUI parses the embedded templates.
func NewWebUI(app *app.Application) (*WebUI, error) {
	page, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	debug, err := template.ParseFS(templateFS, "templates/debug_index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse debug template: %w", err)
	}
	return &WebUI{Application: app, page: page, debug: debug}, nil
}
