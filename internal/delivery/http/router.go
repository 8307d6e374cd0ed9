package http

import (
	"net/http"

	"devfestsite/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all site routes. shareDir is
// the directory of generated static share pages.
func NewRouter(siteController *controllers.SiteController, shareDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages and fragments
	mux.HandleFunc("GET /{$}", siteController.Index)
	mux.HandleFunc("GET /schedule", siteController.Schedule)
	mux.HandleFunc("GET /sessions/{id}", siteController.SessionDetail)
	mux.HandleFunc("GET /speakers/{id}", siteController.SpeakerDetail)
	mux.HandleFunc("GET /workshops/{id}", siteController.WorkshopDetail)

	// Generated documents
	mux.HandleFunc("GET /data.json", siteController.DataJSON)
	mux.HandleFunc("GET /schedule.json", siteController.ScheduleJSON)
	mux.HandleFunc("GET /workshops.json", siteController.WorkshopsJSON)

	// Static share artifacts
	mux.Handle("GET /share/", http.StripPrefix("/share/", http.FileServer(http.Dir(shareDir))))

	return mux
}
