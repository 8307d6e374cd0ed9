package controllers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"devfestsite/internal/delivery/http/helpers"
	"devfestsite/internal/delivery/http/views"
	"devfestsite/internal/domain"
	"devfestsite/internal/services"
)

// SiteState is the immutable content snapshot the server renders from. It is
// assembled once at startup from the generated artifacts; any document may be
// nil and its sections render as placeholders.
type SiteState struct {
	Data      *domain.DataDocument
	Schedule  *domain.ScheduleDocument
	Workshops []domain.Workshop
	Photos    []domain.Photo
}

// SiteController serves the rendered site: the index page, the schedule
// views, entity detail fragments, and the raw JSON documents.
type SiteController struct {
	state       SiteState
	layout      services.GridLayout
	eventName   string
	eventDate   string
	disclaimer  string
	basePath    string
	fullBaseURL string
	albumURL    string
	logger      *slog.Logger
}

// SiteOptions carries the presentation configuration for the controller.
type SiteOptions struct {
	EventName   string
	EventDate   string
	Disclaimer  string
	BasePath    string
	FullBaseURL string
	AlbumURL    string
}

// NewSiteController builds the controller, laying out the schedule grid once
// up front since the state never changes while serving.
func NewSiteController(state SiteState, opts SiteOptions, logger *slog.Logger) *SiteController {
	return &SiteController{
		state:       state,
		layout:      services.BuildGridLayout(state.Schedule),
		eventName:   opts.EventName,
		eventDate:   opts.EventDate,
		disclaimer:  opts.Disclaimer,
		basePath:    opts.BasePath,
		fullBaseURL: strings.TrimRight(opts.FullBaseURL, "/"),
		albumURL:    opts.AlbumURL,
		logger:      logger,
	}
}

// Index renders the single-page site.
func (c *SiteController) Index(w http.ResponseWriter, r *http.Request) {
	data := views.IndexData{
		EventName:   c.eventName,
		EventDate:   c.eventDate,
		BasePath:    c.basePath,
		Workshops:   c.state.Workshops,
		Schedule:    c.layout,
		Photos:      c.state.Photos,
		GalleryHref: c.albumURL,
	}
	if c.state.Schedule != nil {
		data.Disclaimer = c.state.Schedule.Disclaimer
	} else {
		data.Disclaimer = c.disclaimer
	}
	if c.state.Data != nil {
		data.Sessions = c.state.Data.Sessions
		data.SessionIDs = sortedIDs(c.state.Data.Sessions)
		data.Speakers = c.state.Data.Speakers
		data.SpeakerIDs = sortedIDs(c.state.Data.Speakers)
	}

	c.writeHTML(w, "index", func(buf *bytes.Buffer) error {
		return views.RenderIndex(buf, data)
	})
}

// Schedule renders the standalone schedule page.
func (c *SiteController) Schedule(w http.ResponseWriter, r *http.Request) {
	data := views.ScheduleData{
		EventName:  c.eventName,
		Disclaimer: c.disclaimer,
		Layout:     c.layout,
	}
	if c.state.Schedule != nil {
		data.Disclaimer = c.state.Schedule.Disclaimer
	}

	c.writeHTML(w, "schedule", func(buf *bytes.Buffer) error {
		return views.RenderSchedule(buf, data)
	})
}

// SessionDetail renders the modal body for one session.
func (c *SiteController) SessionDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if c.state.Data == nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session data not loaded")
		return
	}
	session, ok := c.state.Data.Sessions[id]
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
		return
	}

	c.writeHTML(w, "session detail", func(buf *bytes.Buffer) error {
		return views.RenderSessionDetail(buf, session)
	})
}

// SpeakerDetail renders the modal body for one speaker.
func (c *SiteController) SpeakerDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if c.state.Data == nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "speaker data not loaded")
		return
	}
	speaker, ok := c.state.Data.Speakers[id]
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "speaker not found")
		return
	}

	c.writeHTML(w, "speaker detail", func(buf *bytes.Buffer) error {
		return views.RenderSpeakerDetail(buf, speaker)
	})
}

// WorkshopDetail renders the modal body for one workshop.
func (c *SiteController) WorkshopDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, workshop := range c.state.Workshops {
		if workshop.ID != id {
			continue
		}
		data := views.WorkshopDetailData{
			Workshop: workshop,
			Image:    c.workshopImage(workshop),
		}
		c.writeHTML(w, "workshop detail", func(buf *bytes.Buffer) error {
			return views.RenderWorkshopDetail(buf, data)
		})
		return
	}
	helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "workshop not found")
}

// DataJSON serves the sessions/speakers document in its on-disk shape.
func (c *SiteController) DataJSON(w http.ResponseWriter, r *http.Request) {
	if c.state.Data == nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "data.json not generated")
		return
	}
	c.writeJSON(w, "data.json", c.state.Data)
}

// ScheduleJSON serves the schedule document in its on-disk shape.
func (c *SiteController) ScheduleJSON(w http.ResponseWriter, r *http.Request) {
	if c.state.Schedule == nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "schedule.json not generated")
		return
	}
	c.writeJSON(w, "schedule.json", c.state.Schedule)
}

// WorkshopsJSON serves the workshops array.
func (c *SiteController) WorkshopsJSON(w http.ResponseWriter, r *http.Request) {
	workshops := c.state.Workshops
	if workshops == nil {
		workshops = []domain.Workshop{}
	}
	c.writeJSON(w, "workshops.json", workshops)
}

// writeHTML renders into a buffer first so a template failure can still
// produce a clean 500 instead of a truncated page.
func (c *SiteController) writeHTML(w http.ResponseWriter, name string, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		c.logger.Error("render failed", "view", name, "error", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (c *SiteController) writeJSON(w http.ResponseWriter, name string, doc any) {
	raw, err := json.Marshal(doc)
	if err != nil {
		c.logger.Error("encode document failed", "name", name, "error", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "encode failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

// workshopImage resolves hand-authored relative image paths against the
// deployed base URL, matching the share page generator.
func (c *SiteController) workshopImage(w domain.Workshop) string {
	if w.SpeakerImage == "" || strings.HasPrefix(w.SpeakerImage, "http") {
		return w.SpeakerImage
	}
	return c.fullBaseURL + "/" + strings.TrimLeft(w.SpeakerImage, "/")
}

func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
