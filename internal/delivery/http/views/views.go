package views

import (
	"fmt"
	"html/template"
	"io"

	"devfestsite/internal/domain"
	"devfestsite/internal/services"
)

var funcMap = template.FuncMap{
	// px renders a pixel length for inline style attributes.
	"px": func(v float64) template.CSS {
		return template.CSS(fmt.Sprintf("%.1fpx", v))
	},
	// raw marks pre-rendered fragment HTML as safe. Only generated content
	// that went through the extraction renderers may pass through here.
	"raw": func(s string) template.HTML {
		return template.HTML(s)
	},
}

var (
	tmplIndex          = template.Must(template.New("index").Funcs(funcMap).Parse(indexTemplateStr))
	tmplSchedule       = template.Must(template.New("schedule").Funcs(funcMap).Parse(scheduleTemplateStr))
	tmplSessionDetail  = template.Must(template.New("sessionDetail").Funcs(funcMap).Parse(sessionDetailTemplateStr))
	tmplSpeakerDetail  = template.Must(template.New("speakerDetail").Funcs(funcMap).Parse(speakerDetailTemplateStr))
	tmplWorkshopDetail = template.Must(template.New("workshopDetail").Funcs(funcMap).Parse(workshopDetailTemplateStr))
)

// IndexData is everything the index page shows. Nil documents render as
// placeholder sections rather than failing the page.
type IndexData struct {
	EventName  string
	EventDate  string
	Disclaimer string
	BasePath   string

	SessionIDs []string
	Sessions   map[string]domain.Session
	SpeakerIDs []string
	Speakers   map[string]domain.Speaker
	Workshops  []domain.Workshop

	Schedule services.GridLayout

	Photos      []domain.Photo
	GalleryHref string
}

// ScheduleData is the standalone schedule page.
type ScheduleData struct {
	EventName  string
	Disclaimer string
	Layout     services.GridLayout
}

// WorkshopDetailData pairs a workshop with the resolved image URL.
type WorkshopDetailData struct {
	Workshop domain.Workshop
	Image    string
}

func RenderIndex(w io.Writer, data IndexData) error {
	return tmplIndex.Execute(w, data)
}

func RenderSchedule(w io.Writer, data ScheduleData) error {
	return tmplSchedule.Execute(w, data)
}

func RenderSessionDetail(w io.Writer, session domain.Session) error {
	return tmplSessionDetail.Execute(w, session)
}

func RenderSpeakerDetail(w io.Writer, speaker domain.Speaker) error {
	return tmplSpeakerDetail.Execute(w, speaker)
}

func RenderWorkshopDetail(w io.Writer, data WorkshopDetailData) error {
	return tmplWorkshopDetail.Execute(w, data)
}
