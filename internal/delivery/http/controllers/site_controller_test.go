package controllers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfestsite/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testOpts = SiteOptions{
	EventName:   "DevFest Armenia 2025",
	EventDate:   "2025-12-20",
	Disclaimer:  "This schedule is not final and may be subject to change.",
	BasePath:    "/2025/",
	FullBaseURL: "https://gdg.am/2025",
	AlbumURL:    "https://photos.example/album",
}

func testState() SiteState {
	return SiteState{
		Data: &domain.DataDocument{
			Sessions: map[string]domain.Session{
				"intro-to-go": {
					SessionID: "intro-to-go",
					Title:     "Intro to Go",
					Speaker:   "Ann Lee - Eng",
					Content:   `<p class="mb-4">Deep dive.</p>`,
				},
			},
			Speakers: map[string]domain.Speaker{
				"ann-lee": {
					SpeakerID: "ann-lee",
					Name:      "Ann Lee",
					Position:  "Eng",
					Content:   `<h3 class="text-xl font-bold">Ann Lee</h3>`,
				},
			},
		},
		Schedule: &domain.ScheduleDocument{
			EventName:  "DevFest Armenia 2025",
			Disclaimer: "This schedule is not final and may be subject to change.",
			Rooms:      []domain.Room{{ID: domain.RoomHallA, Name: "Hall A"}},
			Sessions: []domain.ScheduleSession{{
				ID: "10-00am-hall-a-intro", Title: "Intro", Room: domain.RoomHallA,
				RoomDisplay: "Hall A", StartTime: "10:00am", EndTime: "11:00am",
				StartMinutes: 600, EndMinutes: 660, Duration: 60,
			}},
		},
		Workshops: []domain.Workshop{{
			ID: "compose-lab", Title: "Compose Lab", SpeakerName: "Bob Roy",
			SpeakerImage: "images/bob.jpg", Capacity: 30,
			RegistrationLink: "https://forms.example/compose",
		}},
	}
}

func get(t *testing.T, handler http.HandlerFunc, target, pathID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if pathID != "" {
		req.SetPathValue("id", pathID)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSiteController_Index(t *testing.T) {
	c := NewSiteController(testState(), testOpts, testLogger)
	rec := get(t, c.Index, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "DevFest Armenia 2025")
	assert.Contains(t, body, `id="session-intro-to-go"`)
	assert.Contains(t, body, `id="speaker-ann-lee"`)
	assert.Contains(t, body, `id="workshop-compose-lab"`)
	assert.Contains(t, body, "Hall A")
	assert.Contains(t, body, "This schedule is not final")
}

func TestSiteController_IndexWithNoDocuments(t *testing.T) {
	c := NewSiteController(SiteState{}, testOpts, testLogger)
	rec := get(t, c.Index, "/", "")

	require.Equal(t, http.StatusOK, rec.Code, "missing documents degrade to placeholders")
	body := rec.Body.String()
	assert.Contains(t, body, "Schedule TBA")
	assert.Contains(t, body, "Sessions TBA")
	assert.Contains(t, body, "Speakers TBA")
	assert.Contains(t, body, "Workshops TBA")
	assert.Contains(t, body, "https://photos.example/album", "no photos falls back to the album link")
}

func TestSiteController_Schedule(t *testing.T) {
	c := NewSiteController(testState(), testOpts, testLogger)
	rec := get(t, c.Schedule, "/schedule", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "schedule-grid")
	assert.Contains(t, body, "schedule-list")
	assert.Contains(t, body, "top: 48.0px", "earliest session sits at the header offset")
	assert.Contains(t, body, "height: 150.0px")
}

func TestSiteController_SessionDetail(t *testing.T) {
	c := NewSiteController(testState(), testOpts, testLogger)

	rec := get(t, c.SessionDetail, "/sessions/intro-to-go", "intro-to-go")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Intro to Go")
	assert.Contains(t, rec.Body.String(), `<p class="mb-4">Deep dive.</p>`,
		"pre-rendered fragment passes through unescaped")

	rec = get(t, c.SessionDetail, "/sessions/nope", "nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestSiteController_SpeakerDetail(t *testing.T) {
	c := NewSiteController(testState(), testOpts, testLogger)

	rec := get(t, c.SpeakerDetail, "/speakers/ann-lee", "ann-lee")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ann Lee")

	rec = get(t, c.SpeakerDetail, "/speakers/nope", "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSiteController_WorkshopDetail(t *testing.T) {
	c := NewSiteController(testState(), testOpts, testLogger)

	rec := get(t, c.WorkshopDetail, "/workshops/compose-lab", "compose-lab")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Compose Lab")
	assert.Contains(t, body, `src="https://gdg.am/2025/images/bob.jpg"`,
		"relative image resolved against the deployed base")
	assert.Contains(t, body, "Capacity: 30")
	assert.Contains(t, body, `href="https://forms.example/compose"`)

	rec = get(t, c.WorkshopDetail, "/workshops/nope", "nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSiteController_DocumentsJSON(t *testing.T) {
	c := NewSiteController(testState(), testOpts, testLogger)

	rec := get(t, c.DataJSON, "/data.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var data domain.DataDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Contains(t, data.Sessions, "intro-to-go")

	rec = get(t, c.ScheduleJSON, "/schedule.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var schedule domain.ScheduleDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schedule))
	assert.Len(t, schedule.Sessions, 1)

	rec = get(t, c.WorkshopsJSON, "/workshops.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var workshops []domain.Workshop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &workshops))
	require.Len(t, workshops, 1)
	assert.Equal(t, "compose-lab", workshops[0].ID)
}

func TestSiteController_MissingDocumentsJSON(t *testing.T) {
	c := NewSiteController(SiteState{}, testOpts, testLogger)

	rec := get(t, c.DataJSON, "/data.json", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, c.ScheduleJSON, "/schedule.json", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, c.WorkshopsJSON, "/workshops.json", "")
	require.Equal(t, http.StatusOK, rec.Code, "missing workshops file is an empty list")
	assert.Equal(t, "[]", rec.Body.String())
}
