package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"devfestsite/internal/domain"
)

var (
	titleSlugStrip  = regexp.MustCompile(`[^\w\s-]`)
	titleSlugSpaces = regexp.MustCompile(`\s+`)
	idSanitizer     = regexp.MustCompile(`[^a-z0-9-]`)
)

// EventInfo is the fixed metadata stamped onto the schedule document.
type EventInfo struct {
	Name       string
	Date       string
	Disclaimer string
}

type scheduleExtractor struct {
	source domain.RowSource
	event  EventInfo
	logger *slog.Logger
}

// NewScheduleExtractor returns the extractor that turns schedule rows into
// the flat schedule document.
func NewScheduleExtractor(source domain.RowSource, event EventInfo, logger *slog.Logger) domain.ScheduleExtractor {
	return &scheduleExtractor{source: source, event: event, logger: logger}
}

func (e *scheduleExtractor) Extract(ctx context.Context) (*domain.ScheduleDocument, error) {
	rows, err := e.source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("read schedule rows: %w", err)
	}

	slotSet := make(map[string]struct{})
	roomSet := make(map[domain.RoomID]struct{})
	sessions := make([]domain.ScheduleSession, 0, len(rows))

	for _, row := range rows {
		start, end := splitTimeRange(row.Get("Time"))
		roomID := domain.NormalizeRoom(row.Get("Room"))

		slotSet[start] = struct{}{}
		roomSet[roomID] = struct{}{}

		title := row.Get("Title")
		display := "TBA"
		if title != "" {
			display = strings.TrimSpace(title)
		}

		startMin := domain.TimeToMinutes(start)
		endMin := domain.TimeToMinutes(end)
		sessions = append(sessions, domain.ScheduleSession{
			ID:           scheduleSessionID(start, roomID, title),
			Title:        display,
			Speaker:      strings.TrimSpace(row.Get("Speakers")),
			StartTime:    start,
			EndTime:      end,
			Room:         roomID,
			RoomDisplay:  domain.RoomDisplayName(row.Get("Room")),
			StartMinutes: startMin,
			EndMinutes:   endMin,
			Duration:     endMin - startMin,
		})
	}

	timeSlots := make([]string, 0, len(slotSet))
	for slot := range slotSet {
		timeSlots = append(timeSlots, slot)
	}
	// Chronological, not lexicographic: "9:00am" sorts before "10:00am".
	sort.SliceStable(timeSlots, func(i, j int) bool {
		return domain.TimeToMinutes(timeSlots[i]) < domain.TimeToMinutes(timeSlots[j])
	})

	roomIDs := make([]string, 0, len(roomSet))
	for id := range roomSet {
		roomIDs = append(roomIDs, string(id))
	}
	sort.Strings(roomIDs)
	rooms := make([]domain.Room, 0, len(roomIDs))
	for _, id := range roomIDs {
		rooms = append(rooms, domain.Room{ID: domain.RoomID(id), Name: domain.DisplayNameForRoomID(domain.RoomID(id))})
	}

	doc := &domain.ScheduleDocument{
		EventDate:  e.event.Date,
		EventName:  e.event.Name,
		Disclaimer: e.event.Disclaimer,
		TimeSlots:  timeSlots,
		Rooms:      rooms,
		Sessions:   sessions,
	}
	e.logger.Info("extracted schedule",
		"sessions", len(sessions),
		"timeSlots", len(timeSlots),
		"rooms", len(rooms),
	)
	return doc, nil
}

// splitTimeRange splits "10:20am - 10:40am" once on " - ". A missing
// separator leaves the end empty; a missing field leaves both empty.
func splitTimeRange(s string) (start, end string) {
	parts := strings.SplitN(s, " - ", 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}

// scheduleSessionID builds the composite row id "{start}-{roomId}-{titleSlug}"
// sanitized to [a-z0-9-]. The title slug keeps at most its first 30 bytes.
// Rows that agree on start, room, and title prefix collide; last write wins.
func scheduleSessionID(start string, room domain.RoomID, title string) string {
	if title == "" {
		title = "session"
	}
	slug := strings.ToLower(title)
	slug = titleSlugStrip.ReplaceAllString(slug, "")
	slug = titleSlugSpaces.ReplaceAllString(slug, "-")
	if len(slug) > 30 {
		slug = slug[:30]
	}
	id := strings.ToLower(fmt.Sprintf("%s-%s-%s", start, room, slug))
	return idSanitizer.ReplaceAllString(id, "-")
}
