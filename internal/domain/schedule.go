package domain

import "context"

// ScheduleSession is one scheduled slot on the time grid. It is keyed not by
// a stable business identifier but by a composite of start time, normalized
// room, and a truncated title slug; rows that agree on all three collide.
type ScheduleSession struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Speaker   string `json:"speaker"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      RoomID `json:"room"`
	// RoomDisplay is the human room name from the source row.
	RoomDisplay  string `json:"roomDisplay"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
	// Duration is EndMinutes - StartMinutes. It goes negative when the
	// source lists an end time before the start; the extractor does not
	// validate this.
	Duration int `json:"duration"`
}

// ScheduleDocument is the generated schedule.json shape. TimeSlots is the
// distinct set of start-time strings ordered by minute value; Rooms is the
// distinct set of room ids ordered lexicographically.
type ScheduleDocument struct {
	EventDate  string            `json:"eventDate"`
	EventName  string            `json:"eventName"`
	Disclaimer string            `json:"disclaimer"`
	TimeSlots  []string          `json:"timeSlots"`
	Rooms      []Room            `json:"rooms"`
	Sessions   []ScheduleSession `json:"sessions"`
}

// ScheduleExtractor produces the schedule document from schedule rows.
type ScheduleExtractor interface {
	Extract(ctx context.Context) (*ScheduleDocument, error)
}
