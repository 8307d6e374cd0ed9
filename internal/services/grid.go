package services

import (
	"sort"

	"devfestsite/internal/domain"
)

// Layout constants for the schedule time grid.
const (
	// GridScale is pixels per minute.
	GridScale = 2.5
	// GridHeaderOffset reserves space for the room header row.
	GridHeaderOffset = 48.0
	// GridMinSessionHeight keeps very short sessions legible and clickable.
	GridMinSessionHeight = 40.0
	// GridTickInterval is the minute spacing of time-axis labels.
	GridTickInterval = 30
)

// GridTick is one label on the time axis.
type GridTick struct {
	Minutes int
	Label   string
	TopPx   float64
}

// GridBlock is a session positioned inside a room column.
type GridBlock struct {
	Session  domain.ScheduleSession
	TopPx    float64
	HeightPx float64
	// Clamped records that HeightPx was raised to GridMinSessionHeight.
	Clamped bool
}

// GridColumn is one room's column of positioned sessions, in room-axis order.
type GridColumn struct {
	Room   domain.Room
	Blocks []GridBlock
}

// GridLayout is the complete geometry of the schedule view, independent of
// any markup so it can be tested without a renderer. List carries the same
// sessions sorted chronologically for the narrow-viewport fallback.
type GridLayout struct {
	MinMinutes   int
	MaxMinutes   int
	TotalMinutes int
	HeightPx     float64
	Ticks        []GridTick
	Columns      []GridColumn
	List         []domain.ScheduleSession
}

// Empty reports whether there is nothing to lay out.
func (l GridLayout) Empty() bool {
	return len(l.Columns) == 0
}

// BuildGridLayout lays the schedule out as a pixel-positioned multi-room
// time grid. Sessions within one room are not checked for time overlap: the
// source schedule is assumed single-track per room, and overlapping input
// produces overlapping rectangles.
func BuildGridLayout(doc *domain.ScheduleDocument) GridLayout {
	var layout GridLayout
	if doc == nil || len(doc.Sessions) == 0 {
		return layout
	}

	minT := doc.Sessions[0].StartMinutes
	maxT := minT
	for _, s := range doc.Sessions {
		if s.StartMinutes < minT {
			minT = s.StartMinutes
		}
		if s.StartMinutes > maxT {
			maxT = s.StartMinutes
		}
		if s.EndMinutes < minT {
			minT = s.EndMinutes
		}
		if s.EndMinutes > maxT {
			maxT = s.EndMinutes
		}
	}

	layout.MinMinutes = minT
	layout.MaxMinutes = maxT
	layout.TotalMinutes = maxT - minT
	layout.HeightPx = float64(layout.TotalMinutes)*GridScale + GridHeaderOffset

	for t := minT; t <= maxT; t += GridTickInterval {
		layout.Ticks = append(layout.Ticks, GridTick{
			Minutes: t,
			Label:   domain.MinutesToClock(t),
			TopPx:   float64(t-minT)*GridScale + GridHeaderOffset,
		})
	}

	for _, room := range doc.Rooms {
		col := GridColumn{Room: room}
		for _, s := range doc.Sessions {
			if s.Room != room.ID {
				continue
			}
			height := float64(s.Duration) * GridScale
			clamped := false
			if height < GridMinSessionHeight {
				height = GridMinSessionHeight
				clamped = true
			}
			col.Blocks = append(col.Blocks, GridBlock{
				Session:  s,
				TopPx:    float64(s.StartMinutes-minT)*GridScale + GridHeaderOffset,
				HeightPx: height,
				Clamped:  clamped,
			})
		}
		layout.Columns = append(layout.Columns, col)
	}

	layout.List = append([]domain.ScheduleSession(nil), doc.Sessions...)
	sort.SliceStable(layout.List, func(i, j int) bool {
		return layout.List[i].StartMinutes < layout.List[j].StartMinutes
	})
	return layout
}
