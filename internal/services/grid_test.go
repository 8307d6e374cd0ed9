package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfestsite/internal/domain"
)

func scheduleFixture(sessions ...domain.ScheduleSession) *domain.ScheduleDocument {
	roomSet := map[domain.RoomID]struct{}{}
	var rooms []domain.Room
	for _, s := range sessions {
		if _, ok := roomSet[s.Room]; !ok {
			roomSet[s.Room] = struct{}{}
			rooms = append(rooms, domain.Room{ID: s.Room, Name: domain.DisplayNameForRoomID(s.Room)})
		}
	}
	return &domain.ScheduleDocument{Rooms: rooms, Sessions: sessions}
}

func slot(id string, room domain.RoomID, start, end int) domain.ScheduleSession {
	return domain.ScheduleSession{
		ID:           id,
		Room:         room,
		StartTime:    domain.MinutesToClock(start),
		EndTime:      domain.MinutesToClock(end),
		StartMinutes: start,
		EndMinutes:   end,
		Duration:     end - start,
	}
}

func TestBuildGridLayoutGeometry(t *testing.T) {
	doc := scheduleFixture(
		slot("a", domain.RoomHallA, 600, 660),
		slot("b", domain.RoomHallB, 620, 640),
	)

	layout := BuildGridLayout(doc)

	assert.Equal(t, 600, layout.MinMinutes)
	assert.Equal(t, 660, layout.MaxMinutes)
	assert.Equal(t, 60, layout.TotalMinutes)
	assert.InDelta(t, 60*GridScale+GridHeaderOffset, layout.HeightPx, 0.001)

	require.Len(t, layout.Columns, 2)
	a := layout.Columns[0].Blocks[0]
	assert.InDelta(t, GridHeaderOffset, a.TopPx, 0.001, "earliest session sits at the header offset")
	assert.InDelta(t, 150.0, a.HeightPx, 0.001)
	assert.False(t, a.Clamped)

	b := layout.Columns[1].Blocks[0]
	assert.InDelta(t, 20*GridScale+GridHeaderOffset, b.TopPx, 0.001)
	assert.InDelta(t, 50.0, b.HeightPx, 0.001, "20min*2.5px stays above the clamp")
	assert.False(t, b.Clamped)
}

func TestBuildGridLayoutClampsShortSessions(t *testing.T) {
	doc := scheduleFixture(slot("short", domain.RoomHallA, 600, 605))

	layout := BuildGridLayout(doc)
	block := layout.Columns[0].Blocks[0]
	assert.InDelta(t, GridMinSessionHeight, block.HeightPx, 0.001)
	assert.True(t, block.Clamped)
}

func TestBuildGridLayoutTicks(t *testing.T) {
	doc := scheduleFixture(slot("a", domain.RoomHallA, 600, 690))

	layout := BuildGridLayout(doc)
	require.Len(t, layout.Ticks, 4)
	assert.Equal(t, "10:00am", layout.Ticks[0].Label)
	assert.Equal(t, "10:30am", layout.Ticks[1].Label)
	assert.Equal(t, "11:00am", layout.Ticks[2].Label)
	assert.Equal(t, "11:30am", layout.Ticks[3].Label)
	assert.InDelta(t, GridHeaderOffset, layout.Ticks[0].TopPx, 0.001)
	assert.InDelta(t, 30*GridScale+GridHeaderOffset, layout.Ticks[1].TopPx, 0.001)
}

// Same-room overlap is not validated; the two blocks simply intersect. This
// fixture makes the single-track-per-room input assumption visible the day
// it breaks.
func TestBuildGridLayoutSameRoomOverlapIsRendered(t *testing.T) {
	doc := scheduleFixture(
		slot("one", domain.RoomHallA, 600, 660),
		slot("two", domain.RoomHallA, 630, 690),
	)

	layout := BuildGridLayout(doc)
	require.Len(t, layout.Columns, 1)
	blocks := layout.Columns[0].Blocks
	require.Len(t, blocks, 2)

	oneBottom := blocks[0].TopPx + blocks[0].HeightPx
	assert.Greater(t, oneBottom, blocks[1].TopPx, "rectangles overlap vertically")
}

func TestBuildGridLayoutListIsChronological(t *testing.T) {
	doc := scheduleFixture(
		slot("late", domain.RoomHallB, 800, 830),
		slot("early", domain.RoomHallA, 600, 630),
		slot("mid", domain.RoomHallC, 700, 730),
	)

	layout := BuildGridLayout(doc)
	ids := []string{layout.List[0].ID, layout.List[1].ID, layout.List[2].ID}
	assert.Equal(t, []string{"early", "mid", "late"}, ids)
}

func TestBuildGridLayoutEmpty(t *testing.T) {
	assert.True(t, BuildGridLayout(nil).Empty())
	assert.True(t, BuildGridLayout(&domain.ScheduleDocument{}).Empty())
}
