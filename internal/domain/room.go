package domain

import "strings"

// RoomID is a normalized room identifier. Rooms form a small closed set;
// anything that is not one of the three halls maps to RoomUnknown.
type RoomID string

const (
	RoomHallA   RoomID = "hall-a"
	RoomHallB   RoomID = "hall-b"
	RoomHallC   RoomID = "hall-c"
	RoomUnknown RoomID = "unknown"
)

// Room pairs a normalized identifier with its display name on the rooms axis.
type Room struct {
	ID   RoomID `json:"id"`
	Name string `json:"name"`
}

// NormalizeRoom maps free-form room text to a RoomID by case-insensitive
// substring match, so "Main Hall A Room" normalizes to hall-a.
func NormalizeRoom(room string) RoomID {
	lower := strings.ToLower(room)
	switch {
	case strings.Contains(lower, "hall a"):
		return RoomHallA
	case strings.Contains(lower, "hall b"):
		return RoomHallB
	case strings.Contains(lower, "hall c"):
		return RoomHallC
	default:
		return RoomUnknown
	}
}

// RoomDisplayName returns the human label for room text: the canonical hall
// name when recognized, the source text otherwise, "Unknown" when empty.
func RoomDisplayName(room string) string {
	if room == "" {
		return "Unknown"
	}
	switch NormalizeRoom(room) {
	case RoomHallA:
		return "Hall A"
	case RoomHallB:
		return "Hall B"
	case RoomHallC:
		return "Hall C"
	default:
		return room
	}
}

// DisplayNameForRoomID labels a normalized id on the rooms axis, where the
// original source text is no longer available.
func DisplayNameForRoomID(id RoomID) string {
	switch id {
	case RoomHallA:
		return "Hall A"
	case RoomHallB:
		return "Hall B"
	case RoomHallC:
		return "Hall C"
	default:
		return string(id)
	}
}
