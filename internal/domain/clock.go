package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`(\d+):(\d+)(am|pm)`)

// TimeToMinutes converts a 12-hour clock string such as "10:20am" to minutes
// since midnight. "12:00am" is minute 0 and "12:00pm" is minute 720. A token
// that does not match the pattern yields 0, which is indistinguishable from
// midnight; the schedule source has no midnight-adjacent slots, so a zero in
// practice signals a malformed cell rather than a real time.
func TimeToMinutes(s string) int {
	m := clockPattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	switch {
	case m[3] == "pm" && hours != 12:
		hours += 12
	case m[3] == "am" && hours == 12:
		hours = 0
	}
	return hours*60 + minutes
}

// MinutesToClock renders minutes since midnight back to the 12-hour display
// form used on the time axis ("10:30am"). Inverse of TimeToMinutes for every
// string the pattern accepts.
func MinutesToClock(m int) string {
	hours := (m / 60) % 24
	minutes := m % 60
	period := "am"
	if hours >= 12 {
		period = "pm"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d%s", display, minutes, period)
}
