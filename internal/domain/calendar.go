package domain

import "time"

// CalendarDaysBetween returns the number of calendar days from "from" to "to"
// as observed in loc. Both instants are truncated to their local date first,
// so daylight-saving shifts never produce a fractional day. The result is
// negative when to precedes from.
func CalendarDaysBetween(from, to time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.In(loc).Date()

	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	return int(b.Sub(a).Hours() / 24)
}

// StartOfNextDay returns local midnight following t in loc.
func StartOfNextDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}
