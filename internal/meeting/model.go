package meeting

import (
	"slices"
	"time"
)

// Meeting represents a row in the meetings table. Times are stored as UTC
// wall clock with second precision.
type Meeting struct {
	ID          int64
	GroupID     int64
	Description string
	Start       time.Time
	End         time.Time
	Room        string
}

// rooms is the fixed set of physical meeting rooms.
var rooms = []string{
	"Blue Room",
	"New York Room",
	"Large Board Room",
}

// Rooms returns the fixed set of meeting room names.
func Rooms() []string {
	return slices.Clone(rooms)
}

// ValidRoom reports whether name is one of the known meeting rooms.
func ValidRoom(name string) bool {
	return slices.Contains(rooms, name)
}

// NormalizeTime converts t to the stored representation: UTC wall clock
// truncated to second precision. Incoming timestamps carry arbitrary offsets;
// persisting anything finer would make the overlap comparison depend on how
// the client serialized the value.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Meetings that touch at a boundary, one ending
// exactly when the other starts, do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ConflictsWith reports whether m and other are double-booked: same group,
// different meetings, intersecting time intervals.
func (m *Meeting) ConflictsWith(other *Meeting) bool {
	if m.GroupID != other.GroupID {
		return false
	}
	if m.ID != 0 && m.ID == other.ID {
		return false
	}
	return Overlaps(m.Start, m.End, other.Start, other.End)
}
