package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/teamcal/teamcal/internal/meeting"
)

// MeetingInput mirrors the fields of a create or update meeting request.
// Times are the raw ISO-8601 strings as sent by the client.
type MeetingInput struct {
	GroupID     int64
	Description string
	StartTime   string
	EndTime     string
	Room        string
}

// ValidateMeetingInput checks all meeting fields and parses the time range.
// The returned times are only meaningful when the error slice is empty.
func ValidateMeetingInput(in MeetingInput) (start, end time.Time, errs []FieldError) {
	if in.GroupID <= 0 {
		errs = append(errs, FieldError{Field: "developmentGroupId", Message: "developmentGroupId must be a positive integer"})
	}

	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}

	var startErr, endErr error
	start, startErr = time.Parse(time.RFC3339, in.StartTime)
	if startErr != nil {
		errs = append(errs, FieldError{Field: "startTime", Message: "startTime must be an ISO-8601 timestamp"})
	}
	end, endErr = time.Parse(time.RFC3339, in.EndTime)
	if endErr != nil {
		errs = append(errs, FieldError{Field: "endTime", Message: "endTime must be an ISO-8601 timestamp"})
	}
	if startErr == nil && endErr == nil && !end.After(start) {
		errs = append(errs, FieldError{Field: "endTime", Message: "endTime must be after startTime"})
	}

	if in.Room == "" {
		errs = append(errs, FieldError{Field: "room", Message: "room is required"})
	} else if !meeting.ValidRoom(in.Room) {
		errs = append(errs, FieldError{
			Field:   "room",
			Message: fmt.Sprintf("room must be one of: %s", strings.Join(meeting.Rooms(), ", ")),
		})
	}

	return start, end, errs
}
