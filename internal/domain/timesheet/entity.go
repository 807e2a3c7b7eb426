package timesheet

import (
	"time"
)

// Entry is one day of recorded work for a contract. Start and end are
// wall-clock minutes since midnight; an end earlier than the start means
// the shift runs past midnight into the next day. A nil start or end
// means the punch was never recorded.
type Entry struct {
	ID           string
	ContractID   string
	Date         time.Time
	StartMinutes *int
	EndMinutes   *int
	BreakMinutes int
	IsHoliday    bool
	IsVacation   bool
	IsLeave      bool
	Description  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasTimes reports whether both punches were recorded.
func (e *Entry) HasTimes() bool {
	return e.StartMinutes != nil && e.EndMinutes != nil
}

// CrossesMidnight reports whether the shift ends on the following day.
func (e *Entry) CrossesMidnight() bool {
	return e.HasTimes() && *e.EndMinutes <= *e.StartMinutes
}
