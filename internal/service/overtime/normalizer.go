package overtime

import (
	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/domain/timesheet"
)

const minutesPerDay = 24 * 60

// NormalizeEntry turns one timesheet entry into midnight-safe work
// intervals with the break already subtracted. A shift whose end is not
// after its start runs into the next calendar day and is split at
// midnight. Vacation and leave days never yield intervals; recorded
// punches on such days only produce a warning.
func NormalizeEntry(e *timesheet.Entry) ([]overtime.WorkInterval, []overtime.Warning) {
	date := e.Date.Format("2006-01-02")

	if e.IsVacation || e.IsLeave {
		if e.StartMinutes != nil || e.EndMinutes != nil {
			kind := overtime.WarnTimesOnVacation
			if e.IsLeave {
				kind = overtime.WarnTimesOnLeave
			}
			return nil, []overtime.Warning{{Kind: kind, Date: date}}
		}
		return nil, nil
	}

	if e.StartMinutes == nil || e.EndMinutes == nil {
		// A holiday-flagged day without punches is simply a day off.
		if e.StartMinutes == nil && e.EndMinutes == nil && e.IsHoliday {
			return nil, nil
		}
		var warnings []overtime.Warning
		if e.StartMinutes == nil {
			warnings = append(warnings, overtime.Warning{Kind: overtime.WarnMissingStartTime, Date: date})
		}
		if e.EndMinutes == nil {
			warnings = append(warnings, overtime.Warning{Kind: overtime.WarnMissingEndTime, Date: date})
		}
		return nil, warnings
	}

	start, end := *e.StartMinutes, *e.EndMinutes

	var pieces []overtime.WorkInterval
	if end > start {
		pieces = append(pieces, overtime.WorkInterval{Date: e.Date, StartMinutes: start, EndMinutes: end})
	} else {
		// Crosses midnight. An end equal to the start is a full 24h shift.
		pieces = append(pieces, overtime.WorkInterval{Date: e.Date, StartMinutes: start, EndMinutes: minutesPerDay})
		if end > 0 {
			pieces = append(pieces, overtime.WorkInterval{Date: e.Date.AddDate(0, 0, 1), StartMinutes: 0, EndMinutes: end})
		}
	}

	total := 0
	for _, p := range pieces {
		total += p.Minutes()
	}
	if e.BreakMinutes >= total {
		return nil, []overtime.Warning{{Kind: overtime.WarnBreakExceedsWork, Date: date}}
	}

	// The break comes off the end of the first piece; whatever is left
	// over eats into the start of the second.
	remaining := e.BreakMinutes
	if remaining > 0 {
		first := pieces[0].Minutes()
		if remaining < first {
			pieces[0].EndMinutes -= remaining
			remaining = 0
		} else {
			remaining -= first
			pieces = pieces[1:]
		}
		if remaining > 0 && len(pieces) > 0 {
			pieces[0].StartMinutes += remaining
		}
	}

	out := make([]overtime.WorkInterval, 0, len(pieces))
	for _, p := range pieces {
		if p.Minutes() > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}
