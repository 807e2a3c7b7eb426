package overtime

import (
	"fmt"
)

// WarningKind identifies a non-fatal data or limit problem found during
// calculation. Warnings never abort a run; they ride along on the result
// so the caller can surface them.
type WarningKind string

const (
	WarnMissingStartTime    WarningKind = "missing_start_time"
	WarnMissingEndTime      WarningKind = "missing_end_time"
	WarnTimesOnVacation     WarningKind = "times_on_vacation"
	WarnTimesOnLeave        WarningKind = "times_on_leave"
	WarnBreakExceedsWork    WarningKind = "break_exceeds_work"
	WarnDailyLimitExceeded  WarningKind = "daily_limit_exceeded"
	WarnWeeklyLimitExceeded WarningKind = "weekly_limit_exceeded"
	WarnAnnualLimitExceeded WarningKind = "annual_limit_exceeded"
	WarnLegalCeilingReached WarningKind = "legal_ceiling_reached"
	WarnNoActivePolicy      WarningKind = "no_active_policy"
)

// Warning carries the kind plus the data needed to render a message,
// instead of a pre-baked string. Date is YYYY-MM-DD and empty for
// period-level warnings; Hours and LimitHours are only set for limit
// warnings.
type Warning struct {
	Kind       WarningKind `json:"kind"`
	Date       string      `json:"date,omitempty"`
	Hours      float64     `json:"hours,omitempty"`
	LimitHours float64     `json:"limit_hours,omitempty"`
}

// Message renders a human-readable description of the warning.
func (w Warning) Message() string {
	switch w.Kind {
	case WarnMissingStartTime:
		return fmt.Sprintf("entry on %s has no start time", w.Date)
	case WarnMissingEndTime:
		return fmt.Sprintf("entry on %s has no end time", w.Date)
	case WarnTimesOnVacation:
		return fmt.Sprintf("entry on %s records work times on a vacation day", w.Date)
	case WarnTimesOnLeave:
		return fmt.Sprintf("entry on %s records work times on a leave day", w.Date)
	case WarnBreakExceedsWork:
		return fmt.Sprintf("entry on %s has a break longer than the shift", w.Date)
	case WarnDailyLimitExceeded:
		return fmt.Sprintf("overtime on %s is %.2fh, above the daily limit of %.2fh", w.Date, w.Hours, w.LimitHours)
	case WarnWeeklyLimitExceeded:
		return fmt.Sprintf("week of %s totals %.2fh, above the weekly limit of %.2fh", w.Date, w.Hours, w.LimitHours)
	case WarnAnnualLimitExceeded:
		return fmt.Sprintf("overtime for the period is %.2fh, above the annual limit of %.2fh", w.Hours, w.LimitHours)
	case WarnLegalCeilingReached:
		return fmt.Sprintf("overtime for the period is %.2fh, above the legal ceiling of %.2fh", w.Hours, w.LimitHours)
	case WarnNoActivePolicy:
		return "no active overtime policy, hours classified with defaults and paid at zero"
	default:
		return string(w.Kind)
	}
}
