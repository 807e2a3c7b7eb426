package overtime

import (
	"time"

	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/domain/policy"
)

// ClassifyInterval buckets a single midnight-safe interval into regular
// and overtime minutes. ordinalOffset is how many minutes were already
// worked on the interval's calendar day before this interval started;
// the daily overtime threshold counts against that running position.
//
// Precedence is holiday > weekend > night > day. On a holiday or a
// weekend every worked minute is overtime regardless of the threshold.
func ClassifyInterval(iv overtime.WorkInterval, ordinalOffset int, p *policy.Policy, isHoliday func(time.Time) bool) overtime.CategoryMinutes {
	dur := iv.Minutes()
	if dur <= 0 {
		return overtime.CategoryMinutes{}
	}

	if isHoliday != nil && isHoliday(iv.Date) {
		return overtime.CategoryMinutes{Holiday: dur}
	}
	if wd := iv.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return overtime.CategoryMinutes{Weekend: dur}
	}

	threshold := int(p.ThresholdHours * 60)
	otMinutes := ordinalOffset + dur - max(ordinalOffset, threshold)
	if otMinutes < 0 {
		otMinutes = 0
	}
	if otMinutes > dur {
		otMinutes = dur
	}

	// Overtime is the tail of the interval; intersect it with the night
	// window to split night from day overtime.
	otStart := iv.EndMinutes - otMinutes
	night := nightOverlap(otStart, iv.EndMinutes, p.NightStartMinutes, p.NightEndMinutes)

	return overtime.CategoryMinutes{
		Regular: dur - otMinutes,
		Day:     otMinutes - night,
		Night:   night,
	}
}

// nightOverlap returns how many minutes of [start, end) fall inside the
// night window. The window may wrap past midnight (nightStart > nightEnd).
func nightOverlap(start, end, nightStart, nightEnd int) int {
	if nightStart == nightEnd {
		return 0
	}
	if nightStart < nightEnd {
		return overlap(start, end, nightStart, nightEnd)
	}
	return overlap(start, end, nightStart, minutesPerDay) + overlap(start, end, 0, nightEnd)
}

func overlap(a1, a2, b1, b2 int) int {
	lo := max(a1, b1)
	hi := min(a2, b2)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
