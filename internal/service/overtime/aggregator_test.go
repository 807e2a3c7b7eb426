package overtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/holiday"
	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/domain/timesheet"
)

const testRateCents = 1500

func TestComputeBreakdown_MixedMonth(t *testing.T) {
	entries := []timesheet.Entry{
		// Wednesday, flagged as a holiday: four worked hours, all holiday
		// overtime.
		{Date: date(2025, time.January, 1), StartMinutes: intPtr(12 * 60), EndMinutes: intPtr(16 * 60), IsHoliday: true},
		// Saturday: six worked hours, all weekend overtime.
		{Date: date(2025, time.January, 4), StartMinutes: intPtr(10 * 60), EndMinutes: intPtr(16 * 60)},
		// Monday 09:00-20:00 with a one hour break: ten worked hours,
		// eight regular plus two day overtime.
		{Date: date(2025, time.January, 6), StartMinutes: intPtr(9 * 60), EndMinutes: intPtr(20 * 60), BreakMinutes: 60},
	}

	b := ComputeBreakdown("contract", 2025, 1, entries, testPolicy(), nil, testRateCents, contract.ClassMedium)

	assert.Empty(t, b.Warnings)
	assert.InDelta(t, 20, b.TotalWorkedHours, 0.001)
	assert.InDelta(t, 12, b.TotalOvertimeHours, 0.001)
	assert.InDelta(t, 2, b.DayOvertimeHours, 0.001)
	assert.InDelta(t, 6, b.WeekendOvertimeHours, 0.001)
	assert.InDelta(t, 4, b.HolidayOvertimeHours, 0.001)
	assert.Zero(t, b.NightOvertimeHours)

	// Day: first hour at 1.5, second at 1.75 of 15.00/h. Weekend at 2.0,
	// holiday at 2.5.
	assert.Equal(t, int64(4875), b.DayOvertimePayCents)
	assert.Equal(t, int64(18000), b.WeekendOvertimePayCents)
	assert.Equal(t, int64(15000), b.HolidayOvertimePayCents)
	assert.Equal(t, int64(37875), b.TotalOvertimePayCents)

	require.Len(t, b.Daily, 3)
	assert.Equal(t, overtime.CategoryMinutes{Holiday: 240}, b.Daily[0].Minutes)
	assert.Equal(t, overtime.CategoryMinutes{Weekend: 360}, b.Daily[1].Minutes)
	assert.Equal(t, overtime.CategoryMinutes{Regular: 480, Day: 120}, b.Daily[2].Minutes)
}

func TestComputeBreakdown_MidnightShift(t *testing.T) {
	entries := []timesheet.Entry{
		// Monday 20:00 to Tuesday 04:00 with a one hour break: seven
		// worked hours split across the two calendar days, none of them
		// overtime.
		{Date: date(2025, time.January, 6), StartMinutes: intPtr(20 * 60), EndMinutes: intPtr(4 * 60), BreakMinutes: 60},
	}

	b := ComputeBreakdown("contract", 2025, 1, entries, testPolicy(), nil, testRateCents, contract.ClassMedium)

	assert.InDelta(t, 7, b.TotalWorkedHours, 0.001)
	assert.Zero(t, b.TotalOvertimeHours)

	require.Len(t, b.Daily, 2)
	assert.True(t, b.Daily[0].Date.Equal(date(2025, time.January, 6)))
	assert.Equal(t, 180, b.Daily[0].WorkedMinutes)
	assert.True(t, b.Daily[1].Date.Equal(date(2025, time.January, 7)))
	assert.Equal(t, 240, b.Daily[1].WorkedMinutes)
}

func TestComputeBreakdown_MidnightSpillIntoWeekend(t *testing.T) {
	entries := []timesheet.Entry{
		// Friday 22:00 into Saturday 02:00: the Friday piece stays
		// regular, the Saturday piece is weekend overtime.
		{Date: date(2025, time.January, 3), StartMinutes: intPtr(22 * 60), EndMinutes: intPtr(2 * 60)},
	}

	b := ComputeBreakdown("contract", 2025, 1, entries, testPolicy(), nil, testRateCents, contract.ClassMedium)

	require.Len(t, b.Daily, 2)
	assert.Equal(t, overtime.CategoryMinutes{Regular: 120}, b.Daily[0].Minutes)
	assert.Equal(t, overtime.CategoryMinutes{Weekend: 120}, b.Daily[1].Minutes)
	assert.Equal(t, int64(6000), b.WeekendOvertimePayCents)
}

func TestComputeBreakdown_HolidayFlagDoesNotSpill(t *testing.T) {
	entries := []timesheet.Entry{
		// A holiday-flagged shift crossing midnight: only the entry's own
		// date is treated as a holiday, the Tuesday piece classifies
		// normally.
		{Date: date(2025, time.January, 6), StartMinutes: intPtr(22 * 60), EndMinutes: intPtr(2 * 60), IsHoliday: true},
	}

	b := ComputeBreakdown("contract", 2025, 1, entries, testPolicy(), nil, testRateCents, contract.ClassMedium)

	require.Len(t, b.Daily, 2)
	assert.Equal(t, overtime.CategoryMinutes{Holiday: 120}, b.Daily[0].Minutes)
	assert.Equal(t, overtime.CategoryMinutes{Regular: 120}, b.Daily[1].Minutes)
}

func TestComputeBreakdown_CalendarHolidayOnSaturday(t *testing.T) {
	cal := holiday.NewCalendar([]holiday.Holiday{
		{Date: date(2025, time.January, 4), Name: "company day", Type: holiday.TypeCompany, AffectsOvertime: true},
	})
	entries := []timesheet.Entry{
		{Date: date(2025, time.January, 4), StartMinutes: intPtr(10 * 60), EndMinutes: intPtr(14 * 60)},
	}

	b := ComputeBreakdown("contract", 2025, 1, entries, testPolicy(), cal, testRateCents, contract.ClassMedium)

	require.Len(t, b.Daily, 1)
	assert.Equal(t, overtime.CategoryMinutes{Holiday: 240}, b.Daily[0].Minutes)
	assert.Zero(t, b.WeekendOvertimeHours)
}

func TestComputeBreakdown_NoActivePolicy(t *testing.T) {
	entries := []timesheet.Entry{
		{Date: date(2025, time.January, 6), StartMinutes: intPtr(9 * 60), EndMinutes: intPtr(20 * 60), BreakMinutes: 60},
	}

	b := ComputeBreakdown("contract", 2025, 1, entries, nil, nil, testRateCents, contract.ClassMedium)

	// Hours are still classified with the default rules, pay stays zero.
	assert.InDelta(t, 2, b.DayOvertimeHours, 0.001)
	assert.Zero(t, b.TotalOvertimePayCents)

	require.NotEmpty(t, b.Warnings)
	assert.Equal(t, overtime.WarnNoActivePolicy, b.Warnings[0].Kind)
}

func TestComputeBreakdown_RoundingPerDay(t *testing.T) {
	p := testPolicy()

	short := []timesheet.Entry{
		// Seven overtime minutes round down to zero.
		{Date: date(2025, time.January, 6), StartMinutes: intPtr(9 * 60), EndMinutes: intPtr(17*60 + 7)},
	}
	b := ComputeBreakdown("contract", 2025, 1, short, p, nil, testRateCents, contract.ClassMedium)
	require.Len(t, b.Daily, 1)
	assert.Equal(t, 0, b.Daily[0].Minutes.Day)

	long := []timesheet.Entry{
		// Eight overtime minutes round up to a quarter hour.
		{Date: date(2025, time.January, 6), StartMinutes: intPtr(9 * 60), EndMinutes: intPtr(17*60 + 8)},
	}
	b = ComputeBreakdown("contract", 2025, 1, long, p, nil, testRateCents, contract.ClassMedium)
	require.Len(t, b.Daily, 1)
	assert.Equal(t, 15, b.Daily[0].Minutes.Day)
}

func TestComputeBreakdown_MinutesConserved(t *testing.T) {
	p := testPolicy()
	p.RoundingMinutes = 0

	entries := []timesheet.Entry{
		{Date: date(2025, time.January, 4), StartMinutes: intPtr(10 * 60), EndMinutes: intPtr(16*60 + 23)},
		{Date: date(2025, time.January, 6), StartMinutes: intPtr(9 * 60), EndMinutes: intPtr(19*60 + 41), BreakMinutes: 37},
		{Date: date(2025, time.January, 7), StartMinutes: intPtr(14 * 60), EndMinutes: intPtr(23*60 + 59)},
	}

	b := ComputeBreakdown("contract", 2025, 1, entries, p, nil, testRateCents, contract.ClassMedium)

	// Without rounding every worked minute lands in exactly one bucket.
	for _, d := range b.Daily {
		assert.Equal(t, d.WorkedMinutes, d.Minutes.Regular+d.Minutes.Overtime(),
			"day %s", d.Date.Format("2006-01-02"))
	}
}

func TestComputeBreakdown_Deterministic(t *testing.T) {
	entries := []timesheet.Entry{
		{Date: date(2025, time.January, 1), StartMinutes: intPtr(12 * 60), EndMinutes: intPtr(16 * 60), IsHoliday: true},
		{Date: date(2025, time.January, 4), StartMinutes: intPtr(10 * 60), EndMinutes: intPtr(16 * 60)},
		{Date: date(2025, time.January, 6), StartMinutes: intPtr(9 * 60), EndMinutes: intPtr(20 * 60), BreakMinutes: 60},
	}

	first := ComputeBreakdown("contract", 2025, 1, entries, testPolicy(), nil, testRateCents, contract.ClassMedium)
	second := ComputeBreakdown("contract", 2025, 1, entries, testPolicy(), nil, testRateCents, contract.ClassMedium)

	assert.Equal(t, first, second)
}

func TestWeeklySummariesFromDaily(t *testing.T) {
	daily := []overtime.DayCalculation{
		{Date: date(2025, time.January, 6), WorkedMinutes: 10 * 60, Minutes: overtime.CategoryMinutes{Regular: 480, Day: 120}},
		{Date: date(2025, time.January, 8), WorkedMinutes: 40 * 60, Minutes: overtime.CategoryMinutes{Regular: 480}},
		{Date: date(2025, time.January, 13), WorkedMinutes: 8 * 60, Minutes: overtime.CategoryMinutes{Regular: 480}},
	}

	summaries := WeeklySummariesFromDaily(daily, 48)

	require.Len(t, summaries, 2)

	assert.True(t, summaries[0].WeekStart.Equal(date(2025, time.January, 6)))
	assert.True(t, summaries[0].WeekEnd.Equal(date(2025, time.January, 12)))
	assert.InDelta(t, 50, summaries[0].WorkedHours, 0.001)
	assert.InDelta(t, 2, summaries[0].OvertimeHours, 0.001)
	assert.True(t, summaries[0].WeeklyLimitExceeded)

	assert.True(t, summaries[1].WeekStart.Equal(date(2025, time.January, 13)))
	assert.InDelta(t, 8, summaries[1].WorkedHours, 0.001)
	assert.False(t, summaries[1].WeeklyLimitExceeded)
}
