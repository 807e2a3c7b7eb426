package overtime

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/holiday"
	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/domain/policy"
	"github.com/folhacerta/payroll-backend-go/internal/domain/timesheet"
)

// taggedInterval keeps a normalized piece together with the holiday flag
// of the entry it came from. The flag only applies to the entry's own
// date, not to the spill-over day of a midnight-crossing shift.
type taggedInterval struct {
	iv          overtime.WorkInterval
	holidayFlag bool
}

// ComputeBreakdown runs the full pipeline for one contract month:
// normalize entries, classify every interval, round per day, price the
// overtime and check the caps.
//
// A nil policy falls back to the default classification rules, emits a
// warning and prices all overtime at zero.
func ComputeBreakdown(
	contractID string,
	year, month int,
	entries []timesheet.Entry,
	p *policy.Policy,
	cal holiday.Calendar,
	hourlyRateCents int64,
	class contract.CompanySizeClass,
) *overtime.Breakdown {
	b := &overtime.Breakdown{
		ContractID: contractID,
		Year:       year,
		Month:      month,
	}

	priced := p != nil
	if p == nil {
		p = policy.Default()
		b.Warnings = append(b.Warnings, overtime.Warning{Kind: overtime.WarnNoActivePolicy})
	}

	var pieces []taggedInterval
	for i := range entries {
		e := &entries[i]
		ivs, warnings := NormalizeEntry(e)
		b.Warnings = append(b.Warnings, warnings...)
		for _, iv := range ivs {
			pieces = append(pieces, taggedInterval{
				iv:          iv,
				holidayFlag: e.IsHoliday && iv.Date.Equal(e.Date),
			})
		}
	}

	sort.Slice(pieces, func(i, j int) bool {
		if !pieces[i].iv.Date.Equal(pieces[j].iv.Date) {
			return pieces[i].iv.Date.Before(pieces[j].iv.Date)
		}
		return pieces[i].iv.StartMinutes < pieces[j].iv.StartMinutes
	})

	type dayAccum struct {
		date    time.Time
		worked  int
		minutes overtime.CategoryMinutes
	}
	days := make(map[string]*dayAccum)
	ordinals := make(map[string]int)

	for _, piece := range pieces {
		key := piece.iv.Date.Format("2006-01-02")
		flagged := piece.holidayFlag
		lookup := func(d time.Time) bool {
			return flagged || cal.AffectsOvertimeOn(d)
		}

		cm := ClassifyInterval(piece.iv, ordinals[key], p, lookup)
		ordinals[key] += piece.iv.Minutes()

		acc, ok := days[key]
		if !ok {
			acc = &dayAccum{date: piece.iv.Date}
			days[key] = acc
		}
		acc.worked += piece.iv.Minutes()
		acc.minutes.Add(cm)
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		acc := days[k]
		roundDayOvertime(&acc.minutes, p.RoundingMinutes)

		day := overtime.DayCalculation{
			Date:          acc.date,
			WorkedMinutes: acc.worked,
			Minutes:       acc.minutes,
		}
		if priced {
			day.OvertimePay = priceDay(acc.minutes, p, hourlyRateCents)
		}
		b.Daily = append(b.Daily, day)

		b.TotalWorkedHours += float64(acc.worked) / 60
		b.DayOvertimeHours += float64(acc.minutes.Day) / 60
		b.NightOvertimeHours += float64(acc.minutes.Night) / 60
		b.WeekendOvertimeHours += float64(acc.minutes.Weekend) / 60
		b.HolidayOvertimeHours += float64(acc.minutes.Holiday) / 60
		b.TotalOvertimeHours += float64(acc.minutes.Overtime()) / 60

		b.DayOvertimePayCents += day.OvertimePay.Day
		b.NightOvertimePayCents += day.OvertimePay.Night
		b.WeekendOvertimePayCents += day.OvertimePay.Weekend
		b.HolidayOvertimePayCents += day.OvertimePay.Holiday
		b.TotalOvertimePayCents += day.OvertimePay.Total()
	}

	b.Warnings = append(b.Warnings, capWarnings(b.Daily, p, class)...)
	return b
}

// priceDay converts a day's overtime minutes into cents. Within the day
// category the first overtime hour of the day is paid at the first-hour
// multiplier and the rest at the subsequent-hours multiplier; night,
// weekend and holiday minutes use their flat multipliers.
func priceDay(cm overtime.CategoryMinutes, p *policy.Policy, rateCents int64) overtime.CategoryPayCents {
	var pay overtime.CategoryPayCents

	if cm.Day > 0 {
		firstMinutes := min(cm.Day, 60)
		pay.Day = minutesPay(firstMinutes, rateCents, p.FirstHourMultiplier) +
			minutesPay(cm.Day-firstMinutes, rateCents, p.SubsequentHoursMultiplier)
	}
	pay.Night = minutesPay(cm.Night, rateCents, p.NightMultiplier)
	pay.Weekend = minutesPay(cm.Weekend, rateCents, p.WeekendMultiplier)
	pay.Holiday = minutesPay(cm.Holiday, rateCents, p.HolidayMultiplier)
	return pay
}

func minutesPay(minutes int, rateCents int64, multiplier decimal.Decimal) int64 {
	if minutes <= 0 {
		return 0
	}
	return decimal.NewFromInt(rateCents).
		Mul(multiplier).
		Mul(decimal.NewFromInt(int64(minutes))).
		Div(decimal.NewFromInt(60)).
		Round(0).
		IntPart()
}

// WeeklySummariesFromDaily groups classified days into Monday-based
// weeks and flags weeks whose total worked hours exceed the limit.
func WeeklySummariesFromDaily(daily []overtime.DayCalculation, weeklyLimitHours float64) []overtime.WeeklySummary {
	type weekAccum struct {
		worked   int
		overtime int
	}
	weeks := make(map[string]*weekAccum)
	for _, d := range daily {
		key := weekStart(d.Date).Format("2006-01-02")
		acc, ok := weeks[key]
		if !ok {
			acc = &weekAccum{}
			weeks[key] = acc
		}
		acc.worked += d.WorkedMinutes
		acc.overtime += d.Minutes.Overtime()
	}

	keys := make([]string, 0, len(weeks))
	for k := range weeks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]overtime.WeeklySummary, 0, len(keys))
	for _, k := range keys {
		start, _ := time.Parse("2006-01-02", k)
		acc := weeks[k]
		workedHours := float64(acc.worked) / 60
		out = append(out, overtime.WeeklySummary{
			WeekStart:           start,
			WeekEnd:             start.AddDate(0, 0, 6),
			WorkedHours:         workedHours,
			OvertimeHours:       float64(acc.overtime) / 60,
			WeeklyLimitExceeded: weeklyLimitHours > 0 && workedHours > weeklyLimitHours,
		})
	}
	return out
}
