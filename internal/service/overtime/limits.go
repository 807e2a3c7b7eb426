package overtime

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/domain/policy"
)

// avgWeeksPerMonth is the conventional 52/12 factor used to derive an
// hourly rate from a monthly salary.
var avgWeeksPerMonth = decimal.NewFromFloat(4.33)

// HourlyRateCents derives the base hourly rate from the monthly salary,
// rounded to the nearest cent.
func HourlyRateCents(baseSalaryCents int64, weeklyHours float64) int64 {
	monthlyHours := decimal.NewFromFloat(weeklyHours).Mul(avgWeeksPerMonth)
	if monthlyHours.IsZero() {
		return 0
	}
	return decimal.NewFromInt(baseSalaryCents).Div(monthlyHours).Round(0).IntPart()
}

// roundDayOvertime rounds a day's total overtime minutes half-up to the
// nearest multiple of rounding. The correction lands on the day's
// largest overtime bucket; when buckets tie, holiday wins over weekend
// over night over day.
func roundDayOvertime(cm *overtime.CategoryMinutes, rounding int) {
	if rounding <= 0 {
		return
	}
	raw := cm.Overtime()
	if raw == 0 {
		return
	}

	rem := raw % rounding
	rounded := raw - rem
	if rem*2 >= rounding {
		rounded += rounding
	}
	delta := rounded - raw
	if delta == 0 {
		return
	}

	buckets := []*int{&cm.Holiday, &cm.Weekend, &cm.Night, &cm.Day}
	for delta != 0 {
		var target *int
		for _, b := range buckets {
			if *b > 0 && (target == nil || *b > *target) {
				target = b
			}
		}
		if target == nil {
			break
		}
		if delta > 0 || -delta <= *target {
			*target += delta
			return
		}
		// The negative correction is larger than the biggest bucket;
		// drain it and continue with the rest.
		delta += *target
		*target = 0
	}
}

// weekStart returns the Monday of the week containing d.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// capWarnings checks the classified days against the policy limits and
// the statutory annual ceiling for the company size class.
func capWarnings(daily []overtime.DayCalculation, p *policy.Policy, class contract.CompanySizeClass) []overtime.Warning {
	var warnings []overtime.Warning

	totalOvertimeMinutes := 0
	weeklyWorked := make(map[string]int)
	for _, d := range daily {
		otHours := float64(d.Minutes.Overtime()) / 60
		totalOvertimeMinutes += d.Minutes.Overtime()
		if p.DailyLimitHours > 0 && otHours > p.DailyLimitHours {
			warnings = append(warnings, overtime.Warning{
				Kind:       overtime.WarnDailyLimitExceeded,
				Date:       d.Date.Format("2006-01-02"),
				Hours:      otHours,
				LimitHours: p.DailyLimitHours,
			})
		}
		weeklyWorked[weekStart(d.Date).Format("2006-01-02")] += d.WorkedMinutes
	}

	if p.WeeklyLimitHours > 0 {
		weeks := make([]string, 0, len(weeklyWorked))
		for w := range weeklyWorked {
			weeks = append(weeks, w)
		}
		sort.Strings(weeks)
		for _, w := range weeks {
			hours := float64(weeklyWorked[w]) / 60
			if hours > p.WeeklyLimitHours {
				warnings = append(warnings, overtime.Warning{
					Kind:       overtime.WarnWeeklyLimitExceeded,
					Date:       w,
					Hours:      hours,
					LimitHours: p.WeeklyLimitHours,
				})
			}
		}
	}

	totalOvertimeHours := float64(totalOvertimeMinutes) / 60
	if p.AnnualLimitHours > 0 && totalOvertimeHours > p.AnnualLimitHours {
		warnings = append(warnings, overtime.Warning{
			Kind:       overtime.WarnAnnualLimitExceeded,
			Hours:      totalOvertimeHours,
			LimitHours: p.AnnualLimitHours,
		})
	}
	if ceiling := class.AnnualOvertimeCeilingHours(); totalOvertimeHours > ceiling {
		warnings = append(warnings, overtime.Warning{
			Kind:       overtime.WarnLegalCeilingReached,
			Hours:      totalOvertimeHours,
			LimitHours: ceiling,
		})
	}

	return warnings
}
