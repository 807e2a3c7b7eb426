package payroll

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/domain/payroll"
	overtimesvc "github.com/folhacerta/payroll-backend-go/internal/service/overtime"
)

// punctualityBonusPct is paid on regular pay when the month has at least
// punctualityMinEntries worked days.
var punctualityBonusPct = decimal.NewFromFloat(0.05)

const punctualityMinEntries = 20

// Calculate prices one contract month from an already classified
// overtime breakdown. Missing contract or deduction configuration is
// reported on the result itself; a real error is returned only for
// numerically invalid input.
func Calculate(input *payroll.CalculationInput) (*payroll.Result, error) {
	result := &payroll.Result{
		Year:  input.Year,
		Month: input.Month,
	}

	if input.Contract == nil {
		result.Error = &payroll.CalculationError{
			Code:    payroll.ErrCodeMissingContract,
			Message: "no contract supplied for the calculation",
		}
		return result, nil
	}
	result.ContractID = input.Contract.ID

	if err := validateNumericInput(input); err != nil {
		return nil, err
	}

	if input.Deductions == nil {
		result.Error = &payroll.CalculationError{
			Code:    payroll.ErrCodeMissingDeductions,
			Message: "no deduction configuration for the contract",
		}
		return result, nil
	}

	breakdown := input.Breakdown
	if breakdown == nil {
		breakdown = &overtime.Breakdown{}
	}
	result.Overtime = breakdown
	result.Warnings = append(result.Warnings, breakdown.Warnings...)

	rate := overtimesvc.HourlyRateCents(input.Contract.BaseSalaryCents, input.Contract.WeeklyHours)

	result.OvertimeHours = breakdown.TotalOvertimeHours
	result.RegularHours = breakdown.TotalWorkedHours - breakdown.TotalOvertimeHours
	if result.RegularHours < 0 {
		result.RegularHours = 0
	}

	result.RegularPayCents = decimal.NewFromInt(rate).
		Mul(decimal.NewFromFloat(result.RegularHours)).
		Round(0).
		IntPart()
	result.OvertimePayCents = breakdown.TotalOvertimePayCents

	result.MealAllowanceCents, result.MealTaxableCents = calcMealAllowance(
		breakdown.Daily, input.MealAllowance, input.Month, input.MealOnHolidayOrVacation)

	result.MileageReimbursementCents = calcMileage(input.MileageTrips, input.MileageRateCents)

	if input.PunctualityBonus {
		result.BonusCents = calcPunctualityBonus(breakdown.Daily, result.RegularPayCents)
	}

	result.GrossPayCents = result.RegularPayCents +
		result.OvertimePayCents +
		result.MealAllowanceCents +
		result.MileageReimbursementCents +
		result.BonusCents

	// Fixed deduction order: social security on gross, income tax on
	// what is left after it, then the extra levies on the slice of gross
	// above their thresholds.
	d := input.Deductions
	gross := result.GrossPayCents
	result.SocialSecurityCents = pctOf(gross, d.SocialSecurityPct)
	result.IncomeTaxCents = pctOf(gross-result.SocialSecurityCents, d.IncomeTaxPct)
	result.SurchargeCents = pctOf(excessOver(gross, d.SurchargeThresholdCents), d.SurchargePct)
	result.SolidarityCents = pctOf(excessOver(gross, d.SolidarityThresholdCents), d.SolidarityPct)

	result.TotalDeductionsCents = result.SocialSecurityCents +
		result.IncomeTaxCents +
		result.SurchargeCents +
		result.SolidarityCents
	result.NetPayCents = result.GrossPayCents - result.TotalDeductionsCents

	return result, nil
}

func validateNumericInput(input *payroll.CalculationInput) error {
	c := input.Contract
	if c.BaseSalaryCents < 0 || c.WeeklyHours <= 0 ||
		math.IsNaN(c.WeeklyHours) || math.IsInf(c.WeeklyHours, 0) {
		return payroll.ErrInvalidContractInput
	}
	for _, trip := range input.MileageTrips {
		if trip.DistanceKm < 0 || math.IsNaN(trip.DistanceKm) || math.IsInf(trip.DistanceKm, 0) {
			return payroll.ErrInvalidContractInput
		}
	}
	return nil
}

// calcMealAllowance counts qualifying days and returns the total
// allowance plus the portion above the tax-exempt daily cap.
//
// In duodecimos mode the allowance is paid for every day with any work,
// excluded months included. Otherwise a day qualifies when its regular
// hours reach the configured minimum. Holiday work classifies its
// minutes as holiday rather than regular, so those days are skipped
// unless the caller opted in, in which case the holiday minutes count
// toward the minimum.
func calcMealAllowance(daily []overtime.DayCalculation, cfg *payroll.MealAllowanceConfig, month int, onHolidayOrVacation bool) (total, taxable int64) {
	if cfg == nil || cfg.DailyAmountCents <= 0 {
		return 0, 0
	}

	days := 0
	if cfg.DuodecimosEnabled {
		for _, d := range daily {
			if d.WorkedMinutes > 0 {
				days++
			}
		}
	} else {
		if cfg.MonthExcluded(month) {
			return 0, 0
		}
		minMinutes := int(cfg.MinimumRegularHours * 60)
		for _, d := range daily {
			qualifying := d.Minutes.Regular
			if d.Minutes.Holiday > 0 {
				if !onHolidayOrVacation {
					continue
				}
				qualifying += d.Minutes.Holiday
			}
			if qualifying > 0 && qualifying >= minMinutes {
				days++
			}
		}
	}
	if days == 0 {
		return 0, 0
	}

	total = int64(days) * cfg.DailyAmountCents
	excess := cfg.DailyAmountCents - cfg.PaymentMethod.ExemptionCapCents()
	if excess > 0 {
		taxable = int64(days) * excess
	}
	return total, taxable
}

// calcMileage reimburses each trip at the per-kilometer rate, rounding
// per trip to the nearest cent.
func calcMileage(trips []payroll.MileageTrip, rateCents int64) int64 {
	var total int64
	rate := decimal.NewFromInt(rateCents)
	for _, trip := range trips {
		total += decimal.NewFromFloat(trip.DistanceKm).Mul(rate).Round(0).IntPart()
	}
	return total
}

func calcPunctualityBonus(daily []overtime.DayCalculation, regularPayCents int64) int64 {
	workedDays := 0
	for _, d := range daily {
		if d.WorkedMinutes > 0 {
			workedDays++
		}
	}
	if workedDays < punctualityMinEntries {
		return 0
	}
	return decimal.NewFromInt(regularPayCents).Mul(punctualityBonusPct).Round(0).IntPart()
}

func pctOf(cents int64, pct decimal.Decimal) int64 {
	if cents <= 0 {
		return 0
	}
	return decimal.NewFromInt(cents).Mul(pct).Div(decimal.NewFromInt(100)).Round(0).IntPart()
}

func excessOver(cents, threshold int64) int64 {
	if threshold <= 0 || cents <= threshold {
		return 0
	}
	return cents - threshold
}
