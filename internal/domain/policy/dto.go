package policy

import (
	"github.com/shopspring/decimal"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/pkg/validator"
)

var allowedRounding = []int{0, 5, 10, 15, 30, 60}

type CreatePolicyRequest struct {
	ContractID                string  `json:"contract_id"`
	Name                      string  `json:"name"`
	ThresholdHours            float64 `json:"threshold_hours"`
	FirstHourMultiplier       float64 `json:"first_hour_multiplier"`
	SubsequentHoursMultiplier float64 `json:"subsequent_hours_multiplier"`
	WeekendMultiplier         float64 `json:"weekend_multiplier"`
	HolidayMultiplier         float64 `json:"holiday_multiplier"`
	NightMultiplier           float64 `json:"night_multiplier"`
	NightStart                string  `json:"night_start"`
	NightEnd                  string  `json:"night_end"`
	RoundingMinutes           int     `json:"rounding_minutes"`
	DailyLimitHours           float64 `json:"daily_limit_hours"`
	WeeklyLimitHours          float64 `json:"weekly_limit_hours"`
	AnnualLimitHours          float64 `json:"annual_limit_hours"`
}

// Validate checks the request against the policy invariants. The annual
// limit is checked against the statutory ceiling of the contract's
// company size class, so the class must be resolved first.
func (r *CreatePolicyRequest) Validate(class contract.CompanySizeClass) error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ContractID) {
		errs = append(errs, validator.ValidationError{Field: "contract_id", Message: "must be a valid UUID"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.ThresholdHours <= 0 || r.ThresholdHours > 24 {
		errs = append(errs, validator.ValidationError{Field: "threshold_hours", Message: "must be between 0 and 24"})
	}

	multipliers := []struct {
		field string
		value float64
	}{
		{"first_hour_multiplier", r.FirstHourMultiplier},
		{"subsequent_hours_multiplier", r.SubsequentHoursMultiplier},
		{"weekend_multiplier", r.WeekendMultiplier},
		{"holiday_multiplier", r.HolidayMultiplier},
		{"night_multiplier", r.NightMultiplier},
	}
	for _, m := range multipliers {
		if m.value < 1 {
			errs = append(errs, validator.ValidationError{Field: m.field, Message: "multiplier must be at least 1"})
		}
	}

	if _, err := validator.ParseClock(r.NightStart); err != nil {
		errs = append(errs, validator.ValidationError{Field: "night_start", Message: "must be a valid HH:MM time"})
	}
	if _, err := validator.ParseClock(r.NightEnd); err != nil {
		errs = append(errs, validator.ValidationError{Field: "night_end", Message: "must be a valid HH:MM time"})
	}

	roundingOK := false
	for _, allowed := range allowedRounding {
		if r.RoundingMinutes == allowed {
			roundingOK = true
			break
		}
	}
	if !roundingOK {
		errs = append(errs, validator.ValidationError{Field: "rounding_minutes", Message: "must be one of 0, 5, 10, 15, 30, 60"})
	}

	if r.DailyLimitHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_limit_hours", Message: "must not be negative"})
	}
	if r.WeeklyLimitHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "weekly_limit_hours", Message: "must not be negative"})
	}
	if ceiling := class.AnnualOvertimeCeilingHours(); r.AnnualLimitHours < 0 || r.AnnualLimitHours > ceiling {
		errs = append(errs, validator.ValidationError{Field: "annual_limit_hours", Message: "must be between 0 and the legal ceiling for the company size"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToPolicy converts a validated request into a Policy entity.
func (r *CreatePolicyRequest) ToPolicy() *Policy {
	nightStart, _ := validator.ParseClock(r.NightStart)
	nightEnd, _ := validator.ParseClock(r.NightEnd)

	return &Policy{
		ContractID:                r.ContractID,
		Name:                      r.Name,
		ThresholdHours:            r.ThresholdHours,
		FirstHourMultiplier:       decimal.NewFromFloat(r.FirstHourMultiplier),
		SubsequentHoursMultiplier: decimal.NewFromFloat(r.SubsequentHoursMultiplier),
		WeekendMultiplier:         decimal.NewFromFloat(r.WeekendMultiplier),
		HolidayMultiplier:         decimal.NewFromFloat(r.HolidayMultiplier),
		NightMultiplier:           decimal.NewFromFloat(r.NightMultiplier),
		NightStartMinutes:         nightStart,
		NightEndMinutes:           nightEnd,
		RoundingMinutes:           r.RoundingMinutes,
		DailyLimitHours:           r.DailyLimitHours,
		WeeklyLimitHours:          r.WeeklyLimitHours,
		AnnualLimitHours:          r.AnnualLimitHours,
		IsActive:                  true,
	}
}

type PolicyResponse struct {
	ID                        string  `json:"id"`
	ContractID                string  `json:"contract_id"`
	Name                      string  `json:"name"`
	ThresholdHours            float64 `json:"threshold_hours"`
	FirstHourMultiplier       string  `json:"first_hour_multiplier"`
	SubsequentHoursMultiplier string  `json:"subsequent_hours_multiplier"`
	WeekendMultiplier         string  `json:"weekend_multiplier"`
	HolidayMultiplier         string  `json:"holiday_multiplier"`
	NightMultiplier           string  `json:"night_multiplier"`
	NightStart                string  `json:"night_start"`
	NightEnd                  string  `json:"night_end"`
	RoundingMinutes           int     `json:"rounding_minutes"`
	DailyLimitHours           float64 `json:"daily_limit_hours"`
	WeeklyLimitHours          float64 `json:"weekly_limit_hours"`
	AnnualLimitHours          float64 `json:"annual_limit_hours"`
	IsActive                  bool    `json:"is_active"`
}
