package policy

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy is the set of rules that turns raw timesheet hours into paid
// overtime: when overtime starts, how each category is multiplied, how
// minutes are rounded and where the legal caps sit.
type Policy struct {
	ID         string
	ContractID string
	Name       string

	// Hours worked in a day before any minute counts as overtime.
	ThresholdHours float64

	FirstHourMultiplier       decimal.Decimal
	SubsequentHoursMultiplier decimal.Decimal
	WeekendMultiplier         decimal.Decimal
	HolidayMultiplier         decimal.Decimal
	NightMultiplier           decimal.Decimal

	// Night window in minutes since midnight. The window may wrap past
	// midnight (start > end), e.g. 22:00-07:00.
	NightStartMinutes int
	NightEndMinutes   int

	// Overtime minutes are rounded per day to the nearest multiple.
	// Zero disables rounding.
	RoundingMinutes int

	DailyLimitHours  float64
	WeeklyLimitHours float64
	AnnualLimitHours float64

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Default returns the fallback policy used when a contract has no active
// policy configured. Pay multipliers on the fallback are never applied
// (overtime pay stays zero without a real policy); classification fields
// follow the Portuguese labor code defaults.
func Default() *Policy {
	return &Policy{
		Name:                      "default",
		ThresholdHours:            8,
		FirstHourMultiplier:       decimal.NewFromFloat(1.5),
		SubsequentHoursMultiplier: decimal.NewFromFloat(1.75),
		WeekendMultiplier:         decimal.NewFromFloat(2.0),
		HolidayMultiplier:         decimal.NewFromFloat(2.0),
		NightMultiplier:           decimal.NewFromFloat(1.25),
		NightStartMinutes:         22 * 60,
		NightEndMinutes:           7 * 60,
		RoundingMinutes:           15,
		DailyLimitHours:           2,
		WeeklyLimitHours:          48,
		AnnualLimitHours:          150,
	}
}
