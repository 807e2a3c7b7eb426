package overtime

import (
	"time"
)

// WorkInterval is a contiguous slice of worked time that never crosses
// midnight. Start and end are minutes since midnight on Date, with
// start < end and end <= 1440.
type WorkInterval struct {
	Date         time.Time
	StartMinutes int
	EndMinutes   int
}

// Minutes returns the interval length.
func (w WorkInterval) Minutes() int {
	return w.EndMinutes - w.StartMinutes
}

// Category is the pay classification of a worked minute. Every overtime
// minute lands in exactly one category; precedence when several apply is
// holiday > weekend > night > day.
type Category string

const (
	CategoryDay     Category = "day"
	CategoryNight   Category = "night"
	CategoryWeekend Category = "weekend"
	CategoryHoliday Category = "holiday"
)

// CategoryMinutes splits a stretch of worked time into regular minutes
// and per-category overtime minutes.
type CategoryMinutes struct {
	Regular int
	Day     int
	Night   int
	Weekend int
	Holiday int
}

// Overtime returns the total overtime minutes across all categories.
func (c CategoryMinutes) Overtime() int {
	return c.Day + c.Night + c.Weekend + c.Holiday
}

func (c *CategoryMinutes) Add(o CategoryMinutes) {
	c.Regular += o.Regular
	c.Day += o.Day
	c.Night += o.Night
	c.Weekend += o.Weekend
	c.Holiday += o.Holiday
}

// DayCalculation is one calendar day of classified work, after rounding.
type DayCalculation struct {
	Date          time.Time
	WorkedMinutes int
	Minutes       CategoryMinutes
	OvertimePay   CategoryPayCents
}

// CategoryPayCents is overtime pay in euro cents, split by category.
type CategoryPayCents struct {
	Day     int64
	Night   int64
	Weekend int64
	Holiday int64
}

func (p CategoryPayCents) Total() int64 {
	return p.Day + p.Night + p.Weekend + p.Holiday
}

func (p *CategoryPayCents) Add(o CategoryPayCents) {
	p.Day += o.Day
	p.Night += o.Night
	p.Weekend += o.Weekend
	p.Holiday += o.Holiday
}

// Breakdown is the monthly overtime result for a contract.
type Breakdown struct {
	ContractID string
	Year       int
	Month      int

	TotalWorkedHours     float64
	TotalOvertimeHours   float64
	DayOvertimeHours     float64
	NightOvertimeHours   float64
	WeekendOvertimeHours float64
	HolidayOvertimeHours float64

	TotalOvertimePayCents   int64
	DayOvertimePayCents     int64
	NightOvertimePayCents   int64
	WeekendOvertimePayCents int64
	HolidayOvertimePayCents int64

	Daily    []DayCalculation
	Warnings []Warning
}

// WeeklySummary aggregates one Monday-based week of the period.
type WeeklySummary struct {
	WeekStart           time.Time
	WeekEnd             time.Time
	WorkedHours         float64
	OvertimeHours       float64
	WeeklyLimitExceeded bool
}
