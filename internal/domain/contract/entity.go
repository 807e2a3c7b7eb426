package contract

import (
	"time"
)

// CompanySizeClass buckets the employer by headcount. The legal annual
// overtime ceiling depends on it.
type CompanySizeClass string

const (
	ClassMicro  CompanySizeClass = "micro"
	ClassSmall  CompanySizeClass = "small"
	ClassMedium CompanySizeClass = "medium"
	ClassLarge  CompanySizeClass = "large"
)

func (c CompanySizeClass) IsValid() bool {
	switch c {
	case ClassMicro, ClassSmall, ClassMedium, ClassLarge:
		return true
	}
	return false
}

// AnnualOvertimeCeilingHours returns the statutory yearly overtime cap
// for the size class: 175h for micro and small companies, 150h otherwise.
func (c CompanySizeClass) AnnualOvertimeCeilingHours() float64 {
	switch c {
	case ClassMicro, ClassSmall:
		return 175
	default:
		return 150
	}
}

type Contract struct {
	ID               string
	EmployeeName     string
	BaseSalaryCents  int64
	WeeklyHours      float64
	CompanySizeClass CompanySizeClass
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
