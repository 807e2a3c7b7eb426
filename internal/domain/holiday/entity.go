package holiday

import (
	"time"
)

type Type string

const (
	TypeNational Type = "national"
	TypeRegional Type = "regional"
	TypeCompany  Type = "company"
	TypePersonal Type = "personal"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeNational, TypeRegional, TypeCompany, TypePersonal:
		return true
	}
	return false
}

type Holiday struct {
	ID              string
	Date            time.Time
	Name            string
	Type            Type
	IsPaid          bool
	AffectsOvertime bool
	CreatedAt       time.Time
}

// Calendar is a date-indexed view over a set of holidays.
type Calendar map[string]Holiday

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// NewCalendar indexes holidays by date. When multiple holidays fall on
// the same day, one that affects overtime wins the slot.
func NewCalendar(holidays []Holiday) Calendar {
	cal := make(Calendar, len(holidays))
	for _, h := range holidays {
		key := dateKey(h.Date)
		if existing, ok := cal[key]; ok && existing.AffectsOvertime && !h.AffectsOvertime {
			continue
		}
		cal[key] = h
	}
	return cal
}

// On returns the holiday on the given date, if any.
func (c Calendar) On(date time.Time) (Holiday, bool) {
	h, ok := c[dateKey(date)]
	return h, ok
}

// AffectsOvertimeOn reports whether the date carries a holiday that
// upgrades worked time to the holiday overtime category.
func (c Calendar) AffectsOvertimeOn(date time.Time) bool {
	h, ok := c.On(date)
	return ok && h.AffectsOvertime
}
