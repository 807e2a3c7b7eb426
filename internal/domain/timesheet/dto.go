package timesheet

import (
	"github.com/folhacerta/payroll-backend-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	ContractID   string  `json:"contract_id"`
	Date         string  `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakMinutes int     `json:"break_minutes"`
	IsHoliday    bool    `json:"is_holiday"`
	IsVacation   bool    `json:"is_vacation"`
	IsLeave      bool    `json:"is_leave"`
	Description  *string `json:"description"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ContractID) {
		errs = append(errs, validator.ValidationError{Field: "contract_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if r.StartTime != nil {
		if _, err := validator.ParseClock(*r.StartTime); err != nil {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid HH:MM time"})
		}
	}
	if r.EndTime != nil {
		if _, err := validator.ParseClock(*r.EndTime); err != nil {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid HH:MM time"})
		}
	}
	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "must not be negative"})
	}
	if r.IsVacation && r.IsLeave {
		errs = append(errs, validator.ValidationError{Field: "is_leave", Message: "entry cannot be both vacation and leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntry converts a validated request into an Entry.
func (r *CreateEntryRequest) ToEntry() *Entry {
	date, _ := validator.IsValidDate(r.Date)

	e := &Entry{
		ContractID:   r.ContractID,
		Date:         date,
		BreakMinutes: r.BreakMinutes,
		IsHoliday:    r.IsHoliday,
		IsVacation:   r.IsVacation,
		IsLeave:      r.IsLeave,
		Description:  r.Description,
	}
	if r.StartTime != nil {
		start, _ := validator.ParseClock(*r.StartTime)
		e.StartMinutes = &start
	}
	if r.EndTime != nil {
		end, _ := validator.ParseClock(*r.EndTime)
		e.EndMinutes = &end
	}
	return e
}

type EntryResponse struct {
	ID           string  `json:"id"`
	ContractID   string  `json:"contract_id"`
	Date         string  `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakMinutes int     `json:"break_minutes"`
	IsHoliday    bool    `json:"is_holiday"`
	IsVacation   bool    `json:"is_vacation"`
	IsLeave      bool    `json:"is_leave"`
	Description  *string `json:"description"`
}
