package holiday

import (
	"github.com/folhacerta/payroll-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date            string `json:"date"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	IsPaid          *bool  `json:"is_paid"`
	AffectsOvertime *bool  `json:"affects_overtime"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Type != "" && !Type(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of national, regional, company, personal"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToHoliday converts a validated request into a Holiday. Paid and
// affects-overtime default to true when omitted.
func (r *CreateHolidayRequest) ToHoliday() *Holiday {
	date, _ := validator.IsValidDate(r.Date)

	h := &Holiday{
		Date:            date,
		Name:            r.Name,
		Type:            TypeNational,
		IsPaid:          true,
		AffectsOvertime: true,
	}
	if r.Type != "" {
		h.Type = Type(r.Type)
	}
	if r.IsPaid != nil {
		h.IsPaid = *r.IsPaid
	}
	if r.AffectsOvertime != nil {
		h.AffectsOvertime = *r.AffectsOvertime
	}
	return h
}

type HolidayResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	IsPaid          bool   `json:"is_paid"`
	AffectsOvertime bool   `json:"affects_overtime"`
}
