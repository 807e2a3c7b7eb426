package contract

import (
	"github.com/folhacerta/payroll-backend-go/internal/pkg/validator"
)

type CreateContractRequest struct {
	EmployeeName     string  `json:"employee_name"`
	BaseSalaryCents  int64   `json:"base_salary_cents"`
	WeeklyHours      float64 `json:"weekly_hours"`
	CompanySizeClass string  `json:"company_size_class"`
}

func (r *CreateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "employee name is required"})
	}
	if r.BaseSalaryCents <= 0 {
		errs = append(errs, validator.ValidationError{Field: "base_salary_cents", Message: "base salary must be positive"})
	}
	if r.WeeklyHours <= 0 || r.WeeklyHours > 60 {
		errs = append(errs, validator.ValidationError{Field: "weekly_hours", Message: "weekly hours must be between 1 and 60"})
	}
	if r.CompanySizeClass != "" && !CompanySizeClass(r.CompanySizeClass).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "company_size_class", Message: "must be one of micro, small, medium, large"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContractResponse struct {
	ID               string  `json:"id"`
	EmployeeName     string  `json:"employee_name"`
	BaseSalaryCents  int64   `json:"base_salary_cents"`
	WeeklyHours      float64 `json:"weekly_hours"`
	CompanySizeClass string  `json:"company_size_class"`
	IsActive         bool    `json:"is_active"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
