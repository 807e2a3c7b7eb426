package response

import (
	"errors"
	"net/http"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/holiday"
	"github.com/folhacerta/payroll-backend-go/internal/domain/payroll"
	"github.com/folhacerta/payroll-backend-go/internal/domain/policy"
	"github.com/folhacerta/payroll-backend-go/internal/domain/timesheet"
	"github.com/folhacerta/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Contract domain errors
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrContractInactive):
		BadRequest(w, "Contract is inactive", nil)

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Overtime policy not found")
	case errors.Is(err, policy.ErrNoActivePolicy):
		NotFound(w, "No active overtime policy for contract")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists on that date")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Timesheet entry not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunAlreadyExists):
		Conflict(w, "Payroll run already exists for that period")
	case errors.Is(err, payroll.ErrInvalidContractInput):
		BadRequest(w, "Contract has invalid salary or hours", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
