package payroll

import "errors"

var (
	ErrRunNotFound          = errors.New("payroll run not found")
	ErrRunAlreadyExists     = errors.New("payroll run already exists for that period")
	ErrDeductionsNotFound   = errors.New("deduction configuration not found")
	ErrMealConfigNotFound   = errors.New("meal allowance configuration not found")
	ErrInvalidContractInput = errors.New("contract has invalid salary or hours")
)
