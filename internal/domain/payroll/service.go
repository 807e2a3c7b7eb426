package payroll

import (
	"context"
)

type Service interface {
	// Calculate prices one contract's month end to end. Missing contract
	// or deduction configuration is reported on the result, not as an
	// error; errors are reserved for storage failures and invalid
	// numeric input.
	Calculate(ctx context.Context, req *CalculateRequest) (*Result, error)
	// CalculateAndSave persists the result as a payroll run after a
	// successful calculation.
	CalculateAndSave(ctx context.Context, req *CalculateRequest) (*Result, error)
	ListRuns(ctx context.Context, contractID string) ([]Run, error)

	SetDeductionConfig(ctx context.Context, req *DeductionConfigRequest) (*DeductionConfig, error)
	SetMealAllowanceConfig(ctx context.Context, req *MealAllowanceConfigRequest) (*MealAllowanceConfig, error)
	AddMileageTrip(ctx context.Context, req *MileageTripRequest) (*MileageTrip, error)
}
