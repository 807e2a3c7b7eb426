package payroll

import (
	"context"
	"time"
)

type Repository interface {
	SaveRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, contractID string, year, month int) (*Run, error)
	ListRuns(ctx context.Context, contractID string) ([]Run, error)

	GetDeductionConfig(ctx context.Context, contractID string) (*DeductionConfig, error)
	UpsertDeductionConfig(ctx context.Context, cfg *DeductionConfig) error

	GetMealAllowanceConfig(ctx context.Context, contractID string) (*MealAllowanceConfig, error)
	UpsertMealAllowanceConfig(ctx context.Context, cfg *MealAllowanceConfig) error

	CreateMileageTrip(ctx context.Context, trip *MileageTrip) error
	ListMileageTrips(ctx context.Context, contractID string, from, to time.Time) ([]MileageTrip, error)
}
