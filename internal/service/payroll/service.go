package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	contractRepo     contract.Repository
	payrollRepo      payroll.Repository
	overtimeService  overtime.Service
	mileageRateCents int64
}

func NewPayrollService(
	contractRepo contract.Repository,
	payrollRepo payroll.Repository,
	overtimeService overtime.Service,
	mileageRateCents int64,
) payroll.Service {
	return &PayrollServiceImpl{
		contractRepo:     contractRepo,
		payrollRepo:      payrollRepo,
		overtimeService:  overtimeService,
		mileageRateCents: mileageRateCents,
	}
}

func (s *PayrollServiceImpl) Calculate(ctx context.Context, req *payroll.CalculateRequest) (*payroll.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	input := &payroll.CalculationInput{
		Year:                    req.Year,
		Month:                   req.Month,
		MileageRateCents:        s.mileageRateCents,
		PunctualityBonus:        req.PunctualityBonus,
		MealOnHolidayOrVacation: req.MealOnHolidayOrVacation,
	}

	c, err := s.contractRepo.GetByID(ctx, req.ContractID)
	if err != nil {
		if errors.Is(err, contract.ErrContractNotFound) {
			result, calcErr := Calculate(input)
			if calcErr != nil {
				return nil, calcErr
			}
			result.ContractID = req.ContractID
			return result, nil
		}
		return nil, err
	}
	input.Contract = c

	breakdown, err := s.overtimeService.BreakdownForPeriod(ctx, req.ContractID, req.Year, req.Month)
	if err != nil {
		return nil, err
	}
	input.Breakdown = breakdown

	deductions, err := s.payrollRepo.GetDeductionConfig(ctx, req.ContractID)
	if err != nil && !errors.Is(err, payroll.ErrDeductionsNotFound) {
		return nil, fmt.Errorf("failed to load deduction config: %w", err)
	}
	input.Deductions = deductions

	mealCfg, err := s.payrollRepo.GetMealAllowanceConfig(ctx, req.ContractID)
	if err != nil && !errors.Is(err, payroll.ErrMealConfigNotFound) {
		return nil, fmt.Errorf("failed to load meal allowance config: %w", err)
	}
	input.MealAllowance = mealCfg

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	trips, err := s.payrollRepo.ListMileageTrips(ctx, req.ContractID, from, from.AddDate(0, 1, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to load mileage trips: %w", err)
	}
	input.MileageTrips = trips

	return Calculate(input)
}

func (s *PayrollServiceImpl) CalculateAndSave(ctx context.Context, req *payroll.CalculateRequest) (*payroll.Result, error) {
	result, err := s.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.Error != nil {
		return result, nil
	}

	run := &payroll.Run{
		ID:                   uuid.Must(uuid.NewV7()).String(),
		ContractID:           result.ContractID,
		Year:                 result.Year,
		Month:                result.Month,
		Status:               payroll.RunStatusCalculated,
		RegularHours:         result.RegularHours,
		OvertimeHours:        result.OvertimeHours,
		RegularPayCents:      result.RegularPayCents,
		OvertimePayCents:     result.OvertimePayCents,
		MealAllowanceCents:   result.MealAllowanceCents,
		MileageCents:         result.MileageReimbursementCents,
		BonusCents:           result.BonusCents,
		GrossPayCents:        result.GrossPayCents,
		TotalDeductionsCents: result.TotalDeductionsCents,
		NetPayCents:          result.NetPayCents,
		Warnings:             result.Warnings,
	}
	if err := s.payrollRepo.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to save payroll run: %w", err)
	}
	return result, nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context, contractID string) ([]payroll.Run, error) {
	return s.payrollRepo.ListRuns(ctx, contractID)
}

func (s *PayrollServiceImpl) SetDeductionConfig(ctx context.Context, req *payroll.DeductionConfigRequest) (*payroll.DeductionConfig, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.contractRepo.GetByID(ctx, req.ContractID); err != nil {
		return nil, err
	}

	cfg := req.ToConfig()
	if err := s.payrollRepo.UpsertDeductionConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save deduction config: %w", err)
	}
	return cfg, nil
}

func (s *PayrollServiceImpl) SetMealAllowanceConfig(ctx context.Context, req *payroll.MealAllowanceConfigRequest) (*payroll.MealAllowanceConfig, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.contractRepo.GetByID(ctx, req.ContractID); err != nil {
		return nil, err
	}

	cfg := req.ToConfig()
	if err := s.payrollRepo.UpsertMealAllowanceConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save meal allowance config: %w", err)
	}
	return cfg, nil
}

func (s *PayrollServiceImpl) AddMileageTrip(ctx context.Context, req *payroll.MileageTripRequest) (*payroll.MileageTrip, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.contractRepo.GetByID(ctx, req.ContractID); err != nil {
		return nil, err
	}

	trip := req.ToTrip()
	trip.ID = uuid.Must(uuid.NewV7()).String()
	if err := s.payrollRepo.CreateMileageTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to save mileage trip: %w", err)
	}
	return trip, nil
}
