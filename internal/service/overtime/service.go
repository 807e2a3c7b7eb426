package overtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/holiday"
	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/domain/policy"
	"github.com/folhacerta/payroll-backend-go/internal/domain/timesheet"
)

type OvertimeServiceImpl struct {
	contractRepo  contract.Repository
	policyRepo    policy.Repository
	holidayRepo   holiday.Repository
	timesheetRepo timesheet.Repository
}

func NewOvertimeService(
	contractRepo contract.Repository,
	policyRepo policy.Repository,
	holidayRepo holiday.Repository,
	timesheetRepo timesheet.Repository,
) overtime.Service {
	return &OvertimeServiceImpl{
		contractRepo:  contractRepo,
		policyRepo:    policyRepo,
		holidayRepo:   holidayRepo,
		timesheetRepo: timesheetRepo,
	}
}

func (s *OvertimeServiceImpl) BreakdownForPeriod(ctx context.Context, contractID string, year, month int) (*overtime.Breakdown, error) {
	b, _, err := s.breakdownForPeriod(ctx, contractID, year, month)
	return b, err
}

// breakdownForPeriod also returns the active policy so callers that need
// its limits do not have to load it a second time. The policy is nil when
// the contract has none.
func (s *OvertimeServiceImpl) breakdownForPeriod(ctx context.Context, contractID string, year, month int) (*overtime.Breakdown, *policy.Policy, error) {
	c, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	entries, err := s.timesheetRepo.ListByContractRange(ctx, contractID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load timesheet entries: %w", err)
	}

	// A shift on the last day of the month can spill into the first day
	// of the next one, so the holiday window extends one day past it.
	holidays, err := s.holidayRepo.ListByRange(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	var activePolicy *policy.Policy
	activePolicy, err = s.policyRepo.GetActiveByContract(ctx, contractID)
	if err != nil {
		if !errors.Is(err, policy.ErrNoActivePolicy) {
			return nil, nil, fmt.Errorf("failed to load overtime policy: %w", err)
		}
		activePolicy = nil
	}

	rate := HourlyRateCents(c.BaseSalaryCents, c.WeeklyHours)
	b := ComputeBreakdown(contractID, year, month, entries, activePolicy, holiday.NewCalendar(holidays), rate, c.CompanySizeClass)
	return b, activePolicy, nil
}

func (s *OvertimeServiceImpl) WeeklySummaries(ctx context.Context, contractID string, year, month int) ([]overtime.WeeklySummary, error) {
	b, p, err := s.breakdownForPeriod(ctx, contractID, year, month)
	if err != nil {
		return nil, err
	}

	weeklyLimit := policy.Default().WeeklyLimitHours
	if p != nil {
		weeklyLimit = p.WeeklyLimitHours
	}
	return WeeklySummariesFromDaily(b.Daily, weeklyLimit), nil
}
