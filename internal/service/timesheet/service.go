package timesheet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/timesheet"
)

type TimesheetServiceImpl struct {
	contractRepo  contract.Repository
	timesheetRepo timesheet.Repository
}

func NewTimesheetService(contractRepo contract.Repository, timesheetRepo timesheet.Repository) timesheet.Service {
	return &TimesheetServiceImpl{
		contractRepo:  contractRepo,
		timesheetRepo: timesheetRepo,
	}
}

func (s *TimesheetServiceImpl) Create(ctx context.Context, req *timesheet.CreateEntryRequest) (*timesheet.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := s.contractRepo.GetByID(ctx, req.ContractID)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, contract.ErrContractInactive
	}

	e := req.ToEntry()
	e.ID = uuid.Must(uuid.NewV7()).String()
	if err := s.timesheetRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *TimesheetServiceImpl) ListByContractMonth(ctx context.Context, contractID string, year, month int) ([]timesheet.Entry, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return s.timesheetRepo.ListByContractRange(ctx, contractID, from, from.AddDate(0, 1, -1))
}

func (s *TimesheetServiceImpl) Delete(ctx context.Context, id string) error {
	return s.timesheetRepo.Delete(ctx, id)
}
