package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/timesheet"
)

const testContractID = "01941f29-7c00-7000-8000-000000000001"

type stubContractRepo struct {
	contracts map[string]*contract.Contract
}

func (s *stubContractRepo) Create(_ context.Context, c *contract.Contract) error {
	s.contracts[c.ID] = c
	return nil
}

func (s *stubContractRepo) GetByID(_ context.Context, id string) (*contract.Contract, error) {
	c, ok := s.contracts[id]
	if !ok {
		return nil, contract.ErrContractNotFound
	}
	return c, nil
}

func (s *stubContractRepo) List(_ context.Context) ([]contract.Contract, error) {
	return nil, nil
}

type stubTimesheetRepo struct {
	entries []timesheet.Entry
}

func (s *stubTimesheetRepo) Create(_ context.Context, e *timesheet.Entry) error {
	s.entries = append(s.entries, *e)
	return nil
}

func (s *stubTimesheetRepo) GetByID(_ context.Context, id string) (*timesheet.Entry, error) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return &s.entries[i], nil
		}
	}
	return nil, timesheet.ErrEntryNotFound
}

func (s *stubTimesheetRepo) ListByContractRange(_ context.Context, contractID string, from, to time.Time) ([]timesheet.Entry, error) {
	var out []timesheet.Entry
	for _, e := range s.entries {
		if e.ContractID == contractID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubTimesheetRepo) Delete(_ context.Context, id string) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return timesheet.ErrEntryNotFound
}

func newTestService(active bool) (timesheet.Service, *stubTimesheetRepo) {
	contracts := &stubContractRepo{contracts: map[string]*contract.Contract{
		testContractID: {
			ID:               testContractID,
			EmployeeName:     "Ana Ferreira",
			BaseSalaryCents:  259800,
			WeeklyHours:      40,
			CompanySizeClass: contract.ClassMedium,
			IsActive:         active,
		},
	}}
	entries := &stubTimesheetRepo{}
	return NewTimesheetService(contracts, entries), entries
}

func strPtr(s string) *string { return &s }

func createRequest() *timesheet.CreateEntryRequest {
	return &timesheet.CreateEntryRequest{
		ContractID:   testContractID,
		Date:         "2025-01-06",
		StartTime:    strPtr("09:00"),
		EndTime:      strPtr("17:00"),
		BreakMinutes: 30,
	}
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService(true)

	e, err := svc.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, 540, *e.StartMinutes)
	assert.Len(t, repo.entries, 1)
}

func TestCreate_InactiveContract(t *testing.T) {
	svc, repo := newTestService(false)

	_, err := svc.Create(context.Background(), createRequest())

	assert.ErrorIs(t, err, contract.ErrContractInactive)
	assert.Empty(t, repo.entries)
}

func TestCreate_UnknownContract(t *testing.T) {
	svc, _ := newTestService(true)

	req := createRequest()
	req.ContractID = "01941f29-7c00-7000-8000-00000000dead"
	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}

func TestListByContractMonth(t *testing.T) {
	svc, _ := newTestService(true)

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	feb := createRequest()
	feb.Date = "2025-02-03"
	_, err = svc.Create(context.Background(), feb)
	require.NoError(t, err)

	entries, err := svc.ListByContractMonth(context.Background(), testContractID, 2025, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, time.January, entries[0].Date.Month())
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService(true)

	e, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), e.ID))
	assert.Empty(t, repo.entries)

	assert.ErrorIs(t, svc.Delete(context.Background(), e.ID), timesheet.ErrEntryNotFound)
}
