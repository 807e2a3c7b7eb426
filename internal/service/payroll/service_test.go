package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
	"github.com/folhacerta/payroll-backend-go/internal/domain/payroll"
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

type stubPayrollRepo struct {
	runs       map[string]*payroll.Run
	deductions map[string]*payroll.DeductionConfig
	meals      map[string]*payroll.MealAllowanceConfig
	trips      []payroll.MileageTrip
}

func newStubPayrollRepo() *stubPayrollRepo {
	return &stubPayrollRepo{
		runs:       map[string]*payroll.Run{},
		deductions: map[string]*payroll.DeductionConfig{},
		meals:      map[string]*payroll.MealAllowanceConfig{},
	}
}

func runKey(contractID string, year, month int) string {
	return fmt.Sprintf("%s/%d-%d", contractID, year, month)
}

func (s *stubPayrollRepo) SaveRun(_ context.Context, run *payroll.Run) error {
	key := runKey(run.ContractID, run.Year, run.Month)
	if _, ok := s.runs[key]; ok {
		return payroll.ErrRunAlreadyExists
	}
	s.runs[key] = run
	return nil
}

func (s *stubPayrollRepo) GetRun(_ context.Context, contractID string, year, month int) (*payroll.Run, error) {
	run, ok := s.runs[runKey(contractID, year, month)]
	if !ok {
		return nil, payroll.ErrRunNotFound
	}
	return run, nil
}

func (s *stubPayrollRepo) ListRuns(_ context.Context, contractID string) ([]payroll.Run, error) {
	var out []payroll.Run
	for _, run := range s.runs {
		if run.ContractID == contractID {
			out = append(out, *run)
		}
	}
	return out, nil
}

func (s *stubPayrollRepo) GetDeductionConfig(_ context.Context, contractID string) (*payroll.DeductionConfig, error) {
	cfg, ok := s.deductions[contractID]
	if !ok {
		return nil, payroll.ErrDeductionsNotFound
	}
	return cfg, nil
}

func (s *stubPayrollRepo) UpsertDeductionConfig(_ context.Context, cfg *payroll.DeductionConfig) error {
	s.deductions[cfg.ContractID] = cfg
	return nil
}

func (s *stubPayrollRepo) GetMealAllowanceConfig(_ context.Context, contractID string) (*payroll.MealAllowanceConfig, error) {
	cfg, ok := s.meals[contractID]
	if !ok {
		return nil, payroll.ErrMealConfigNotFound
	}
	return cfg, nil
}

func (s *stubPayrollRepo) UpsertMealAllowanceConfig(_ context.Context, cfg *payroll.MealAllowanceConfig) error {
	s.meals[cfg.ContractID] = cfg
	return nil
}

func (s *stubPayrollRepo) CreateMileageTrip(_ context.Context, trip *payroll.MileageTrip) error {
	s.trips = append(s.trips, *trip)
	return nil
}

func (s *stubPayrollRepo) ListMileageTrips(_ context.Context, contractID string, from, to time.Time) ([]payroll.MileageTrip, error) {
	var out []payroll.MileageTrip
	for _, trip := range s.trips {
		if trip.ContractID == contractID && !trip.Date.Before(from) && !trip.Date.After(to) {
			out = append(out, trip)
		}
	}
	return out, nil
}

type stubOvertimeService struct {
	breakdown *overtime.Breakdown
}

func (s *stubOvertimeService) BreakdownForPeriod(_ context.Context, contractID string, year, month int) (*overtime.Breakdown, error) {
	b := *s.breakdown
	b.ContractID = contractID
	b.Year = year
	b.Month = month
	return &b, nil
}

func (s *stubOvertimeService) WeeklySummaries(context.Context, string, int, int) ([]overtime.WeeklySummary, error) {
	return nil, nil
}

func testBreakdown() *overtime.Breakdown {
	return &overtime.Breakdown{
		TotalWorkedHours:      12,
		TotalOvertimeHours:    2,
		TotalOvertimePayCents: 4875,
	}
}

func newTestService(repo *stubPayrollRepo) payroll.Service {
	c := testContract()
	c.ID = testContractID
	contracts := &stubContractRepo{contracts: map[string]*contract.Contract{c.ID: c}}
	return NewPayrollService(contracts, repo, &stubOvertimeService{breakdown: testBreakdown()}, 40)
}

func calculateRequest() *payroll.CalculateRequest {
	return &payroll.CalculateRequest{
		ContractID: testContractID,
		Year:       2025,
		Month:      1,
	}
}

func TestServiceCalculate(t *testing.T) {
	repo := newStubPayrollRepo()
	repo.deductions[testContractID] = testDeductions()
	svc := newTestService(repo)

	result, err := svc.Calculate(context.Background(), calculateRequest())

	require.NoError(t, err)
	require.Nil(t, result.Error)
	assert.Equal(t, testContractID, result.ContractID)
	assert.Equal(t, int64(19875), result.GrossPayCents)
	assert.Equal(t, int64(14151), result.NetPayCents)
}

func TestServiceCalculate_InvalidRequest(t *testing.T) {
	svc := newTestService(newStubPayrollRepo())

	_, err := svc.Calculate(context.Background(), &payroll.CalculateRequest{
		ContractID: "not-a-uuid",
		Year:       2025,
		Month:      1,
	})

	assert.Error(t, err)
}

func TestServiceCalculate_UnknownContract(t *testing.T) {
	svc := newTestService(newStubPayrollRepo())

	req := calculateRequest()
	req.ContractID = "01941f29-7c00-7000-8000-00000000dead"
	result, err := svc.Calculate(context.Background(), req)

	// An unknown contract is reported on the result, not as an error.
	require.NoError(t, err)
	require.NotNil(t, result.Error)
	assert.Equal(t, payroll.ErrCodeMissingContract, result.Error.Code)
	assert.Equal(t, req.ContractID, result.ContractID)
}

func TestServiceCalculate_NoDeductionConfig(t *testing.T) {
	svc := newTestService(newStubPayrollRepo())

	result, err := svc.Calculate(context.Background(), calculateRequest())

	require.NoError(t, err)
	require.NotNil(t, result.Error)
	assert.Equal(t, payroll.ErrCodeMissingDeductions, result.Error.Code)
}

func TestServiceCalculate_IncludesMileageTrips(t *testing.T) {
	repo := newStubPayrollRepo()
	repo.deductions[testContractID] = testDeductions()
	repo.trips = []payroll.MileageTrip{
		{ContractID: testContractID, Date: date(2025, time.January, 10), DistanceKm: 10},
		// Outside the period, must be ignored.
		{ContractID: testContractID, Date: date(2025, time.February, 10), DistanceKm: 100},
	}
	svc := newTestService(repo)

	result, err := svc.Calculate(context.Background(), calculateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(400), result.MileageReimbursementCents)
}

func TestCalculateAndSave(t *testing.T) {
	repo := newStubPayrollRepo()
	repo.deductions[testContractID] = testDeductions()
	svc := newTestService(repo)

	result, err := svc.CalculateAndSave(context.Background(), calculateRequest())

	require.NoError(t, err)
	require.Nil(t, result.Error)

	run, err := repo.GetRun(context.Background(), testContractID, 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, payroll.RunStatusCalculated, run.Status)
	assert.Equal(t, result.NetPayCents, run.NetPayCents)
	assert.NotEmpty(t, run.ID)
}

func TestCalculateAndSave_FailedCalculationIsNotPersisted(t *testing.T) {
	repo := newStubPayrollRepo()
	svc := newTestService(repo)

	result, err := svc.CalculateAndSave(context.Background(), calculateRequest())

	require.NoError(t, err)
	require.NotNil(t, result.Error)
	assert.Empty(t, repo.runs)
}

func TestSetDeductionConfig(t *testing.T) {
	repo := newStubPayrollRepo()
	svc := newTestService(repo)

	cfg, err := svc.SetDeductionConfig(context.Background(), &payroll.DeductionConfigRequest{
		ContractID:        testContractID,
		SocialSecurityPct: 11,
		IncomeTaxPct:      20,
	})

	require.NoError(t, err)
	assert.True(t, cfg.SocialSecurityPct.Equal(decimal.NewFromInt(11)))
	assert.NotNil(t, repo.deductions[testContractID])
}

func TestSetDeductionConfig_RejectsWrongSocialSecurityRate(t *testing.T) {
	svc := newTestService(newStubPayrollRepo())

	_, err := svc.SetDeductionConfig(context.Background(), &payroll.DeductionConfigRequest{
		ContractID:        testContractID,
		SocialSecurityPct: 10,
		IncomeTaxPct:      20,
	})

	assert.Error(t, err)
}

func TestSetMealAllowanceConfig_DefaultsMinimumHours(t *testing.T) {
	repo := newStubPayrollRepo()
	svc := newTestService(repo)

	cfg, err := svc.SetMealAllowanceConfig(context.Background(), &payroll.MealAllowanceConfigRequest{
		ContractID:       testContractID,
		DailyAmountCents: 700,
		PaymentMethod:    "cash",
	})

	require.NoError(t, err)
	assert.InDelta(t, 4, cfg.MinimumRegularHours, 0.001)
}

func TestAddMileageTrip(t *testing.T) {
	repo := newStubPayrollRepo()
	svc := newTestService(repo)

	trip, err := svc.AddMileageTrip(context.Background(), &payroll.MileageTripRequest{
		ContractID:  testContractID,
		Date:        "2025-01-10",
		Origin:      "Lisboa",
		Destination: "Porto",
		DistanceKm:  313.5,
		Purpose:     "client visit",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, trip.ID)
	require.Len(t, repo.trips, 1)
	assert.Equal(t, 313.5, repo.trips[0].DistanceKm)
}

func TestAddMileageTrip_UnknownContract(t *testing.T) {
	svc := newTestService(newStubPayrollRepo())

	_, err := svc.AddMileageTrip(context.Background(), &payroll.MileageTripRequest{
		ContractID:  "01941f29-7c00-7000-8000-00000000dead",
		Date:        "2025-01-10",
		Origin:      "Lisboa",
		Destination: "Porto",
		DistanceKm:  10,
	})

	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}
