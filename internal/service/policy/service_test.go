package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/policy"
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

type stubPolicyRepo struct {
	policies map[string]*policy.Policy
}

func (s *stubPolicyRepo) Create(_ context.Context, p *policy.Policy) error {
	for _, prev := range s.policies {
		if prev.ContractID == p.ContractID {
			prev.IsActive = false
		}
	}
	s.policies[p.ID] = p
	return nil
}

func (s *stubPolicyRepo) GetByID(_ context.Context, id string) (*policy.Policy, error) {
	p, ok := s.policies[id]
	if !ok {
		return nil, policy.ErrPolicyNotFound
	}
	return p, nil
}

func (s *stubPolicyRepo) GetActiveByContract(_ context.Context, contractID string) (*policy.Policy, error) {
	for _, p := range s.policies {
		if p.ContractID == contractID && p.IsActive {
			return p, nil
		}
	}
	return nil, policy.ErrNoActivePolicy
}

func (s *stubPolicyRepo) ListByContract(_ context.Context, contractID string) ([]policy.Policy, error) {
	var out []policy.Policy
	for _, p := range s.policies {
		if p.ContractID == contractID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func newTestService(class contract.CompanySizeClass) (policy.Service, *stubPolicyRepo) {
	contracts := &stubContractRepo{contracts: map[string]*contract.Contract{
		testContractID: {
			ID:               testContractID,
			EmployeeName:     "Ana Ferreira",
			BaseSalaryCents:  259800,
			WeeklyHours:      40,
			CompanySizeClass: class,
			IsActive:         true,
		},
	}}
	policies := &stubPolicyRepo{policies: map[string]*policy.Policy{}}
	return NewPolicyService(contracts, policies), policies
}

func createRequest() *policy.CreatePolicyRequest {
	return &policy.CreatePolicyRequest{
		ContractID:                testContractID,
		Name:                      "standard",
		ThresholdHours:            8,
		FirstHourMultiplier:       1.5,
		SubsequentHoursMultiplier: 1.75,
		WeekendMultiplier:         2.0,
		HolidayMultiplier:         2.5,
		NightMultiplier:           1.25,
		NightStart:                "22:00",
		NightEnd:                  "07:00",
		RoundingMinutes:           15,
		DailyLimitHours:           2,
		WeeklyLimitHours:          48,
		AnnualLimitHours:          150,
	}
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(contract.ClassMedium)

	p, err := svc.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.IsActive)
	assert.Equal(t, 22*60, p.NightStartMinutes)
}

func TestCreate_ReplacesActivePolicy(t *testing.T) {
	svc, repo := newTestService(contract.ClassMedium)

	first, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.False(t, repo.policies[first.ID].IsActive)
	active, err := svc.GetActiveByContract(context.Background(), testContractID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestCreate_AnnualLimitCheckedAgainstCompanyClass(t *testing.T) {
	req := createRequest()
	req.AnnualLimitHours = 160

	svc, _ := newTestService(contract.ClassMedium)
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)

	svc, _ = newTestService(contract.ClassSmall)
	_, err = svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreate_UnknownContract(t *testing.T) {
	svc, _ := newTestService(contract.ClassMedium)

	req := createRequest()
	req.ContractID = "01941f29-7c00-7000-8000-00000000dead"
	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, contract.ErrContractNotFound)
}
