package policy

import (
	"context"

	"github.com/google/uuid"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/policy"
)

type PolicyServiceImpl struct {
	contractRepo contract.Repository
	policyRepo   policy.Repository
}

func NewPolicyService(contractRepo contract.Repository, policyRepo policy.Repository) policy.Service {
	return &PolicyServiceImpl{
		contractRepo: contractRepo,
		policyRepo:   policyRepo,
	}
}

func (s *PolicyServiceImpl) Create(ctx context.Context, req *policy.CreatePolicyRequest) (*policy.Policy, error) {
	c, err := s.contractRepo.GetByID(ctx, req.ContractID)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(c.CompanySizeClass); err != nil {
		return nil, err
	}

	// One active policy per contract: the repository deactivates the
	// previous one when inserting the replacement.
	p := req.ToPolicy()
	p.ID = uuid.Must(uuid.NewV7()).String()
	if err := s.policyRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PolicyServiceImpl) GetActiveByContract(ctx context.Context, contractID string) (*policy.Policy, error) {
	return s.policyRepo.GetActiveByContract(ctx, contractID)
}

func (s *PolicyServiceImpl) ListByContract(ctx context.Context, contractID string) ([]policy.Policy, error) {
	return s.policyRepo.ListByContract(ctx, contractID)
}
