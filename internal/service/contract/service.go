package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
)

type ContractServiceImpl struct {
	contractRepo contract.Repository
}

func NewContractService(contractRepo contract.Repository) contract.Service {
	return &ContractServiceImpl{contractRepo: contractRepo}
}

func (s *ContractServiceImpl) Create(ctx context.Context, req *contract.CreateContractRequest) (*contract.Contract, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	class := contract.ClassMedium
	if req.CompanySizeClass != "" {
		class = contract.CompanySizeClass(req.CompanySizeClass)
	}

	c := &contract.Contract{
		ID:               uuid.Must(uuid.NewV7()).String(),
		EmployeeName:     req.EmployeeName,
		BaseSalaryCents:  req.BaseSalaryCents,
		WeeklyHours:      req.WeeklyHours,
		CompanySizeClass: class,
		IsActive:         true,
	}
	if err := s.contractRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContractServiceImpl) GetByID(ctx context.Context, id string) (*contract.Contract, error) {
	return s.contractRepo.GetByID(ctx, id)
}

func (s *ContractServiceImpl) List(ctx context.Context) ([]contract.Contract, error) {
	return s.contractRepo.List(ctx)
}
