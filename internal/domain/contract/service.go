package contract

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateContractRequest) (*Contract, error)
	GetByID(ctx context.Context, id string) (*Contract, error)
	List(ctx context.Context) ([]Contract, error)
}
