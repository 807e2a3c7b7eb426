package contract

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contract) error
	GetByID(ctx context.Context, id string) (*Contract, error)
	List(ctx context.Context) ([]Contract, error)
}
