package policy

import "context"

type Repository interface {
	// Create inserts the policy and deactivates any previously active
	// policy of the contract in the same transaction.
	Create(ctx context.Context, p *Policy) error
	GetByID(ctx context.Context, id string) (*Policy, error)
	// GetActiveByContract returns ErrNoActivePolicy when the contract has
	// no active policy.
	GetActiveByContract(ctx context.Context, contractID string) (*Policy, error)
	ListByContract(ctx context.Context, contractID string) ([]Policy, error)
}
