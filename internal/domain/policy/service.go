package policy

import "context"

type Service interface {
	// Create validates the request against the contract's company size
	// class and deactivates any previously active policy.
	Create(ctx context.Context, req *CreatePolicyRequest) (*Policy, error)
	GetActiveByContract(ctx context.Context, contractID string) (*Policy, error)
	ListByContract(ctx context.Context, contractID string) ([]Policy, error)
}
