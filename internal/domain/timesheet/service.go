package timesheet

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateEntryRequest) (*Entry, error)
	ListByContractMonth(ctx context.Context, contractID string, year, month int) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}
