package timesheet

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, id string) (*Entry, error)
	// ListByContractRange returns entries dated within [from, to],
	// ordered by date.
	ListByContractRange(ctx context.Context, contractID string, from, to time.Time) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}
