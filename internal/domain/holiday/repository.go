package holiday

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	ListByRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
