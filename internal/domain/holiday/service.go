package holiday

import "context"

type Service interface {
	Create(ctx context.Context, req *CreateHolidayRequest) (*Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
