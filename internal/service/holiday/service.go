package holiday

import (
	"context"

	"github.com/google/uuid"

	"github.com/folhacerta/payroll-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.Repository
}

func NewHolidayService(holidayRepo holiday.Repository) holiday.Service {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req *holiday.CreateHolidayRequest) (*holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h := req.ToHoliday()
	h.ID = uuid.Must(uuid.NewV7()).String()
	if err := s.holidayRepo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HolidayServiceImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return s.holidayRepo.ListByYear(ctx, year)
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
