package overtime

import (
	"context"
)

type Service interface {
	// BreakdownForPeriod classifies and prices a contract's overtime for
	// one calendar month.
	BreakdownForPeriod(ctx context.Context, contractID string, year, month int) (*Breakdown, error)
	// WeeklySummaries groups the same period into Monday-based weeks.
	WeeklySummaries(ctx context.Context, contractID string, year, month int) ([]WeeklySummary, error)
}
