package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/folhacerta/payroll-backend-go/internal/domain/policy"
	"github.com/folhacerta/payroll-backend-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.Repository {
	return &policyRepository{db: db}
}

const policyColumns = `
	id, contract_id, name, threshold_hours,
	first_hour_multiplier, subsequent_hours_multiplier,
	weekend_multiplier, holiday_multiplier, night_multiplier,
	night_start_minutes, night_end_minutes, rounding_minutes,
	daily_limit_hours, weekly_limit_hours, annual_limit_hours,
	is_active, created_at, updated_at
`

func scanPolicy(row pgx.Row) (*policy.Policy, error) {
	var p policy.Policy
	err := row.Scan(
		&p.ID, &p.ContractID, &p.Name, &p.ThresholdHours,
		&p.FirstHourMultiplier, &p.SubsequentHoursMultiplier,
		&p.WeekendMultiplier, &p.HolidayMultiplier, &p.NightMultiplier,
		&p.NightStartMinutes, &p.NightEndMinutes, &p.RoundingMinutes,
		&p.DailyLimitHours, &p.WeeklyLimitHours, &p.AnnualLimitHours,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create implements policy.Repository. The previously active policy of
// the contract is deactivated in the same transaction.
func (r *policyRepository) Create(ctx context.Context, p *policy.Policy) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		deactivate := `
			UPDATE overtime_policies
			SET is_active = FALSE, updated_at = NOW()
			WHERE contract_id = $1 AND is_active
		`
		if _, err := q.Exec(ctx, deactivate, p.ContractID); err != nil {
			return fmt.Errorf("failed to deactivate previous policy: %w", err)
		}

		query := `
			INSERT INTO overtime_policies (
				id, contract_id, name, threshold_hours,
				first_hour_multiplier, subsequent_hours_multiplier,
				weekend_multiplier, holiday_multiplier, night_multiplier,
				night_start_minutes, night_end_minutes, rounding_minutes,
				daily_limit_hours, weekly_limit_hours, annual_limit_hours, is_active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING created_at, updated_at
		`

		err := q.QueryRow(ctx, query,
			p.ID, p.ContractID, p.Name, p.ThresholdHours,
			p.FirstHourMultiplier, p.SubsequentHoursMultiplier,
			p.WeekendMultiplier, p.HolidayMultiplier, p.NightMultiplier,
			p.NightStartMinutes, p.NightEndMinutes, p.RoundingMinutes,
			p.DailyLimitHours, p.WeeklyLimitHours, p.AnnualLimitHours, p.IsActive,
		).Scan(&p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create policy: %w", err)
		}
		return nil
	})
}

// GetByID implements policy.Repository.
func (r *policyRepository) GetByID(ctx context.Context, id string) (*policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPolicy(q.QueryRow(ctx, `SELECT `+policyColumns+` FROM overtime_policies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, policy.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}
	return p, nil
}

// GetActiveByContract implements policy.Repository.
func (r *policyRepository) GetActiveByContract(ctx context.Context, contractID string) (*policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + policyColumns + `
		FROM overtime_policies
		WHERE contract_id = $1 AND is_active
		ORDER BY created_at DESC
		LIMIT 1
	`

	p, err := scanPolicy(q.QueryRow(ctx, query, contractID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, policy.ErrNoActivePolicy
		}
		return nil, fmt.Errorf("failed to get active policy: %w", err)
	}
	return p, nil
}

// ListByContract implements policy.Repository.
func (r *policyRepository) ListByContract(ctx context.Context, contractID string) ([]policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + policyColumns + `
		FROM overtime_policies
		WHERE contract_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	defer rows.Close()

	var policies []policy.Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan policy: %w", err)
		}
		policies = append(policies, *p)
	}
	return policies, rows.Err()
}
