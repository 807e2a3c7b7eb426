package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/folhacerta/payroll-backend-go/internal/domain/payroll"
	"github.com/folhacerta/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

// SaveRun implements payroll.Repository.
func (r *payrollRepository) SaveRun(ctx context.Context, run *payroll.Run) error {
	q := GetQuerier(ctx, r.db)

	warnings, err := json.Marshal(run.Warnings)
	if err != nil {
		return fmt.Errorf("failed to encode warnings: %w", err)
	}

	query := `
		INSERT INTO payroll_runs (
			id, contract_id, period_year, period_month, status,
			regular_hours, overtime_hours,
			regular_pay_cents, overtime_pay_cents, meal_allowance_cents,
			mileage_cents, bonus_cents, gross_pay_cents,
			total_deductions_cents, net_pay_cents, warnings
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		run.ID, run.ContractID, run.Year, run.Month, run.Status,
		run.RegularHours, run.OvertimeHours,
		run.RegularPayCents, run.OvertimePayCents, run.MealAllowanceCents,
		run.MileageCents, run.BonusCents, run.GrossPayCents,
		run.TotalDeductionsCents, run.NetPayCents, warnings,
	).Scan(&run.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.ErrRunAlreadyExists
		}
		return fmt.Errorf("failed to save payroll run: %w", err)
	}
	return nil
}

const runColumns = `
	id, contract_id, period_year, period_month, status,
	regular_hours, overtime_hours,
	regular_pay_cents, overtime_pay_cents, meal_allowance_cents,
	mileage_cents, bonus_cents, gross_pay_cents,
	total_deductions_cents, net_pay_cents, warnings, created_at
`

func scanRun(row pgx.Row) (*payroll.Run, error) {
	var run payroll.Run
	var warnings []byte
	err := row.Scan(
		&run.ID, &run.ContractID, &run.Year, &run.Month, &run.Status,
		&run.RegularHours, &run.OvertimeHours,
		&run.RegularPayCents, &run.OvertimePayCents, &run.MealAllowanceCents,
		&run.MileageCents, &run.BonusCents, &run.GrossPayCents,
		&run.TotalDeductionsCents, &run.NetPayCents, &warnings, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(warnings) > 0 {
		if err := json.Unmarshal(warnings, &run.Warnings); err != nil {
			return nil, fmt.Errorf("failed to decode warnings: %w", err)
		}
	}
	return &run, nil
}

// GetRun implements payroll.Repository.
func (r *payrollRepository) GetRun(ctx context.Context, contractID string, year, month int) (*payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE contract_id = $1 AND period_year = $2 AND period_month = $3`

	run, err := scanRun(q.QueryRow(ctx, query, contractID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get payroll run: %w", err)
	}
	return run, nil
}

// ListRuns implements payroll.Repository.
func (r *payrollRepository) ListRuns(ctx context.Context, contractID string) ([]payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE contract_id = $1 ORDER BY period_year DESC, period_month DESC`

	rows, err := q.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// GetDeductionConfig implements payroll.Repository.
func (r *payrollRepository) GetDeductionConfig(ctx context.Context, contractID string) (*payroll.DeductionConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT contract_id, social_security_pct, income_tax_pct,
		       surcharge_pct, surcharge_threshold_cents,
		       solidarity_pct, solidarity_threshold_cents, updated_at
		FROM deduction_configs
		WHERE contract_id = $1
	`

	var cfg payroll.DeductionConfig
	err := q.QueryRow(ctx, query, contractID).Scan(
		&cfg.ContractID, &cfg.SocialSecurityPct, &cfg.IncomeTaxPct,
		&cfg.SurchargePct, &cfg.SurchargeThresholdCents,
		&cfg.SolidarityPct, &cfg.SolidarityThresholdCents, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrDeductionsNotFound
		}
		return nil, fmt.Errorf("failed to get deduction config: %w", err)
	}
	return &cfg, nil
}

// UpsertDeductionConfig implements payroll.Repository.
func (r *payrollRepository) UpsertDeductionConfig(ctx context.Context, cfg *payroll.DeductionConfig) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_configs (
			contract_id, social_security_pct, income_tax_pct,
			surcharge_pct, surcharge_threshold_cents,
			solidarity_pct, solidarity_threshold_cents
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (contract_id) DO UPDATE SET
			social_security_pct = EXCLUDED.social_security_pct,
			income_tax_pct = EXCLUDED.income_tax_pct,
			surcharge_pct = EXCLUDED.surcharge_pct,
			surcharge_threshold_cents = EXCLUDED.surcharge_threshold_cents,
			solidarity_pct = EXCLUDED.solidarity_pct,
			solidarity_threshold_cents = EXCLUDED.solidarity_threshold_cents,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		cfg.ContractID, cfg.SocialSecurityPct, cfg.IncomeTaxPct,
		cfg.SurchargePct, cfg.SurchargeThresholdCents,
		cfg.SolidarityPct, cfg.SolidarityThresholdCents,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert deduction config: %w", err)
	}
	return nil
}

// GetMealAllowanceConfig implements payroll.Repository.
func (r *payrollRepository) GetMealAllowanceConfig(ctx context.Context, contractID string) (*payroll.MealAllowanceConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT contract_id, daily_amount_cents, payment_method, excluded_months,
		       duodecimos_enabled, minimum_regular_hours, updated_at
		FROM meal_allowance_configs
		WHERE contract_id = $1
	`

	var cfg payroll.MealAllowanceConfig
	err := q.QueryRow(ctx, query, contractID).Scan(
		&cfg.ContractID, &cfg.DailyAmountCents, &cfg.PaymentMethod, &cfg.ExcludedMonths,
		&cfg.DuodecimosEnabled, &cfg.MinimumRegularHours, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrMealConfigNotFound
		}
		return nil, fmt.Errorf("failed to get meal allowance config: %w", err)
	}
	return &cfg, nil
}

// UpsertMealAllowanceConfig implements payroll.Repository.
func (r *payrollRepository) UpsertMealAllowanceConfig(ctx context.Context, cfg *payroll.MealAllowanceConfig) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meal_allowance_configs (
			contract_id, daily_amount_cents, payment_method, excluded_months,
			duodecimos_enabled, minimum_regular_hours
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (contract_id) DO UPDATE SET
			daily_amount_cents = EXCLUDED.daily_amount_cents,
			payment_method = EXCLUDED.payment_method,
			excluded_months = EXCLUDED.excluded_months,
			duodecimos_enabled = EXCLUDED.duodecimos_enabled,
			minimum_regular_hours = EXCLUDED.minimum_regular_hours,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		cfg.ContractID, cfg.DailyAmountCents, cfg.PaymentMethod, cfg.ExcludedMonths,
		cfg.DuodecimosEnabled, cfg.MinimumRegularHours,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert meal allowance config: %w", err)
	}
	return nil
}

// CreateMileageTrip implements payroll.Repository.
func (r *payrollRepository) CreateMileageTrip(ctx context.Context, trip *payroll.MileageTrip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO mileage_trips (id, contract_id, trip_date, origin, destination, distance_km, purpose)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		trip.ID, trip.ContractID, trip.Date, trip.Origin, trip.Destination, trip.DistanceKm, trip.Purpose,
	).Scan(&trip.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create mileage trip: %w", err)
	}
	return nil
}

// ListMileageTrips implements payroll.Repository.
func (r *payrollRepository) ListMileageTrips(ctx context.Context, contractID string, from, to time.Time) ([]payroll.MileageTrip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contract_id, trip_date, origin, destination, distance_km, purpose, created_at
		FROM mileage_trips
		WHERE contract_id = $1 AND trip_date BETWEEN $2 AND $3
		ORDER BY trip_date
	`

	rows, err := q.Query(ctx, query, contractID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list mileage trips: %w", err)
	}
	defer rows.Close()

	var trips []payroll.MileageTrip
	for rows.Next() {
		var trip payroll.MileageTrip
		if err := rows.Scan(
			&trip.ID, &trip.ContractID, &trip.Date, &trip.Origin, &trip.Destination,
			&trip.DistanceKm, &trip.Purpose, &trip.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan mileage trip: %w", err)
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}
