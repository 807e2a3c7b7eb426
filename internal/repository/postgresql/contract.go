package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/pkg/database"
)

type contractRepository struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.Repository {
	return &contractRepository{db: db}
}

// Create implements contract.Repository.
func (r *contractRepository) Create(ctx context.Context, c *contract.Contract) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contracts (id, employee_name, base_salary_cents, weekly_hours, company_size_class, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ID,
		c.EmployeeName,
		c.BaseSalaryCents,
		c.WeeklyHours,
		c.CompanySizeClass,
		c.IsActive,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

// GetByID implements contract.Repository.
func (r *contractRepository) GetByID(ctx context.Context, id string) (*contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_name, base_salary_cents, weekly_hours, company_size_class, is_active, created_at, updated_at
		FROM contracts
		WHERE id = $1
	`

	var c contract.Contract
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.EmployeeName, &c.BaseSalaryCents, &c.WeeklyHours,
		&c.CompanySizeClass, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contract.ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &c, nil
}

// List implements contract.Repository.
func (r *contractRepository) List(ctx context.Context) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_name, base_salary_cents, weekly_hours, company_size_class, is_active, created_at, updated_at
		FROM contracts
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []contract.Contract
	for rows.Next() {
		var c contract.Contract
		if err := rows.Scan(
			&c.ID, &c.EmployeeName, &c.BaseSalaryCents, &c.WeeklyHours,
			&c.CompanySizeClass, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
