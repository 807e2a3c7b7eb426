package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/folhacerta/payroll-backend-go/internal/domain/timesheet"
	"github.com/folhacerta/payroll-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.Repository {
	return &timesheetRepository{db: db}
}

// Create implements timesheet.Repository.
func (r *timesheetRepository) Create(ctx context.Context, e *timesheet.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_entries (
			id, contract_id, entry_date, start_minutes, end_minutes, break_minutes,
			is_holiday, is_vacation, is_leave, description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.ContractID, e.Date, e.StartMinutes, e.EndMinutes, e.BreakMinutes,
		e.IsHoliday, e.IsVacation, e.IsLeave, e.Description,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create timesheet entry: %w", err)
	}
	return nil
}

// GetByID implements timesheet.Repository.
func (r *timesheetRepository) GetByID(ctx context.Context, id string) (*timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contract_id, entry_date, start_minutes, end_minutes, break_minutes,
		       is_holiday, is_vacation, is_leave, description, created_at, updated_at
		FROM timesheet_entries
		WHERE id = $1
	`

	var e timesheet.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ContractID, &e.Date, &e.StartMinutes, &e.EndMinutes, &e.BreakMinutes,
		&e.IsHoliday, &e.IsVacation, &e.IsLeave, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get timesheet entry: %w", err)
	}
	return &e, nil
}

// ListByContractRange implements timesheet.Repository.
func (r *timesheetRepository) ListByContractRange(ctx context.Context, contractID string, from, to time.Time) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contract_id, entry_date, start_minutes, end_minutes, break_minutes,
		       is_holiday, is_vacation, is_leave, description, created_at, updated_at
		FROM timesheet_entries
		WHERE contract_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date, start_minutes NULLS LAST
	`

	rows, err := q.Query(ctx, query, contractID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		if err := rows.Scan(
			&e.ID, &e.ContractID, &e.Date, &e.StartMinutes, &e.EndMinutes, &e.BreakMinutes,
			&e.IsHoliday, &e.IsVacation, &e.IsLeave, &e.Description, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete implements timesheet.Repository.
func (r *timesheetRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timesheet_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}
	return nil
}
