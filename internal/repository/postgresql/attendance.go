package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tempohq/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohq/tempo-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	id, employee_id, organization_id, attendance_date,
	check_in_at, check_out_at, status,
	work_seconds, break_seconds, source, location,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.OrganizationID, &rec.Date,
		&rec.CheckInAt, &rec.CheckOutAt, &rec.Status,
		&rec.WorkSeconds, &rec.BreakSeconds, &rec.Source, &rec.Location,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.Repository. The attendance_records table has
// UNIQUE (employee_id, attendance_date); a duplicate day surfaces as
// ErrAlreadyCheckedIn instead of a raw constraint violation.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, organization_id, attendance_date,
			check_in_at, check_out_at, status,
			work_seconds, break_seconds, source, location
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	rec.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.OrganizationID,
		rec.Date,
		rec.CheckInAt,
		rec.CheckOutAt,
		rec.Status,
		rec.WorkSeconds,
		rec.BreakSeconds,
		rec.Source,
		rec.Location,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// Upsert implements attendance.Repository. Replaces the whole record for
// (employee, date), keeping the original id and created_at.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, organization_id, attendance_date,
			check_in_at, check_out_at, status,
			work_seconds, break_seconds, source, location
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (employee_id, attendance_date) DO UPDATE SET
			check_in_at = EXCLUDED.check_in_at,
			check_out_at = EXCLUDED.check_out_at,
			status = EXCLUDED.status,
			work_seconds = EXCLUDED.work_seconds,
			break_seconds = EXCLUDED.break_seconds,
			source = EXCLUDED.source,
			location = EXCLUDED.location,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		rec.EmployeeID,
		rec.OrganizationID,
		rec.Date,
		rec.CheckInAt,
		rec.CheckOutAt,
		rec.Status,
		rec.WorkSeconds,
		rec.BreakSeconds,
		rec.Source,
		rec.Location,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.Repository. Returns nil, nil
// when the day has no record.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, organizationID string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND attendance_date = $2
		  AND organization_id = $3
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in_at = $1,
			check_out_at = $2,
			status = $3,
			work_seconds = $4,
			break_seconds = $5,
			location = $6,
			updated_at = NOW()
		WHERE id = $7
		  AND organization_id = $8
	`

	tag, err := q.Exec(ctx, query,
		rec.CheckInAt,
		rec.CheckOutAt,
		rec.Status,
		rec.WorkSeconds,
		rec.BreakSeconds,
		rec.Location,
		rec.ID,
		rec.OrganizationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// FindRangeByEmployee implements attendance.Repository.
func (a *attendanceRepository) FindRangeByEmployee(ctx context.Context, employeeID string, from, to time.Time, organizationID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND organization_id = $2
		  AND attendance_date BETWEEN $3 AND $4
		ORDER BY attendance_date
	`

	rows, err := q.Query(ctx, query, employeeID, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}

// FindRangeByOrganization implements attendance.Repository. Joins the
// directory for display names in the HR console.
func (a *attendanceRepository) FindRangeByOrganization(ctx context.Context, organizationID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.organization_id, ar.attendance_date,
			   ar.check_in_at, ar.check_out_at, ar.status,
			   ar.work_seconds, ar.break_seconds, ar.source, ar.location,
			   ar.created_at, ar.updated_at,
			   e.full_name
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.organization_id = $1
		  AND ar.attendance_date BETWEEN $2 AND $3
		ORDER BY ar.attendance_date, e.full_name
	`

	rows, err := q.Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.OrganizationID, &rec.Date,
			&rec.CheckInAt, &rec.CheckOutAt, &rec.Status,
			&rec.WorkSeconds, &rec.BreakSeconds, &rec.Source, &rec.Location,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read organization attendance: %w", err)
	}

	return records, nil
}

// CloseStaleOpen implements attendance.Repository. The stamped check-out is
// the last second of the record's own day, so a forgotten check-out never
// bleeds into the next day.
func (a *attendanceRepository) CloseStaleOpen(ctx context.Context, cutoff time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out_at = attendance_date + INTERVAL '1 day' - INTERVAL '1 second',
			updated_at = NOW()
		WHERE check_in_at IS NOT NULL
		  AND check_out_at IS NULL
		  AND attendance_date < $1
	`

	tag, err := q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to close stale attendance records: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}
