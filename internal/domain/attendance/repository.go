package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. All methods carry
// organizationID to prevent cross-tenant access. Uniqueness on
// (employee_id, date) is enforced by the store, not by read-then-write.
type Repository interface {
	// Create inserts a new record. Returns ErrAlreadyCheckedIn when a
	// record for the same (employee, date) already exists.
	Create(ctx context.Context, rec Record) (Record, error)

	// Upsert inserts or replaces the record for (employee, date). Used by
	// HR manual entry.
	Upsert(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate returns nil when no record exists for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, organizationID string) (*Record, error)

	// Update persists check-out and status mutations of an existing record.
	Update(ctx context.Context, rec Record) error

	// FindRangeByEmployee returns one employee's records with date in
	// [from, to], ordered by date.
	FindRangeByEmployee(ctx context.Context, employeeID string, from, to time.Time, organizationID string) ([]Record, error)

	// FindRangeByOrganization returns all records of an organization with
	// date in [from, to], ordered by date then employee.
	FindRangeByOrganization(ctx context.Context, organizationID string, from, to time.Time) ([]Record, error)

	// CloseStaleOpen stamps a check-out at end of day on records from days
	// before cutoff that were never closed. Worked duration stays unset.
	// Returns the number of records closed.
	CloseStaleOpen(ctx context.Context, cutoff time.Time) (int, error)
}
