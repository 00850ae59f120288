package attendance

import (
	"context"
)

// TimekeepingService orchestrates zone resolution, policy resolution,
// classification and aggregation for employee self-service, the HR console
// and dashboards. It is the only component that touches the store.
type TimekeepingService interface {
	// CheckIn records the authenticated employee's check-in for today.
	// Fails with ErrAlreadyCheckedIn when today's record already exists.
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes the authenticated employee's open record for today.
	// Fails with ErrNotCheckedIn when there is nothing to close.
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// ManualEntry upserts a record on behalf of an employee (HR only).
	ManualEntry(ctx context.Context, req ManualEntryRequest) (RecordResponse, error)

	// DayOverview returns logs, status counts, the month calendar and the
	// weekly trend for the caller's organization on the given date
	// (YYYY-MM-DD, empty means today).
	DayOverview(ctx context.Context, date string) (DayOverviewResponse, error)

	// History returns the authenticated employee's rows and summary for a
	// month.
	History(ctx context.Context, month, year int) (HistoryResponse, error)
}
