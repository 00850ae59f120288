package attendance

import (
	"time"
)

// Record statuses.
const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusHalfDay = "HALF_DAY"
	StatusAbsent  = "ABSENT"
	StatusRemote  = "REMOTE"
	StatusHoliday = "HOLIDAY"
)

// Work types accepted at check-in. The explicit work type is authoritative;
// location labels and profile work models are fallback inference only.
const (
	WorkTypeOnsite = "ONSITE"
	WorkTypeRemote = "REMOTE"
)

// Record sources.
const (
	SourceSystem = "SYSTEM" // created by employee check-in/out
	SourceManual = "MANUAL" // entered by HR
)

// Record is one employee's attendance ledger entry for one calendar day.
// At most one record exists per (employee, date); the store enforces this.
// Records are never deleted.
type Record struct {
	ID             string
	EmployeeID     string
	OrganizationID string
	Date           time.Time // day granularity, no time component
	CheckInAt      *time.Time
	CheckOutAt     *time.Time
	Status         string
	WorkSeconds    *int
	BreakSeconds   *int
	Source         string
	Location       *string // free-text work-type/location label
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for list views
	EmployeeName *string
}
