package employee

import (
	"time"
)

// Employment types recognized by the directory.
const (
	EmploymentPermanent = "permanent"
	EmploymentContract  = "contract"
	EmploymentIntern    = "internship"
)

// Work models from the employee profile. Used only as a last-resort fallback
// when a record carries no explicit work type.
const (
	WorkModelOnsite = "ONSITE"
	WorkModelRemote = "REMOTE"
	WorkModelHybrid = "HYBRID"
)

// Employee is the directory projection the timekeeping engine needs. The
// directory itself (users, sessions, org chart) lives outside this service.
type Employee struct {
	ID               string
	OrganizationID   string
	FullName         string
	EmploymentType   string
	EmploymentStatus string
	PrimaryLocation  *string // free text, only signal for zone inference
	WorkModel        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
