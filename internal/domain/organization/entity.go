package organization

import (
	"time"
)

// Organization is the tenant metadata projection the engine reads. Timezone
// is the optionally configured IANA identifier for the whole organization.
type Organization struct {
	ID        string
	Name      string
	Timezone  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
