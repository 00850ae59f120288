package policy

import (
	"time"
)

// Weekday symbols accepted in working/weekend day lists, in canonical order.
const (
	Monday    = "MONDAY"
	Tuesday   = "TUESDAY"
	Wednesday = "WEDNESDAY"
	Thursday  = "THURSDAY"
	Friday    = "FRIDAY"
	Saturday  = "SATURDAY"
	Sunday    = "SUNDAY"
)

// WorkPolicy is an organization's raw work-policy configuration as stored.
// Fields may be partially populated or malformed; the policy resolver
// substitutes documented defaults instead of erroring, so a broken
// configuration can never block a check-in.
type WorkPolicy struct {
	OrganizationID string
	OnsiteStart    *string // wall-clock "HH:MM", org-local
	OnsiteEnd      *string
	RemoteStart    *string
	RemoteEnd      *string
	WorkingDays    []string
	WeekendDays    []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
