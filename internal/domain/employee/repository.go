package employee

import (
	"context"
)

// DirectoryRepository is the read-only directory lookup the engine consumes.
type DirectoryRepository interface {
	// GetByID returns the directory projection for an employee, scoped to
	// the organization to prevent cross-tenant access.
	GetByID(ctx context.Context, id string, organizationID string) (Employee, error)

	// CountActiveByOrganization returns the active headcount used as the
	// denominator for attendance trend percentages.
	CountActiveByOrganization(ctx context.Context, organizationID string) (int, error)
}
