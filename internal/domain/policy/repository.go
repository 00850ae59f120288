package policy

import (
	"context"
)

// PolicyRepository reads and writes per-organization work policies.
type PolicyRepository interface {
	// GetByOrganization returns the raw policy row, or ErrPolicyNotFound
	// when the organization never configured one.
	GetByOrganization(ctx context.Context, organizationID string) (WorkPolicy, error)

	// Upsert writes the policy for its organization, inserting on first use.
	Upsert(ctx context.Context, p WorkPolicy) (WorkPolicy, error)
}
