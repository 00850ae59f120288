package policy

import (
	"context"
)

// PolicyService exposes work-policy administration for HR.
type PolicyService interface {
	// GetMyPolicy returns the caller organization's policy with defaults
	// substituted for anything missing.
	GetMyPolicy(ctx context.Context) (PolicyResponse, error)

	// UpdateMyPolicy normalizes and persists the caller organization's
	// policy.
	UpdateMyPolicy(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)
}
