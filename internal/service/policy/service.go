package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tempohq/tempo-backend-go/internal/domain/policy"
	"github.com/tempohq/tempo-backend-go/internal/fixtures"
)

type PolicyServiceImpl struct {
	policy.PolicyRepository
}

func NewPolicyService(repo policy.PolicyRepository) policy.PolicyService {
	return &PolicyServiceImpl{PolicyRepository: repo}
}

func organizationIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", fmt.Errorf("organization_id claim is missing or invalid")
	}
	return organizationID, nil
}

// GetMyPolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) GetMyPolicy(ctx context.Context) (policy.PolicyResponse, error) {
	organizationID, err := organizationIDFromClaims(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	raw, err := s.PolicyRepository.GetByOrganization(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, policy.ErrPolicyNotFound) {
			return policy.PolicyResponse{}, fmt.Errorf("failed to get work policy: %w", err)
		}
		// Unconfigured organizations read the platform defaults; nothing is
		// persisted until HR saves a policy of their own.
		seed := fixtures.DefaultWorkPolicy(organizationID)
		return mapPolicyToResponse(organizationID, &seed), nil
	}

	resp := mapPolicyToResponse(organizationID, &raw)
	resp.UpdatedAt = raw.UpdatedAt.Format("2006-01-02 15:04:05")
	return resp, nil
}

// UpdateMyPolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) UpdateMyPolicy(ctx context.Context, req policy.UpdatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	organizationID, err := organizationIDFromClaims(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	incoming := policy.WorkPolicy{
		OrganizationID: organizationID,
		OnsiteStart:    req.OnsiteStart,
		OnsiteEnd:      req.OnsiteEnd,
		RemoteStart:    req.RemoteStart,
		RemoteEnd:      req.RemoteEnd,
		WorkingDays:    req.WorkingDays,
		WeekendDays:    req.WeekendDays,
	}

	// Persist the canonical form so every reader sees normalized timings
	// and a disjoint week partition.
	timings := ResolveTimings(&incoming)
	week := ResolveWeekSchedule(&incoming)

	onsiteStart := timings.OnsiteStart.String()
	remoteStart := timings.RemoteStart.String()
	incoming.OnsiteStart = &onsiteStart
	incoming.RemoteStart = &remoteStart
	incoming.WorkingDays = week.WorkingDays
	incoming.WeekendDays = week.WeekendDays

	saved, err := s.PolicyRepository.Upsert(ctx, incoming)
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to upsert work policy: %w", err)
	}

	resp := mapPolicyToResponse(organizationID, &saved)
	resp.UpdatedAt = saved.UpdatedAt.Format("2006-01-02 15:04:05")
	return resp, nil
}

// mapPolicyToResponse renders a raw policy with resolver defaults applied.
func mapPolicyToResponse(organizationID string, raw *policy.WorkPolicy) policy.PolicyResponse {
	timings := ResolveTimings(raw)
	week := ResolveWeekSchedule(raw)

	resp := policy.PolicyResponse{
		OrganizationID: organizationID,
		OnsiteStart:    timings.OnsiteStart.String(),
		RemoteStart:    timings.RemoteStart.String(),
		WorkingDays:    week.WorkingDays,
		WeekendDays:    week.WeekendDays,
	}
	if raw != nil {
		resp.OnsiteEnd = raw.OnsiteEnd
		resp.RemoteEnd = raw.RemoteEnd
	}
	return resp
}
