package policy

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempohq/tempo-backend-go/internal/domain/policy"
)

type fakePolicyRepo struct {
	policies map[string]policy.WorkPolicy
}

func newFakePolicyRepo() *fakePolicyRepo {
	return &fakePolicyRepo{policies: make(map[string]policy.WorkPolicy)}
}

func (f *fakePolicyRepo) GetByOrganization(_ context.Context, organizationID string) (policy.WorkPolicy, error) {
	p, ok := f.policies[organizationID]
	if !ok {
		return policy.WorkPolicy{}, policy.ErrPolicyNotFound
	}
	return p, nil
}

func (f *fakePolicyRepo) Upsert(_ context.Context, p policy.WorkPolicy) (policy.WorkPolicy, error) {
	f.policies[p.OrganizationID] = p
	return p, nil
}

func orgContext(t *testing.T, organizationID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"organization_id": organizationID,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestPolicyService_GetMyPolicy_Unconfigured(t *testing.T) {
	t.Parallel()
	svc := NewPolicyService(newFakePolicyRepo())
	ctx := orgContext(t, "org-1")

	resp, err := svc.GetMyPolicy(ctx)

	require.NoError(t, err)
	assert.Equal(t, "org-1", resp.OrganizationID)
	assert.Equal(t, "09:00", resp.OnsiteStart)
	assert.Equal(t, "08:00", resp.RemoteStart)
	assert.Equal(t, []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"}, resp.WorkingDays)
	assert.Equal(t, []string{"SATURDAY", "SUNDAY"}, resp.WeekendDays)
}

func TestPolicyService_GetMyPolicy_Stored(t *testing.T) {
	t.Parallel()
	repo := newFakePolicyRepo()
	onsite := "10:00"
	repo.policies["org-1"] = policy.WorkPolicy{
		OrganizationID: "org-1",
		OnsiteStart:    &onsite,
		WorkingDays:    []string{policy.Sunday, policy.Monday},
		WeekendDays:    []string{policy.Friday, policy.Saturday},
	}
	svc := NewPolicyService(repo)
	ctx := orgContext(t, "org-1")

	resp, err := svc.GetMyPolicy(ctx)

	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.OnsiteStart)
	assert.Equal(t, "08:00", resp.RemoteStart, "missing remote timing falls back")
	assert.Equal(t, []string{"MONDAY", "SUNDAY"}, resp.WorkingDays, "canonical weekday order")
}

func TestPolicyService_UpdateMyPolicy_NormalizesBeforePersisting(t *testing.T) {
	t.Parallel()
	repo := newFakePolicyRepo()
	svc := NewPolicyService(repo)
	ctx := orgContext(t, "org-1")
	onsite := "08:30"

	resp, err := svc.UpdateMyPolicy(ctx, policy.UpdatePolicyRequest{
		OnsiteStart: &onsite,
		WorkingDays: []string{"monday", "MONDAY", "wednesday"},
		WeekendDays: []string{"MONDAY", "SATURDAY", "SUNDAY"},
	})

	require.NoError(t, err)
	assert.Equal(t, "08:30", resp.OnsiteStart)
	assert.Equal(t, []string{"MONDAY", "WEDNESDAY"}, resp.WorkingDays)
	assert.Equal(t, []string{"SATURDAY", "SUNDAY"}, resp.WeekendDays, "working-day membership wins the overlap")

	stored := repo.policies["org-1"]
	require.NotNil(t, stored.OnsiteStart)
	assert.Equal(t, "08:30", *stored.OnsiteStart)
	require.NotNil(t, stored.RemoteStart)
	assert.Equal(t, "08:00", *stored.RemoteStart, "canonical form persisted")
	assert.Equal(t, []string{"MONDAY", "WEDNESDAY"}, stored.WorkingDays)
}

func TestPolicyService_UpdateMyPolicy_RejectsMalformedTiming(t *testing.T) {
	t.Parallel()
	svc := NewPolicyService(newFakePolicyRepo())
	ctx := orgContext(t, "org-1")
	bad := "9am"

	_, err := svc.UpdateMyPolicy(ctx, policy.UpdatePolicyRequest{OnsiteStart: &bad})
	assert.Error(t, err)
}

func TestPolicyService_MissingOrganizationClaim(t *testing.T) {
	t.Parallel()
	svc := NewPolicyService(newFakePolicyRepo())

	_, err := svc.GetMyPolicy(context.Background())
	assert.Error(t, err)
}
