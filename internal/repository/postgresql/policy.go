package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tempohq/tempo-backend-go/internal/domain/policy"
	"github.com/tempohq/tempo-backend-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

// GetByOrganization implements policy.PolicyRepository.
func (p *policyRepository) GetByOrganization(ctx context.Context, organizationID string) (policy.WorkPolicy, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT organization_id, onsite_start, onsite_end, remote_start, remote_end,
			   working_days, weekend_days, created_at, updated_at
		FROM work_policies
		WHERE organization_id = $1
	`

	var wp policy.WorkPolicy
	err := q.QueryRow(ctx, query, organizationID).Scan(
		&wp.OrganizationID, &wp.OnsiteStart, &wp.OnsiteEnd, &wp.RemoteStart, &wp.RemoteEnd,
		&wp.WorkingDays, &wp.WeekendDays, &wp.CreatedAt, &wp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.WorkPolicy{}, policy.ErrPolicyNotFound
		}
		return policy.WorkPolicy{}, fmt.Errorf("failed to get work policy: %w", err)
	}

	return wp, nil
}

// Upsert implements policy.PolicyRepository. One row per organization.
func (p *policyRepository) Upsert(ctx context.Context, wp policy.WorkPolicy) (policy.WorkPolicy, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO work_policies (
			id, organization_id, onsite_start, onsite_end, remote_start, remote_end,
			working_days, weekend_days
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (organization_id) DO UPDATE SET
			onsite_start = EXCLUDED.onsite_start,
			onsite_end = EXCLUDED.onsite_end,
			remote_start = EXCLUDED.remote_start,
			remote_end = EXCLUDED.remote_end,
			working_days = EXCLUDED.working_days,
			weekend_days = EXCLUDED.weekend_days,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		wp.OrganizationID,
		wp.OnsiteStart,
		wp.OnsiteEnd,
		wp.RemoteStart,
		wp.RemoteEnd,
		wp.WorkingDays,
		wp.WeekendDays,
	).Scan(&wp.CreatedAt, &wp.UpdatedAt)

	if err != nil {
		return policy.WorkPolicy{}, fmt.Errorf("failed to upsert work policy: %w", err)
	}

	return wp, nil
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}
