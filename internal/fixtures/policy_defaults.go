package fixtures

import (
	"github.com/tempohq/tempo-backend-go/internal/domain/policy"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// ==========================================
// DEFAULT WORK POLICY
// ==========================================

// DefaultWorkPolicy returns the platform-standard work policy used for
// organizations that never configured their own: 09:00 onsite, 08:00
// remote, Monday through Friday working with the weekend on Saturday and
// Sunday. Served as-is for reads; nothing is written until HR saves a
// policy of their own.
func DefaultWorkPolicy(organizationID string) policy.WorkPolicy {
	return policy.WorkPolicy{
		OrganizationID: organizationID,
		OnsiteStart:    strPtr("09:00"),
		OnsiteEnd:      strPtr("17:00"),
		RemoteStart:    strPtr("08:00"),
		RemoteEnd:      strPtr("16:00"),
		WorkingDays: []string{
			policy.Monday,
			policy.Tuesday,
			policy.Wednesday,
			policy.Thursday,
			policy.Friday,
		},
		WeekendDays: []string{
			policy.Saturday,
			policy.Sunday,
		},
	}
}
