package policy

import (
	"github.com/tempohq/tempo-backend-go/internal/pkg/validator"
)

// UpdatePolicyRequest carries the HR-edited work policy. Timing strings use
// "HH:MM". Day lists are normalized before persisting, so overlapping or
// unordered input is accepted.
type UpdatePolicyRequest struct {
	OnsiteStart *string  `json:"onsite_start,omitempty"`
	OnsiteEnd   *string  `json:"onsite_end,omitempty"`
	RemoteStart *string  `json:"remote_start,omitempty"`
	RemoteEnd   *string  `json:"remote_end,omitempty"`
	WorkingDays []string `json:"working_days,omitempty"`
	WeekendDays []string `json:"weekend_days,omitempty"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*string{
		"onsite_start": r.OnsiteStart,
		"onsite_end":   r.OnsiteEnd,
		"remote_start": r.RemoteStart,
		"remote_end":   r.RemoteEnd,
	} {
		if v != nil && *v != "" && !validator.IsValidClockTime(*v) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be a wall-clock time in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	OrganizationID string   `json:"organization_id"`
	OnsiteStart    string   `json:"onsite_start"`
	OnsiteEnd      *string  `json:"onsite_end,omitempty"`
	RemoteStart    string   `json:"remote_start"`
	RemoteEnd      *string  `json:"remote_end,omitempty"`
	WorkingDays    []string `json:"working_days"`
	WeekendDays    []string `json:"weekend_days"`
	UpdatedAt      string   `json:"updated_at"`
}
