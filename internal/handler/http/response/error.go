package response

import (
	"errors"
	"net/http"

	"github.com/tempohq/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohq/tempo-backend-go/internal/domain/employee"
	"github.com/tempohq/tempo-backend-go/internal/domain/organization"
	"github.com/tempohq/tempo-backend-go/internal/domain/policy"
	"github.com/tempohq/tempo-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Attendance already recorded today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in found for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Directory and tenant errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Work policy not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
