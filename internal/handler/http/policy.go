package http

import (
	"encoding/json"
	"net/http"

	"github.com/tempohq/tempo-backend-go/internal/domain/policy"
	"github.com/tempohq/tempo-backend-go/internal/handler/http/response"
)

type PolicyHandler interface {
	GetMyPolicy(w http.ResponseWriter, r *http.Request)
	UpdateMyPolicy(w http.ResponseWriter, r *http.Request)
}

type policyHandlerImpl struct {
	policyService policy.PolicyService
}

func NewPolicyHandler(policyService policy.PolicyService) PolicyHandler {
	return &policyHandlerImpl{
		policyService: policyService,
	}
}

// GetMyPolicy implements PolicyHandler. Organizations without a stored
// policy get the defaults, never a 404.
func (h *policyHandlerImpl) GetMyPolicy(w http.ResponseWriter, r *http.Request) {
	resp, err := h.policyService.GetMyPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateMyPolicy implements PolicyHandler.
func (h *policyHandlerImpl) UpdateMyPolicy(w http.ResponseWriter, r *http.Request) {
	var req policy.UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.policyService.UpdateMyPolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work policy updated", resp)
}
