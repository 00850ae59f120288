package policy

import "errors"

var (
	ErrPolicyNotFound = errors.New("work policy not found for organization")
)
