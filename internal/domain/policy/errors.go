package policy

import "errors"

var (
	ErrPolicyNotFound = errors.New("overtime policy not found")
	ErrNoActivePolicy = errors.New("no active overtime policy for contract")
)
