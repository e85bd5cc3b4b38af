package ledger

import "errors"

var (
	ErrBudgetNotFound    = errors.New("no active budget exists for this client")
	ErrNoRateConfigured  = errors.New("no hourly rate is configured")
	ErrInvalidDuration   = errors.New("the shift duration must be positive and at most 24 hours")
	ErrInsufficientFunds = errors.New("the remaining balance does not cover this deduction")
	ErrInvalidAmount     = errors.New("the deduction amount must be positive")
	ErrRatioNotAllowed   = errors.New("the staff ratio is not allowed for this funding category")
)
