package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrClientNDISNumberNotUnique = errors.New("a client with this NDIS number already exists for this tenant")
	ErrBudgetExistsForClient     = errors.New("the client already has a budget")
	ErrPricingEntryNotUnique     = errors.New("a pricing entry for this shift type and staff ratio already exists for this tenant")
	ErrShiftAlreadyLedgered      = errors.New("a ledger transaction already exists for this shift")
	ErrShiftEndsBeforeStart      = errors.New("the shift must end after it starts")

	ErrTenantCurrencyInvalid      = errors.New("the currency must be a valid ISO 4217 code")
	ErrBudgetBalanceInvalid       = errors.New("the remaining balance must be between zero and the total")
	ErrPricingRateNotPositive     = errors.New("the hourly rate must be positive")
	ErrLedgerTransactionImmutable = errors.New("ledger transactions cannot be changed")
)
