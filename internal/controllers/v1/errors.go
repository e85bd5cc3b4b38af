package v1

import (
	"errors"
	"net/http"

	"github.com/carebridge/backend/internal/ledger"
	"github.com/carebridge/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, ledger.ErrBudgetNotFound) {
		return http.StatusNotFound
	}

	// A completed shift stays completed, the deduction is what is
	// rejected
	if errors.Is(err, ledger.ErrInsufficientFunds) ||
		errors.Is(err, models.ErrShiftAlreadyLedgered) ||
		errors.Is(err, errShiftAlreadyCompleted) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Shift errors
var (
	errShiftAlreadyCompleted = errors.New("this shift has already been completed")
	errShiftEndTimeNotSet    = errors.New("the endTime parameter must be set to complete a shift")
)
