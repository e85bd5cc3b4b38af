package ledger

import (
	"errors"
	"fmt"

	"github.com/carebridge/backend/internal/models"
	"gorm.io/gorm"
)

// DeductShift bills one completed shift against the client's budget:
// resolve the rate, compute the cost, deduct.
//
// It is used by the live shift completion flow and replayed by the
// backfill reconciler for shifts that were completed without a deduction.
func DeductShift(db *gorm.DB, shift models.Shift) (models.LedgerTransaction, models.Budget, error) {
	var budget models.Budget
	err := db.Where(&models.Budget{
		TenantID: shift.TenantID,
		ClientID: shift.ClientID,
		Active:   true,
	}).First(&budget).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.LedgerTransaction{}, models.Budget{}, fmt.Errorf("%w: client %s", ErrBudgetNotFound, shift.ClientID)
	}

	if err != nil {
		return models.LedgerTransaction{}, models.Budget{}, err
	}

	rate, rateSource, err := ResolveRate(db, budget, shift.ShiftType, shift.StaffRatio)
	if err != nil {
		return models.LedgerTransaction{}, models.Budget{}, err
	}

	cost, err := ShiftCost(shift, rate)
	if err != nil {
		return models.LedgerTransaction{}, models.Budget{}, err
	}

	if !budget.RatioAllowed(cost.Category, shift.StaffRatio) {
		return models.LedgerTransaction{}, models.Budget{}, fmt.Errorf("%w: %s for %s", ErrRatioNotAllowed, shift.StaffRatio, cost.Category)
	}

	detail := DeductionDetail{
		ShiftID:     &shift.ID,
		ShiftType:   shift.ShiftType,
		StaffRatio:  shift.StaffRatio,
		Hours:       cost.Hours,
		Rate:        rate,
		Description: deductionDescription(shift, cost, rateSource),
		CreatedBy:   shift.UserID,
	}

	return Deduct(db, budget.ID, cost.Category, cost.Amount, detail)
}

// deductionDescription renders the audit line recorded with the
// transaction. It names the rate source and whether the funding category
// was explicit on the shift or inferred from the shift type.
func deductionDescription(shift models.Shift, cost Cost, rateSource RateSource) string {
	title := shift.Title
	if title == "" {
		title = "Shift"
	}

	return fmt.Sprintf("%s: %s hours %s at %s/h, ratio %s (%s rate, %s funding category)",
		title, cost.Hours, shift.ShiftType, cost.Rate.StringFixed(2), shift.StaffRatio, rateSource, cost.CategorySource)
}
