// Package ledger implements the NDIS budget deduction ledger: rate
// resolution, shift cost calculation, the atomic deduction and the
// backfill reconciliation of completed shifts.
package ledger

import (
	"errors"
	"fmt"

	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RateSource records where a resolved rate came from, so the choice is
// auditable in the transaction description.
type RateSource string

const (
	RateSourceOverride RateSource = "client override"
	RateSourcePricing  RateSource = "tenant pricing"
)

// ResolveRate returns the effective hourly rate for a shift type and staff
// ratio on a client's budget.
//
// A positive client price override for the shift type wins. Otherwise the
// tenant pricing table is queried for the exact (shift type, ratio) pair;
// there is no fallback ratio substitution.
func ResolveRate(db *gorm.DB, budget models.Budget, shiftType types.ShiftType, ratio types.StaffRatio) (decimal.Decimal, RateSource, error) {
	if rate, ok := budget.PriceOverrides[shiftType]; ok && rate.IsPositive() {
		return rate, RateSourceOverride, nil
	}

	var entry models.PricingEntry
	err := db.Where(&models.PricingEntry{
		TenantID:   budget.TenantID,
		ShiftType:  shiftType,
		StaffRatio: ratio,
		Active:     true,
	}).First(&entry).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return decimal.Zero, "", fmt.Errorf("%w for %s at %s", ErrNoRateConfigured, shiftType, ratio)
	}

	if err != nil {
		return decimal.Zero, "", err
	}

	return entry.Rate, RateSourcePricing, nil
}
