package models

import (
	"fmt"

	"github.com/carebridge/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PricingEntry is one cell of the tenant rate matrix: the hourly rate for
// an exact (shift type, staff ratio) pair.
//
// Ledger transactions copy the rate they were computed with, so changing a
// pricing entry only affects future lookups.
type PricingEntry struct {
	DefaultModel
	TenantID   uuid.UUID `gorm:"uniqueIndex:pricing_tenant_type_ratio"`
	Tenant     Tenant
	ShiftType  types.ShiftType  `gorm:"uniqueIndex:pricing_tenant_type_ratio"`
	StaffRatio types.StaffRatio `gorm:"uniqueIndex:pricing_tenant_type_ratio"`
	Rate       decimal.Decimal  `gorm:"type:DECIMAL(20,8)"` // hourly rate
	Active     bool
}

func (p PricingEntry) Self() string {
	return "Pricing Entry"
}

func (p *PricingEntry) BeforeSave(_ *gorm.DB) error {
	if !p.Rate.IsPositive() {
		return fmt.Errorf("%w: %s", ErrPricingRateNotPositive, p.Rate)
	}

	return nil
}
