package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/carebridge/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceOverrides maps a shift type to a client specific hourly rate that
// takes precedence over the tenant pricing table. Stored as JSON.
type PriceOverrides map[types.ShiftType]decimal.Decimal

// Value returns the value for the SQL driver to write to the database.
func (o PriceOverrides) Value() (driver.Value, error) {
	if len(o) == 0 {
		return nil, nil
	}

	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

// Scan reads the value from the database.
func (o *PriceOverrides) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}

	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), o)
	case []byte:
		return json.Unmarshal(v, o)
	}

	return fmt.Errorf("cannot scan %T into PriceOverrides", value)
}

// GormDataType defines the data type used by gorm for the type.
func (PriceOverrides) GormDataType() string {
	return "string"
}

// AllowedRatios maps a funding category to the staff ratios that may be
// billed against it. An absent category allows all ratios. Stored as JSON.
type AllowedRatios map[types.FundingCategory][]types.StaffRatio

// Value returns the value for the SQL driver to write to the database.
func (a AllowedRatios) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}

	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

// Scan reads the value from the database.
func (a *AllowedRatios) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), a)
	case []byte:
		return json.Unmarshal(v, a)
	}

	return fmt.Errorf("cannot scan %T into AllowedRatios", value)
}

// GormDataType defines the data type used by gorm for the type.
func (AllowedRatios) GormDataType() string {
	return "string"
}

// Budget holds the NDIS funding pool for one client.
//
// There is exactly one budget per client. The remaining balances are only
// ever changed by the ledger's Deduct operation, which performs the fund
// check and the decrement in one conditional UPDATE.
type Budget struct {
	DefaultModel
	TenantID uuid.UUID
	Tenant   Tenant
	ClientID uuid.UUID `gorm:"uniqueIndex"`
	Client   Client

	SILTotal                  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SILRemaining              decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CommunityAccessTotal      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CommunityAccessRemaining  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CapacityBuildingTotal     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CapacityBuildingRemaining decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	PriceOverrides PriceOverrides
	AllowedRatios  AllowedRatios
	Active         bool
}

func (b Budget) Self() string {
	return "Budget"
}

// Total returns the total balance for a funding category.
func (b Budget) Total(category types.FundingCategory) decimal.Decimal {
	switch category {
	case types.CategorySIL:
		return b.SILTotal
	case types.CategoryCommunityAccess:
		return b.CommunityAccessTotal
	case types.CategoryCapacityBuilding:
		return b.CapacityBuildingTotal
	}

	return decimal.Zero
}

// Remaining returns the remaining balance for a funding category.
func (b Budget) Remaining(category types.FundingCategory) decimal.Decimal {
	switch category {
	case types.CategorySIL:
		return b.SILRemaining
	case types.CategoryCommunityAccess:
		return b.CommunityAccessRemaining
	case types.CategoryCapacityBuilding:
		return b.CapacityBuildingRemaining
	}

	return decimal.Zero
}

// RatioAllowed reports whether a staff ratio may be billed against a
// funding category. A category without configured ratios allows all.
func (b Budget) RatioAllowed(category types.FundingCategory, ratio types.StaffRatio) bool {
	ratios, ok := b.AllowedRatios[category]
	if !ok || len(ratios) == 0 {
		return true
	}

	return slices.Contains(ratios, ratio)
}

// BeforeSave verifies that 0 <= remaining <= total holds for every category.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	for _, category := range types.FundingCategories() {
		remaining := b.Remaining(category)
		if remaining.IsNegative() || remaining.GreaterThan(b.Total(category)) {
			return fmt.Errorf("%w: %s", ErrBudgetBalanceInvalid, category)
		}
	}

	return nil
}
