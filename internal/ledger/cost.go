package ledger

import (
	"fmt"
	"time"

	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategorySource records whether the funding category was taken from the
// shift or inferred from its shift type.
type CategorySource string

const (
	CategorySourceExplicit CategorySource = "explicit"
	CategorySourceInferred CategorySource = "inferred"
)

// Cost is the billable amount for one shift.
type Cost struct {
	Hours          decimal.Decimal
	Rate           decimal.Decimal
	Multiplier     decimal.Decimal
	Amount         decimal.Decimal // rate × hours × multiplier, rounded to cents
	Category       types.FundingCategory
	CategorySource CategorySource
}

// maxShiftHours is the longest shift the funding model bills, a sleepover
// plus a full day shift never exceeds it.
var maxShiftHours = decimal.NewFromInt(24)

// ShiftCost computes the billable amount for a shift at the given rate.
//
// Duration comes from the scheduled start and end times, not from clock-in
// and clock-out: the funding model charges the booking. The funding
// category is taken from the shift when set and only inferred from the
// shift type when absent, so an explicit category is never overridden.
func ShiftCost(shift models.Shift, rate decimal.Decimal) (Cost, error) {
	if shift.EndTime == nil {
		return Cost{}, fmt.Errorf("%w: the shift has no end time", ErrInvalidDuration)
	}

	duration := shift.EndTime.Sub(shift.StartTime)
	hours := decimal.NewFromInt(int64(duration / time.Millisecond)).Div(decimal.NewFromInt(3_600_000))
	if !hours.IsPositive() || hours.GreaterThan(maxShiftHours) {
		return Cost{}, fmt.Errorf("%w, got %s hours", ErrInvalidDuration, hours)
	}

	multiplier, err := shift.StaffRatio.Multiplier()
	if err != nil {
		return Cost{}, err
	}

	category, source := fundingCategory(shift)

	return Cost{
		Hours:          hours,
		Rate:           rate,
		Multiplier:     multiplier,
		Amount:         rate.Mul(hours).Mul(multiplier).Round(2),
		Category:       category,
		CategorySource: source,
	}, nil
}

// fundingCategory returns the category a shift bills against.
func fundingCategory(shift models.Shift) (types.FundingCategory, CategorySource) {
	if shift.FundingCategory != nil {
		return *shift.FundingCategory, CategorySourceExplicit
	}

	// Day shifts default to Community Access, everything else to SIL
	switch shift.ShiftType {
	case types.ShiftTypeAM, types.ShiftTypePM:
		return types.CategoryCommunityAccess, CategorySourceInferred
	default:
		return types.CategorySIL, CategorySourceInferred
	}
}
