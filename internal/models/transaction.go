package models

import (
	"strings"

	"github.com/carebridge/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the kind of ledger transaction.
type TransactionType string

// Deductions are the only transaction type so far. Manual top-ups would be
// a second type once they move into the ledger.
const TransactionTypeDeduction TransactionType = "deduction"

// LedgerTransaction is an immutable record of one budget deduction.
//
// Transactions are append-only: the sum of all deductions for a budget's
// category subtracted from its total always equals the remaining balance.
type LedgerTransaction struct {
	DefaultModel
	BudgetID uuid.UUID
	Budget   Budget

	ShiftID    *uuid.UUID `gorm:"uniqueIndex"` // at most one deduction per shift
	CaseNoteID *uuid.UUID

	Type       TransactionType
	Category   types.FundingCategory
	ShiftType  types.ShiftType
	StaffRatio types.StaffRatio

	Hours  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Rate   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	Description string
	CreatedBy   uuid.UUID
}

func (t LedgerTransaction) Self() string {
	return "Ledger Transaction"
}

func (t *LedgerTransaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Type == "" {
		t.Type = TransactionTypeDeduction
	}

	return nil
}

// BeforeUpdate blocks updates, the ledger is append-only.
func (t *LedgerTransaction) BeforeUpdate(_ *gorm.DB) error {
	return ErrLedgerTransactionImmutable
}
