package ledger

import (
	"fmt"

	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeductionDetail carries the metadata recorded with a deduction.
type DeductionDetail struct {
	ShiftID     *uuid.UUID
	CaseNoteID  *uuid.UUID
	ShiftType   types.ShiftType
	StaffRatio  types.StaffRatio
	Hours       decimal.Decimal
	Rate        decimal.Decimal
	Description string
	CreatedBy   uuid.UUID
}

// Deduct debits a budget's category balance and records the transaction.
//
// This is the only operation that changes a balance. The fund check and the
// decrement happen in one conditional UPDATE, so two concurrent deductions
// can never drive a balance negative: the UPDATE only matches when the
// remaining balance covers the amount, and a zero row count means the
// deduction did not happen. The transaction row is only written after the
// UPDATE matched, inside the same database transaction.
func Deduct(db *gorm.DB, budgetID uuid.UUID, category types.FundingCategory, amount decimal.Decimal, detail DeductionDetail) (models.LedgerTransaction, models.Budget, error) {
	if !category.Valid() {
		return models.LedgerTransaction{}, models.Budget{}, fmt.Errorf("%w: %q", types.ErrInvalidFundingCategory, string(category))
	}

	if !amount.IsPositive() {
		return models.LedgerTransaction{}, models.Budget{}, fmt.Errorf("%w, got %s", ErrInvalidAmount, amount)
	}

	var transaction models.LedgerTransaction
	var budget models.Budget

	err := db.Transaction(func(tx *gorm.DB) error {
		column := remainingColumn(category)

		res := tx.Model(&models.Budget{}).
			Where("id = ? AND active = ?", budgetID, true).
			Where(column+" >= ?", amount).
			Update(column, gorm.Expr(column+" - ?", amount))
		if res.Error != nil {
			return res.Error
		}

		// Zero rows means the budget does not exist or the balance does
		// not cover the amount. Look the budget up to tell the two apart.
		if res.RowsAffected == 0 {
			var count int64
			err := tx.Model(&models.Budget{}).Where("id = ? AND active = ?", budgetID, true).Count(&count).Error
			if err != nil {
				return err
			}

			if count == 0 {
				deductionsTotal.WithLabelValues(string(category), "budget_not_found").Inc()
				return ErrBudgetNotFound
			}

			deductionsTotal.WithLabelValues(string(category), "insufficient_funds").Inc()
			return fmt.Errorf("%w: %s %s", ErrInsufficientFunds, category, amount)
		}

		transaction = models.LedgerTransaction{
			BudgetID:    budgetID,
			ShiftID:     detail.ShiftID,
			CaseNoteID:  detail.CaseNoteID,
			Type:        models.TransactionTypeDeduction,
			Category:    category,
			ShiftType:   detail.ShiftType,
			StaffRatio:  detail.StaffRatio,
			Hours:       detail.Hours,
			Rate:        detail.Rate,
			Amount:      amount,
			Description: detail.Description,
			CreatedBy:   detail.CreatedBy,
		}

		err := tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		return tx.First(&budget, "id = ?", budgetID).Error
	})
	if err != nil {
		return models.LedgerTransaction{}, models.Budget{}, err
	}

	deductionsTotal.WithLabelValues(string(category), "success").Inc()
	return transaction, budget, nil
}

// remainingColumn maps a funding category to its balance column. The
// category is a closed type, checked before this is called.
func remainingColumn(category types.FundingCategory) string {
	switch category {
	case types.CategorySIL:
		return "sil_remaining"
	case types.CategoryCommunityAccess:
		return "community_access_remaining"
	case types.CategoryCapacityBuilding:
		return "capacity_building_remaining"
	}

	return ""
}
