package v1

import (
	"fmt"

	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/internal/types"
	cb_uuid "github.com/carebridge/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LedgerTransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4312-9857-84aca1e33fef"` // The transaction itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/94b40f73-d6b6-4bcd-a3e1-87dcf7f06a2c"`    // The budget the transaction was booked against
}

// LedgerTransaction is the read-only representation of a booked deduction.
// The ledger is append-only, so there is no Editable counterpart.
type LedgerTransaction struct {
	models.DefaultModel

	BudgetID   uuid.UUID  `json:"budgetId" example:"94b40f73-d6b6-4bcd-a3e1-87dcf7f06a2c"` // ID of the budget the deduction was booked against
	ShiftID    *uuid.UUID `json:"shiftId" example:"eca45862-0b98-47e4-9d25-10e31d32d35e"`  // ID of the shift that was billed, if any
	CaseNoteID *uuid.UUID `json:"caseNoteId"`                                              // ID of the case note the deduction belongs to, if any

	Type       models.TransactionType `json:"type" example:"deduction"` // Type of the transaction
	Category   types.FundingCategory  `json:"category" example:"SIL"`   // Funding category the amount was deducted from
	ShiftType  types.ShiftType        `json:"shiftType" example:"AM"`   // Shift type the deduction was computed with
	StaffRatio types.StaffRatio       `json:"staffRatio" example:"1:1"` // Staff ratio the deduction was computed with

	Hours  decimal.Decimal `json:"hours" example:"4"`       // Billed hours
	Rate   decimal.Decimal `json:"rate" example:"65.47"`    // Hourly rate the deduction was computed with
	Amount decimal.Decimal `json:"amount" example:"261.88"` // Deducted amount

	Description string    `json:"description" example:"Morning support: 4 hours AM at 65.47/h, ratio 1:1 (tenant pricing rate, explicit funding category)"` // Audit line for the deduction
	CreatedBy   uuid.UUID `json:"createdBy"`                                                                                                                // ID of the user the deduction was booked for

	Links LedgerTransactionLinks `json:"links"`
}

func newLedgerTransaction(c *gin.Context, model models.LedgerTransaction) LedgerTransaction {
	url := c.GetString(string(models.DBContextURL))

	return LedgerTransaction{
		DefaultModel: model.DefaultModel,
		BudgetID:     model.BudgetID,
		ShiftID:      model.ShiftID,
		CaseNoteID:   model.CaseNoteID,
		Type:         model.Type,
		Category:     model.Category,
		ShiftType:    model.ShiftType,
		StaffRatio:   model.StaffRatio,
		Hours:        model.Hours,
		Rate:         model.Rate,
		Amount:       model.Amount,
		Description:  model.Description,
		CreatedBy:    model.CreatedBy,
		Links: LedgerTransactionLinks{
			Self:   fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type LedgerTransactionListResponse struct {
	Data       []LedgerTransaction `json:"data"`                                                          // List of transactions
	Error      *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination         `json:"pagination"`                                                    // Pagination information
}

type LedgerTransactionResponse struct {
	Data  *LedgerTransaction `json:"data"`                                                          // Data for the transaction
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type LedgerTransactionQueryFilter struct {
	BudgetID    cb_uuid.UUID `form:"budget"`                          // By ID of the budget
	ShiftID     cb_uuid.UUID `form:"shift"`                           // By ID of the shift
	Category    string       `form:"category"`                        // By funding category
	Description string       `form:"description" filterField:"false"` // Glob pattern matched against the description, e.g. "*inferred*"
	Offset      uint         `form:"offset" filterField:"false"`      // The offset of the first transaction returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`       // Maximum number of transactions to return. Defaults to 50.
}

func (f LedgerTransactionQueryFilter) model() (models.LedgerTransaction, error) {
	var category types.FundingCategory
	if f.Category != "" {
		parsed, err := types.ParseFundingCategory(f.Category)
		if err != nil {
			return models.LedgerTransaction{}, err
		}
		category = parsed
	}

	var shiftID *uuid.UUID
	if f.ShiftID.UUID != uuid.Nil {
		shiftID = &f.ShiftID.UUID
	}

	return models.LedgerTransaction{
		BudgetID: f.BudgetID.UUID,
		ShiftID:  shiftID,
		Category: category,
	}, nil
}
