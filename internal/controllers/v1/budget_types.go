package v1

import (
	"fmt"

	"github.com/carebridge/backend/internal/models"
	cb_uuid "github.com/carebridge/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	TenantID uuid.UUID `json:"tenantId" example:"d1898c72-9988-46d7-ab32-6b179601684a"` // ID of the tenant the budget belongs to
	ClientID uuid.UUID `json:"clientId" example:"bd7ff23c-2bb2-48f0-858c-7160f7a96bc2"` // ID of the client the budget funds

	SILTotal                  decimal.Decimal `json:"silTotal" example:"52000.00" default:"0"`                 // Total SIL funding
	SILRemaining              decimal.Decimal `json:"silRemaining" example:"48210.50" default:"0"`             // Remaining SIL funding
	CommunityAccessTotal      decimal.Decimal `json:"communityAccessTotal" example:"12000.00" default:"0"`     // Total community access funding
	CommunityAccessRemaining  decimal.Decimal `json:"communityAccessRemaining" example:"11500.00" default:"0"` // Remaining community access funding
	CapacityBuildingTotal     decimal.Decimal `json:"capacityBuildingTotal" example:"4000.00" default:"0"`     // Total capacity building funding
	CapacityBuildingRemaining decimal.Decimal `json:"capacityBuildingRemaining" example:"4000.00" default:"0"` // Remaining capacity building funding

	PriceOverrides models.PriceOverrides `json:"priceOverrides" swaggertype:"object,string"` // Client specific hourly rates by shift type
	AllowedRatios  models.AllowedRatios  `json:"allowedRatios" swaggertype:"object"`         // Staff ratios billable per funding category
	Active         bool                  `json:"active" example:"true" default:"false"`      // Is the budget active?
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		TenantID:                  editable.TenantID,
		ClientID:                  editable.ClientID,
		SILTotal:                  editable.SILTotal,
		SILRemaining:              editable.SILRemaining,
		CommunityAccessTotal:      editable.CommunityAccessTotal,
		CommunityAccessRemaining:  editable.CommunityAccessRemaining,
		CapacityBuildingTotal:     editable.CapacityBuildingTotal,
		CapacityBuildingRemaining: editable.CapacityBuildingRemaining,
		PriceOverrides:            editable.PriceOverrides,
		AllowedRatios:             editable.AllowedRatios,
		Active:                    editable.Active,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/94b40f73-d6b6-4bcd-a3e1-87dcf7f06a2c"`                     // The budget itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?budget=94b40f73-d6b6-4bcd-a3e1-87dcf7f06a2c"` // Ledger transactions for this budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			TenantID:                  model.TenantID,
			ClientID:                  model.ClientID,
			SILTotal:                  model.SILTotal,
			SILRemaining:              model.SILRemaining,
			CommunityAccessTotal:      model.CommunityAccessTotal,
			CommunityAccessRemaining:  model.CommunityAccessRemaining,
			CapacityBuildingTotal:     model.CapacityBuildingTotal,
			CapacityBuildingRemaining: model.CapacityBuildingRemaining,
			PriceOverrides:            model.PriceOverrides,
			AllowedRatios:             model.AllowedRatios,
			Active:                    model.Active,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	TenantID cb_uuid.UUID `form:"tenant"`                     // By ID of the tenant
	ClientID cb_uuid.UUID `form:"client"`                     // By ID of the client
	Active   bool         `form:"active"`                     // Is the budget active?
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		TenantID: f.TenantID.UUID,
		ClientID: f.ClientID.UUID,
		Active:   f.Active,
	}
}
