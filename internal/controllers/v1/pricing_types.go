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

// PricingEntryEditable represents all user configurable parameters
type PricingEntryEditable struct {
	TenantID   uuid.UUID        `json:"tenantId" example:"d1898c72-9988-46d7-ab32-6b179601684a"` // ID of the tenant the pricing entry belongs to
	ShiftType  types.ShiftType  `json:"shiftType" example:"AM"`                                  // Shift type the rate applies to
	StaffRatio types.StaffRatio `json:"staffRatio" example:"1:1"`                                // Staff ratio the rate applies to
	Rate       decimal.Decimal  `json:"rate" example:"65.47"`                                    // Hourly rate
	Active     bool             `json:"active" example:"true" default:"false"`                   // Is the pricing entry active?
}

func (editable PricingEntryEditable) model() models.PricingEntry {
	return models.PricingEntry{
		TenantID:   editable.TenantID,
		ShiftType:  editable.ShiftType,
		StaffRatio: editable.StaffRatio,
		Rate:       editable.Rate,
		Active:     editable.Active,
	}
}

type PricingEntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/pricing/889f88dc-3416-4c4a-955f-63dfe1eb2f14"` // The pricing entry itself
}

type PricingEntry struct {
	models.DefaultModel
	PricingEntryEditable
	Links PricingEntryLinks `json:"links"`
}

func newPricingEntry(c *gin.Context, model models.PricingEntry) PricingEntry {
	url := c.GetString(string(models.DBContextURL))

	return PricingEntry{
		DefaultModel: model.DefaultModel,
		PricingEntryEditable: PricingEntryEditable{
			TenantID:   model.TenantID,
			ShiftType:  model.ShiftType,
			StaffRatio: model.StaffRatio,
			Rate:       model.Rate,
			Active:     model.Active,
		},
		Links: PricingEntryLinks{
			Self: fmt.Sprintf("%s/v1/pricing/%s", url, model.ID),
		},
	}
}

type PricingEntryListResponse struct {
	Data       []PricingEntry `json:"data"`                                                          // List of pricing entries
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type PricingEntryCreateResponse struct {
	Data  []PricingEntryResponse `json:"data"`                                                          // List of the created pricing entries or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *PricingEntryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, PricingEntryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PricingEntryResponse struct {
	Data  *PricingEntry `json:"data"`                                                          // Data for the pricing entry
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PricingEntryQueryFilter struct {
	TenantID   cb_uuid.UUID `form:"tenant"`                     // By ID of the tenant
	ShiftType  string       `form:"shiftType"`                  // By shift type
	StaffRatio string       `form:"staffRatio"`                 // By staff ratio
	Active     bool         `form:"active"`                     // Is the pricing entry active?
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first pricing entry returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of pricing entries to return. Defaults to 50.
}

func (f PricingEntryQueryFilter) model() (models.PricingEntry, error) {
	var shiftType types.ShiftType
	if f.ShiftType != "" {
		parsed, err := types.ParseShiftType(f.ShiftType)
		if err != nil {
			return models.PricingEntry{}, err
		}
		shiftType = parsed
	}

	var ratio types.StaffRatio
	if f.StaffRatio != "" {
		parsed, err := types.ParseStaffRatio(f.StaffRatio)
		if err != nil {
			return models.PricingEntry{}, err
		}
		ratio = parsed
	}

	return models.PricingEntry{
		TenantID:   f.TenantID.UUID,
		ShiftType:  shiftType,
		StaffRatio: ratio,
		Active:     f.Active,
	}, nil
}
