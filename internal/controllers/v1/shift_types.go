package v1

import (
	"fmt"
	"time"

	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/internal/types"
	cb_uuid "github.com/carebridge/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftEditable represents all user configurable parameters
type ShiftEditable struct {
	TenantID uuid.UUID `json:"tenantId" example:"d1898c72-9988-46d7-ab32-6b179601684a"` // ID of the tenant the shift belongs to
	ClientID uuid.UUID `json:"clientId" example:"bd7ff23c-2bb2-48f0-858c-7160f7a96bc2"` // ID of the client the shift supports
	UserID   uuid.UUID `json:"userId" example:"00b1f4c2-7bd7-4e32-8f0b-c78da1b5f5be"`   // ID of the rostered staff member

	Title           string                 `json:"title" example:"Morning support" default:""` // Title of the shift
	ShiftType       types.ShiftType        `json:"shiftType" example:"AM"`                     // Shift type, used for the rate lookup
	StaffRatio      types.StaffRatio       `json:"staffRatio" example:"1:1"`                   // Staff to client ratio
	FundingCategory *types.FundingCategory `json:"fundingCategory" example:"SIL"`              // Funding category. When unset, it is inferred from the shift type at billing time.

	StartTime time.Time  `json:"startTime" example:"2024-05-06T08:00:00Z"` // Scheduled start
	EndTime   *time.Time `json:"endTime" example:"2024-05-06T12:00:00Z"`   // Scheduled end
}

// model returns the shift. New shifts are always open.
func (editable ShiftEditable) model() models.Shift {
	return models.Shift{
		TenantID:        editable.TenantID,
		ClientID:        editable.ClientID,
		UserID:          editable.UserID,
		Title:           editable.Title,
		ShiftType:       editable.ShiftType,
		StaffRatio:      editable.StaffRatio,
		FundingCategory: editable.FundingCategory,
		StartTime:       editable.StartTime,
		EndTime:         editable.EndTime,
		Active:          true,
	}
}

type ShiftLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/shifts/eca45862-0b98-47e4-9d25-10e31d32d35e"`              // The shift itself
	Complete string `json:"complete" example:"https://example.com/api/v1/shifts/eca45862-0b98-47e4-9d25-10e31d32d35e/complete"` // Endpoint to complete the shift
}

type Shift struct {
	models.DefaultModel
	ShiftEditable
	Links  ShiftLinks `json:"links"`
	Active bool       `json:"active" example:"true"` // Is the shift still open?
}

func newShift(c *gin.Context, model models.Shift) Shift {
	url := c.GetString(string(models.DBContextURL))

	return Shift{
		DefaultModel: model.DefaultModel,
		ShiftEditable: ShiftEditable{
			TenantID:        model.TenantID,
			ClientID:        model.ClientID,
			UserID:          model.UserID,
			Title:           model.Title,
			ShiftType:       model.ShiftType,
			StaffRatio:      model.StaffRatio,
			FundingCategory: model.FundingCategory,
			StartTime:       model.StartTime,
			EndTime:         model.EndTime,
		},
		Links: ShiftLinks{
			Self:     fmt.Sprintf("%s/v1/shifts/%s", url, model.ID),
			Complete: fmt.Sprintf("%s/v1/shifts/%s/complete", url, model.ID),
		},
		Active: model.Active,
	}
}

type ShiftListResponse struct {
	Data       []Shift     `json:"data"`                                                          // List of shifts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ShiftCreateResponse struct {
	Data  []ShiftResponse `json:"data"`                                                          // List of the created shifts or their respective error
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ShiftCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ShiftResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ShiftResponse struct {
	Data  *Shift  `json:"data"`                                                          // Data for the shift
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ShiftCompletionEditable represents the user configurable parameters for
// completing a shift
type ShiftCompletionEditable struct {
	EndTime *time.Time `json:"endTime" example:"2024-05-06T12:00:00Z"` // Actual end of the shift. Defaults to the scheduled end.
}

// ShiftCompletion is the result of completing a shift: the closed shift,
// the ledger transaction the deduction created and the updated budget.
type ShiftCompletion struct {
	Shift       Shift             `json:"shift"`       // The completed shift
	Transaction LedgerTransaction `json:"transaction"` // The deduction that was booked
	Budget      Budget            `json:"budget"`      // The budget after the deduction
}

type ShiftCompleteResponse struct {
	Data  *ShiftCompletion `json:"data"`                                                                // The completion result
	Error *string          `json:"error" example:"the remaining balance does not cover this deduction"` // The error, if any occurred
}

type ShiftQueryFilter struct {
	TenantID  cb_uuid.UUID `form:"tenant"`                     // By ID of the tenant
	ClientID  cb_uuid.UUID `form:"client"`                     // By ID of the client
	UserID    cb_uuid.UUID `form:"user"`                       // By ID of the rostered staff member
	ShiftType string       `form:"shiftType"`                  // By shift type
	Active    bool         `form:"active"`                     // Is the shift still open?
	Offset    uint         `form:"offset" filterField:"false"` // The offset of the first shift returned. Defaults to 0.
	Limit     int          `form:"limit" filterField:"false"`  // Maximum number of shifts to return. Defaults to 50.
}

func (f ShiftQueryFilter) model() (models.Shift, error) {
	var shiftType types.ShiftType
	if f.ShiftType != "" {
		parsed, err := types.ParseShiftType(f.ShiftType)
		if err != nil {
			return models.Shift{}, err
		}
		shiftType = parsed
	}

	return models.Shift{
		TenantID:  f.TenantID.UUID,
		ClientID:  f.ClientID.UUID,
		UserID:    f.UserID.UUID,
		ShiftType: shiftType,
		Active:    f.Active,
	}, nil
}
