package v1

import (
	"fmt"

	"github.com/carebridge/backend/internal/models"
	cb_uuid "github.com/carebridge/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientEditable represents all user configurable parameters
type ClientEditable struct {
	TenantID   uuid.UUID `json:"tenantId" example:"d1898c72-9988-46d7-ab32-6b179601684a"` // ID of the tenant the client is enrolled with
	Name       string    `json:"name" example:"Riley Morgan" default:""`                  // Name of the client
	NDISNumber string    `json:"ndisNumber" example:"430123456" default:""`               // NDIS participant number, unique per tenant
	Note       string    `json:"note" example:"Prefers morning shifts" default:""`        // Notes about the client
}

func (editable ClientEditable) model() models.Client {
	return models.Client{
		TenantID:   editable.TenantID,
		Name:       editable.Name,
		NDISNumber: editable.NDISNumber,
		Note:       editable.Note,
	}
}

type ClientLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/clients/bd7ff23c-2bb2-48f0-858c-7160f7a96bc2"`          // The client itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets?client=bd7ff23c-2bb2-48f0-858c-7160f7a96bc2"` // Budget of this client
	Shifts string `json:"shifts" example:"https://example.com/api/v1/shifts?client=bd7ff23c-2bb2-48f0-858c-7160f7a96bc2"`  // Shifts of this client
}

type Client struct {
	models.DefaultModel
	ClientEditable
	Links ClientLinks `json:"links"`
}

func newClient(c *gin.Context, model models.Client) Client {
	url := c.GetString(string(models.DBContextURL))

	return Client{
		DefaultModel: model.DefaultModel,
		ClientEditable: ClientEditable{
			TenantID:   model.TenantID,
			Name:       model.Name,
			NDISNumber: model.NDISNumber,
			Note:       model.Note,
		},
		Links: ClientLinks{
			Self:   fmt.Sprintf("%s/v1/clients/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets?client=%s", url, model.ID),
			Shifts: fmt.Sprintf("%s/v1/shifts?client=%s", url, model.ID),
		},
	}
}

type ClientListResponse struct {
	Data       []Client    `json:"data"`                                                          // List of clients
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ClientCreateResponse struct {
	Data  []ClientResponse `json:"data"`                                                          // List of the created clients or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ClientCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ClientResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ClientResponse struct {
	Data  *Client `json:"data"`                                                          // Data for the client
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ClientQueryFilter struct {
	TenantID   cb_uuid.UUID `form:"tenant"`                     // By ID of the tenant
	Name       string       `form:"name" filterField:"false"`   // By name
	NDISNumber string       `form:"ndisNumber"`                 // By NDIS participant number
	Note       string       `form:"note" filterField:"false"`   // By note
	Search     string       `form:"search" filterField:"false"` // By string in name or note
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first client returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of clients to return. Defaults to 50.
}

func (f ClientQueryFilter) model() models.Client {
	return models.Client{
		TenantID:   f.TenantID.UUID,
		NDISNumber: f.NDISNumber,
	}
}
