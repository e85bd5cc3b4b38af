package v1

import (
	"fmt"

	"github.com/carebridge/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// TenantEditable represents all user configurable parameters
type TenantEditable struct {
	Name     string `json:"name" example:"Sunrise Care Services" default:""`            // Name of the tenant
	Note     string `json:"note" example:"Provider for the northern region" default:""` // Notes about the tenant
	Currency string `json:"currency" example:"AUD" default:"AUD"`                       // ISO 4217 currency code used by the tenant
}

func (editable TenantEditable) model() models.Tenant {
	return models.Tenant{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}
}

type TenantLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/tenants/d1898c72-9988-46d7-ab32-6b179601684a"`           // The tenant itself
	Clients string `json:"clients" example:"https://example.com/api/v1/clients?tenant=d1898c72-9988-46d7-ab32-6b179601684a"` // Clients of this tenant
	Pricing string `json:"pricing" example:"https://example.com/api/v1/pricing?tenant=d1898c72-9988-46d7-ab32-6b179601684a"` // Pricing entries of this tenant
	Shifts  string `json:"shifts" example:"https://example.com/api/v1/shifts?tenant=d1898c72-9988-46d7-ab32-6b179601684a"`   // Shifts of this tenant
}

type Tenant struct {
	models.DefaultModel
	TenantEditable
	Links TenantLinks `json:"links"`
}

func newTenant(c *gin.Context, model models.Tenant) Tenant {
	url := c.GetString(string(models.DBContextURL))

	return Tenant{
		DefaultModel: model.DefaultModel,
		TenantEditable: TenantEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Links: TenantLinks{
			Self:    fmt.Sprintf("%s/v1/tenants/%s", url, model.ID),
			Clients: fmt.Sprintf("%s/v1/clients?tenant=%s", url, model.ID),
			Pricing: fmt.Sprintf("%s/v1/pricing?tenant=%s", url, model.ID),
			Shifts:  fmt.Sprintf("%s/v1/shifts?tenant=%s", url, model.ID),
		},
	}
}

type TenantListResponse struct {
	Data       []Tenant    `json:"data"`                                                          // List of tenants
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TenantCreateResponse struct {
	Data  []TenantResponse `json:"data"`                                                          // List of the created tenants or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TenantCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TenantResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TenantResponse struct {
	Data  *Tenant `json:"data"`                                                          // Data for the tenant
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TenantQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By currency code
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first tenant returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of tenants to return. Defaults to 50.
}

func (f TenantQueryFilter) model() models.Tenant {
	return models.Tenant{
		Currency: f.Currency,
	}
}
