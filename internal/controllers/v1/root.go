// Package v1 implements the v1 API of the carebridge backend.
package v1

import (
	"fmt"
	"net/http"

	"github.com/carebridge/backend/internal/httputil"
	"github.com/carebridge/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the routes for the v1 API root
// with the RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Tenants      string `json:"tenants" example:"https://example.com/api/v1/tenants"`           // URL of the tenant collection
	Clients      string `json:"clients" example:"https://example.com/api/v1/clients"`           // URL of the client collection
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // URL of the budget collection
	Pricing      string `json:"pricing" example:"https://example.com/api/v1/pricing"`           // URL of the pricing entry collection
	Shifts       string `json:"shifts" example:"https://example.com/api/v1/shifts"`             // URL of the shift collection
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of the ledger transaction collection
	Backfill     string `json:"backfill" example:"https://example.com/api/v1/backfill"`         // URL of the backfill endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Tenants:      fmt.Sprintf("%s/v1/tenants", url),
			Clients:      fmt.Sprintf("%s/v1/clients", url),
			Budgets:      fmt.Sprintf("%s/v1/budgets", url),
			Pricing:      fmt.Sprintf("%s/v1/pricing", url),
			Shifts:       fmt.Sprintf("%s/v1/shifts", url),
			Transactions: fmt.Sprintf("%s/v1/transactions", url),
			Backfill:     fmt.Sprintf("%s/v1/backfill", url),
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
