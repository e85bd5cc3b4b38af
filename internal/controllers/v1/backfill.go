package v1

import (
	"net/http"

	"github.com/carebridge/backend/internal/httputil"
	"github.com/carebridge/backend/internal/ledger"
	"github.com/carebridge/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterBackfillRoutes registers the routes for the backfill
// reconciler with the RouterGroup that is passed.
func RegisterBackfillRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBackfill)
	r.POST("", CreateBackfill)
}

type BackfillResponse struct {
	Data  []ledger.BackfillResult `json:"data"`                                                          // One result per processed tenant
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Backfill
// @Success		204
// @Router			/v1/backfill [options]
func OptionsBackfill(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Run backfill
// @Description	Replays deductions for completed shifts that have none. The run is idempotent, shifts that already have a transaction are untouched and failing shifts are skipped and retried on the next run.
// @Tags			Backfill
// @Produce		json
// @Success		200		{object}	BackfillResponse
// @Failure		400		{object}	BackfillResponse
// @Failure		404		{object}	BackfillResponse
// @Failure		500		{object}	BackfillResponse
// @Param			tenant	query		string	false	"Limit the run to this tenant ID"
// @Router			/v1/backfill [post]
func CreateBackfill(c *gin.Context) {
	tenantID, err := httputil.UUIDFromString(c.Query("tenant"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BackfillResponse{
			Error: &s,
		})
		return
	}

	if tenantID != uuid.Nil {
		err := models.DB.First(&models.Tenant{}, tenantID).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BackfillResponse{
				Error: &s,
			})
			return
		}

		result, err := ledger.BackfillTenant(models.DB, tenantID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BackfillResponse{
				Error: &s,
			})
			return
		}

		c.JSON(http.StatusOK, BackfillResponse{Data: []ledger.BackfillResult{result}})
		return
	}

	results, err := ledger.Backfill(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BackfillResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BackfillResponse{Data: results})
}
