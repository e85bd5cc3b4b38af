package v1

import (
	"net/http"
	"slices"

	"github.com/carebridge/backend/internal/httputil"
	"github.com/carebridge/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterLedgerTransactionRoutes registers the routes for ledger
// transactions with the RouterGroup that is passed.
//
// The ledger is append-only and only ever written by the deduction flow,
// so the transaction endpoints are read-only.
func RegisterLedgerTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLedgerTransactionList)
		r.GET("", GetLedgerTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsLedgerTransactionDetail)
		r.GET("/:id", GetLedgerTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsLedgerTransactionList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsLedgerTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.LedgerTransaction{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get transactions
// @Description	Returns a list of ledger transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	LedgerTransactionListResponse
// @Failure		400	{object}	LedgerTransactionListResponse
// @Failure		500	{object}	LedgerTransactionListResponse
// @Router			/v1/transactions [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			shift		query	string	false	"Filter by shift ID"
// @Param			category	query	string	false	"Filter by funding category"
// @Param			description	query	string	false	"Glob pattern matched against the description"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50."
func GetLedgerTransactions(c *gin.Context) {
	var filter LedgerTransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerTransactionListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transactions []models.LedgerTransaction
	err = q.Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerTransactionListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerTransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]LedgerTransaction, 0)
	for _, transaction := range transactions {
		// The description is matched in the backend since SQLite LIKE
		// does not support globbing
		if filter.Description != "" && !glob.Glob(filter.Description, transaction.Description) {
			continue
		}

		data = append(data, newLedgerTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, LedgerTransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific ledger transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	LedgerTransactionResponse
// @Failure		400	{object}	LedgerTransactionResponse
// @Failure		404	{object}	LedgerTransactionResponse
// @Failure		500	{object}	LedgerTransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetLedgerTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerTransactionResponse{
			Error: &s,
		})
		return
	}

	var transaction models.LedgerTransaction
	err = models.DB.First(&transaction, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerTransactionResponse{
			Error: &s,
		})
		return
	}

	data := newLedgerTransaction(c, transaction)
	c.JSON(http.StatusOK, LedgerTransactionResponse{Data: &data})
}
