package v1

import (
	"net/http"
	"slices"

	"github.com/carebridge/backend/internal/httputil"
	"github.com/carebridge/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterPricingEntryRoutes registers the routes for pricing entries with
// the RouterGroup that is passed.
func RegisterPricingEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPricingEntryList)
		r.GET("", GetPricingEntries)
		r.POST("", CreatePricingEntries)
	}

	// Pricing entry with ID
	{
		r.OPTIONS("/:id", OptionsPricingEntryDetail)
		r.GET("/:id", GetPricingEntry)
		r.PATCH("/:id", UpdatePricingEntry)
		r.DELETE("/:id", DeletePricingEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pricing
// @Success		204
// @Router			/v1/pricing [options]
func OptionsPricingEntryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pricing
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pricing/{id} [options]
func OptionsPricingEntryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.PricingEntry{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create pricing entries
// @Description	Creates new pricing entries. A tenant can only have one entry per shift type and staff ratio.
// @Tags			Pricing
// @Produce		json
// @Success		201		{object}	PricingEntryCreateResponse
// @Failure		400		{object}	PricingEntryCreateResponse
// @Failure		404		{object}	PricingEntryCreateResponse
// @Failure		500		{object}	PricingEntryCreateResponse
// @Param			pricing	body		[]PricingEntryEditable	true	"Pricing entries"
// @Router			/v1/pricing [post]
func CreatePricingEntries(c *gin.Context) {
	var editables []PricingEntryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PricingEntryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PricingEntryCreateResponse{}

	for _, editable := range editables {
		entry := editable.model()

		err = models.DB.Create(&entry).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPricingEntry(c, entry)
		r.Data = append(r.Data, PricingEntryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get pricing entries
// @Description	Returns a list of pricing entries
// @Tags			Pricing
// @Produce		json
// @Success		200	{object}	PricingEntryListResponse
// @Failure		400	{object}	PricingEntryListResponse
// @Failure		500	{object}	PricingEntryListResponse
// @Router			/v1/pricing [get]
// @Param			tenant		query	string	false	"Filter by tenant ID"
// @Param			shiftType	query	string	false	"Filter by shift type"
// @Param			staffRatio	query	string	false	"Filter by staff ratio"
// @Param			active		query	bool	false	"Is the pricing entry active?"
// @Param			offset		query	uint	false	"The offset of the first pricing entry returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of pricing entries to return. Defaults to 50."
func GetPricingEntries(c *gin.Context) {
	var filter PricingEntryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingEntryListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("shift_type ASC, staff_ratio ASC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 pricing entries and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var entries []models.PricingEntry
	err = q.Find(&entries).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingEntryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PricingEntryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]PricingEntry, 0)
	for _, entry := range entries {
		data = append(data, newPricingEntry(c, entry))
	}

	c.JSON(http.StatusOK, PricingEntryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get pricing entry
// @Description	Returns a specific pricing entry
// @Tags			Pricing
// @Produce		json
// @Success		200	{object}	PricingEntryResponse
// @Failure		400	{object}	PricingEntryResponse
// @Failure		404	{object}	PricingEntryResponse
// @Failure		500	{object}	PricingEntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pricing/{id} [get]
func GetPricingEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingEntryResponse{
			Error: &s,
		})
		return
	}

	var entry models.PricingEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingEntryResponse{
			Error: &s,
		})
		return
	}

	data := newPricingEntry(c, entry)
	c.JSON(http.StatusOK, PricingEntryResponse{Data: &data})
}

// @Summary		Update pricing entry
// @Description	Update an existing pricing entry. Only values to be updated need to be specified.
// @Tags			Pricing
// @Accept			json
// @Produce		json
// @Success		200		{object}	PricingEntryResponse
// @Failure		400		{object}	PricingEntryResponse
// @Failure		404		{object}	PricingEntryResponse
// @Failure		500		{object}	PricingEntryResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			pricing	body		PricingEntryEditable	true	"Pricing entry"
// @Router			/v1/pricing/{id} [patch]
func UpdatePricingEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingEntryResponse{
			Error: &s,
		})
		return
	}

	var entry models.PricingEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingEntryResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PricingEntryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingEntryResponse{
			Error: &s,
		})
		return
	}

	var data PricingEntryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingEntryResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&entry).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingEntryResponse{
			Error: &s,
		})
		return
	}

	r := newPricingEntry(c, entry)
	c.JSON(http.StatusOK, PricingEntryResponse{Data: &r})
}

// @Summary		Delete pricing entry
// @Description	Deletes a pricing entry
// @Tags			Pricing
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pricing/{id} [delete]
func DeletePricingEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var entry models.PricingEntry
	err = models.DB.First(&entry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
