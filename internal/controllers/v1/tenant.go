package v1

import (
	"net/http"
	"slices"

	"github.com/carebridge/backend/internal/httputil"
	"github.com/carebridge/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTenantRoutes registers the routes for tenants with
// the RouterGroup that is passed.
func RegisterTenantRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTenantList)
		r.GET("", GetTenants)
		r.POST("", CreateTenants)
	}

	// Tenant with ID
	{
		r.OPTIONS("/:id", OptionsTenantDetail)
		r.GET("/:id", GetTenant)
		r.PATCH("/:id", UpdateTenant)
		r.DELETE("/:id", DeleteTenant)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tenants
// @Success		204
// @Router			/v1/tenants [options]
func OptionsTenantList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tenants
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [options]
func OptionsTenantDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Tenant{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create tenants
// @Description	Creates new tenants
// @Tags			Tenants
// @Produce		json
// @Success		201		{object}	TenantCreateResponse
// @Failure		400		{object}	TenantCreateResponse
// @Failure		500		{object}	TenantCreateResponse
// @Param			tenants	body		[]TenantEditable	true	"Tenants"
// @Router			/v1/tenants [post]
func CreateTenants(c *gin.Context) {
	var editables []TenantEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TenantCreateResponse{}

	for _, editable := range editables {
		tenant := editable.model()

		err = models.DB.Create(&tenant).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTenant(c, tenant)
		r.Data = append(r.Data, TenantResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get tenants
// @Description	Returns a list of tenants
// @Tags			Tenants
// @Produce		json
// @Success		200	{object}	TenantListResponse
// @Failure		400	{object}	TenantListResponse
// @Failure		500	{object}	TenantListResponse
// @Router			/v1/tenants [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			currency	query	string	false	"Filter by currency code"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first tenant returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of tenants to return. Defaults to 50."
func GetTenants(c *gin.Context) {
	var filter TenantQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 tenants and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var tenants []models.Tenant
	err := q.Find(&tenants).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Tenant, 0)
	for _, tenant := range tenants {
		data = append(data, newTenant(c, tenant))
	}

	c.JSON(http.StatusOK, TenantListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get tenant
// @Description	Returns a specific tenant
// @Tags			Tenants
// @Produce		json
// @Success		200	{object}	TenantResponse
// @Failure		400	{object}	TenantResponse
// @Failure		404	{object}	TenantResponse
// @Failure		500	{object}	TenantResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [get]
func GetTenant(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	var tenant models.Tenant
	err = models.DB.First(&tenant, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	data := newTenant(c, tenant)
	c.JSON(http.StatusOK, TenantResponse{Data: &data})
}

// @Summary		Update tenant
// @Description	Update an existing tenant. Only values to be updated need to be specified.
// @Tags			Tenants
// @Accept			json
// @Produce		json
// @Success		200		{object}	TenantResponse
// @Failure		400		{object}	TenantResponse
// @Failure		404		{object}	TenantResponse
// @Failure		500		{object}	TenantResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tenant	body		TenantEditable	true	"Tenant"
// @Router			/v1/tenants/{id} [patch]
func UpdateTenant(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	var tenant models.Tenant
	err = models.DB.First(&tenant, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TenantEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	var data TenantEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&tenant).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &s,
		})
		return
	}

	r := newTenant(c, tenant)
	c.JSON(http.StatusOK, TenantResponse{Data: &r})
}

// @Summary		Delete tenant
// @Description	Deletes a tenant
// @Tags			Tenants
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [delete]
func DeleteTenant(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var tenant models.Tenant
	err = models.DB.First(&tenant, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&tenant).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
