package v1

import (
	"errors"
	"net/http"
	"slices"

	"github.com/carebridge/backend/internal/httputil"
	"github.com/carebridge/backend/internal/ledger"
	"github.com/carebridge/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterShiftRoutes registers the routes for shifts with
// the RouterGroup that is passed.
func RegisterShiftRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsShiftList)
		r.GET("", GetShifts)
		r.POST("", CreateShifts)
	}

	// Shift with ID
	{
		r.OPTIONS("/:id", OptionsShiftDetail)
		r.GET("/:id", GetShift)
		r.PATCH("/:id", UpdateShift)
		r.DELETE("/:id", DeleteShift)
	}

	// Completion
	{
		r.OPTIONS("/:id/complete", OptionsShiftComplete)
		r.POST("/:id/complete", CompleteShift)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shifts
// @Success		204
// @Router			/v1/shifts [options]
func OptionsShiftList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shifts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shifts/{id} [options]
func OptionsShiftDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Shift{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shifts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shifts/{id}/complete [options]
func OptionsShiftComplete(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Shift{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create shifts
// @Description	Creates new shifts. Shifts are created open and are billed when they are completed.
// @Tags			Shifts
// @Produce		json
// @Success		201		{object}	ShiftCreateResponse
// @Failure		400		{object}	ShiftCreateResponse
// @Failure		404		{object}	ShiftCreateResponse
// @Failure		500		{object}	ShiftCreateResponse
// @Param			shifts	body		[]ShiftEditable	true	"Shifts"
// @Router			/v1/shifts [post]
func CreateShifts(c *gin.Context) {
	var editables []ShiftEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ShiftCreateResponse{}

	for _, editable := range editables {
		shift := editable.model()

		err = models.DB.Create(&shift).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newShift(c, shift)
		r.Data = append(r.Data, ShiftResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get shifts
// @Description	Returns a list of shifts
// @Tags			Shifts
// @Produce		json
// @Success		200	{object}	ShiftListResponse
// @Failure		400	{object}	ShiftListResponse
// @Failure		500	{object}	ShiftListResponse
// @Router			/v1/shifts [get]
// @Param			tenant		query	string	false	"Filter by tenant ID"
// @Param			client		query	string	false	"Filter by client ID"
// @Param			user		query	string	false	"Filter by staff member ID"
// @Param			shiftType	query	string	false	"Filter by shift type"
// @Param			active		query	bool	false	"Is the shift still open?"
// @Param			offset		query	uint	false	"The offset of the first shift returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of shifts to return. Defaults to 50."
func GetShifts(c *gin.Context) {
	var filter ShiftQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("start_time ASC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 shifts and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var shifts []models.Shift
	err = q.Find(&shifts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ShiftListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Shift, 0)
	for _, shift := range shifts {
		data = append(data, newShift(c, shift))
	}

	c.JSON(http.StatusOK, ShiftListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get shift
// @Description	Returns a specific shift
// @Tags			Shifts
// @Produce		json
// @Success		200	{object}	ShiftResponse
// @Failure		400	{object}	ShiftResponse
// @Failure		404	{object}	ShiftResponse
// @Failure		500	{object}	ShiftResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shifts/{id} [get]
func GetShift(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &s,
		})
		return
	}

	var shift models.Shift
	err = models.DB.First(&shift, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &s,
		})
		return
	}

	data := newShift(c, shift)
	c.JSON(http.StatusOK, ShiftResponse{Data: &data})
}

// @Summary		Update shift
// @Description	Update an open shift. Only values to be updated need to be specified.
// @Tags			Shifts
// @Accept			json
// @Produce		json
// @Success		200		{object}	ShiftResponse
// @Failure		400		{object}	ShiftResponse
// @Failure		404		{object}	ShiftResponse
// @Failure		409		{object}	ShiftResponse
// @Failure		500		{object}	ShiftResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			shift	body		ShiftEditable	true	"Shift"
// @Router			/v1/shifts/{id} [patch]
func UpdateShift(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &s,
		})
		return
	}

	var shift models.Shift
	err = models.DB.First(&shift, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &s,
		})
		return
	}

	// Completed shifts have been billed and cannot be changed anymore
	if !shift.Active {
		s := errShiftAlreadyCompleted.Error()
		c.JSON(status(errShiftAlreadyCompleted), ShiftResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ShiftEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &s,
		})
		return
	}

	var data ShiftEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&shift).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftResponse{
			Error: &s,
		})
		return
	}

	r := newShift(c, shift)
	c.JSON(http.StatusOK, ShiftResponse{Data: &r})
}

// @Summary		Delete shift
// @Description	Deletes an open shift
// @Tags			Shifts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shifts/{id} [delete]
func DeleteShift(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var shift models.Shift
	err = models.DB.First(&shift, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Completed shifts have been billed and cannot be deleted
	if !shift.Active {
		c.JSON(status(errShiftAlreadyCompleted), httpError{
			Error: errShiftAlreadyCompleted.Error(),
		})
		return
	}

	err = models.DB.Delete(&shift).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Complete shift
// @Description	Completes a shift and books the deduction against the client budget. When the budget does not cover the cost, the shift stays open and no deduction is booked.
// @Tags			Shifts
// @Accept			json
// @Produce		json
// @Success		200			{object}	ShiftCompleteResponse
// @Failure		400			{object}	ShiftCompleteResponse
// @Failure		404			{object}	ShiftCompleteResponse
// @Failure		409			{object}	ShiftCompleteResponse
// @Failure		500			{object}	ShiftCompleteResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			completion	body		ShiftCompletionEditable	false	"Completion"
// @Router			/v1/shifts/{id}/complete [post]
func CompleteShift(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftCompleteResponse{
			Error: &s,
		})
		return
	}

	var shift models.Shift
	err = models.DB.First(&shift, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftCompleteResponse{
			Error: &s,
		})
		return
	}

	if !shift.Active {
		s := errShiftAlreadyCompleted.Error()
		c.JSON(status(errShiftAlreadyCompleted), ShiftCompleteResponse{
			Error: &s,
		})
		return
	}

	// The body is optional, an empty body completes the shift at its
	// scheduled end time
	var editable ShiftCompletionEditable
	err = httputil.BindData(c, &editable)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(status(err), ShiftCompleteResponse{
			Error: &s,
		})
		return
	}

	endTime := shift.EndTime
	if editable.EndTime != nil {
		endTime = editable.EndTime
	}

	if endTime == nil {
		s := errShiftEndTimeNotSet.Error()
		c.JSON(status(errShiftEndTimeNotSet), ShiftCompleteResponse{
			Error: &s,
		})
		return
	}

	// Close the shift and book the deduction in one transaction. When
	// the deduction fails, the shift stays open.
	var transaction models.LedgerTransaction
	var budget models.Budget
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		shift.EndTime = endTime
		shift.Active = false

		err := tx.Model(&shift).Select("EndTime", "Active").Updates(models.Shift{EndTime: endTime, Active: false}).Error
		if err != nil {
			return err
		}

		transaction, budget, err = ledger.DeductShift(tx, shift)
		return err
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShiftCompleteResponse{
			Error: &s,
		})
		return
	}

	data := ShiftCompletion{
		Shift:       newShift(c, shift),
		Transaction: newLedgerTransaction(c, transaction),
		Budget:      newBudget(c, budget),
	}

	c.JSON(http.StatusOK, ShiftCompleteResponse{Data: &data})
}
