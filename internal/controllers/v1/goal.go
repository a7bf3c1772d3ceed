package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/httputil"
	"github.com/wishpay/backend/internal/models"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
	{
		r.OPTIONS("/:id/allocate", httputil.OptionsGetPost)
		r.GET("/:id/allocate", co.CheckAllocation)
		r.POST("/:id/allocate", co.Allocate)
		r.OPTIONS("/:id/deallocate", httputil.OptionsPost)
		r.POST("/:id/deallocate", co.Deallocate)
		r.OPTIONS("/:id/archive", httputil.OptionsPost)
		r.POST("/:id/archive", co.ArchiveGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get goals
// @Description	Returns the active goals, newest first. With archived=true, returns the archived goals, most recently archived first.
// @Tags			Goals
// @Produce		json
// @Success		200			{object}	GoalListResponse
// @Failure		400			{object}	GoalListResponse
// @Failure		401			{object}	httpError
// @Failure		500			{object}	GoalListResponse
// @Param			archived	query		bool	false	"List archived goals"
// @Security		BearerAuth
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	var filter GoalQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, GoalListResponse{
			Error: &e,
		})
		return
	}

	goals, err := co.Ledger.ListGoals(c.Request.Context(), auth.UserID(c), filter.Archived)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Create goal
// @Description	Creates a goal. An initial saved amount is taken from the funding source.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	GoalResponse
// @Failure		422		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalCreate	true	"Goal"
// @Security		BearerAuth
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var data GoalCreate
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := co.Ledger.CreateGoal(c.Request.Context(), auth.UserID(c), data.input())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &apiResource})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := co.Ledger.Goal(c.Request.Context(), auth.UserID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Update goal
// @Description	Updates an active goal. Only values to be updated need to be specified. A changed saved amount is moved from or to the funding source.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	GoalResponse
// @Failure		422		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Security		BearerAuth
// @Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{
			Error: &e,
		})
		return
	}

	var data GoalEditable
	err = httputil.BindPatch(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := co.Ledger.UpdateGoal(c.Request.Context(), auth.UserID(c), uri.ID.UUID, data.update())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Delete goal
// @Description	Abandons an active goal. The saved amount is returned to the funding source.
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	err = co.Ledger.DeleteGoal(c.Request.Context(), auth.UserID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Archive goal
// @Description	Marks a fully funded goal as bought. Archived goals cannot be changed anymore.
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/goals/{id}/archive [post]
func (co Controller) ArchiveGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := co.Ledger.ArchiveGoal(c.Request.Context(), auth.UserID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Check allocation
// @Description	Returns the warnings an allocation to the goal would produce without moving any money. Use it to let the user confirm before allocating to a want.
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	AllocationCheckResponse
// @Failure		400	{object}	AllocationCheckResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	AllocationCheckResponse
// @Failure		500	{object}	AllocationCheckResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/goals/{id}/allocate [get]
func (co Controller) CheckAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AllocationCheckResponse{
			Error: &e,
		})
		return
	}

	goal, needs, err := co.Ledger.AllocationWarnings(c.Request.Context(), auth.UserID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationCheckResponse{
			Error: &e,
		})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, AllocationCheckResponse{
		Data:     &apiResource,
		Warnings: priorityWarnings(needs),
	})
}

// @Summary		Allocate to goal
// @Description	Moves money to a goal. The amount is capped at what the goal still needs. Allocating to a want while high priority needs are not fully funded returns warnings.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	AllocationResponse
// @Failure		422			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocateEditable	true	"Allocation"
// @Security		BearerAuth
// @Router			/v1/goals/{id}/allocate [post]
func (co Controller) Allocate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	var data AllocateEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	userID := auth.UserID(c)
	goal, transaction, err := co.Ledger.Allocate(c.Request.Context(), userID, uri.ID.UUID, data.Amount, data.SourceID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	r := AllocationResponse{
		Data: &Allocation{
			Goal:        newGoal(c, goal),
			Transaction: transaction,
		},
	}

	if goal.Type == models.ItemTypeWant {
		needs, err := co.Ledger.UnfundedHighPriorityNeeds(c.Request.Context(), userID)
		if err != nil {
			// The allocation is done, warnings are best effort
			log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("loading unfunded needs failed")
		}

		r.Warnings = priorityWarnings(needs)
	}

	c.JSON(http.StatusCreated, r)
}

// @Summary		Deallocate from goal
// @Description	Returns money from a goal to its funding source
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201				{object}	AllocationResponse
// @Failure		400				{object}	AllocationResponse
// @Failure		401				{object}	httpError
// @Failure		404				{object}	AllocationResponse
// @Failure		500				{object}	AllocationResponse
// @Param			id				path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			deallocation	body		DeallocateEditable	true	"Deallocation"
// @Security		BearerAuth
// @Router			/v1/goals/{id}/deallocate [post]
func (co Controller) Deallocate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	var data DeallocateEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	goal, transaction, err := co.Ledger.Deallocate(c.Request.Context(), auth.UserID(c), uri.ID.UUID, data.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, AllocationResponse{
		Data: &Allocation{
			Goal:        newGoal(c, goal),
			Transaction: transaction,
		},
	})
}
