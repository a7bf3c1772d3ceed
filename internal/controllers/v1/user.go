package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/httputil"
	"github.com/wishpay/backend/internal/ledger"
)

func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatchDelete)
	r.GET("", co.GetUser)
	r.PATCH("", co.UpdateUser)
	r.DELETE("", co.DeleteUser)
}

// @Summary		Get user
// @Description	Returns the authenticated user
// @Tags			User
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	UserResponse
// @Security		BearerAuth
// @Router			/v1/user [get]
func (co Controller) GetUser(c *gin.Context) {
	user, err := co.Ledger.User(c.Request.Context(), auth.UserID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Update user
// @Description	Updates the authenticated user. Only values to be updated need to be specified.
// @Tags			User
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Security		BearerAuth
// @Router			/v1/user [patch]
func (co Controller) UpdateUser(c *gin.Context) {
	var data UserEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	user, err := co.Ledger.UpdateUser(c.Request.Context(), auth.UserID(c), ledger.UserUpdate{
		Name:         data.Name,
		WalletHidden: data.WalletHidden,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Delete user
// @Description	Permanently deletes the authenticated user with all bank accounts, goals and transactions
// @Tags			User
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Security		BearerAuth
// @Router			/v1/user [delete]
func (co Controller) DeleteUser(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != deleteConfirmation {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errDeleteConfirmation.Error(),
		})
		return
	}

	err = co.Ledger.DeleteUser(c.Request.Context(), auth.UserID(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
