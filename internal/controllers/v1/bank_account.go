package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/httputil"
	"github.com/wishpay/backend/internal/ledger"
	"github.com/wishpay/backend/internal/models"
)

func (co Controller) RegisterBankAccountRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBankAccounts)
		r.POST("", co.CreateBankAccount)
	}
	{
		r.OPTIONS("/:id", OptionsBankAccountDetail)
		r.GET("/:id", co.GetBankAccount)
		r.PATCH("/:id", co.UpdateBankAccount)
		r.DELETE("/:id", co.DeleteBankAccount)
	}
	{
		r.OPTIONS("/:id/cash-in", httputil.OptionsPost)
		r.POST("/:id/cash-in", co.BankAccountCashIn)
		r.OPTIONS("/:id/cash-out", httputil.OptionsPost)
		r.POST("/:id/cash-out", co.BankAccountCashOut)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bank Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-accounts/{id} [options]
func OptionsBankAccountDetail(c *gin.Context) {
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

// @Summary		Get bank accounts
// @Description	Returns all bank accounts of the authenticated user, ordered by name
// @Tags			Bank Accounts
// @Produce		json
// @Success		200	{object}	BankAccountListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	BankAccountListResponse
// @Security		BearerAuth
// @Router			/v1/bank-accounts [get]
func (co Controller) GetBankAccounts(c *gin.Context) {
	accounts, err := co.Ledger.ListBankAccounts(c.Request.Context(), auth.UserID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BankAccount, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, newBankAccount(c, account))
	}

	c.JSON(http.StatusOK, BankAccountListResponse{Data: data})
}

// @Summary		Create bank account
// @Description	Creates a bank account. A positive opening balance is logged as a deposit.
// @Tags			Bank Accounts
// @Accept			json
// @Produce		json
// @Success		201				{object}	BankAccountResponse
// @Failure		400				{object}	BankAccountResponse
// @Failure		401				{object}	httpError
// @Failure		500				{object}	BankAccountResponse
// @Param			bankAccount		body		BankAccountCreate	true	"Bank account"
// @Security		BearerAuth
// @Router			/v1/bank-accounts [post]
func (co Controller) CreateBankAccount(c *gin.Context) {
	var data BankAccountCreate
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	account, err := co.Ledger.CreateBankAccount(c.Request.Context(), auth.UserID(c), data.input())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBankAccount(c, account)
	c.JSON(http.StatusCreated, BankAccountResponse{Data: &apiResource})
}

// @Summary		Get bank account
// @Description	Returns a specific bank account
// @Tags			Bank Accounts
// @Produce		json
// @Success		200	{object}	BankAccountResponse
// @Failure		400	{object}	BankAccountResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	BankAccountResponse
// @Failure		500	{object}	BankAccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/bank-accounts/{id} [get]
func (co Controller) GetBankAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BankAccountResponse{
			Error: &e,
		})
		return
	}

	account, err := co.Ledger.BankAccount(c.Request.Context(), auth.UserID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBankAccount(c, account)
	c.JSON(http.StatusOK, BankAccountResponse{Data: &apiResource})
}

// @Summary		Update bank account
// @Description	Updates name and color of a bank account. Only values to be updated need to be specified.
// @Tags			Bank Accounts
// @Accept			json
// @Produce		json
// @Success		200			{object}	BankAccountResponse
// @Failure		400			{object}	BankAccountResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	BankAccountResponse
// @Failure		500			{object}	BankAccountResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bankAccount	body		BankAccountEditable	true	"Bank account"
// @Security		BearerAuth
// @Router			/v1/bank-accounts/{id} [patch]
func (co Controller) UpdateBankAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, BankAccountResponse{
			Error: &e,
		})
		return
	}

	var data BankAccountEditable
	err = httputil.BindPatch(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	account, err := co.Ledger.UpdateBankAccount(c.Request.Context(), auth.UserID(c), uri.ID.UUID, ledger.BankAccountUpdate{
		Name:  data.Name,
		Color: data.Color,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBankAccount(c, account)
	c.JSON(http.StatusOK, BankAccountResponse{Data: &apiResource})
}

// @Summary		Delete bank account
// @Description	Deletes a bank account. Goals funded by it are funded by the wallet afterwards, a remaining balance is cashed out.
// @Tags			Bank Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/bank-accounts/{id} [delete]
func (co Controller) DeleteBankAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	err = co.Ledger.DeleteBankAccount(c.Request.Context(), auth.UserID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Cash in to bank account
// @Description	Adds money from outside WishPay to a bank account
// @Tags			Bank Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	CashResponse
// @Failure		400		{object}	CashResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CashResponse
// @Failure		500		{object}	CashResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			cash	body		CashEditable	true	"Amount"
// @Security		BearerAuth
// @Router			/v1/bank-accounts/{id}/cash-in [post]
func (co Controller) BankAccountCashIn(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, CashResponse{
			Error: &e,
		})
		return
	}

	co.cash(c, models.BankAccountContainer(uri.ID.UUID), co.Ledger.CashIn)
}

// @Summary		Cash out from bank account
// @Description	Removes money from a bank account
// @Tags			Bank Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	CashResponse
// @Failure		400		{object}	CashResponse
// @Failure		401		{object}	httpError
// @Failure		404		{object}	CashResponse
// @Failure		422		{object}	CashResponse
// @Failure		500		{object}	CashResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			cash	body		CashEditable	true	"Amount"
// @Security		BearerAuth
// @Router			/v1/bank-accounts/{id}/cash-out [post]
func (co Controller) BankAccountCashOut(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, CashResponse{
			Error: &e,
		})
		return
	}

	co.cash(c, models.BankAccountContainer(uri.ID.UUID), co.Ledger.CashOut)
}
