package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/httputil"
)

func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", co.GetTransactions)
	}
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get transactions
// @Description	Returns the transaction log of the authenticated user, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		401			{object}	httpError
// @Failure		500			{object}	TransactionListResponse
// @Param			type		query		string	false	"Filter by type"
// @Param			container	query		string	false	"Filter by container, 'wallet' or a bank account ID"
// @Param			item		query		string	false	"Filter by goal ID"
// @Param			offset		query		uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of transactions to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)
	filter, err := query.filter(setFields)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	transactions, total, err := co.Ledger.Transactions(c.Request.Context(), auth.UserID(c), filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: query.Offset,
			Limit:  filter.Limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		401	{object}	httpError
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := co.Ledger.Transaction(c.Request.Context(), auth.UserID(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}
