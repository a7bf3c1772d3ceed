package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/httputil"
	"github.com/wishpay/backend/internal/models"
)

func (co Controller) RegisterWalletRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", co.GetWallet)
	}
	{
		r.OPTIONS("/cash-in", httputil.OptionsPost)
		r.POST("/cash-in", co.WalletCashIn)
		r.OPTIONS("/cash-out", httputil.OptionsPost)
		r.POST("/cash-out", co.WalletCashOut)
	}
}

// @Summary		Get wallet
// @Description	Returns the wallet of the authenticated user
// @Tags			Wallet
// @Produce		json
// @Success		200	{object}	WalletResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	WalletResponse
// @Security		BearerAuth
// @Router			/v1/wallet [get]
func (co Controller) GetWallet(c *gin.Context) {
	user, err := co.Ledger.User(c.Request.Context(), auth.UserID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WalletResponse{
			Error: &e,
		})
		return
	}

	wallet := Wallet{
		Name:    models.WalletName,
		Balance: user.Balance,
		Hidden:  user.WalletHidden,
	}
	wallet.Links.Transactions = c.GetString(string(models.DBContextURL)) + "/v1/transactions?container=wallet"

	c.JSON(http.StatusOK, WalletResponse{Data: &wallet})
}

// @Summary		Cash in to wallet
// @Description	Adds money from outside WishPay to the wallet
// @Tags			Wallet
// @Accept			json
// @Produce		json
// @Success		201		{object}	CashResponse
// @Failure		400		{object}	CashResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	CashResponse
// @Param			cash	body		CashEditable	true	"Amount"
// @Security		BearerAuth
// @Router			/v1/wallet/cash-in [post]
func (co Controller) WalletCashIn(c *gin.Context) {
	co.cash(c, models.Wallet(), co.Ledger.CashIn)
}

// @Summary		Cash out from wallet
// @Description	Removes money from the wallet
// @Tags			Wallet
// @Accept			json
// @Produce		json
// @Success		201		{object}	CashResponse
// @Failure		400		{object}	CashResponse
// @Failure		401		{object}	httpError
// @Failure		422		{object}	CashResponse
// @Failure		500		{object}	CashResponse
// @Param			cash	body		CashEditable	true	"Amount"
// @Security		BearerAuth
// @Router			/v1/wallet/cash-out [post]
func (co Controller) WalletCashOut(c *gin.Context) {
	co.cash(c, models.Wallet(), co.Ledger.CashOut)
}

type cashFunc func(ctx context.Context, userID uuid.UUID, container models.Container, amount int64) (int64, models.Transaction, error)

// cash binds the amount and runs a cash-in or cash-out for the container.
func (co Controller) cash(c *gin.Context, container models.Container, fn cashFunc) {
	var data CashEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashResponse{
			Error: &e,
		})
		return
	}

	balance, transaction, err := fn(c.Request.Context(), auth.UserID(c), container, data.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CashResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, CashResponse{
		Data: &Cash{
			Balance:     balance,
			Transaction: transaction,
		},
	})
}
