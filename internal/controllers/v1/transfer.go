package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/httputil"
	"github.com/wishpay/backend/internal/models"
)

func (co Controller) RegisterTransferRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.CreateTransfer)
}

// @Summary		Transfer
// @Description	Moves money between the wallet and bank accounts. Two transactions are logged, one for each side.
// @Tags			Transfers
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransferResponse
// @Failure		400			{object}	TransferResponse
// @Failure		401			{object}	httpError
// @Failure		404			{object}	TransferResponse
// @Failure		422			{object}	TransferResponse
// @Failure		500			{object}	TransferResponse
// @Param			transfer	body		TransferEditable	true	"Transfer"
// @Security		BearerAuth
// @Router			/v1/transfers [post]
func (co Controller) CreateTransfer(c *gin.Context) {
	var data TransferEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	debit, credit, err := co.Ledger.Transfer(c.Request.Context(), auth.UserID(c), *data.SourceID, *data.DestinationID, data.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, TransferResponse{
		Data: []models.Transaction{debit, credit},
	})
}
