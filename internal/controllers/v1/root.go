package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishpay/backend/internal/httputil"
	"github.com/wishpay/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	User         string `json:"user" example:"https://example.com/api/v1/user"`                  // URL of the user endpoint
	Wallet       string `json:"wallet" example:"https://example.com/api/v1/wallet"`              // URL of the wallet endpoint
	BankAccounts string `json:"bankAccounts" example:"https://example.com/api/v1/bank-accounts"` // URL of Bank Account collection endpoint
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals"`                // URL of Goal collection endpoint
	Transfers    string `json:"transfers" example:"https://example.com/api/v1/transfers"`        // URL of the transfer endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`  // URL of Transaction collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Security		BearerAuth
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			User:         url + "/v1/user",
			Wallet:       url + "/v1/wallet",
			BankAccounts: url + "/v1/bank-accounts",
			Goals:        url + "/v1/goals",
			Transfers:    url + "/v1/transfers",
			Transactions: url + "/v1/transactions",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
