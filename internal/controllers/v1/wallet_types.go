package v1

import (
	"github.com/wishpay/backend/internal/models"
)

type Wallet struct {
	Name    string `json:"name" example:"WishPay Wallet"` // Display name of the wallet
	Balance int64  `json:"balance" example:"12000"`       // Balance in minor units
	Hidden  bool   `json:"hidden" example:"false"`        // If clients should hide the wallet
	Links   struct {
		Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?container=wallet"` // Transactions of the wallet
	} `json:"links"`
}

type WalletResponse struct {
	Error *string `json:"error" example:"there is no user matching your query"` // The error, if any occurred
	Data  *Wallet `json:"data"`                                                 // The wallet
}

type CashEditable struct {
	Amount int64 `json:"amount" example:"2500"` // Amount in minor units, must be larger than zero
}

type Cash struct {
	Balance     int64              `json:"balance" example:"14500"` // Balance of the container after the operation
	Transaction models.Transaction `json:"transaction"`             // The logged transaction
}

type CashResponse struct {
	Error *string `json:"error" example:"insufficient funds: WishPay Wallet holds 1000, but 2500 are needed"` // The error, if any occurred
	Data  *Cash   `json:"data"`                                                                              // The result
}
