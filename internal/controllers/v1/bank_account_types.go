package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/wishpay/backend/internal/ledger"
	"github.com/wishpay/backend/internal/models"
)

type BankAccountCreate struct {
	Name    string       `json:"name" binding:"required,max=255" example:"Emergency fund"` // Name of the bank account
	Color   models.Color `json:"color" example:"green" default:"gray"`                     // Color to display the bank account in
	Balance int64        `json:"balance" example:"50000" default:"0"`                      // Opening balance in minor units
}

func (editable BankAccountCreate) input() ledger.BankAccountInput {
	return ledger.BankAccountInput{
		Name:    editable.Name,
		Color:   editable.Color,
		Balance: editable.Balance,
	}
}

type BankAccountEditable struct {
	Name  *string       `json:"name,omitempty" binding:"omitempty,max=255" example:"Emergency fund"` // Name of the bank account
	Color *models.Color `json:"color,omitempty" example:"green"`                                     // Color to display the bank account in
}

type BankAccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/bank-accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                          // The bank account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?container=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`        // Transactions of the bank account
	CashIn       string `json:"cashIn" example:"https://example.com/api/v1/bank-accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/cash-in"`               // Cash in endpoint
	CashOut      string `json:"cashOut" example:"https://example.com/api/v1/bank-accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/cash-out"`             // Cash out endpoint
}

type BankAccount struct {
	models.BankAccount
	Links BankAccountLinks `json:"links"`
}

func newBankAccount(c *gin.Context, model models.BankAccount) BankAccount {
	url := c.GetString(string(models.DBContextURL))

	return BankAccount{
		BankAccount: model,
		Links: BankAccountLinks{
			Self:         fmt.Sprintf("%s/v1/bank-accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?container=%s", url, model.ID),
			CashIn:       fmt.Sprintf("%s/v1/bank-accounts/%s/cash-in", url, model.ID),
			CashOut:      fmt.Sprintf("%s/v1/bank-accounts/%s/cash-out", url, model.ID),
		},
	}
}

type BankAccountListResponse struct {
	Data  []BankAccount `json:"data"`                                                          // List of bank accounts
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BankAccountResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BankAccount `json:"data"`                                                          // The bank account
}
