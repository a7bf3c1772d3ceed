package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/wishpay/backend/internal/ledger"
	"github.com/wishpay/backend/internal/models"
	ez_uuid "github.com/wishpay/backend/internal/uuid"
)

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d0f2ea2b-f1a6-4b4e-a2a0-83f0d0d3e8d4"` // The transaction itself
	Goal string `json:"goal,omitempty" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The goal, if the transaction references one
}

type Transaction struct {
	models.Transaction
	Container models.Container `json:"container" example:"wallet" swaggertype:"string"` // The container whose balance changed
	Links     TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	t := Transaction{
		Transaction: model,
		Container:   model.Container(),
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	if model.ItemID != nil {
		t.Links.Goal = fmt.Sprintf("%s/v1/goals/%s", url, *model.ItemID)
	}

	return t
}

type TransactionQueryFilter struct {
	Type      models.TransactionType `form:"type"`                        // Transaction type
	Container string                 `form:"container"`                   // "wallet" or a bank account ID
	ItemID    ez_uuid.UUID           `form:"item"`                        // ID of the goal
	Offset    uint                   `form:"offset" filterField:"false"` // The offset of the first transaction returned. Defaults to 0.
	Limit     int                    `form:"limit" filterField:"false"`  // Maximum number of transactions to return. Defaults to 50.
}

// filter returns the ledger filter. The setFields are the names of the
// fields set in the query string.
func (f TransactionQueryFilter) filter(setFields []string) (ledger.TransactionFilter, error) {
	filter := ledger.TransactionFilter{
		Offset: int(f.Offset),
		Limit:  50,
		ItemID: f.ItemID.Ptr(),
	}

	for _, field := range setFields {
		switch field {
		case "Limit":
			filter.Limit = f.Limit
		case "Type":
			if !f.Type.Valid() {
				return ledger.TransactionFilter{}, errTypeParameter
			}
			filter.Type = f.Type
		case "Container":
			container, err := models.ParseContainer(f.Container)
			if err != nil {
				return ledger.TransactionFilter{}, fmt.Errorf("%w: %w", errContainerParameter, err)
			}
			filter.Container = &container
		}
	}

	return filter, nil
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The transaction
}
