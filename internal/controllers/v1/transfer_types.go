package v1

import "github.com/wishpay/backend/internal/models"

type TransferEditable struct {
	SourceID      *models.Container `json:"sourceId" binding:"required" example:"wallet" swaggertype:"string"`                                 // "wallet" or the ID of the bank account to take the money from
	DestinationID *models.Container `json:"destinationId" binding:"required" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2" swaggertype:"string"` // "wallet" or the ID of the bank account to move the money to
	Amount        int64             `json:"amount" example:"2500"`                                                                              // Amount in minor units
}

type TransferResponse struct {
	Error *string              `json:"error" example:"source and destination must be different"` // The error, if any occurred
	Data  []models.Transaction `json:"data"`                                                     // The debit and credit transactions
}
