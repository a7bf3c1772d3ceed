package v1

import "github.com/wishpay/backend/internal/models"

type UserEditable struct {
	Name         *string `json:"name" binding:"omitempty,max=255" example:"Jane Doe"` // Display name
	WalletHidden *bool   `json:"walletHidden" example:"false"`                        // Hide the wallet in clients
}

type UserResponse struct {
	Error *string      `json:"error" example:"there is no user matching your query"` // The error, if any occurred
	Data  *models.User `json:"data"`                                                 // The user
}
