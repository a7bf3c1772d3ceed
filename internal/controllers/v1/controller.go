// Package v1 contains the handlers of the v1 API.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/ledger"
)

// Controller holds the services the handlers work with.
type Controller struct {
	Ledger *ledger.Engine
	Auth   *auth.Service
}

// RegisterRoutes attaches the v1 API to r. Everything except the
// authentication endpoints needs a bearer token.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterAuthRoutes(r.Group("/auth"))

	protected := r.Group("", co.Auth.Middleware())
	{
		protected.GET("", Get)
		protected.OPTIONS("", Options)
	}

	co.RegisterUserRoutes(protected.Group("/user"))
	co.RegisterWalletRoutes(protected.Group("/wallet"))
	co.RegisterBankAccountRoutes(protected.Group("/bank-accounts"))
	co.RegisterGoalRoutes(protected.Group("/goals"))
	co.RegisterTransferRoutes(protected.Group("/transfers"))
	co.RegisterTransactionRoutes(protected.Group("/transactions"))
}
