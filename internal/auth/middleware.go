package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wishpay/backend/internal/httputil"
)

const userIDKey = "wishpay-user-id"

// Middleware rejects requests without a valid bearer token. For all other
// requests, the ID of the authenticated user is stored in the context.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Preflight requests never carry credentials
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			httputil.NewError(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httputil.NewError(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		user, err := s.Authenticate(c.Request.Context(), parts[1])
		if errors.Is(err, ErrUnauthorized) {
			httputil.NewError(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		} else if err != nil {
			httputil.NewError(c, http.StatusInternalServerError, err)
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user.
func UserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(userIDKey)
	userID, _ := id.(uuid.UUID)
	return userID
}
