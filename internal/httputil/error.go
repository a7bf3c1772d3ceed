package httputil

import (
	"github.com/gin-gonic/gin"
)

// NewError aborts the request and responds with err as HTTPError.
func NewError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error: err.Error(),
	})
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}
