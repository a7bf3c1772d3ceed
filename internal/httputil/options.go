package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Options returns a handler for OPTIONS requests that announces the
// allowed methods.
func Options(methods string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("allow", "OPTIONS, "+methods)
		c.Render(http.StatusNoContent, render.JSON{})
	}
}

var (
	OptionsGet            = Options("GET")
	OptionsPost           = Options("POST")
	OptionsGetPost        = Options("GET, POST")
	OptionsGetPatch       = Options("GET, PATCH")
	OptionsGetPatchDelete = Options("GET, PATCH, DELETE")
)
