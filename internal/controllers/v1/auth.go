package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/httputil"
)

func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/register", httputil.OptionsPost)
		r.POST("/register", co.Register)
	}
	{
		r.OPTIONS("/login", httputil.OptionsPost)
		r.POST("/login", co.Login)
	}
}

// @Summary		Register
// @Description	Creates a new user with an empty wallet and returns a bearer token
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		409		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var data RegisterEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	session, err := co.Auth.Register(c.Request.Context(), data.Name, data.Email, data.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: newSession(session)})
}

// @Summary		Log in
// @Description	Checks the credentials and returns a bearer token
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var data LoginEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	session, err := co.Auth.Login(c.Request.Context(), data.Email, data.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: newSession(session)})
}

func newSession(s auth.Session) *Session {
	return &Session{
		User:  s.User,
		Token: s.Token,
	}
}
