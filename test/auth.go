package test

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const Password = "correct horse staple"

// Session is a registered user with the headers to authenticate as them.
type Session struct {
	UserID  uuid.UUID
	Email   string
	Headers map[string]string
}

// Register creates a new user with a random email address and returns
// the session for it.
func Register(t *testing.T) Session {
	email := fmt.Sprintf("%s@example.com", uuid.New())

	r := Request(t, http.MethodPost, fmt.Sprintf("%s/v1/auth/register", os.Getenv("API_URL")), map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": Password,
	})
	AssertHTTPStatus(t, &r, http.StatusCreated)

	var response struct {
		Data struct {
			User struct {
				ID uuid.UUID `json:"id"`
			} `json:"user"`
			Token string `json:"token"`
		} `json:"data"`
	}
	DecodeResponse(t, &r, &response)
	require.NotEmpty(t, response.Data.Token)

	return Session{
		UserID: response.Data.User.ID,
		Email:  email,
		Headers: map[string]string{
			"Authorization": "Bearer " + response.Data.Token,
		},
	}
}
