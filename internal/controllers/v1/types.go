package v1

import (
	"errors"
	"net/http"

	"github.com/wishpay/backend/internal/auth"
	"github.com/wishpay/backend/internal/ledger"
	"github.com/wishpay/backend/internal/models"
	ez_uuid "github.com/wishpay/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the HTTP status for an error returned by the ledger
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, ledger.ErrDestinationNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrEmailTaken), errors.Is(err, models.ErrUserEmailNotUnique):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errDeleteConfirmation = errors.New("the confirmation for deleting your account was incorrect")
	errContainerParameter = errors.New("the container parameter must be 'wallet' or a bank account ID")
	errTypeParameter      = errors.New("the type parameter is not a valid transaction type")
)

// deleteConfirmation must be passed as "confirm" query parameter to delete a user.
const deleteConfirmation = "yes-please-delete-everything"
