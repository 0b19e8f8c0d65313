package v1

import (
	"errors"
	"net/http"

	"github.com/financa-pro/backend/internal/storage"
	"github.com/financa-pro/backend/internal/store"
)

type httpError struct {
	Error string `json:"error" example:"transactions must have a description"`
}

var errResourceNotFound = errors.New("there is no resource matching your request")

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, storage.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, store.ErrLoginFailed):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrReservedAccount):
		return http.StatusForbidden
	case errors.Is(err, errResourceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
