package contacts

import (
	"errors"
	"net/http"
)

// Domain errors for contact operations.
var (
	ErrNotFound  = errors.New("contact not found")
	ErrDuplicate = errors.New("contact organization already exists")
)

// MapHTTPStatus maps contact domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
