package navigation

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/mirofish/pkg/views"
)

// ErrNoMatch is returned when a path resolves to no route.
var (
	ErrNoMatch     = errors.New("no route matches path")
	ErrPathMissing = errors.New("path query parameter required")
)

// MapHTTPStatus maps navigation errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoMatch), errors.Is(err, views.ErrUnknownRoute):
		return http.StatusNotFound
	case errors.Is(err, ErrPathMissing), errors.Is(err, views.ErrMissingParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
