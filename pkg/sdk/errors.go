package pagedex

import (
	"errors"
	"fmt"

	"github.com/kailas-cloud/pagedex/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrPostNotFound      = domain.ErrPostNotFound
	ErrSourceUnavailable = domain.ErrSourceUnavailable
	ErrMalformedDocument = domain.ErrMalformedDocument
	ErrInvalidStandard   = domain.ErrInvalidStandard
)

// ErrUnauthorized is returned when an admin call is rejected.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pagedex: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is maps server error codes to the re-exported sentinels.
func (e *APIError) Is(target error) bool {
	switch e.Code {
	case "post_not_found":
		return target == ErrPostNotFound || target == ErrNotFound
	case "not_found":
		return target == ErrNotFound
	case "source_unavailable":
		return target == ErrSourceUnavailable
	case "malformed_document":
		return target == ErrMalformedDocument
	case "invalid_standard":
		return target == ErrInvalidStandard
	case "unauthorized":
		return target == ErrUnauthorized
	}
	return false
}
