package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/pagedex/internal/domain"
)

// Error codes returned in the error body.
const (
	codeBadRequest        = "bad_request"
	codeInvalidStandard   = "invalid_standard"
	codeUnauthorized      = "unauthorized"
	codeNotFound          = "not_found"
	codePostNotFound      = "post_not_found"
	codeSourceUnavailable = "source_unavailable"
	codeMalformedDocument = "malformed_document"
	codeCacheDisabled     = "cache_disabled"
	codeInternalError     = "internal_error"
)

// ErrorResponse is the body of every API error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// apiError is a domain error classified for the client.
type apiError struct {
	status  int
	code    string
	message string
}

// errorHandler classifies a domain error. Returns false if the error is not its concern.
type errorHandler func(err error) (apiError, bool)

// defaultErrorHandlers is ordered: ErrPostNotFound is checked before the broader ErrNotFound.
func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		sentinelHandler(domain.ErrPostNotFound, http.StatusNotFound, codePostNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrInvalidStandard, http.StatusBadRequest, codeInvalidStandard),
		sentinelHandler(domain.ErrSourceUnavailable, http.StatusBadGateway, codeSourceUnavailable),
		sentinelHandler(domain.ErrMalformedDocument, http.StatusInternalServerError, codeMalformedDocument),
		sentinelHandler(domain.ErrUnknownTechnology, http.StatusInternalServerError, codeMalformedDocument),
	}
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// The client sees the sentinel's message only, never the wrapped details.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(err error) (apiError, bool) {
		if !errors.Is(err, sentinel) {
			return apiError{}, false
		}
		return apiError{status: status, code: code, message: sentinel.Error()}, true
	}
}

func (s *Server) classify(err error) apiError {
	for _, h := range s.errorHandlers {
		if ae, ok := h(err); ok {
			return ae
		}
	}
	return apiError{status: http.StatusInternalServerError, code: codeInternalError, message: "internal error"}
}

func (s *Server) logDomainError(r *http.Request, err error, ae apiError) {
	l := s.requestLogger(r)
	if ae.status >= http.StatusInternalServerError {
		l.Error("request failed", zap.Error(err), zap.Int("status", ae.status))
		return
	}
	l.Warn("domain error", zap.Error(err), zap.Int("status", ae.status))
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	ae := s.classify(err)
	s.logDomainError(r, err, ae)
	writeError(w, ae.status, ae.code, ae.message)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
