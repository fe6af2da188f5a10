package chi

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kailas-cloud/soartv/internal/domain"
	"github.com/kailas-cloud/soartv/internal/logger"
)

// ErrorCode is a machine-readable error code returned to clients.
type ErrorCode string

// Error codes.
const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeUnauthorized     ErrorCode = "unauthorized"
	CodeRateLimited      ErrorCode = "rate_limited"
	CodeNotFound         ErrorCode = "not_found"
	CodeProfileNotFound  ErrorCode = "profile_not_found"
	CodeProjectNotFound  ErrorCode = "project_not_found"
	CodeVideoNotFound    ErrorCode = "video_not_found"
	CodeObjectNotFound   ErrorCode = "object_not_found"
	CodeStorageDisabled  ErrorCode = "storage_disabled"
	CodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the error body of every JSON endpoint.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

func defaultErrorHandlers() []errorHandler {
	return []errorHandler{
		sentinelHandler(domain.ErrProfileNotFound, http.StatusNotFound, CodeProfileNotFound),
		sentinelHandler(domain.ErrProjectNotFound, http.StatusNotFound, CodeProjectNotFound),
		sentinelHandler(domain.ErrVideoNotFound, http.StatusNotFound, CodeVideoNotFound),
		sentinelHandler(domain.ErrObjectNotFound, http.StatusNotFound, CodeObjectNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		invalidInputHandler,
		sentinelHandler(domain.ErrStorageDisabled, http.StatusServiceUnavailable, CodeStorageDisabled),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProfileNotFound,
		domain.ErrProjectNotFound,
		domain.ErrVideoNotFound,
		domain.ErrObjectNotFound,
		domain.ErrNotFound,
		domain.ErrInvalidInput,
		domain.ErrStorageDisabled,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// invalidInputHandler exposes the validation detail, which is built from
// client input and safe to echo back.
func invalidInputHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrInvalidInput) {
		return false
	}
	writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			log.Debug("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
