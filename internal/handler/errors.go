package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorDetail as {"error": {...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already written.
	json.NewEncoder(w).Encode(v)
}

// writeError writes an ErrorResponse.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// notFound writes a 404 for a missing resource.
// The caller supplies the message (e.g. "room not found") because the handler
// is the layer that knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, "not_found", message)
}

// invalidRequest writes a 422 for input rejected before reaching the service layer.
func invalidRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// serviceError maps a service error to a response. Generation failures carry
// their cause so the desk can see what went wrong with the template. Unknown
// errors are logged and reported as 500 without leaking their text.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFound(w, unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		invalidRequest(w, unwrapMessage(err))
	case errors.Is(err, domain.ErrLoadFailure):
		s.logger.ErrorContext(r.Context(), "room load failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "load_failed", domain.ErrLoadFailure.Error())
	case errors.Is(err, domain.ErrGenerationFailure):
		s.logger.ErrorContext(r.Context(), "contract generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "generation_failed", unwrapMessage(err))
	default:
		s.logger.ErrorContext(r.Context(), "unhandled error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part of a wrapped error: the text
// after the last "pkg.Type.Method: " prefix.
// e.g. "service.ContractService.ForStay: validation error: placeholder 0 has an empty key"
// → "validation error: placeholder 0 has an empty key"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		head, rest, ok := strings.Cut(msg, ": ")
		if !ok || strings.Count(head, ".") < 2 || strings.ContainsAny(head, " ") {
			return msg
		}
		msg = rest
	}
}
