// Package response provides standardized HTTP response formatting and error handling utilities.
package response

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"

	domainerrors "github.com/slovoapp/slovo-server/internal/errors"
)

// Envelope provides a consistent JSON response structure.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

// JSON writes a JSON response with the given status code using json/v2.
func JSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{
		Success: status < 400,
		Data:    data,
	}

	// json/v2 MarshalWrite doesn't add a newline, but that's fine for HTTP responses.
	if err := json.MarshalWrite(w, envelope); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// Success writes a successful JSON response (200 OK).
func Success(w http.ResponseWriter, data any, logger *slog.Logger) {
	JSON(w, http.StatusOK, data, logger)
}

// Error writes an error response with the given status code.
func Error(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{
		Success: false,
		Error:   message,
	}

	if err := json.MarshalWrite(w, envelope); err != nil {
		if logger != nil {
			logger.Error("Failed to encode error response", "error", err)
		}
	}
}

// HandleError maps a domain error to an HTTP response.
func HandleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var domainErr *domainerrors.Error
	if !domainerrors.As(err, &domainErr) {
		Error(w, http.StatusInternalServerError, "internal error", logger)
		return
	}

	switch domainErr.Code {
	case domainerrors.CodeNotFound:
		Error(w, http.StatusNotFound, domainErr.Message, logger)
	case domainerrors.CodeMalformed, domainerrors.CodeValidation, domainerrors.CodeOutOfRange:
		Error(w, http.StatusBadRequest, domainErr.Message, logger)
	case domainerrors.CodeEmpty:
		Error(w, http.StatusNotFound, domainErr.Message, logger)
	case domainerrors.CodeUnavailable:
		Error(w, http.StatusServiceUnavailable, domainErr.Message, logger)
	default:
		Error(w, http.StatusInternalServerError, domainErr.Message, logger)
	}
}
