package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/sentinel-lite/sentinel/internal/api"
	"github.com/sentinel-lite/sentinel/internal/errors"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeUnreachable    = "API_UNREACHABLE"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeRejected       = "REQUEST_REJECTED"
	ErrCodeServerError    = "SERVER_ERROR"
	ErrCodeUnhealthy      = "API_UNHEALTHY"
	ErrCodeCanceled       = "CANCELED"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	env := JSONEnvelope{
		Success: true,
		Data:    data,
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string, details interface{}) error {
	env := JSONEnvelope{
		Success: false,
		Error: &JSONError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Details:    details,
		},
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	env := JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	}
	return writeJSONEnvelope(w, env)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	// HTTP status failures carry the status for automation.
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return requestErrorToJSON(reqErr)
	}

	var structured *errors.Error
	if errors.As(err, &structured) {
		return &JSONError{
			Code:       mapErrorCode(structured.Code, structured.Message),
			Message:    structured.Message,
			Suggestion: structured.Suggestion,
		}
	}

	if errors.Is(err, context.Canceled) {
		return &JSONError{Code: ErrCodeCanceled, Message: err.Error()}
	}

	// Generic error
	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	switch internalCode {
	case errors.ErrConfig:
		// Distinguish between not found and invalid
		msgLower := strings.ToLower(message)
		if strings.Contains(msgLower, "not found") || strings.Contains(msgLower, "couldn't find") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrInput:
		return ErrCodeInvalidInput
	case errors.ErrAPI:
		return ErrCodeUnreachable
	}

	return ErrCodeUnknown
}

// requestErrorToJSON classifies a non-2xx response.
func requestErrorToJSON(reqErr *api.RequestError) *JSONError {
	code := ErrCodeRejected
	suggestion := ""
	switch {
	case reqErr.StatusCode == http.StatusNotFound:
		code = ErrCodeNotFound
		suggestion = "Check the ID exists with the matching list command"
	case reqErr.StatusCode >= 500:
		code = ErrCodeServerError
		suggestion = "Check the backend logs"
	}

	return &JSONError{
		Code:       code,
		Message:    reqErr.Error(),
		Suggestion: suggestion,
		Details: map[string]interface{}{
			"status": reqErr.StatusCode,
			"method": reqErr.Method,
			"path":   reqErr.Path,
			"detail": reqErr.Detail,
		},
	}
}
