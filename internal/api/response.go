package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Veraticus/gastx/internal/common"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeInvalidPattern    = "INVALID_PATTERN"
	ErrCodeInvalidTier       = "INVALID_TIER"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeTooLarge          = "PAYLOAD_TOO_LARGE"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// SendJSON writes a JSON response with the given status code.
func SendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Warn("Failed to encode response", "error", err)
		}
	}
}

// SendError writes an error response with the given status code, error code, and message.
func SendError(w http.ResponseWriter, status int, code, message string) {
	SendJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// sendErr maps domain errors onto HTTP statuses. Anything that is not bad
// input is logged and reported as an internal error.
func sendErr(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		SendError(w, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, err.Error())
	case !common.IsInputError(err):
		common.LogError(err, "Request failed", common.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		})
		SendError(w, http.StatusInternalServerError, ErrCodeInternalError, "failed to process request")
	case errors.Is(err, common.ErrInvalidTier):
		SendError(w, http.StatusBadRequest, ErrCodeInvalidTier, err.Error())
	case errors.Is(err, common.ErrInvalidPattern):
		SendError(w, http.StatusBadRequest, ErrCodeInvalidPattern, err.Error())
	case errors.Is(err, common.ErrUnknownCategory):
		SendError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	default:
		SendError(w, http.StatusBadRequest, ErrCodeUnsupportedFormat, err.Error())
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendErr(w, r, err)
			return false
		}
		SendError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
