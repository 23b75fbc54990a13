// Package error contains the API error body and its encoders.
package error

import (
	"fmt"
	"net/http"

	mJson "github.com/matt-dz/foodgram/internal/json"
)

// Error is the body of every error response.
type Error struct {
	Status  int                 `json:"status"`
	Code    ErrorCode           `json:"code"`
	Message string              `json:"message"`
	ErrorID string              `json:"error_id"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func New(code ErrorCode, message, errorID string) *Error {
	status := code.StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		ErrorID: errorID,
	}
}

func Encode(w http.ResponseWriter, e *Error) error {
	return mJson.WriteJSON(w, e.Status, e)
}

func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	return Encode(w, New(code, message, errorID))
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}

// EncodeValidationError writes a validation error carrying per-field
// messages.
func EncodeValidationError(w http.ResponseWriter, message string, fields map[string][]string, errorID string) error {
	e := New(ValidationError, message, errorID)
	e.Fields = fields
	return Encode(w, e)
}
