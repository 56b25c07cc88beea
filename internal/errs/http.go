package errs

import (
	"errors"
	"net/http"
	"strings"
)

// HTTPError is the JSON error body returned by the API.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func NewBadRequestError(message string, fields []FieldError) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusBadRequest),
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  fields,
	}
}

func NewUnauthorizedError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusUnauthorized),
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusNotFound),
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError uses the generic status text so nothing internal leaks.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// FromError converts any error returned by a service into an HTTPError.
//
// DataFetchError keeps its fixed message with a 500 status, ValidationError
// becomes a 400 carrying the field errors, and unknown errors collapse into a
// generic 500.
func FromError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var fetchErr *DataFetchError
	if errors.As(err, &fetchErr) {
		e := NewInternalServerError()
		e.Message = fetchErr.Message
		return e
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return NewBadRequestError("Validation failed", validationErr.Fields)
	}

	return NewInternalServerError()
}
