// Package errs defines the error kinds returned by the data access layer and
// their mapping onto HTTP responses.
//
// Callers of the data access functions only ever see a fixed, human readable
// message per operation. The underlying store error is kept for logging.
package errs

import "strings"

// DataFetchError reports that a remote store call failed. Error returns the
// fixed message for the operation; the cause is available to loggers only.
type DataFetchError struct {
	Op      string
	Message string
	cause   error
}

func NewDataFetchError(op, message string, cause error) *DataFetchError {
	return &DataFetchError{Op: op, Message: message, cause: cause}
}

func (e *DataFetchError) Error() string {
	return e.Message
}

// Cause returns the store error that triggered the failure.
func (e *DataFetchError) Cause() error {
	return e.cause
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError reports malformed input detected before any store call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Error)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
