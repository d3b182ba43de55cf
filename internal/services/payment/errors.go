package payment

import "errors"

// Service errors
var (
	ErrProcessingAborted = errors.New("payment processing aborted")
)

// ValidationError carries the per-field messages for a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "payment validation failed"
}
