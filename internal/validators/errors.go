package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Reason is the stable machine-readable code of a [ValidationError].
type Reason string

const (
	ReasonEmpty           Reason = "empty"
	ReasonTooLarge        Reason = "too_large"
	ReasonInvalidFormat   Reason = "invalid_format"
	ReasonMissingPassword Reason = "missing_password"
)

// ValidationError is a client input defect. It is always recoverable by
// resubmitting corrected input and never carries internal detail.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func newValidationError(reason Reason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
