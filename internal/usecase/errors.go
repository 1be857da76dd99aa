package usecase

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the usecases. Everything here is returned to the
// caller; the core never panics across the handler boundary.

var (
	// ErrIllegalTransition: the requested job status change is not an edge of
	// the transition table. The job is left untouched.
	ErrIllegalTransition = errors.New("illegal job transition")

	// ErrInvalidState: a change-order operation was attempted from a status
	// it is not legal in. The change order is left untouched.
	ErrInvalidState = errors.New("operation not legal in current state")

	// ErrAlreadyAssigned: lost a concurrent accept-bid race; the job is no
	// longer open.
	ErrAlreadyAssigned = errors.New("job already assigned")

	// ErrPaymentFailed: the escrow hold/release failed after the bounded
	// retry budget. The change order keeps its last-known-good status.
	ErrPaymentFailed = errors.New("payment operation failed")

	ErrJobNotFound         = errors.New("job not found")
	ErrBidNotFound         = errors.New("bid not found")
	ErrChangeOrderNotFound = errors.New("change order not found")
)

// ValidationError is a field-tagged input rejection. It never partially
// persists anything.

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
