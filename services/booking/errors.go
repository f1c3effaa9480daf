package booking

import "fmt"

// Error codes for the recoverable outcomes callers must branch on. Claim
// conflicts and illegal transitions are expected results of normal
// operation, not exceptional failures.
const (
	CodeValidation        = "validationError"
	CodeUnpricedService   = "unpricedService"
	CodeInvalidTransition = "invalidTransition"
	CodeAlreadyClaimed    = "alreadyClaimed"
	CodeNotFound          = "notFound"
)

// BookingError is a typed domain error with a stable code.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewUnpricedServiceError(msg string) error {
	return &BookingError{Code: CodeUnpricedService, Message: msg}
}

// NewInvalidTransitionError names the current state and the rejected event
// so the caller can show allowed next actions.
func NewInvalidTransitionError(current, event string) error {
	return &BookingError{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("event %q is not allowed from state %q", event, current),
	}
}

func NewAlreadyClaimedError(bookingID string) error {
	return &BookingError{
		Code:    CodeAlreadyClaimed,
		Message: fmt.Sprintf("booking %s is already claimed by another cleaner", bookingID),
	}
}

func NewNotFoundError(bookingID string) error {
	return &BookingError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("booking %s does not exist", bookingID),
	}
}

// CodeOf extracts the domain error code, or "" for non-domain errors.
func CodeOf(err error) string {
	if be, ok := err.(*BookingError); ok {
		return be.Code
	}
	return ""
}
