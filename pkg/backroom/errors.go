package backroom

import (
	"errors"
	"fmt"
)

// Kind classifies a failure in the generation pipeline
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindGenerationEmpty
	KindGenerationMalformed
	KindGenerationUnavailable
	KindImageEmpty
	KindImageUnavailable
	KindPersistenceUnavailable
)

// String returns the name used for the kind in logs and metrics
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindGenerationEmpty:
		return "generation_empty"
	case KindGenerationMalformed:
		return "generation_malformed"
	case KindGenerationUnavailable:
		return "generation_unavailable"
	case KindImageEmpty:
		return "image_empty"
	case KindImageUnavailable:
		return "image_unavailable"
	case KindPersistenceUnavailable:
		return "persistence_unavailable"
	default:
		return "unknown"
	}
}

// Error is the error type returned by adapters and validators.
// Raw and Cleaned hold upstream content for diagnostics and must never be sent to clients.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error

	Raw     string
	Cleaned string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a caller-fixable error with a message safe to return to clients
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the kind of err, or KindUnknown if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsValidation reports whether err was caused by invalid caller input
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// ValidationMessage returns the client-facing message of a validation error
func ValidationMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindValidation && e.Message != "" {
		return e.Message
	}
	return "Invalid request"
}
