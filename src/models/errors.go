package models

import "fmt"

// UnknownVariantError is returned when an enum field carries a string outside
// the broker's known vocabulary. Decoding never falls back to a default
// variant.
type UnknownVariantError struct {
	Enum  string
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant: %q", e.Enum, e.Value)
}

func NewUnknownVariantError(enum, value string) *UnknownVariantError {
	return &UnknownVariantError{
		Enum:  enum,
		Value: value,
	}
}

// DecodeError reports a wire value that could not be converted into its typed
// form: malformed JSON, a non-numeric decimal, or an envelope with no usable
// payload.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func NewDecodeError(message string, cause error) *DecodeError {
	return &DecodeError{
		Message: message,
		Cause:   cause,
	}
}

// MissingFieldError is returned by OrderBuilder.Build when a required field
// was never set. It fires before any network traffic.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
