package types

import (
	"errors"
	"fmt"
)

// FormatError reports input that does not satisfy a Type's syntax.
type FormatError struct {
	Type   string
	Input  any
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if s, ok := e.Input.(string); ok {
		return fmt.Sprintf("invalid %s %q: %s", e.Type, s, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v (%T): %s", e.Type, e.Input, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError reports whether err, or any error it wraps, is a *FormatError.
func IsFormatError(err error) bool {
	var formatErr *FormatError
	return errors.As(err, &formatErr)
}

func formatError(t any, input any, reason string) error {
	return &FormatError{
		Type:   NameOf(t),
		Input:  input,
		Reason: reason,
	}
}
