package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when the name is blank after trimming.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrNotConfirmed is returned for input or conversions before a name is confirmed.
	ErrNotConfirmed = errors.New("name not confirmed")
	// ErrEmptyInput is returned when converting an empty buffer.
	ErrEmptyInput = errors.New("no value entered")
	// ErrInvalidNumber is matched by every *ParseError.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidDigit is returned by AppendDigit for values above 9.
	ErrInvalidDigit = errors.New("digit out of range")
	// ErrUnknownCategory is returned by LookupCategory when nothing matches.
	ErrUnknownCategory = errors.New("unknown category")
)

// ParseError reports a buffer that could not be read as a decimal number.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse %q: %v", e.Input, ErrInvalidNumber)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrInvalidNumber }
