package core

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned when a file is not valid UTF-8. It is fatal
// for the whole file: no records of that kind are produced.
var ErrInvalidEncoding = errors.New("encoding error: file is not valid UTF-8")

// MissingFieldError reports a column absent from the header, or a row too
// short to hold it.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Field)
}

// NumericConversionError reports a cell that is not a valid numeral for its
// target type.
type NumericConversionError struct {
	Field string
	Value string
	Err   error
}

func (e *NumericConversionError) Error() string {
	return fmt.Sprintf("invalid number for %q: %q", e.Field, e.Value)
}

func (e *NumericConversionError) Unwrap() error { return e.Err }

// GroupShapeError reports a trailing group with fewer rows than the kind needs.
type GroupShapeError struct {
	Want int
	Got  int
}

func (e *GroupShapeError) Error() string {
	return fmt.Sprintf("incomplete record group: want %d rows, got %d", e.Want, e.Got)
}

// DecodeError wraps a group-level failure with the kind and position of the
// group it dropped.
type DecodeError struct {
	Kind  string // kind label
	Group int
	Line  int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s group %d (line %d): %v", e.Kind, e.Group, e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
