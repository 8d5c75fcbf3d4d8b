package core

// convert.go provides typed cell lookups for decode functions.
//
// Every lookup is by column name through the file's HeaderIndex. A column
// missing from the header, or beyond the end of a short row, is a
// *MissingFieldError. A cell that does not parse as the requested number is
// a *NumericConversionError. Neither is recovered here: the decode function
// returns the error and the whole group is dropped.
//
// Integers take an optional leading '+'. Floats are plain decimal or
// exponent notation only: NaN, infinities and hex floats are rejected.

import (
	"strconv"
	"strings"
)

// Text returns the cell for the named column.
func (r Row) Text(name string) (string, error) {
	i, ok := r.index[name]
	if !ok || i >= len(r.Cells) {
		return "", &MissingFieldError{Field: name}
	}
	return r.Cells[i], nil
}

// Uint parses the named column as a base-10 unsigned 64-bit integer.
func (r Row) Uint(name string) (uint64, error) {
	return parseCell(r, name, func(s string) (uint64, error) {
		return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	})
}

// Uint16 parses the named column as a base-10 unsigned 16-bit integer.
func (r Row) Uint16(name string) (uint16, error) {
	return parseCell(r, name, func(s string) (uint16, error) {
		v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 16)
		return uint16(v), err
	})
}

// Float32 parses the named column as a 32-bit float.
func (r Row) Float32(name string) (float32, error) {
	return parseCell(r, name, func(s string) (float32, error) {
		if strings.TrimLeft(s, "0123456789+-.eE") != "" {
			return 0, strconv.ErrSyntax
		}
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	})
}

func parseCell[T any](r Row, name string, parse func(string) (T, error)) (T, error) {
	var zero T
	s, err := r.Text(name)
	if err != nil {
		return zero, err
	}
	v, err := parse(s)
	if err != nil {
		return zero, &NumericConversionError{Field: name, Value: s, Err: err}
	}
	return v, nil
}

// NewRow builds a row indexed against idx. Decode functions receive rows
// from the pipeline; NewRow exists for callers that assemble groups by hand.
func NewRow(line int, cells []string, idx HeaderIndex) Row {
	return Row{Line: line, Cells: cells, index: idx}
}
