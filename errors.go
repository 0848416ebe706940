package gflake

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a field value exceeds its bit-width bound.
	// Use errors.As with *OutOfRangeError to inspect the offending field.
	ErrOutOfRange = errors.New("gflake: field value out of range")

	// ErrInvalidFormat indicates that the ID string format is invalid
	ErrInvalidFormat = errors.New("gflake: invalid ID format")

	// ErrInvalidLength indicates that the ID byte slice has incorrect length
	ErrInvalidLength = errors.New("gflake: invalid ID length (expected 8 bytes)")
)

// OutOfRangeError reports a field value that falls outside its declared
// bit-width bound. Valid values are in the inclusive range [0, Max].
type OutOfRangeError struct {
	Field string
	Value int64
	Max   int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("gflake: %s %d out of range [0, %d]", e.Field, e.Value, e.Max)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) work for all range violations.
func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }
