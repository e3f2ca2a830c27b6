package collatz

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory generation.
var (
	// ErrValidation indicates a parameter set that must not reach generation.
	ErrValidation = errors.New("collatz: invalid parameters")

	// ErrInsufficientRange indicates max_start cannot supply enough distinct starts.
	ErrInsufficientRange = errors.New("collatz: start range too small")

	// ErrOverflow indicates an orbit whose next value does not fit in an int64.
	ErrOverflow = errors.New("collatz: value out of int64 range")
)

// ValidationError names the offending parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("collatz: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InsufficientRangeError reports a parity class whose candidate pool is
// smaller than the number of starts requested from it.
type InsufficientRangeError struct {
	Parity    Parity
	MaxStart  int64
	Requested int
	Available int64
}

func (e *InsufficientRangeError) Error() string {
	return fmt.Sprintf("collatz: need %d %s starts below %d, only %d available",
		e.Requested, e.Parity, e.MaxStart, e.Available)
}

func (e *InsufficientRangeError) Unwrap() error {
	return ErrInsufficientRange
}

// OverflowError reports the orbit value whose 3n+1 step overflows.
type OverflowError struct {
	Start int64
	Value int64
}

func (e *OverflowError) Error() string {
	if e.Start == 0 || e.Start == e.Value {
		return fmt.Sprintf("collatz: 3n+1 of %d overflows int64", e.Value)
	}
	return fmt.Sprintf("collatz: orbit of %d overflows int64 after %d", e.Start, e.Value)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
