package harness

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRecord    = errors.New("malformed record")
	ErrToleranceExceeded  = errors.New("tolerance exceeded")
	ErrTooManyMismatches  = errors.New("too many mismatches")
	ErrInvalidCount       = errors.New("record count must be positive")
	ErrInvalidPeer        = errors.New("peer must be an alphabetic token")
	ErrMissingPlaceholder = errors.New("peer path has no {peer} placeholder")
)

// RecordError reports a line that could not be read as a test vector.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// Mismatch is a record whose recomputed distance is not finite or differs
// from the stored one by more than the tolerance.
type Mismatch struct {
	Line     int
	Expected float64
	Computed float64
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("line %d: expected %.12f, got %.12f", m.Line, m.Expected, m.Computed)
}

func (m Mismatch) Is(target error) bool {
	return target == ErrToleranceExceeded
}
