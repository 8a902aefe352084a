package talk

import (
	"errors"
	"fmt"
)

// ErrValidation matches every talk construction failure via errors.Is.
var ErrValidation = errors.New("invalid talk")

// Field-level causes wrapped by ValidationError.
var (
	ErrMissingField   = errors.New("is required")
	ErrInvalidTime    = errors.New("must be an RFC 3339 timestamp")
	ErrEndBeforeStart = errors.New("end must not be before start")
	ErrMalformedLine  = errors.New("expected \"title, timestamp\"")
)

// ValidationError reports a malformed talk record.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is lets callers test for ErrValidation without knowing the field.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TimezoneError reports an IANA timezone id that could not be loaded.
// It is a configuration problem in the source data and counts as a
// validation failure.
type TimezoneError struct {
	Zone string
	Err  error
}

func (e *TimezoneError) Error() string {
	return fmt.Sprintf("timezone %q: %v", e.Zone, e.Err)
}

func (e *TimezoneError) Unwrap() error { return e.Err }

// Is lets callers test for ErrValidation.
func (e *TimezoneError) Is(target error) bool {
	return target == ErrValidation
}

// RecordError attaches the record position to a validation failure.
type RecordError struct {
	Index int // zero-based position in the source document
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index+1, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
