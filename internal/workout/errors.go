package workout

import (
	"fmt"
)

// ErrUnknownWorkoutKind is returned when no kind is registered for a package code.
type ErrUnknownWorkoutKind struct {
	error
	Code string
}

// NewErrUnknownWorkoutKind creates an ErrUnknownWorkoutKind for code.
func NewErrUnknownWorkoutKind(code string) *ErrUnknownWorkoutKind {
	return &ErrUnknownWorkoutKind{error: fmt.Errorf("unknown workout kind %q", code), Code: code}
}

// ErrArityMismatch is returned when a package carries the wrong number of fields for its kind.
type ErrArityMismatch struct {
	error
	Code     Code
	Expected int
	Got      int
}

// NewErrArityMismatch creates an ErrArityMismatch for code.
func NewErrArityMismatch(code Code, expected, got int) *ErrArityMismatch {
	return &ErrArityMismatch{
		error:    fmt.Errorf("workout %s expects %d fields, got %d", code, expected, got),
		Code:     code,
		Expected: expected,
		Got:      got,
	}
}

// ErrInvalidDuration is returned when the duration is not a positive number of hours.
type ErrInvalidDuration struct {
	error
	Duration float64
}

// NewErrInvalidDuration creates an ErrInvalidDuration for duration.
func NewErrInvalidDuration(duration float64) *ErrInvalidDuration {
	return &ErrInvalidDuration{error: fmt.Errorf("duration must be > 0 hours, got %v", duration), Duration: duration}
}

// ErrInvalidField is returned when a field is missing, has the wrong type or is out of range.
type ErrInvalidField struct {
	error
	Key string
}

// NewErrInvalidField creates an ErrInvalidField for key with a formatted reason.
func NewErrInvalidField(key string, format string, args ...any) *ErrInvalidField {
	return &ErrInvalidField{error: fmt.Errorf("param %s: %s", key, fmt.Sprintf(format, args...)), Key: key}
}
