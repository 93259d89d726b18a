package domain

import (
	"errors"
	"fmt"
)

// Input validation failures. None of them are transient.
var (
	ErrEmptyClassName      = errors.New("empty class name")
	ErrDuplicateClass      = errors.New("duplicate class")
	ErrUnknownParent       = errors.New("unknown parent")
	ErrUnknownClass        = errors.New("unknown class")
	ErrInvalidElementType  = errors.New("invalid element type")
	ErrInvalidInitialValue = errors.New("initial value does not match element type")
	ErrIncompatibleBinding = errors.New("incompatible binding")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrUnknownReference    = errors.New("unknown reference")
	ErrDuplicateReference  = errors.New("duplicate reference")
	ErrInvalidStep         = errors.New("invalid step")
	ErrUnknownPolicy       = errors.New("unknown policy")
)

// ErrViolationsFound is returned by Check when violations were found and the
// caller asked to fail on them. A violation by itself is not an error.
var ErrViolationsFound = errors.New("violations found")

// InputError carries the offending identifier of a validation failure.
type InputError struct {
	Kind   error
	ID     string
	Detail string
}

func (e *InputError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s (%s)", e.Kind, e.ID, e.Detail)
	}

	return fmt.Sprintf("%v: %s", e.Kind, e.ID)
}

// Unwrap lets errors.Is match the sentinel kind.
func (e *InputError) Unwrap() error {
	return e.Kind
}

func inputError(kind error, id string) error {
	return &InputError{Kind: kind, ID: id}
}

func inputErrorf(kind error, id string, format string, args ...any) error {
	return &InputError{Kind: kind, ID: id, Detail: fmt.Sprintf(format, args...)}
}
