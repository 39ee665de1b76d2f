package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing target and an already-consumed one;
	// the two are observably identical to callers.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyHandled signals terminal-state re-entry on a donation request.
	ErrAlreadyHandled = errors.New("request already handled")

	// ErrUnauthorized signals a staff/org mismatch or an inactive actor.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInconsistentState signals that a compensating update failed and the
	// stores disagree. Operator attention required.
	ErrInconsistentState = errors.New("inconsistent state")
)

// ValidationError reports bad or missing input on a single field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// PersistenceError wraps a storage failure. Where a compensating rollback is
// defined, it has already been attempted by the time this surfaces.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
