package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a casting seed is empty or malformed.
var ErrInvalidInput = errors.New("invalid input")

// ErrCorruptTable signals that a static table broke one of its invariants.
// It is never recoverable.
var ErrCorruptTable = errors.New("corrupt static table")

// ErrReadingNotFound is returned when a reading ID cannot be found in the store.
var ErrReadingNotFound = errors.New("reading not found")

// ErrHexagramNotFound is returned for a King Wen number outside 1..64.
var ErrHexagramNotFound = errors.New("hexagram not found")

// ErrNoJournal is returned by journal operations when no store is configured.
var ErrNoJournal = errors.New("no reading store configured")

// InvalidInputError names the seed form that was rejected.
type InvalidInputError struct {
	Method Method
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s seed: %s", e.Method, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// InvalidInput builds an InvalidInputError.
func InvalidInput(method Method, format string, args ...any) error {
	return &InvalidInputError{Method: method, Reason: fmt.Sprintf(format, args...)}
}

// CorruptTableError reports which table failed and how.
type CorruptTableError struct {
	Table  string
	Detail string
}

func (e *CorruptTableError) Error() string {
	return fmt.Sprintf("corrupt %s table: %s", e.Table, e.Detail)
}

func (e *CorruptTableError) Unwrap() error { return ErrCorruptTable }

func corrupt(table, format string, args ...any) error {
	return &CorruptTableError{Table: table, Detail: fmt.Sprintf(format, args...)}
}
