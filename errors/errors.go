// Package errors provides sentinel errors and error types for the
// simple-chess engine. It defines the error conditions a caller can
// encounter and structured error types that preserve context while
// allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure conditions the engine reports.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not in the current legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoHistory indicates undo was called with no moves to undo.
	ErrNoHistory = errors.New("no move to undo")

	// ErrNoRedo indicates redo was called with no undone moves to reapply.
	ErrNoRedo = errors.New("no move to redo")

	// ErrMalformedRecord indicates an unparseable position record.
	ErrMalformedRecord = errors.New("malformed position record")
)

// RecordError wraps ErrMalformedRecord with the record field that failed
// to parse and the offending value.
type RecordError struct {
	Field string // The record field that failed ("piece placement", "side to move", ...)
	Value string // The offending text
	Err   error  // Underlying cause, if any
}

// Error returns a formatted message identifying the bad field.
func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%s field", e.Field)
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", ErrMalformedRecord, msg, e.Err)
	}
	return fmt.Sprintf("%v: %s", ErrMalformedRecord, msg)
}

// Unwrap makes errors.Is(err, ErrMalformedRecord) hold for every
// RecordError.
func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}

// MoveError wraps ErrIllegalMove with the rejected move text.
type MoveError struct {
	Move string // Coordinate form of the rejected move
}

// Error returns a formatted message including the rejected move.
func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: %s", ErrIllegalMove, e.Move)
}

// Unwrap makes errors.Is(err, ErrIllegalMove) hold for every MoveError.
func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
