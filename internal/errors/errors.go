// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and a structured error type that preserves
// round context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidInput indicates a coordinate read that did not yield two integers.
	ErrInvalidInput = errors.New("invalid coordinate input")

	// ErrOutOfBounds indicates coordinates outside the board.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrIllegalMove indicates a selection or move the rules do not allow.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongPhase indicates a selection or move requested out of sequence.
	ErrWrongPhase = errors.New("operation not valid in current phase")

	// ErrInvalidDimensions indicates a board with non-positive rows or columns.
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with round context: which round, which phase,
// and the square the operator supplied.
type MoveError struct {
	Err   error  // The underlying error
	Round int    // 1-based round number (0 if not applicable)
	Phase string // "selecting" or "moving" (empty if not applicable)
	Row   int
	Col   int
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Round > 0 {
		parts = append(parts, fmt.Sprintf("round %d", e.Round))
	}
	if e.Phase != "" {
		parts = append(parts, e.Phase)
	}
	parts = append(parts, fmt.Sprintf("square (%d,%d)", e.Row, e.Col))

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
