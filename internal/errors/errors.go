// Package errors provides sentinel errors and error types for the chess rules core.
// It defines the expected failure conditions of move application and position setup,
// and structured error types that preserve context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move application.
// The first four are recoverable conditions reported to the immediate caller.
var (
	// ErrInvalidSquare indicates coordinates outside the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrEmptyOrigin indicates there is no piece on the origin square.
	ErrEmptyOrigin = errors.New("no piece on origin square")

	// ErrOwnPieceCapture indicates the destination holds a piece of the mover's colour.
	ErrOwnPieceCapture = errors.New("cannot capture own piece")

	// ErrMalformedEnPassant indicates the en passant target is set but the pawn
	// that should be captured is absent or of the mover's colour.
	ErrMalformedEnPassant = errors.New("malformed en passant capture")

	// ErrMissingKing indicates a colour has no king on the board. This is an
	// invariant violation, not a user error.
	ErrMissingKing = errors.New("king missing from board")
)

// Sentinel errors for the game surface and position setup.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPromotionPending indicates a pawn is waiting on the last rank for its
	// promotion piece to be chosen.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPromotionPending indicates CompletePromotion was called with no pawn waiting.
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion piece other than Q, R, B or N.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrGameOver indicates a move was submitted after checkmate or a draw.
	ErrGameOver = errors.New("game is over")

	// ErrNoLegalMoves indicates a player was asked to move with nothing legal available.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply at which the move was
// attempted and its origin and destination squares. It supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // Ply number the move would have been (0 if not applicable)
	From  string // Origin square in algebraic form (if known)
	To    string // Destination square in algebraic form (if known)
	Piece string // Piece name (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("from %s", e.From))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("to %s", e.To))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}

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

// ParseError represents a FEN parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    string // FEN field name (placement, side, castling, en passant, clocks)
	Column   int    // 1-based character position within the field (0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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
