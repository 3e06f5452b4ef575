// Package engine implements the chess rules: threat detection, move
// generation with check-safety filtering, move execution including the
// special moves, and terminal-state adjudication.
package engine

import (
	"io"
	"log/slog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/history"
)

// Outcome is the successful result of executing a move.
type Outcome int

const (
	// MoveOK means the move is complete and the opponent is to move.
	MoveOK Outcome = iota
	// PromotionRequired means a pawn reached its last rank and stays a pawn
	// until CompletePromotion is called.
	PromotionRequired
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if o == PromotionRequired {
		return "promotion required"
	}
	return "ok"
}

// Executor applies validated moves to a board and keeps its history in step.
// It is not safe for concurrent use.
type Executor struct {
	board   *chess.Board
	history *history.Manager
	logger  *slog.Logger

	// The move that reached the last rank, waiting for CompletePromotion.
	pending *pendingMove
}

type pendingMove struct {
	move           chess.Move
	disambiguation string
}

// NewExecutor creates an executor for board. The history is reset to start
// from the board's move number, the starting position is registered as its
// first occurrence and the board's state is evaluated. A nil logger
// discards output.
func NewExecutor(board *chess.Board, hist *history.Manager, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if hist == nil {
		hist = history.NewManager()
	}
	hist.Reset(board.MoveNumber)
	hist.RegisterPosition(board)
	UpdateGameState(board, hist, logger)

	return &Executor{board: board, history: hist, logger: logger}
}

// Board returns the board the executor mutates.
func (e *Executor) Board() *chess.Board {
	return e.board
}

// History returns the executor's history manager.
func (e *Executor) History() *history.Manager {
	return e.history
}

// ExecuteNormalMove applies the move from -> to. The move is expected to
// come from LegalMoves; only the structural checks are repeated here:
// squares on the board, a piece on the origin, no capture of a friendly
// piece and a well-formed en passant capture. A king moving two files from
// its home square is executed as a castle.
func (e *Executor) ExecuteNormalMove(from, to chess.Square) (Outcome, error) {
	board := e.board
	moveErr := func(err error, piece string) error {
		return &errors.MoveError{Err: err, Ply: board.Ply + 1, From: from.String(), To: to.String(), Piece: piece}
	}

	if !from.Valid() || !to.Valid() {
		return MoveOK, moveErr(errors.ErrInvalidSquare, "")
	}
	if board.PromotionPending {
		return MoveOK, moveErr(errors.ErrPromotionPending, "")
	}
	p := board.PieceAt(from)
	if p == nil {
		return MoveOK, moveErr(errors.ErrEmptyOrigin, "")
	}

	if target := board.PieceAt(to); target != nil && target.Colour == p.Colour {
		return MoveOK, moveErr(errors.ErrOwnPieceCapture, p.Kind.String())
	}
	if side := castleSideFor(p, from, to); side != chess.NoCastle {
		return MoveOK, e.ExecuteCastle(p.Colour, side)
	}

	move := chess.Move{From: from, To: to, Piece: p.Kind, Colour: p.Colour}
	capturedSq := to
	if isEnPassantTarget(board, p, to) {
		capturedSq = enPassantVictimSquare(from, to)
		victim := board.PieceAt(capturedSq)
		if victim == nil || victim.Colour == p.Colour || victim.Kind != chess.Pawn {
			return MoveOK, moveErr(errors.ErrMalformedEnPassant, p.Kind.String())
		}
		move.EnPassant = true
	}

	// Disambiguation depends on the position before the move.
	disambiguation := SANDisambiguation(board, from, to)

	captured := board.Capture(capturedSq)
	if captured != nil {
		move.Captured = captured.Kind
		e.logger.Debug("capture",
			"piece", p.String(), "captured", captured.String(),
			"square", capturedSq.String(), "en_passant", move.EnPassant)
	}

	board.Relocate(from, to)
	p.HasMoved = true

	updateCastlingRights(board, p, from, captured, capturedSq)
	if isDoubleAdvance(p, from, to) {
		board.SetEnPassant(from.Offset(0, chess.ColourOffset(p.Colour)))
	} else {
		board.ClearEnPassant()
	}
	advanceCounters(board, p.Colour, p.Kind == chess.Pawn || captured != nil)
	board.LastMove = &chess.MovePair{From: from, To: to}
	board.ToMove = p.Colour.Opposite()

	if p.Kind == chess.Pawn && isPromotionSquare(p.Colour, to) {
		// The position is only classified once the promoted piece is known.
		board.State = chess.Ongoing
		board.DrawReason = chess.NoDraw
		board.PromotionPending = true
		board.PromotionSquare = to
		e.pending = &pendingMove{move: move, disambiguation: disambiguation}
		e.logger.Debug("promotion required", "square", to.String(), "colour", p.Colour.String())
		return PromotionRequired, nil
	}

	e.finish(move, disambiguation)
	return MoveOK, nil
}

// CompletePromotion replaces the pawn waiting on sq with a new piece of kind
// and completes the move that brought it there.
func (e *Executor) CompletePromotion(sq chess.Square, kind chess.Kind) error {
	board := e.board
	if !board.PromotionPending || e.pending == nil || sq != board.PromotionSquare {
		return &errors.MoveError{Err: errors.ErrNoPromotionPending, Ply: board.Ply, To: sq.String()}
	}
	if !kind.IsPromotionChoice() {
		return &errors.MoveError{Err: errors.ErrInvalidPromotion, Ply: board.Ply, To: sq.String(), Piece: kind.String()}
	}

	pawn := board.PieceAt(sq)
	promoted := chess.NewPiece(kind, pawn.Colour)
	promoted.HasMoved = true
	board.Put(sq, promoted)
	board.PromotionPending = false
	board.PromotionSquare = chess.Square{}

	move := e.pending.move
	move.Promotion = kind
	disambiguation := e.pending.disambiguation
	e.pending = nil

	e.logger.Debug("promoted", "square", sq.String(), "piece", promoted.String())
	e.finish(move, disambiguation)
	return nil
}

// PendingPromotion returns the square of a pawn awaiting promotion.
func (e *Executor) PendingPromotion() (chess.Square, bool) {
	return e.board.PromotionSquare, e.board.PromotionPending
}

// finish completes a move once the side to move has flipped: the new
// position is registered, the game state re-derived and the move logged.
func (e *Executor) finish(move chess.Move, disambiguation string) chess.MoveRecord {
	e.history.RegisterPosition(e.board)
	UpdateGameState(e.board, e.history, e.logger)
	return e.history.RecordMove(move, disambiguation, checkStatus(e.board))
}

// advanceCounters updates the ply, halfmove clock and move number after a
// move by mover. resetClock is true for pawn moves and captures.
func advanceCounters(board *chess.Board, mover chess.Colour, resetClock bool) {
	board.Ply++
	if resetClock {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if mover == chess.Black {
		board.MoveNumber++
	}
}

// checkStatus reports whether the side to move is in check or mated.
func checkStatus(board *chess.Board) chess.CheckStatus {
	switch {
	case board.State == chess.Checkmate || IsCheckmate(board):
		return chess.GivesCheckmate
	case IsInCheck(board, board.ToMove):
		return chess.GivesCheck
	}
	return chess.NoCheck
}
