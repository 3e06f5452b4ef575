package engine

import (
	"log/slog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/history"
)

// EvaluateState classifies the position for the side to move. Checks run in
// order: fifty-move rule, threefold repetition, insufficient material, then
// checkmate, stalemate, check or ongoing. hist may be nil, in which case
// repetition is not considered. A missing king on either side returns an
// error wrapping ErrMissingKing together with the board's current state.
func EvaluateState(board *chess.Board, hist *history.Manager) (chess.GameState, chess.DrawReason, error) {
	colour := board.ToMove
	kingSq, err := FindKing(board, colour)
	if err != nil {
		return board.State, board.DrawReason, err
	}
	if _, err := FindKing(board, colour.Opposite()); err != nil {
		return board.State, board.DrawReason, err
	}

	if board.HalfmoveClock >= chess.FiftyMoveLimit {
		return chess.Draw, chess.FiftyMove, nil
	}
	if hist != nil && hist.IsThreefoldRepetition() {
		return chess.Draw, chess.Repetition, nil
	}
	if IsInsufficientMaterial(board) {
		return chess.Draw, chess.InsufficientMaterial, nil
	}

	inCheck := IsSquareThreatened(board, kingSq, colour.Opposite())
	hasMoves := HasLegalMoves(board, colour)

	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate, chess.NoDraw, nil
	case !hasMoves:
		return chess.Draw, chess.Stalemate, nil
	case inCheck:
		return chess.Check, chess.NoDraw, nil
	default:
		return chess.Ongoing, chess.NoDraw, nil
	}
}

// UpdateGameState re-derives the board's State and DrawReason. It must run
// after the side to move has flipped. When a king is missing the error is
// logged at error level and the state is left unchanged.
func UpdateGameState(board *chess.Board, hist *history.Manager, logger *slog.Logger) {
	state, reason, err := EvaluateState(board, hist)
	if err != nil {
		if logger != nil {
			logger.Error("state evaluation aborted", "error", err, "ply", board.Ply)
		}
		return
	}

	previous := board.State
	board.State = state
	board.DrawReason = reason

	if logger != nil && state.IsTerminal() && !previous.IsTerminal() {
		logger.Info("game over",
			"state", state.String(), "reason", reason.String(),
			"result", chess.ResultFor(state, board.ToMove), "ply", board.Ply)
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
