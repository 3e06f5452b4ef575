package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/history"
)

// mustBoard parses fen or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// newTestExecutor returns an executor over a board parsed from fen.
func newTestExecutor(t testing.TB, fen string) *Executor {
	t.Helper()
	return NewExecutor(mustBoard(t, fen), history.NewManager(), nil)
}

// sq is shorthand for chess.MustSquare.
func sq(s string) chess.Square {
	return chess.MustSquare(s)
}

// squareNames converts squares to sorted algebraic names.
func squareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, s := range squares {
		names[i] = s.String()
	}
	sort.Strings(names)
	return names
}

// moveNames converts move pairs to sorted coordinate strings.
func moveNames(moves []chess.MovePair) []string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	sort.Strings(names)
	return names
}

// play executes coordinate moves such as "e2e4", failing on any error.
// A fifth character completes a promotion.
func play(t testing.TB, e *Executor, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to := sq(m[0:2]), sq(m[2:4])
		outcome, err := e.ExecuteNormalMove(from, to)
		if err != nil {
			t.Fatalf("ExecuteNormalMove(%s) error: %v", m, err)
		}
		if outcome == PromotionRequired {
			kind := chess.Queen
			if len(m) == 5 {
				kind = chess.KindFromLetter(m[4])
			}
			if err := e.CompletePromotion(to, kind); err != nil {
				t.Fatalf("CompletePromotion(%s) error: %v", m, err)
			}
		}
	}
}

// isStalemate reports whether the side to move has no legal move and is not
// in check.
func isStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
