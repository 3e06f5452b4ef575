package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Sq is shorthand for chess.MustSquare.
func Sq(s string) chess.Square {
	return chess.MustSquare(s)
}

// MustBoard parses fen and calls t.Fatal if it is invalid.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// MustGame starts a game from fen with default configuration and calls
// t.Fatal if it cannot.
func MustGame(t testing.TB, fen string) *game.Game {
	t.Helper()
	g, err := game.NewFromFEN(fen, config.NewConfig())
	if err != nil {
		t.Fatalf("game.NewFromFEN(%q): %v", fen, err)
	}
	return g
}

// PlayMoves plays coordinate moves such as "e2e4" on g and calls t.Fatal on
// the first error. A fifth letter picks the promotion piece, "e7e8n";
// promotions without one become queens.
func PlayMoves(t testing.TB, g *game.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if len(m) < 4 {
			t.Fatalf("bad move %q", m)
		}
		from, to := Sq(m[0:2]), Sq(m[2:4])
		outcome, err := g.ApplyMove(from, to)
		if err != nil {
			t.Fatalf("ApplyMove(%s): %v", m, err)
		}
		if outcome != game.PromotionRequired {
			continue
		}
		kind := chess.Queen
		if len(m) == 5 {
			kind = chess.KindFromLetter(m[4])
		}
		if err := g.CompletePromotion(to, kind); err != nil {
			t.Fatalf("CompletePromotion(%s): %v", m, err)
		}
	}
}
