package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/history"
)

func TestAllLegalMoves_InitialPosition(t *testing.T) {
	board := NewInitialBoard()
	moves := AllLegalMoves(board, chess.White)
	if len(moves) != 20 {
		t.Fatalf("len(AllLegalMoves(White)) = %d, want 20: %v", len(moves), moveNames(moves))
	}

	pawnMoves, knightMoves := 0, 0
	for _, m := range moves {
		switch board.PieceAt(m.From).Kind {
		case chess.Pawn:
			pawnMoves++
		case chess.Knight:
			knightMoves++
		default:
			t.Errorf("unexpected mover for %v", m)
		}
	}
	if pawnMoves != 16 || knightMoves != 4 {
		t.Errorf("pawn, knight moves = %d, %d; want 16, 4", pawnMoves, knightMoves)
	}
}

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "knight from start",
			fen:    InitialFEN,
			square: "g1",
			want:   []string{"f3", "h3"},
		},
		{
			name:   "blocked bishop",
			fen:    InitialFEN,
			square: "c1",
			want:   []string{},
		},
		{
			name:   "rook ray stops at enemy inclusive",
			fen:    "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1",
			square: "a1",
			want:   []string{"a2", "a3", "a4", "b1", "c1", "d1"},
		},
		{
			name:   "pinned knight cannot move",
			fen:    "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{},
		},
		{
			name:   "pinned rook slides along the pin",
			fen:    "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"e3", "e4", "e5", "e6", "e7"},
		},
		{
			name:   "king cannot step into attack",
			fen:    "4k3/8/8/8/8/8/r7/4K3 w - - 0 1",
			square: "e1",
			want:   []string{"d1", "f1"},
		},
		{
			name:   "must answer check",
			fen:    "4k3/8/8/8/8/8/3N4/r3K3 w - - 0 1",
			square: "d2",
			want:   []string{"b1"},
		},
		{
			name:   "pawn double push and captures",
			fen:    "4k3/8/8/8/8/3p1p2/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"d3", "e3", "e4", "f3"},
		},
		{
			name:   "pawn double push blocked",
			fen:    "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"e3"},
		},
		{
			name:   "en passant available",
			fen:    "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			square: "e5",
			want:   []string{"d6", "e6"},
		},
		{
			name:   "en passant exposing king along rank",
			fen:    "4k3/8/8/K2pP2r/8/8/8/8 w - d6 0 1",
			square: "e5",
			want:   []string{"e6"},
		},
		{
			name:   "empty square",
			fen:    InitialFEN,
			square: "e4",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			got := squareNames(LegalMoves(board, sq(tt.square)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LegalMoves(%s) mismatch (-want +got):\n%s", tt.square, diff)
			}
		})
	}
}

func TestLegalMoves_Castling(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "both sides available",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			want: []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"},
		},
		{
			name: "no rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1",
			want: []string{"d1", "d2", "e2", "f1", "f2"},
		},
		{
			name: "path blocked on queenside",
			fen:  "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			want: []string{"d1", "d2", "e2", "f1", "f2", "g1"},
		},
		{
			name: "king in check",
			fen:  "r3k2r/8/8/8/4r3/8/8/R3K2R w KQ - 0 1",
			want: []string{"d1", "d2", "f1", "f2"},
		},
		{
			name: "crossing square attacked",
			fen:  "r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
			want: []string{"c1", "d1", "f2"},
		},
		{
			name: "landing square attacked",
			fen:  "r3k2r/8/8/8/8/8/6r1/R3K2R w KQ - 0 1",
			want: []string{"c1", "d1", "f1"},
		},
		{
			name: "b1 attacked does not stop queenside",
			fen:  "r3k2r/8/8/8/8/8/1r6/R3K2R w KQ - 0 1",
			want: []string{"c1", "d1", "f1", "g1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			got := squareNames(LegalMoves(board, sq("e1")))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LegalMoves(e1) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSimulateAndCheckSafety_RestoresBoard(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/K2pP2r/8/8/8/8 w - d6 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"4k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			before := board.Copy()
			key := history.CanonicalPosition(board)

			for _, p := range board.Pieces(board.ToMove) {
				from := p.Square
				for _, to := range PseudoLegalMoves(board, from) {
					SimulateAndCheckSafety(board, from, to)
					if got := history.CanonicalPosition(board); got != key {
						t.Fatalf("after simulating %s%s canonical position = %q, want %q", from, to, got, key)
					}
				}
			}

			if diff := cmp.Diff(before, board); diff != "" {
				t.Errorf("board changed by simulation (-before +after):\n%s", diff)
			}
		})
	}
}

func TestSimulateAndCheckSafety_Rejects(t *testing.T) {
	board := NewInitialBoard()
	before := board.Copy()

	tests := []struct {
		name     string
		from, to chess.Square
	}{
		{"empty origin", sq("e4"), sq("e5")},
		{"friendly capture", sq("d1"), sq("d2")},
		{"invalid destination", sq("e2"), chess.Sq('e', '9')},
		{"null move", sq("e2"), sq("e2")},
	}
	for _, tt := range tests {
		if SimulateAndCheckSafety(board, tt.from, tt.to) {
			t.Errorf("%s: SimulateAndCheckSafety = true, want false", tt.name)
		}
	}
	if diff := cmp.Diff(before, board); diff != "" {
		t.Errorf("board changed (-before +after):\n%s", diff)
	}
}

// TestLegalMoves_KingSafe replays a short game and checks that after every
// legal move the mover's king is not attacked.
func TestLegalMoves_KingSafe(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		board := mustBoard(t, fen)
		colour := board.ToMove
		for _, m := range AllLegalMoves(board, colour) {
			trial := board.Copy()
			e := NewExecutor(trial, history.NewManager(), nil)
			outcome, err := e.ExecuteNormalMove(m.From, m.To)
			if err != nil {
				t.Fatalf("%s: ExecuteNormalMove(%v) error: %v", fen, m, err)
			}
			if outcome == PromotionRequired {
				if err := e.CompletePromotion(m.To, chess.Queen); err != nil {
					t.Fatalf("CompletePromotion: %v", err)
				}
			}
			if IsInCheck(trial, colour) {
				t.Errorf("%s: legal move %v leaves %v in check", fen, m, colour)
			}
			if trial.CountKings(chess.White) != 1 || trial.CountKings(chess.Black) != 1 {
				t.Errorf("%s: move %v broke the one-king invariant", fen, m)
			}
		}
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position", InitialFEN, chess.White, true},
		{"stalemated king", "7K/8/8/8/8/8/2Q5/k7 b - - 0 1", chess.Black, false},
		{"checkmated king", "R3k3/3ppp2/8/8/8/8/8/4K3 b - - 0 1", chess.Black, false},
		{"king with escape", "4k3/8/8/8/8/8/8/R3K3 b - - 0 1", chess.Black, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := HasLegalMoves(board, tt.colour); got != tt.want {
				t.Errorf("HasLegalMoves() = %v, want %v", got, tt.want)
			}
		})
	}
}
