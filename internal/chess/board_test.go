package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if b.HalfmoveClock != 0 || b.Ply != 0 {
			t.Errorf("HalfmoveClock, Ply = %d, %d; want 0, 0", b.HalfmoveClock, b.Ply)
		}
		if b.State != Ongoing || b.DrawReason != NoDraw {
			t.Errorf("State = %v/%v; want ongoing/none", b.State, b.DrawReason)
		}
		if b.LastMove != nil {
			t.Errorf("LastMove = %v; want nil", b.LastMove)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for col := FirstCol; col <= LastCol; col++ {
			for rank := FirstRank; rank <= LastRank; rank++ {
				if got := b.PieceAt(Sq(col, rank)); got != nil {
					t.Errorf("PieceAt(%c%c) = %v; want nil", col, rank, got)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		square string
		kind   Kind
		colour Colour
	}{
		{"a1", Rook, White},
		{"b1", Knight, White},
		{"c1", Bishop, White},
		{"d1", Queen, White},
		{"e1", King, White},
		{"f1", Bishop, White},
		{"g1", Knight, White},
		{"h1", Rook, White},
		{"a2", Pawn, White},
		{"e2", Pawn, White},
		{"h2", Pawn, White},
		{"a7", Pawn, Black},
		{"e7", Pawn, Black},
		{"h7", Pawn, Black},
		{"a8", Rook, Black},
		{"d8", Queen, Black},
		{"e8", King, Black},
		{"h8", Rook, Black},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq := MustSquare(tt.square)
			p := b.PieceAt(sq)
			if p == nil {
				t.Fatalf("PieceAt(%s) = nil; want %v %v", tt.square, tt.colour, tt.kind)
			}
			if p.Kind != tt.kind || p.Colour != tt.colour {
				t.Errorf("PieceAt(%s) = %v; want %v %v", tt.square, p, tt.colour, tt.kind)
			}
			if p.Square != sq {
				t.Errorf("piece on %s reports Square %v", tt.square, p.Square)
			}
			if p.HasMoved {
				t.Errorf("piece on %s HasMoved = true; want false", tt.square)
			}
		})
	}

	t.Run("empty middle", func(t *testing.T) {
		for _, s := range []string{"e3", "d4", "f5", "c6"} {
			if !b.IsEmpty(MustSquare(s)) {
				t.Errorf("IsEmpty(%s) = false; want true", s)
			}
		}
	})

	t.Run("piece counts", func(t *testing.T) {
		if n := len(b.Pieces(White)); n != 16 {
			t.Errorf("len(Pieces(White)) = %d; want 16", n)
		}
		if n := len(b.Pieces(Black)); n != 16 {
			t.Errorf("len(Pieces(Black)) = %d; want 16", n)
		}
		if b.CountKings(White) != 1 || b.CountKings(Black) != 1 {
			t.Error("expected exactly one king per colour")
		}
	})

	t.Run("castling rights", func(t *testing.T) {
		if diff := cmp.Diff(AllCastlingRights(), b.Castling); diff != "" {
			t.Errorf("Castling mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBoardPutRemove(t *testing.T) {
	t.Run("put sets piece square", func(t *testing.T) {
		b := NewBoard()
		n := NewPiece(Knight, Black)
		b.Put(MustSquare("f6"), n)
		if got := b.PieceAt(MustSquare("f6")); got != n {
			t.Fatalf("PieceAt(f6) = %v; want the knight", got)
		}
		if n.Square != MustSquare("f6") {
			t.Errorf("knight.Square = %v; want f6", n.Square)
		}
	})

	t.Run("invalid squares", func(t *testing.T) {
		b := NewInitialBoard()
		b.Put(Sq('z', '9'), NewPiece(Queen, White))
		if got := b.PieceAt(Sq('i', '1')); got != nil {
			t.Errorf("PieceAt(i1) = %v; want nil", got)
		}
		if got := b.PieceAt(Sq('a', '9')); got != nil {
			t.Errorf("PieceAt(a9) = %v; want nil", got)
		}
		if got := b.PieceAt(MustSquare("e1")); got == nil || got.Kind != King {
			t.Errorf("PieceAt(e1) = %v after invalid Put; want white king", got)
		}
	})

	t.Run("relocate and capture", func(t *testing.T) {
		b := NewInitialBoard()
		p := b.Relocate(MustSquare("e2"), MustSquare("e4"))
		if p == nil || p.Square != MustSquare("e4") {
			t.Fatalf("Relocate returned %v", p)
		}
		if !b.IsEmpty(MustSquare("e2")) {
			t.Error("e2 not empty after Relocate")
		}
		captured := b.Capture(MustSquare("d7"))
		if captured == nil || captured.Kind != Pawn {
			t.Fatalf("Capture(d7) = %v; want black pawn", captured)
		}
		if len(b.Captured) != 1 || b.Captured[0] != captured {
			t.Errorf("Captured = %v; want [%v]", b.Captured, captured)
		}
		if b.Capture(MustSquare("d5")) != nil {
			t.Error("Capture of empty square should return nil")
		}
	})
}

func TestBoardCopy(t *testing.T) {
	original := NewInitialBoard()
	original.ToMove = Black
	original.MoveNumber = 5
	original.SetEnPassant(MustSquare("e3"))
	original.LastMove = &MovePair{From: MustSquare("e2"), To: MustSquare("e4")}

	copied := original.Copy()

	t.Run("copies all state", func(t *testing.T) {
		if diff := cmp.Diff(original, copied); diff != "" {
			t.Errorf("Copy mismatch (-original +copy):\n%s", diff)
		}
	})

	t.Run("modifications are independent", func(t *testing.T) {
		copied.Relocate(MustSquare("e1"), MustSquare("e2"))
		copied.PieceAt(MustSquare("a1")).HasMoved = true
		copied.ToMove = White
		copied.LastMove.To = MustSquare("e3")
		copied.Castling.RevokeAll(White)

		if got := original.PieceAt(MustSquare("e1")); got == nil || got.Square != MustSquare("e1") {
			t.Errorf("original e1 = %v after copy modification; want king on e1", got)
		}
		if original.PieceAt(MustSquare("a1")).HasMoved {
			t.Error("original a1 rook HasMoved changed through copy")
		}
		if original.ToMove != Black {
			t.Errorf("original ToMove = %v; want Black", original.ToMove)
		}
		if original.LastMove.To != MustSquare("e4") {
			t.Errorf("original LastMove.To = %v; want e4", original.LastMove.To)
		}
		if !original.Castling.Has(White, Kingside) {
			t.Error("original castling rights changed through copy")
		}
	})
}

func TestEnPassantTarget(t *testing.T) {
	b := NewBoard()
	b.SetEnPassant(MustSquare("d6"))
	if !b.EnPassant || b.EPSquare != MustSquare("d6") {
		t.Fatalf("EnPassant = %v %v; want true d6", b.EnPassant, b.EPSquare)
	}
	b.ClearEnPassant()
	if b.EnPassant || b.EPSquare.Valid() {
		t.Errorf("EnPassant = %v %v after clear", b.EnPassant, b.EPSquare)
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input   string
		want    Square
		wantErr bool
	}{
		{"a1", Sq('a', '1'), false},
		{"h8", Sq('h', '8'), false},
		{"e4", Sq('e', '4'), false},
		{"i1", Square{}, true},
		{"a0", Square{}, true},
		{"a9", Square{}, true},
		{"e", Square{}, true},
		{"e44", Square{}, true},
		{"", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q; want %q", got.String(), tt.input)
			}
		})
	}
}

func TestSquareColour(t *testing.T) {
	tests := []struct {
		square string
		light  bool
	}{
		{"a1", false},
		{"h1", true},
		{"a8", true},
		{"h8", false},
		{"c1", false},
		{"f1", true},
		{"d4", false},
		{"e4", true},
	}
	for _, tt := range tests {
		if got := MustSquare(tt.square).IsLight(); got != tt.light {
			t.Errorf("%s.IsLight() = %v; want %v", tt.square, got, tt.light)
		}
	}
}

func TestCastlingRights(t *testing.T) {
	r := AllCastlingRights()
	if r.String() != "KQkq" {
		t.Errorf("String() = %q; want KQkq", r.String())
	}

	r.Revoke(White, Queenside)
	if r.Has(White, Queenside) || !r.Has(White, Kingside) {
		t.Errorf("after revoking white queenside: %s", r)
	}
	if r.String() != "Kkq" {
		t.Errorf("String() = %q; want Kkq", r.String())
	}

	r.RevokeAll(Black)
	if r.String() != "K" {
		t.Errorf("String() = %q; want K", r.String())
	}

	r.Revoke(White, Kingside)
	if r.String() != "-" {
		t.Errorf("String() = %q; want -", r.String())
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		kind   Kind
		colour Colour
		want   byte
	}{
		{King, White, 'K'},
		{Queen, Black, 'q'},
		{Knight, White, 'N'},
		{Pawn, Black, 'p'},
	}
	for _, tt := range tests {
		p := NewPiece(tt.kind, tt.colour)
		if got := p.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", p, got, tt.want)
		}
		if KindFromLetter(tt.want) != tt.kind {
			t.Errorf("KindFromLetter(%c) = %v; want %v", tt.want, KindFromLetter(tt.want), tt.kind)
		}
	}
}

func TestResultFor(t *testing.T) {
	tests := []struct {
		state  GameState
		toMove Colour
		want   string
	}{
		{Checkmate, Black, ResultWhiteWins},
		{Checkmate, White, ResultBlackWins},
		{Draw, White, ResultDraw},
		{Check, Black, ResultInProgress},
		{Ongoing, White, ResultInProgress},
	}
	for _, tt := range tests {
		if got := ResultFor(tt.state, tt.toMove); got != tt.want {
			t.Errorf("ResultFor(%v, %v) = %q; want %q", tt.state, tt.toMove, got, tt.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	m := Move{From: MustSquare("e7"), To: MustSquare("e8"), Piece: Pawn, Promotion: Queen}
	if got := m.String(); got != "e7e8q" {
		t.Errorf("String() = %q; want e7e8q", got)
	}
	if !m.IsPromotion() || m.IsCapture() || m.IsCastle() {
		t.Errorf("flags wrong for %v", m)
	}
}
