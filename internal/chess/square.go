package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = Rank(RankBase)
	LastRank  = Rank(RankBase + BoardSize - 1)
	FirstCol  = Col(ColBase)
	LastCol   = Col(ColBase + BoardSize - 1)
)

// Square identifies a board square by file and rank characters.
// The zero value is not a valid square.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a square from file and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	sq := Square{Col: Col(s[0]), Rank: Rank(s[1])}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustSquare parses algebraic coordinates and panics on failure.
// Intended for constants and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol && s.Rank >= FirstRank && s.Rank <= LastRank
}

// String returns the algebraic name of the square, or "-" if invalid.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Offset returns the square dc files and dr ranks away. The result may be invalid.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	colNum := int(s.Col - FirstCol)
	rankNum := int(s.Rank - FirstRank)
	return (colNum+rankNum)%2 == 1
}

// index converts a valid square to grid indices.
func (s Square) index() (int, int) {
	return int(s.Col - FirstCol), int(s.Rank - FirstRank)
}
