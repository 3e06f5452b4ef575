package chess

import "unicode"

// Piece is a piece on the board. The Board owns every Piece; Square mirrors
// the grid cell holding it and HasMoved matters only for castling eligibility.
type Piece struct {
	Kind     Kind
	Colour   Colour
	Square   Square
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{Kind: kind, Colour: colour}
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns a description such as "White Knight".
func (p *Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceView is a read-only copy of a piece handed to callers outside the core.
type PieceView struct {
	Kind     Kind
	Colour   Colour
	Square   Square
	HasMoved bool
}

// View returns a read-only copy of the piece.
func (p *Piece) View() PieceView {
	return PieceView{Kind: p.Kind, Colour: p.Colour, Square: p.Square, HasMoved: p.HasMoved}
}
