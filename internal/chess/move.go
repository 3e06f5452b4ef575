package chess

// Move represents a single move with the flags derived when it was played.
// It is built transiently and never persisted by the board.
type Move struct {
	From Square
	To   Square

	// The piece being moved and its colour.
	Piece  Kind
	Colour Colour

	// The kind captured (NoKind if not a capture).
	Captured Kind

	// The kind promoted to (NoKind if not a promotion).
	Promotion Kind

	// Whether the capture was en passant.
	EnPassant bool

	// Castling side (NoCastle if not a castle).
	Castle CastleSide
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != NoKind
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// String returns the move in coordinate form, e.g. "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.Letter() + ('a' - 'A')))
	}
	return s
}

// CheckStatus records whether a move gave check.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	GivesCheck
	GivesCheckmate
)

// Suffix returns the notation suffix for the check status.
func (c CheckStatus) Suffix() string {
	switch c {
	case GivesCheck:
		return "+"
	case GivesCheckmate:
		return "#"
	default:
		return ""
	}
}

// MoveRecord is one entry of the move log.
type MoveRecord struct {
	// The move number shown before White's move, e.g. 12 for "12. Nf3".
	Number int

	// SAN-style text, e.g. "Nbd7", "exd6", "e8=Q#", "O-O".
	Notation string

	Move        Move
	CheckStatus CheckStatus
}

// Colour returns the side that played the move.
func (r MoveRecord) Colour() Colour {
	return r.Move.Colour
}
