// Package chess provides the core chess types: colours, piece kinds, squares,
// castling rights, game states and the Board aggregate.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// FENLetter returns the side-to-move letter used in FEN strings.
func (c Colour) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of a colour.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return FirstRank
	}
	return LastRank
}

// PawnStartRank returns the rank from which a colour's pawns may advance two squares.
func PawnStartRank(colour Colour) Rank {
	if colour == White {
		return FirstRank + 1
	}
	return LastRank - 1
}

// PromotionRank returns the farthest rank for a colour's pawns.
func PromotionRank(colour Colour) Rank {
	return HomeRank(colour.Opposite())
}

// Kind represents a chess piece type. The set is closed.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// SANLetter returns the letter used in move notation; pawns have none.
func (k Kind) SANLetter() string {
	if k == Pawn || k == NoKind {
		return ""
	}
	return string(k.Letter())
}

// Value returns the conventional material value of a piece kind.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// IsPromotionChoice reports whether a pawn may promote to this kind.
func (k Kind) IsPromotionChoice() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// KindFromLetter converts a piece letter (either case) to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// CastleSide identifies a castling flank.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the notation for a castling side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// KingDestCol returns the column the king lands on when castling on this side.
func (s CastleSide) KingDestCol() Col {
	if s == Queenside {
		return 'c'
	}
	return 'g'
}

// RookHomeCol returns the corner column of the rook for this side.
func (s CastleSide) RookHomeCol() Col {
	if s == Queenside {
		return FirstCol
	}
	return LastCol
}

// RookDestCol returns the column the rook lands on when castling on this side.
func (s CastleSide) RookDestCol() Col {
	if s == Queenside {
		return 'd'
	}
	return 'f'
}

// CastlingRights records per-colour, per-flank castling eligibility.
// Rights are only ever revoked.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Has reports whether colour may still castle on side.
func (r CastlingRights) Has(colour Colour, side CastleSide) bool {
	switch {
	case colour == White && side == Kingside:
		return r.WhiteKingside
	case colour == White && side == Queenside:
		return r.WhiteQueenside
	case colour == Black && side == Kingside:
		return r.BlackKingside
	case colour == Black && side == Queenside:
		return r.BlackQueenside
	}
	return false
}

// Revoke clears one flank's right.
func (r *CastlingRights) Revoke(colour Colour, side CastleSide) {
	switch {
	case colour == White && side == Kingside:
		r.WhiteKingside = false
	case colour == White && side == Queenside:
		r.WhiteQueenside = false
	case colour == Black && side == Kingside:
		r.BlackKingside = false
	case colour == Black && side == Queenside:
		r.BlackQueenside = false
	}
}

// RevokeAll clears both flank rights for a colour.
func (r *CastlingRights) RevokeAll(colour Colour) {
	r.Revoke(colour, Kingside)
	r.Revoke(colour, Queenside)
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	var b []byte
	if r.WhiteKingside {
		b = append(b, 'K')
	}
	if r.WhiteQueenside {
		b = append(b, 'Q')
	}
	if r.BlackKingside {
		b = append(b, 'k')
	}
	if r.BlackQueenside {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// GameState is the terminal or interim state of a game.
type GameState int

const (
	Ongoing GameState = iota
	Check
	Checkmate
	Draw
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// IsTerminal reports whether no further moves may be played.
func (s GameState) IsTerminal() bool {
	return s == Checkmate || s == Draw
}

// DrawReason qualifies a Draw state. It is NoDraw for every other state.
type DrawReason int

const (
	NoDraw DrawReason = iota
	Stalemate
	InsufficientMaterial
	Repetition
	FiftyMove
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	switch r {
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case Repetition:
		return "threefold repetition"
	case FiftyMove:
		return "fifty-move rule"
	default:
		return "none"
	}
}

// FiftyMoveLimit is the halfmove clock value at which the fifty-move rule applies.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of a position that draws the game.
const RepetitionLimit = 3
