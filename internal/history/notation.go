package history

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Notation renders a move in SAN style: castles as O-O / O-O-O, otherwise
// piece letter, disambiguation, capture marker, destination, promotion
// suffix and check suffix.
func Notation(move chess.Move, disambiguation string, check chess.CheckStatus) string {
	var sb strings.Builder

	if move.IsCastle() {
		sb.WriteString(move.Castle.String())
		sb.WriteString(check.Suffix())
		return sb.String()
	}

	if move.Piece == chess.Pawn {
		// Pawn captures always name the origin file.
		if move.IsCapture() {
			sb.WriteByte(byte(move.From.Col))
		}
	} else {
		sb.WriteString(move.Piece.SANLetter())
		sb.WriteString(disambiguation)
	}

	if move.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())

	if move.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(move.Promotion.Letter())
	}

	sb.WriteString(check.Suffix())
	return sb.String()
}
