// Package history tracks the positions and moves of a game: the canonical
// position key used for repetition detection and the SAN-style move log.
package history

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// CanonicalPosition returns the four-field repetition key for a board:
// piece placement, side to move, castling rights and en passant target.
// Move counters are excluded, so positions reached at different points of
// the game compare equal.
func CanonicalPosition(board *chess.Board) string {
	var sb strings.Builder
	WriteCanonical(&sb, board)
	return sb.String()
}

// WriteCanonical writes the four canonical fields to the builder.
func WriteCanonical(sb *strings.Builder, board *chess.Board) {
	WritePlacement(sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove.FENLetter())
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(sb, board)
}

// WritePlacement writes the piece placement field, rank 8 first.
func WritePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			piece := board.PieceAt(chess.Sq(col, rank))
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant && board.EPSquare.Valid() {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
