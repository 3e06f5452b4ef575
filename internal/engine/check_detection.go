package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Offset tables for the fixed-pattern pieces.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king reports false.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, err := FindKing(board, colour)
	if err != nil {
		return false
	}
	return IsSquareThreatened(board, kingSq, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for col := chess.FirstCol; col <= chess.LastCol; col++ {
			sq := chess.Sq(col, rank)
			if p := board.PieceAt(sq); p != nil && p.Kind == chess.King && p.Colour == colour {
				return sq, nil
			}
		}
	}
	return chess.Square{}, fmt.Errorf("%s king: %w", colour, errors.ErrMissingKing)
}

// IsSquareThreatened returns true if any piece of byColour attacks sq.
// Pawns attack only their two forward diagonals, knights and kings use their
// offset tables, and sliding pieces attack along their axes up to the first
// occupied square, whatever its colour. The occupant of sq is irrelevant.
func IsSquareThreatened(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	threatened := false
	board.ForEach(func(p *chess.Piece) {
		if !threatened && p.Colour == byColour && attacks(board, p, sq) {
			threatened = true
		}
	})
	return threatened
}

// attacks reports whether piece p attacks target.
func attacks(board *chess.Board, p *chess.Piece, target chess.Square) bool {
	from := p.Square
	if from == target {
		return false
	}
	colDiff := int(target.Col) - int(from.Col)
	rankDiff := int(target.Rank) - int(from.Rank)

	switch p.Kind {
	case chess.Pawn:
		return rankDiff == chess.ColourOffset(p.Colour) && abs(colDiff) == 1
	case chess.Knight, chess.King, chess.Bishop, chess.Rook, chess.Queen:
		return canPieceMove(board, p.Kind, from, target)
	}
	return false
}
