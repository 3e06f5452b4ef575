package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// SANDisambiguation returns the origin file, rank or both needed to
// distinguish the move from -> to from another piece of the same kind and
// colour that could also legally reach to. Pawns and kings never need it.
func SANDisambiguation(board *chess.Board, from, to chess.Square) string {
	p := board.PieceAt(from)
	if p == nil || p.Kind == chess.Pawn || p.Kind == chess.King {
		return ""
	}

	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range board.Pieces(p.Colour) {
		if other == p || other.Kind != p.Kind {
			continue
		}
		if !IsLegalMove(board, other.Square, to) {
			continue
		}
		ambiguous = true
		if other.Square.Col == from.Col {
			sameFile = true
		}
		if other.Square.Rank == from.Rank {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(rune(from.Col))
	case !sameRank:
		return string(rune(from.Rank))
	default:
		return from.String()
	}
}
