package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnCandidates returns the raw destinations of a pawn: one step forward,
// two steps from its start rank, diagonal captures and the en passant target.
func pawnCandidates(board *chess.Board, p *chess.Piece) []chess.Square {
	var targets []chess.Square
	dir := chess.ColourOffset(p.Colour)
	from := p.Square

	one := from.Offset(0, dir)
	if board.IsEmpty(one) {
		targets = append(targets, one)
		if from.Rank == chess.PawnStartRank(p.Colour) {
			two := from.Offset(0, 2*dir)
			if board.IsEmpty(two) {
				targets = append(targets, two)
			}
		}
	}

	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dc, dir)
		if !to.Valid() {
			continue
		}
		if target := board.PieceAt(to); target != nil {
			if target.Colour != p.Colour {
				targets = append(targets, to)
			}
			continue
		}
		if isEnPassantTarget(board, p, to) {
			victim := board.PieceAt(enPassantVictimSquare(from, to))
			if victim != nil && victim.Kind == chess.Pawn && victim.Colour != p.Colour {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// isEnPassantTarget reports whether a pawn moving diagonally onto to would
// be an en passant capture.
func isEnPassantTarget(board *chess.Board, p *chess.Piece, to chess.Square) bool {
	return p.Kind == chess.Pawn && board.EnPassant && to == board.EPSquare && to.Col != p.Square.Col
}

// enPassantVictimSquare returns the square of the pawn captured en passant:
// the destination file on the mover's origin rank.
func enPassantVictimSquare(from, to chess.Square) chess.Square {
	return chess.Sq(to.Col, from.Rank)
}

// isDoubleAdvance reports whether a pawn move is a two-square advance from
// its start rank.
func isDoubleAdvance(p *chess.Piece, from, to chess.Square) bool {
	return p.Kind == chess.Pawn && from.Col == to.Col &&
		from.Rank == chess.PawnStartRank(p.Colour) &&
		int(to.Rank)-int(from.Rank) == 2*chess.ColourOffset(p.Colour)
}

// isPromotionSquare reports whether a pawn of colour reaching to must promote.
func isPromotionSquare(colour chess.Colour, to chess.Square) bool {
	return to.Rank == chess.PromotionRank(colour)
}
