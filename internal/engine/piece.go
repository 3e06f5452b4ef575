package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PseudoLegalMoves returns the raw candidate destinations of the piece on sq,
// ignoring whether the move would leave its own king attacked. It returns
// nil for an empty or invalid square.
func PseudoLegalMoves(board *chess.Board, sq chess.Square) []chess.Square {
	p := board.PieceAt(sq)
	if p == nil {
		return nil
	}

	switch p.Kind {
	case chess.Pawn:
		return pawnCandidates(board, p)
	case chess.Knight:
		return offsetCandidates(board, p, knightOffsets)
	case chess.Bishop:
		return slidingCandidates(board, p, diagonalDirs)
	case chess.Rook:
		return slidingCandidates(board, p, straightDirs)
	case chess.Queen:
		return append(slidingCandidates(board, p, diagonalDirs), slidingCandidates(board, p, straightDirs)...)
	case chess.King:
		return append(offsetCandidates(board, p, kingOffsets), castlingCandidates(board, p)...)
	}
	return nil
}

// offsetCandidates returns the squares at fixed offsets that are empty or
// hold an enemy piece.
func offsetCandidates(board *chess.Board, p *chess.Piece, offsets [][2]int) []chess.Square {
	var targets []chess.Square
	for _, offset := range offsets {
		to := p.Square.Offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		if target := board.PieceAt(to); target == nil || target.Colour != p.Colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// slidingCandidates casts rays in each direction, stopping at the first
// occupied square and including it if it holds an enemy piece.
func slidingCandidates(board *chess.Board, p *chess.Piece, dirs [][2]int) []chess.Square {
	var targets []chess.Square
	for _, dir := range dirs {
		to := p.Square.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.PieceAt(to)
			if target != nil {
				if target.Colour != p.Colour {
					targets = append(targets, to)
				}
				break // Blocked
			}
			targets = append(targets, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}
