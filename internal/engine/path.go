package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// canPieceMove checks if a non-pawn piece's movement pattern reaches to from
// from with every intermediate square empty. The destination's occupant is
// not examined.
func canPieceMove(board *chess.Board, kind chess.Kind, from, to chess.Square) bool {
	colDiff := abs(int(to.Col) - int(from.Col))
	rankDiff := abs(int(to.Rank) - int(from.Rank))
	if colDiff == 0 && rankDiff == 0 {
		return false
	}

	switch kind {
	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if colDiff == rankDiff || colDiff == 0 || rankDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	colDir := sign(int(to.Col) - int(from.Col))
	rankDir := sign(int(to.Rank) - int(from.Rank))

	sq := from.Offset(colDir, rankDir)
	for sq != to {
		if board.PieceAt(sq) != nil {
			return false
		}
		sq = sq.Offset(colDir, rankDir)
	}

	return true
}

// abs returns the distance of x from zero.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the unit step (-1, 0 or 1) that moves toward x.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
