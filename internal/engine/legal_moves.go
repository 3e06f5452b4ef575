package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the destinations the piece on sq may legally move to:
// its raw candidates filtered by SimulateAndCheckSafety. It returns nil for
// an empty or invalid square.
func LegalMoves(board *chess.Board, sq chess.Square) []chess.Square {
	var legal []chess.Square
	for _, to := range PseudoLegalMoves(board, sq) {
		if SimulateAndCheckSafety(board, sq, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// IsLegalMove reports whether from -> to is among the legal moves of the piece on from.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	for _, sq := range LegalMoves(board, from) {
		if sq == to {
			return true
		}
	}
	return false
}

// AllLegalMoves returns every legal move of colour, pieces in a1..h8 order.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.MovePair {
	var moves []chess.MovePair
	for _, p := range board.Pieces(colour) {
		from := p.Square
		for _, to := range LegalMoves(board, from) {
			moves = append(moves, chess.MovePair{From: from, To: to})
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.Pieces(colour) {
		from := p.Square
		for _, to := range PseudoLegalMoves(board, from) {
			if SimulateAndCheckSafety(board, from, to) {
				return true
			}
		}
	}
	return false
}
