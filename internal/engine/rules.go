package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// IsInsufficientMaterial returns true if neither side can force mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func IsInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	board.ForEach(func(p *chess.Piece) {
		switch p.Kind {
		case chess.King:
			return
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
			return
		}

		if p.Colour == chess.White {
			whitePieces = append(whitePieces, p.Kind)
			if p.Kind == chess.Bishop {
				whiteBishopOnLight = p.Square.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, p.Kind)
			if p.Kind == chess.Bishop {
				blackBishopOnLight = p.Square.IsLight()
			}
		}
	})
	if sufficient {
		return false
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// MaterialBalance returns White's material minus Black's using conventional values.
func MaterialBalance(board *chess.Board) int {
	balance := 0
	board.ForEach(func(p *chess.Piece) {
		if p.Colour == chess.White {
			balance += p.Kind.Value()
		} else {
			balance -= p.Kind.Value()
		}
	})
	return balance
}
