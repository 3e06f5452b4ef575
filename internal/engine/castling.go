package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// kingHomeCol is the file both kings start on.
const kingHomeCol = chess.Col('e')

// castlingCandidates returns the king destinations for each castle that is
// currently available: king and rook unmoved on their home squares, the
// right still held, the squares between them empty, the king not in check
// and neither the square it crosses nor the one it lands on attacked.
func castlingCandidates(board *chess.Board, king *chess.Piece) []chess.Square {
	home := chess.HomeRank(king.Colour)
	if king.HasMoved || king.Square != chess.Sq(kingHomeCol, home) {
		return nil
	}
	enemy := king.Colour.Opposite()
	if IsSquareThreatened(board, king.Square, enemy) {
		return nil
	}

	var targets []chess.Square
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if !board.Castling.Has(king.Colour, side) {
			continue
		}
		rookSq := chess.Sq(side.RookHomeCol(), home)
		rook := board.PieceAt(rookSq)
		if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved {
			continue
		}
		if !isPathClear(board, king.Square, rookSq) {
			continue
		}
		step := sign(int(side.KingDestCol()) - int(kingHomeCol))
		crossed := king.Square.Offset(step, 0)
		dest := chess.Sq(side.KingDestCol(), home)
		if IsSquareThreatened(board, crossed, enemy) || IsSquareThreatened(board, dest, enemy) {
			continue
		}
		targets = append(targets, dest)
	}
	return targets
}

// castleSideFor returns the castling side a king move from -> to represents,
// or NoCastle if it is an ordinary king move.
func castleSideFor(p *chess.Piece, from, to chess.Square) chess.CastleSide {
	if p.Kind != chess.King || from != chess.Sq(kingHomeCol, chess.HomeRank(p.Colour)) || to.Rank != from.Rank {
		return chess.NoCastle
	}
	switch to.Col {
	case chess.Kingside.KingDestCol():
		return chess.Kingside
	case chess.Queenside.KingDestCol():
		return chess.Queenside
	}
	return chess.NoCastle
}

// updateCastlingRights revokes rights after a move: a king move revokes both
// of its colour's rights, a rook leaving its corner revokes that flank, and
// capturing a rook on its corner revokes the opponent's flank.
func updateCastlingRights(board *chess.Board, mover *chess.Piece, from chess.Square, captured *chess.Piece, capturedSq chess.Square) {
	switch mover.Kind {
	case chess.King:
		board.Castling.RevokeAll(mover.Colour)
	case chess.Rook:
		updateCastlingRightsForRook(board, mover.Colour, from)
	}
	if captured != nil && captured.Kind == chess.Rook {
		updateCastlingRightsForRook(board, captured.Colour, capturedSq)
	}
}

// updateCastlingRightsForRook removes castling rights when a rook moves or is captured.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Rank != chess.HomeRank(colour) {
		return
	}
	switch sq.Col {
	case chess.Kingside.RookHomeCol():
		board.Castling.Revoke(colour, chess.Kingside)
	case chess.Queenside.RookHomeCol():
		board.Castling.Revoke(colour, chess.Queenside)
	}
}

// ExecuteCastle moves the king and rook of colour to their post-castle
// squares. Legality is the caller's responsibility: the king's castling
// destination must have come from LegalMoves. Only the presence of the two
// pieces on their home squares is checked.
func (e *Executor) ExecuteCastle(colour chess.Colour, side chess.CastleSide) error {
	board := e.board
	home := chess.HomeRank(colour)
	kingSq := chess.Sq(kingHomeCol, home)
	rookSq := chess.Sq(side.RookHomeCol(), home)

	if board.PromotionPending {
		return &errors.MoveError{Err: errors.ErrPromotionPending, Ply: board.Ply + 1, To: board.PromotionSquare.String()}
	}
	if side != chess.Kingside && side != chess.Queenside {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Ply: board.Ply + 1, Piece: "King"}
	}
	king := board.PieceAt(kingSq)
	rook := board.PieceAt(rookSq)
	if king == nil || king.Kind != chess.King || king.Colour != colour ||
		rook == nil || rook.Kind != chess.Rook || rook.Colour != colour {
		return &errors.MoveError{
			Err:   errors.ErrIllegalMove,
			Ply:   board.Ply + 1,
			From:  kingSq.String(),
			To:    chess.Sq(side.KingDestCol(), home).String(),
			Piece: "King",
		}
	}

	kingTo := chess.Sq(side.KingDestCol(), home)
	rookTo := chess.Sq(side.RookDestCol(), home)

	board.Relocate(kingSq, kingTo)
	board.Relocate(rookSq, rookTo)
	king.HasMoved = true
	rook.HasMoved = true

	board.Castling.RevokeAll(colour)
	board.ClearEnPassant()
	advanceCounters(board, colour, false)
	board.LastMove = &chess.MovePair{From: kingSq, To: kingTo}
	board.ToMove = colour.Opposite()

	e.logger.Debug("castled", "colour", colour.String(), "side", side.String(), "ply", board.Ply)

	move := chess.Move{From: kingSq, To: kingTo, Piece: chess.King, Colour: colour, Castle: side}
	e.finish(move, "")
	return nil
}
