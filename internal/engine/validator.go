package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// snapshot holds exactly the board fields a single move can change, so a
// speculative move can be undone with one restore call.
type snapshot struct {
	mover      *chess.Piece
	from, to   chess.Square
	moverMoved bool

	captured   *chess.Piece
	capturedSq chess.Square

	rook             *chess.Piece
	rookFrom, rookTo chess.Square
	rookMoved        bool

	castling  chess.CastlingRights
	enPassant bool
	epSquare  chess.Square
}

// takeSnapshot records the state a move of mover to to will touch.
func takeSnapshot(board *chess.Board, mover *chess.Piece, to chess.Square) snapshot {
	s := snapshot{
		mover:      mover,
		from:       mover.Square,
		to:         to,
		moverMoved: mover.HasMoved,
		castling:   board.Castling,
		enPassant:  board.EnPassant,
		epSquare:   board.EPSquare,
	}

	if isEnPassantTarget(board, mover, to) {
		s.capturedSq = enPassantVictimSquare(s.from, to)
	} else {
		s.capturedSq = to
	}
	s.captured = board.PieceAt(s.capturedSq)

	if side := castleSideFor(mover, s.from, to); side != chess.NoCastle {
		home := chess.HomeRank(mover.Colour)
		s.rookFrom = chess.Sq(side.RookHomeCol(), home)
		s.rookTo = chess.Sq(side.RookDestCol(), home)
		s.rook = board.PieceAt(s.rookFrom)
		if s.rook != nil {
			s.rookMoved = s.rook.HasMoved
		}
	}
	return s
}

// apply plays the recorded move on the board as if it were real, including
// en passant removal, the castling rook and the rights and target updates.
func (s *snapshot) apply(board *chess.Board) {
	if s.captured != nil {
		board.Remove(s.capturedSq)
	}
	board.Relocate(s.from, s.to)
	s.mover.HasMoved = true
	if s.rook != nil {
		board.Relocate(s.rookFrom, s.rookTo)
		s.rook.HasMoved = true
	}
	updateCastlingRights(board, s.mover, s.from, s.captured, s.capturedSq)
	if isDoubleAdvance(s.mover, s.from, s.to) {
		board.SetEnPassant(s.from.Offset(0, chess.ColourOffset(s.mover.Colour)))
	} else {
		board.ClearEnPassant()
	}
}

// restore returns every touched field to its recorded value.
func (s *snapshot) restore(board *chess.Board) {
	board.Remove(s.to)
	if s.rook != nil {
		board.Remove(s.rookTo)
		board.Put(s.rookFrom, s.rook)
		s.rook.HasMoved = s.rookMoved
	}
	board.Put(s.from, s.mover)
	s.mover.HasMoved = s.moverMoved
	if s.captured != nil {
		board.Put(s.capturedSq, s.captured)
	}
	board.Castling = s.castling
	board.EnPassant = s.enPassant
	board.EPSquare = s.epSquare
}

// SimulateAndCheckSafety plays the move from -> to on the live board, checks
// whether the mover's king is attacked afterwards and restores the board
// exactly. It returns true iff the king is safe. Moves from an empty square,
// onto an invalid square or onto a friendly piece return false without
// touching the board.
//
// The board is mutated during the call, so concurrent queries against the
// same board must be serialised by the caller.
func SimulateAndCheckSafety(board *chess.Board, from, to chess.Square) bool {
	mover := board.PieceAt(from)
	if mover == nil || !to.Valid() || from == to {
		return false
	}
	if target := board.PieceAt(to); target != nil && target.Colour == mover.Colour {
		return false
	}

	snap := takeSnapshot(board, mover, to)
	snap.apply(board)
	defer snap.restore(board)

	kingSq, err := FindKing(board, mover.Colour)
	if err != nil {
		return false
	}
	return !IsSquareThreatened(board, kingSq, mover.Colour.Opposite())
}
