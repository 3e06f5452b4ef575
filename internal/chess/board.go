package chess

// Board represents a chess board with all state needed for the game.
// The board owns every piece on it; a piece's Square always names the
// grid cell that holds it.
type Board struct {
	// The board squares, indexed Squares[col][rank] with 0-7 for a-h and 1-8.
	Squares [BoardSize][BoardSize]*Piece

	// Pieces removed from the grid by capture, in capture order.
	Captured []*Piece

	// Per-colour, per-flank castling eligibility.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// a pawn passed over on its two-square advance.
	EnPassant bool
	EPSquare  Square

	// Who has the next move.
	ToMove Colour

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// Half-moves played since the board was set up.
	Ply int

	// The current move number, incremented after Black moves.
	MoveNumber int

	// Terminal or interim state, and the reason when it is Draw.
	State      GameState
	DrawReason DrawReason

	// The most recent move, nil before the first move.
	LastMove *MovePair

	// A pawn waiting on its last rank for the promotion piece to be chosen.
	PromotionPending bool
	PromotionSquare  Square
}

// MovePair represents an origin-destination square pair.
type MovePair struct {
	From Square
	To   Square
}

// String returns the pair in coordinate form, e.g. "e2e4".
func (m MovePair) String() string {
	return m.From.String() + m.To.String()
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = *NewBoard()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, kind := range backRank {
		col := FirstCol + Col(i)
		b.Put(Sq(col, FirstRank), NewPiece(kind, White))
		b.Put(Sq(col, FirstRank+1), NewPiece(Pawn, White))
		b.Put(Sq(col, LastRank-1), NewPiece(Pawn, Black))
		b.Put(Sq(col, LastRank), NewPiece(kind, Black))
	}

	b.Castling = AllCastlingRights()
}

// PieceAt returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	c, r := sq.index()
	return b.Squares[c][r]
}

// IsEmpty reports whether sq is on the board and holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.PieceAt(sq) == nil
}

// Put places p on sq, updating the piece's Square. A nil piece clears the square.
func (b *Board) Put(sq Square, p *Piece) {
	if !sq.Valid() {
		return
	}
	c, r := sq.index()
	b.Squares[c][r] = p
	if p != nil {
		p.Square = sq
	}
}

// Remove clears sq and returns the piece that was there.
func (b *Board) Remove(sq Square) *Piece {
	p := b.PieceAt(sq)
	if p != nil {
		c, r := sq.index()
		b.Squares[c][r] = nil
	}
	return p
}

// Relocate moves the piece on from to to, overwriting whatever was there.
// It does not record captures or touch HasMoved.
func (b *Board) Relocate(from, to Square) *Piece {
	p := b.Remove(from)
	if p != nil {
		b.Put(to, p)
	}
	return p
}

// Pieces returns the pieces of colour in a1, b1, ..., h8 order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var pieces []*Piece
	b.ForEach(func(p *Piece) {
		if p.Colour == colour {
			pieces = append(pieces, p)
		}
	})
	return pieces
}

// ForEach calls fn for every piece on the board in a1, b1, ..., h8 order.
func (b *Board) ForEach(fn func(p *Piece)) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b.Squares[c][r]; p != nil {
				fn(p)
			}
		}
	}
}

// CountKings returns the number of kings of colour on the board.
func (b *Board) CountKings(colour Colour) int {
	n := 0
	b.ForEach(func(p *Piece) {
		if p.Kind == King && p.Colour == colour {
			n++
		}
	})
	return n
}

// Capture removes the piece on sq and appends it to the captured list.
func (b *Board) Capture(sq Square) *Piece {
	p := b.Remove(sq)
	if p != nil {
		b.Captured = append(b.Captured, p)
	}
	return p
}

// SetEnPassant records sq as the en passant target.
func (b *Board) SetEnPassant(sq Square) {
	b.EnPassant = true
	b.EPSquare = sq
}

// ClearEnPassant removes the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Square{}
}

// Copy creates a deep copy of the board. Pieces are duplicated so that the
// copy can be mutated without affecting the original.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	for c := 0; c < BoardSize; c++ {
		for r := 0; r < BoardSize; r++ {
			if p := b.Squares[c][r]; p != nil {
				cp := *p
				newBoard.Squares[c][r] = &cp
			}
		}
	}
	if b.Captured != nil {
		newBoard.Captured = make([]*Piece, len(b.Captured))
		for i, p := range b.Captured {
			cp := *p
			newBoard.Captured[i] = &cp
		}
	}
	if b.LastMove != nil {
		lm := *b.LastMove
		newBoard.LastMove = &lm
	}
	return newBoard
}
