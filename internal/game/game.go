// Package game is the caller-facing surface of the rules core. A Game owns
// one board and its history and serialises every query and command behind
// a single mutex, because legality checks mutate the board transiently.
package game

import (
	"io"
	"log/slog"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/history"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// Outcome is the successful result of ApplyMove.
type Outcome = engine.Outcome

const (
	MoveOK            = engine.MoveOK
	PromotionRequired = engine.PromotionRequired
)

// Game is one game in progress. It is safe for concurrent use.
type Game struct {
	mu sync.Mutex

	cfg    *config.Config
	logger *slog.Logger

	board *chess.Board
	exec  *engine.Executor

	// startFEN is empty when the game began from the standard position.
	startFEN string
	tags     map[string]string
}

// New starts a game from cfg.StartFEN. A nil cfg uses the defaults.
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return NewFromFEN(cfg.StartFEN, cfg)
}

// NewFromFEN starts a game from fen, taking every other setting from cfg.
func NewFromFEN(fen string, cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		logger: cfg.Logger(),
		board:  board,
		tags:   make(map[string]string, len(cfg.Tags)),
	}
	for k, v := range cfg.Tags {
		g.tags[k] = v
	}
	if normalised := engine.BoardToFEN(board); normalised != engine.InitialFEN {
		g.startFEN = normalised
	}
	g.exec = engine.NewExecutor(board, history.NewManager(), g.logger)
	return g, nil
}

// PieceAt returns a copy of the piece on sq.
func (g *Game) PieceAt(sq chess.Square) (chess.PieceView, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.board.PieceAt(sq)
	if p == nil {
		return chess.PieceView{}, false
	}
	return p.View(), true
}

// LegalMoves returns the legal destinations of the piece on sq, whichever
// colour it is. It is empty for an empty or invalid square.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.LegalMoves(g.board, sq)
}

// AllLegalMoves returns every legal move for colour.
func (g *Game) AllLegalMoves(colour chess.Colour) []chess.MovePair {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.AllLegalMoves(g.board, colour)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.ToMove
}

// ApplyMove plays from -> to for the side to move. The destination must be
// one of LegalMoves(from). A king moving two files from its home square
// castles. PromotionRequired means CompletePromotion must follow before
// anything else is played.
func (g *Game) ApplyMove(from, to chess.Square) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPlayable(from, to); err != nil {
		return MoveOK, err
	}

	p := g.board.PieceAt(from)
	if !containsSquare(engine.LegalMoves(g.board, from), to) {
		return MoveOK, g.moveError(errors.ErrIllegalMove, from, to, p.Kind.String())
	}
	return g.exec.ExecuteNormalMove(from, to)
}

// checkPlayable rejects moves that fail before legality is consulted.
func (g *Game) checkPlayable(from, to chess.Square) error {
	board := g.board
	if board.PromotionPending {
		return g.moveError(errors.ErrPromotionPending, from, to, "")
	}
	if board.State.IsTerminal() {
		return g.moveError(errors.ErrGameOver, from, to, "")
	}
	if !from.Valid() || !to.Valid() {
		return g.moveError(errors.ErrInvalidSquare, from, to, "")
	}
	p := board.PieceAt(from)
	if p == nil {
		return g.moveError(errors.ErrEmptyOrigin, from, to, "")
	}
	if p.Colour != board.ToMove {
		return g.moveError(errors.ErrIllegalMove, from, to, p.String())
	}
	if target := board.PieceAt(to); target != nil && target.Colour == p.Colour {
		return g.moveError(errors.ErrOwnPieceCapture, from, to, p.Kind.String())
	}
	return nil
}

func (g *Game) moveError(err error, from, to chess.Square, piece string) error {
	me := &errors.MoveError{Err: err, Ply: g.board.Ply + 1, Piece: piece}
	if from.Valid() {
		me.From = from.String()
	}
	if to.Valid() {
		me.To = to.String()
	}
	return me
}

// CompletePromotion finishes a pending promotion on sq with kind.
func (g *Game) CompletePromotion(sq chess.Square, kind chess.Kind) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.exec.CompletePromotion(sq, kind)
}

// ApplyCastle castles colour on side. It succeeds only when the king's
// legal moves include the castling destination.
func (g *Game) ApplyCastle(colour chess.Colour, side chess.CastleSide) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	board := g.board
	home := chess.HomeRank(colour)
	from := chess.Sq('e', home)
	to := chess.Sq(side.KingDestCol(), home)

	switch {
	case board.PromotionPending:
		return g.moveError(errors.ErrPromotionPending, from, to, "")
	case board.State.IsTerminal():
		return g.moveError(errors.ErrGameOver, from, to, "")
	case colour != board.ToMove || side == chess.NoCastle:
		return g.moveError(errors.ErrIllegalMove, from, to, "King")
	}

	king := board.PieceAt(from)
	if king == nil || king.Kind != chess.King || king.Colour != colour ||
		!containsSquare(engine.LegalMoves(board, from), to) {
		return g.moveError(errors.ErrIllegalMove, from, to, "King")
	}
	return g.exec.ExecuteCastle(colour, side)
}

// State returns the game state and, for a draw, its reason. While a
// promotion is pending the position is reported as ongoing until
// CompletePromotion classifies it.
func (g *Game) State() (chess.GameState, chess.DrawReason) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.State, g.board.DrawReason
}

// Result returns the PGN result token for the current state.
func (g *Game) Result() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return chess.ResultFor(g.board.State, g.board.ToMove)
}

// CanonicalPosition returns the repetition key of the current position.
func (g *Game) CanonicalPosition() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return history.CanonicalPosition(g.board)
}

// FEN returns the full FEN of the current position.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.BoardToFEN(g.board)
}

// Hash returns the Zobrist hash of the current position.
func (g *Game) Hash() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return hashing.GenerateZobristHash(g.board)
}

// MoveNotationLog returns the notation of every completed move.
func (g *Game) MoveNotationLog() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.exec.History().Notations()
}

// Moves returns the move log.
func (g *Game) Moves() []chess.MoveRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.exec.History().Moves()
}

// Captured returns the captured pieces in capture order.
func (g *Game) Captured() []chess.PieceView {
	g.mu.Lock()
	defer g.mu.Unlock()

	views := make([]chess.PieceView, len(g.board.Captured))
	for i, p := range g.board.Captured {
		views[i] = p.View()
	}
	return views
}

// LastMove returns the most recent move's squares.
func (g *Game) LastMove() (chess.MovePair, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.board.LastMove == nil {
		return chess.MovePair{}, false
	}
	return *g.board.LastMove, true
}

// PendingPromotion returns the square of a pawn awaiting promotion.
func (g *Game) PendingPromotion() (chess.Square, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.exec.PendingPromotion()
}

// Board returns a deep copy of the current board.
func (g *Game) Board() *chess.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Copy()
}

// Tags returns a copy of the game's PGN tags.
func (g *Game) Tags() map[string]string {
	g.mu.Lock()
	defer g.mu.Unlock()

	tags := make(map[string]string, len(g.tags))
	for k, v := range g.tags {
		tags[k] = v
	}
	return tags
}

// SetTag sets a PGN tag. Result, SetUp and FEN are derived on export and
// cannot be overridden.
func (g *Game) SetTag(name, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tags[name] = value
}

// Record returns the export view of the game.
func (g *Game) Record() *output.Record {
	g.mu.Lock()
	defer g.mu.Unlock()

	tags := make(map[string]string, len(g.tags))
	for k, v := range g.tags {
		tags[k] = v
	}
	moves := g.exec.History().Moves()
	return &output.Record{
		Tags:       tags,
		StartFEN:   g.startFEN,
		Moves:      moves,
		State:      g.board.State,
		DrawReason: g.board.DrawReason,
		Result:     chess.ResultFor(g.board.State, g.board.ToMove),
		FinalFEN:   engine.BoardToFEN(g.board),
		FinalHash:  hashing.GenerateZobristHash(g.board),
		MovesHash:  hashing.NewGameHasher(hashing.HashMoveSequence).HashGame(g.board, moves),
		Material:   engine.MaterialBalance(g.board),
	}
}

// WritePGN writes the game to w as PGN using the game's configuration.
func (g *Game) WritePGN(w io.Writer) error {
	return errors.Wrap(output.NewPGNWriter(w, g.cfg).WriteGame(g.Record()), "write pgn")
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
