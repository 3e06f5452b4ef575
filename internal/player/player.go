// Package player defines the boundary to whoever chooses moves for a side,
// and a random fallback that needs no search.
package player

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"sort"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Position is the read-only view a Mover needs.
type Position interface {
	ToMove() chess.Colour
	AllLegalMoves(colour chess.Colour) []chess.MovePair
	PieceAt(sq chess.Square) (chess.PieceView, bool)
}

// Choice is a move picked by a Mover. Promotion is used only when the move
// takes a pawn to its last rank.
type Choice struct {
	From, To  chess.Square
	Promotion chess.Kind
}

// String returns the choice in coordinate form.
func (c Choice) String() string {
	return chess.Move{From: c.From, To: c.To, Promotion: c.Promotion}.String()
}

// Mover picks a move for the side to move. Implementations may block and
// must return ctx.Err() once ctx is done.
type Mover interface {
	ChooseMove(ctx context.Context, pos Position) (Choice, error)
}

// RandomMover picks uniformly among the legal moves and always promotes to
// a queen. It is safe for concurrent use.
type RandomMover struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomMover creates a RandomMover with a fixed seed.
func NewRandomMover(seed int64) *RandomMover {
	return &RandomMover{rng: rand.New(rand.NewSource(seed))}
}

// ChooseMove implements Mover.
func (r *RandomMover) ChooseMove(ctx context.Context, pos Position) (Choice, error) {
	if err := ctx.Err(); err != nil {
		return Choice{}, err
	}

	moves := pos.AllLegalMoves(pos.ToMove())
	if len(moves) == 0 {
		return Choice{}, errors.ErrNoLegalMoves
	}
	// Sort so the choice depends only on the seed, not generation order.
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].String() < moves[j].String()
	})

	r.mu.Lock()
	m := moves[r.rng.Intn(len(moves))]
	r.mu.Unlock()

	c := Choice{From: m.From, To: m.To}
	if p, ok := pos.PieceAt(m.From); ok && p.Kind == chess.Pawn && m.To.Rank == chess.PromotionRank(p.Colour) {
		c.Promotion = chess.Queen
	}
	return c, nil
}

// PlayGame lets white and black move in turn on g until the game ends, ctx
// is done or maxPlies more moves have been played (0 for no limit). It
// returns the number of plies played.
func PlayGame(ctx context.Context, g *game.Game, white, black Mover, maxPlies int, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	plies := 0
	for maxPlies <= 0 || plies < maxPlies {
		if state, _ := g.State(); state.IsTerminal() {
			break
		}

		mover := white
		if g.ToMove() == chess.Black {
			mover = black
		}
		choice, err := mover.ChooseMove(ctx, g)
		if err != nil {
			return plies, errors.Wrapf(err, "choose move at ply %d", plies+1)
		}

		outcome, err := g.ApplyMove(choice.From, choice.To)
		if err != nil {
			return plies, errors.Wrapf(err, "apply %s", choice)
		}
		if outcome == game.PromotionRequired {
			kind := choice.Promotion
			if !kind.IsPromotionChoice() {
				kind = chess.Queen
			}
			if err := g.CompletePromotion(choice.To, kind); err != nil {
				return plies, errors.Wrapf(err, "promote %s", choice)
			}
		}
		plies++
	}

	state, reason := g.State()
	logger.Debug("game finished", "plies", plies, "state", state.String(), "reason", reason.String(), "result", g.Result())
	return plies, nil
}
