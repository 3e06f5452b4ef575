package worker

import (
	"context"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/player"
)

// DuplicateChecker records finished games and reports repeats.
type DuplicateChecker interface {
	CheckAndAdd(board *chess.Board, plies int) bool
}

// SelfPlayFunc returns a ProcessFunc that plays one random-mover game per
// item from cfg.StartFEN. White and black draw from Seed and Seed+1. A nil
// dup skips duplicate detection.
func SelfPlayFunc(ctx context.Context, cfg *config.Config, dup DuplicateChecker) ProcessFunc {
	maxPlies := 0
	if cfg.SelfPlay != nil {
		maxPlies = cfg.SelfPlay.MaxPlies
	}
	logger := cfg.Logger()

	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index}

		g, err := game.New(cfg)
		if err != nil {
			res.Error = err
			return res
		}
		g.SetTag(chess.RoundTag, strconv.Itoa(item.Index+1))

		white := player.NewRandomMover(item.Seed)
		black := player.NewRandomMover(item.Seed + 1)
		res.Plies, res.Error = player.PlayGame(ctx, g, white, black, maxPlies, logger.With("game", item.Index+1))

		res.Game = g
		res.Record = g.Record()
		if dup != nil {
			res.Duplicate = dup.CheckAndAdd(g.Board(), res.Plies)
		}
		return res
	}
}

// NewDuplicateChecker builds the detector selected by cfg.Duplicate, or nil
// when duplicates are not tracked.
func NewDuplicateChecker(cfg *config.Config) DuplicateChecker {
	if cfg.Duplicate == nil || (!cfg.Duplicate.Suppress && cfg.Duplicate.DuplicateFile == nil) {
		return nil
	}
	return hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, 0)
}
