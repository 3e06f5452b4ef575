package worker

import (
	"context"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// runSelfPlay plays n games on workers goroutines and returns the results
// in index order.
func runSelfPlay(t *testing.T, cfg *config.Config, dup DuplicateChecker, n, workers int) []ProcessResult {
	t.Helper()
	pool := NewPoolWithOptions(SelfPlayFunc(context.Background(), cfg, dup), WithWorkers(workers))
	pool.Start()
	go pool.SubmitBatch(context.Background(), n, cfg.SelfPlay.Seed)
	return Collect(pool.Results())
}

func TestSelfPlay(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSelfPlay(6, 60, 3).Build()
	results := runSelfPlay(t, cfg, nil, 6, 3)

	if len(results) != 6 {
		t.Fatalf("len(results) = %d, want 6", len(results))
	}
	for i, r := range results {
		if r.Error != nil {
			t.Fatalf("game %d: %v", i, r.Error)
		}
		if r.Plies == 0 || r.Plies > 60 {
			t.Errorf("game %d: plies = %d, want 1..60", i, r.Plies)
		}
		if len(r.Record.Moves) != r.Plies {
			t.Errorf("game %d: record has %d moves, played %d", i, len(r.Record.Moves), r.Plies)
		}
		if got := r.Record.Tags[chess.RoundTag]; got != strconv.Itoa(i+1) {
			t.Errorf("game %d: Round = %q", i, got)
		}
		board := r.Game.Board()
		if board.CountKings(chess.White) != 1 || board.CountKings(chess.Black) != 1 {
			t.Errorf("game %d: king invariant broken", i)
		}
	}
}

// TestSelfPlayDeterministic checks that results depend only on the seeds,
// not on how many workers ran them.
func TestSelfPlayDeterministic(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSelfPlay(4, 80, 1).Build()
	one := runSelfPlay(t, cfg, nil, 4, 1)
	four := runSelfPlay(t, cfg, nil, 4, 4)

	for i := range one {
		if diff := cmp.Diff(one[i].Game.MoveNotationLog(), four[i].Game.MoveNotationLog()); diff != "" {
			t.Errorf("game %d differs between 1 and 4 workers:\n%s", i, diff)
		}
	}
}

func TestSelfPlayDuplicates(t *testing.T) {
	cfg := config.NewConfigBuilder().WithSelfPlay(1, 10, 1).WithDuplicateSuppression(true).Build()
	dup := NewDuplicateChecker(cfg)
	if dup == nil {
		t.Fatal("NewDuplicateChecker returned nil with suppression on")
	}

	f := SelfPlayFunc(context.Background(), cfg, dup)
	first := f(WorkItem{Index: 0, Seed: 42})
	again := f(WorkItem{Index: 1, Seed: 42})
	other := f(WorkItem{Index: 2, Seed: 7})

	if first.Duplicate {
		t.Error("first game reported as duplicate")
	}
	if !again.Duplicate {
		t.Error("replayed seed not reported as duplicate")
	}
	if other.Duplicate && other.Record.FinalFEN != first.Record.FinalFEN {
		t.Error("different final position reported as duplicate")
	}
	if got := dup.(*hashing.ThreadSafeDuplicateDetector).DuplicateCount(); got < 1 {
		t.Errorf("DuplicateCount = %d, want at least 1", got)
	}
}

func TestNewDuplicateChecker_Disabled(t *testing.T) {
	if NewDuplicateChecker(config.NewConfig()) != nil {
		t.Error("duplicate checker built without suppression or duplicate file")
	}
}

func TestSelfPlay_BadStart(t *testing.T) {
	cfg := config.NewConfig()
	cfg.StartFEN = "8/8/8/8/8/8/8/8 w - - 0 1"
	res := SelfPlayFunc(context.Background(), cfg, nil)(WorkItem{Index: 0, Seed: 1})
	if res.Error == nil {
		t.Error("game without kings started without error")
	}
}

func TestSelfPlay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := SelfPlayFunc(ctx, config.NewConfig(), nil)(WorkItem{Index: 0, Seed: 1})
	if res.Error == nil || res.Plies != 0 {
		t.Errorf("cancelled game = %d plies, err %v; want 0 plies and an error", res.Plies, res.Error)
	}
}
