// chess-selfplay plays games between random movers on the chess rules core
// and writes them as PGN or JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit, returning the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if opts.help {
		fs.Usage()
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "chess-selfplay version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	cfg.SetOutput(stdout)
	if err := applyFlags(cfg, opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	closeFiles, err := openFiles(cfg, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFiles()

	stats, err := playAll(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Verbosity > 0 {
		reportStatistics(stderr, stats)
	}
	if stats.errors > 0 {
		return 1
	}
	return 0
}

// playAll plays cfg.SelfPlay.Games games on a worker pool and writes them
// in game order.
//
// Concurrency model: games are played in parallel, each on its own board,
// but every result is consumed by this goroutine after the pool drains, so
// duplicate detection and the writers see the games in a fixed order.
func playAll(ctx context.Context, cfg *config.Config) (*statistics, error) {
	logger := cfg.Logger()
	sp := cfg.SelfPlay

	bufferSize := sp.Games
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPoolWithOptions(
		worker.SelfPlayFunc(ctx, cfg, nil),
		worker.WithWorkers(sp.Workers),
		worker.WithBufferSize(bufferSize),
	)
	pool.Start()
	logger.Info("self-play started", "games", sp.Games, "workers", pool.NumWorkers(), "seed", sp.Seed)

	go pool.SubmitBatch(ctx, sp.Games, sp.Seed)

	results := worker.Collect(pool.Results())

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	var dupWriter output.GameWriter
	if cfg.Duplicate.DuplicateFile != nil {
		dupWriter = output.NewGameWriter(cfg.Duplicate.DuplicateFile, cfg)
	}
	dup := worker.NewDuplicateChecker(cfg)

	stats := &statistics{}
	for _, res := range results {
		if res.Error != nil {
			stats.errors++
			logger.Error("game failed", "game", res.Index+1, "err", res.Error)
			if res.Record == nil {
				continue
			}
		}
		stats.add(res.Record)

		if dup != nil && dup.CheckAndAdd(res.Game.Board(), res.Plies) {
			stats.duplicates++
			logger.Debug("duplicate final position", "game", res.Index+1, "fen", res.Record.FinalFEN)
			if dupWriter != nil {
				if err := dupWriter.WriteGame(res.Record); err != nil {
					return stats, err
				}
			}
			if cfg.Duplicate.Suppress {
				continue
			}
		}

		if err := writer.WriteGame(res.Record); err != nil {
			return stats, err
		}
		stats.written++
	}

	if err := writer.Close(); err != nil {
		return stats, err
	}
	if dupWriter != nil {
		if err := dupWriter.Close(); err != nil {
			return stats, err
		}
	}
	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("self-play interrupted: %w", err)
	}
	logger.Info("self-play finished", "games", stats.games, "written", stats.written, "duplicates", stats.duplicates)
	return stats, nil
}
