// Package worker runs self-play games in parallel. Each in-flight job owns
// its own game, so no board is ever shared between goroutines.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// WorkItem describes one game to play.
type WorkItem struct {
	Index int   // Original index for tracking
	Seed  int64 // Seed for the movers of this game
}

// ProcessResult represents the result of playing one game.
type ProcessResult struct {
	Index     int
	Game      *game.Game
	Record    *output.Record // Export view of the finished game
	Plies     int            // Half-moves played
	Duplicate bool           // Final position already seen in an earlier game
	Error     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers playing games in parallel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing, blocking while the work
// channel is full. It returns false without submitting once ctx is done or
// the pool is stopped.
func (p *Pool) Submit(ctx context.Context, item WorkItem) bool {
	if ctx.Err() != nil || p.IsStopped() {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case p.workChan <- item:
		return true
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// SubmitBatch submits games items numbered from 0, seeding each with
// SeedFor(seed, i), then closes the pool. It stops submitting and marks the
// pool stopped once ctx is done. It returns the number of items submitted.
// Call it from its own goroutine while the results are being read.
func (p *Pool) SubmitBatch(ctx context.Context, games int, seed int64) int {
	defer p.Close()
	for i := 0; i < games; i++ {
		if !p.Submit(ctx, WorkItem{Index: i, Seed: SeedFor(seed, i)}) {
			p.Stop()
			return i
		}
	}
	return games
}

// SeedFor returns the seed of game index in a batch started from seed. Each
// game takes two consecutive seeds, one per side.
func SeedFor(seed int64, index int) int64 {
	return seed + int64(index)*2
}

// Collect reads every result until the result channel is closed and
// returns them ordered by Index.
func Collect(results <-chan ProcessResult) []ProcessResult {
	var out []ProcessResult
	for r := range results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}
