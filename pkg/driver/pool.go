// Package driver is the concurrent multi-file CLI collaborator: it expands
// glob entrypoints into a file list and fans extraction+emission for each
// file out across a worker pool — goroutine pool, buffered job/result/error
// channels, graceful shutdown.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dtsgen/dtsgen/pkg/core"
)

// FileJob is one source file queued for extraction+emission.
type FileJob struct {
	FilePath string
	JobID    int
}

// FileResult is one file's generated `.d.ts` text plus any warnings.
type FileResult struct {
	FilePath string
	DTSText  string
	Warnings []core.Warning
	JobID    int
}

// FileError reports a file that could not be read, parsed, or emitted at
// all — never raised for a recoverable per-declaration Warning, only for
// the read/extract/emit boundary failures.
type FileError struct {
	FilePath string
	Error    error
}

// Pool manages a pool of goroutines that run core.Extract+core.Emit over
// queued files. Each worker owns its own parse/extract/emit call chain, so
// no state is shared between workers beyond the job/result/error channels —
// consistent with a "no shared state" model applied per file.
type Pool struct {
	numWorkers int
	opts       core.Options
	jobs       chan FileJob
	results    chan FileResult
	errors     chan FileError
	wg         sync.WaitGroup
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	started    atomic.Bool
	stopped    atomic.Bool
	jobsClosed atomic.Bool

	jobsSubmitted atomic.Int64
	jobsProcessed atomic.Int64
	jobsFailed    atomic.Int64
}

// NewPool creates a pool with exactly numWorkers goroutines; the caller picks
// the size (cmd/dtsgen passes util.GetOptimalPoolSize()) so driver stays
// decoupled from pkg/util's sizing policy. With numWorkers 0 no worker is
// started and submitted jobs are never processed.
func NewPool(numWorkers int, opts core.Options, logger *slog.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		numWorkers: numWorkers,
		opts:       opts,
		jobs:       make(chan FileJob, numWorkers*2),
		results:    make(chan FileResult, numWorkers),
		errors:     make(chan FileError, numWorkers),
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start spawns all worker goroutines. Must be called before Submit.
func (p *Pool) Start() {
	if !p.started.CompareAndSwap(false, true) {
		p.logger.Warn("pool already started")
		return
	}
	p.logger.Info("starting driver pool", "workers", p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.processJob(id, job)
		}
	}
}

func (p *Pool) processJob(workerID int, job FileJob) {
	content, err := os.ReadFile(job.FilePath)
	if err != nil {
		p.jobsFailed.Add(1)
		p.errors <- FileError{FilePath: job.FilePath, Error: fmt.Errorf("read file: %w", err)}
		return
	}

	extracted, err := core.Extract(content, job.FilePath, p.opts)
	if err != nil {
		p.jobsFailed.Add(1)
		p.errors <- FileError{FilePath: job.FilePath, Error: fmt.Errorf("extract: %w", err)}
		return
	}

	dtsText, emitWarnings, err := core.Emit(extracted.Declarations, p.opts)
	if err != nil {
		p.jobsFailed.Add(1)
		p.errors <- FileError{FilePath: job.FilePath, Error: fmt.Errorf("emit: %w", err)}
		return
	}

	warnings := append(append([]core.Warning{}, extracted.Warnings...), emitWarnings...)
	p.logger.Debug("generated declarations", "worker_id", workerID, "file", job.FilePath, "warnings", len(warnings))

	p.jobsProcessed.Add(1)
	p.results <- FileResult{FilePath: job.FilePath, DTSText: dtsText, Warnings: warnings, JobID: job.JobID}
}

// Submit enqueues a job. Blocks if the jobs channel is full.
func (p *Pool) Submit(job FileJob) error {
	if p.stopped.Load() {
		return fmt.Errorf("driver: pool is stopped")
	}
	p.jobsSubmitted.Add(1)
	select {
	case <-p.ctx.Done():
		return fmt.Errorf("driver: pool cancelled")
	case p.jobs <- job:
		return nil
	}
}

// Results returns the results channel.
func (p *Pool) Results() <-chan FileResult { return p.results }

// Errors returns the errors channel.
func (p *Pool) Errors() <-chan FileError { return p.errors }

// FinishSubmitting closes the jobs channel. Idempotent.
func (p *Pool) FinishSubmitting() {
	if p.jobsClosed.CompareAndSwap(false, true) {
		close(p.jobs)
	}
}

// Wait blocks until all workers have exited.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Stop gracefully shuts down the pool. Idempotent.
func (p *Pool) Stop() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}
	p.FinishSubmitting()
	p.wg.Wait()
	close(p.results)
	close(p.errors)
	p.cancel()
}

// Stats reports pool progress counters.
type Stats struct {
	JobsSubmitted int64
	JobsProcessed int64
	JobsFailed    int64
}

// Stats returns current pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsProcessed: p.jobsProcessed.Load(),
		JobsFailed:    p.jobsFailed.Load(),
	}
}
