package miner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/screa/eth-vanity-miner/internal/config"
	"github.com/screa/eth-vanity-miner/internal/crypto"
	"github.com/screa/eth-vanity-miner/internal/logger"
	"github.com/screa/eth-vanity-miner/internal/report"
	"github.com/screa/eth-vanity-miner/pkg/pattern"
	"github.com/screa/eth-vanity-miner/pkg/types"
	"github.com/screa/eth-vanity-miner/pkg/worker"
)

// Errors
var (
	ErrAlreadyStarted = errors.New("miner already started")
	ErrStopped        = errors.New("mining stopped")
	ErrWorkerPanic    = errors.New("worker panicked")
)

// Miner coordinates a pool of workers racing to find one matching account
type Miner struct {
	config       *config.Config
	logger       *logger.Logger
	pattern      *pattern.Pattern
	source       crypto.SourceFunc
	state        *types.SearchState
	workerConfig *types.WorkerConfig
	started      atomic.Bool
	wg           sync.WaitGroup

	mu  sync.Mutex
	err error // first fatal worker error
}

// NewMiner creates a new miner instance. The pattern is compiled here, so a
// malformed one fails before any worker exists.
func NewMiner(cfg *config.Config, log *logger.Logger) (*Miner, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if log == nil {
		log = logger.Discard()
	}

	pat, err := pattern.Compile(cfg.Expression())
	if err != nil {
		return nil, err
	}

	workerConfig := &types.WorkerConfig{
		Pattern:    pat,
		Verbosity:  cfg.Verbosity,
		Candidates: log,
	}

	return &Miner{
		config:       cfg,
		logger:       log,
		pattern:      pat,
		source:       crypto.SystemSource,
		state:        types.NewSearchState(),
		workerConfig: workerConfig,
	}, nil
}

// WithSource replaces the byte source, e.g. with crypto.SeededSource in tests.
// Must be called before Mine.
func (m *Miner) WithSource(src crypto.SourceFunc) *Miner {
	m.source = src
	return m
}

// Mine runs the search until a worker wins, ctx is done, Stop is called or a
// worker fails. It blocks until every worker has exited. A Miner mines once.
func (m *Miner) Mine(ctx context.Context) (*types.Result, error) {
	if !m.started.CompareAndSwap(false, true) {
		return nil, ErrAlreadyStarted
	}
	start := time.Now()

	// Cancellation goes through the same gate as the winner.
	stop := context.AfterFunc(ctx, func() { m.state.Cancel() })
	defer stop()

	m.logger.Debugf("Searching for address matching %s", m.pattern)
	m.logger.Debugf("Mining started with %d workers", m.config.Workers)

	// Start workers
	for i := 0; i < m.config.Workers; i++ {
		m.wg.Add(1)
		go m.worker(i)
	}

	// Start periodic logging if verbose mode is enabled
	var logTicker *time.Ticker
	var logDone chan struct{}
	if m.config.Verbosity >= logger.LevelDebug && m.config.LogInterval > 0 {
		interval := time.Duration(m.config.LogInterval) * time.Second
		logTicker = time.NewTicker(interval)
		logDone = make(chan struct{})
		go m.periodicLogger(logTicker, logDone, start)
	}

	// Wait for completion
	m.wg.Wait()

	// Stop periodic logging
	if logTicker != nil {
		logTicker.Stop()
		close(logDone)
	}

	if err := m.failure(); err != nil {
		return nil, err
	}

	acct := m.state.Result()
	if acct == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrStopped
	}

	return &types.Result{
		Account:  *acct,
		Attempts: m.state.Attempts(),
		Duration: time.Since(start),
	}, nil
}

// worker runs the mining logic for a single worker
func (m *Miner) worker(workerID int) {
	defer m.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			m.fail(fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, workerID, r))
		}
	}()

	w := worker.NewWorker(workerID, m.workerConfig, m.source(workerID))
	if err := w.Run(m.state); err != nil {
		m.fail(fmt.Errorf("worker %d: %w", workerID, err))
	}
}

// fail records the first fatal error and stops the remaining workers
func (m *Miner) fail(err error) {
	m.mu.Lock()
	if m.err == nil {
		m.err = err
	}
	m.mu.Unlock()
	m.state.Fail()
}

func (m *Miner) failure() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Stop stops the mining process
func (m *Miner) Stop() {
	m.state.Cancel()
}

// Attempts returns the number of candidates generated so far
func (m *Miner) Attempts() uint64 {
	return m.state.Attempts()
}

// Status returns the state of the search gate
func (m *Miner) Status() types.SearchStatus {
	return m.state.Status()
}

// periodicLogger logs mining progress at regular intervals
func (m *Miner) periodicLogger(ticker *time.Ticker, done chan struct{}, start time.Time) {
	for {
		select {
		case <-ticker.C:
			attempts := m.state.Attempts()
			elapsed := time.Since(start)

			// Calculate rate safely
			rate := 0.0
			if elapsed.Seconds() > 0 {
				rate = float64(attempts) / elapsed.Seconds()
			}

			m.logger.Debugf("Progress: %d attempts, %.2f addresses/sec, No match yet", attempts, rate)
		case <-done:
			return
		}
	}
}

// Search compiles pattern and races workers for the first matching account.
// A malformed pattern is returned as an error wrapping pattern.ErrInvalidPattern
// before any worker starts. At verbosity 1 and above the winner is printed to
// stdout; at 2 and above the search header is printed first.
func Search(ctx context.Context, expr string, workers, verbosity int) (*types.Result, error) {
	return search(ctx, os.Stdout, expr, workers, verbosity)
}

func search(ctx context.Context, out io.Writer, expr string, workers, verbosity int) (*types.Result, error) {
	cfg := config.NewConfig()
	cfg.Pattern = expr
	cfg.Workers = workers
	cfg.Verbosity = verbosity

	log := logger.NewWriter(out)
	log.SetVerbosity(verbosity)

	m, err := NewMiner(cfg, log)
	if err != nil {
		return nil, err
	}

	if verbosity >= logger.LevelDebug {
		report.PrintSearchHeader(out, cfg)
	}

	res, err := m.Mine(ctx)
	if err != nil {
		return nil, err
	}
	if verbosity >= logger.LevelResult {
		report.PrintFound(out, res)
	}
	return res, nil
}
