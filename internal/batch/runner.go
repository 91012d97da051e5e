// Package batch drives concurrent analysis of document directories. The
// analysis core is pure and lock-free, so the runner fans calls out across
// a bounded worker pool; cancellation and timeout policy live here, never
// inside the core. One bad document is recorded and skipped, not fatal.
package batch

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mayalegal/internal/analyzer"
	"mayalegal/internal/store"
)

// DocumentResult is the outcome for a single document in a batch.
type DocumentResult struct {
	Path   string           `json:"path"`
	Result *analyzer.Result `json:"result,omitempty"`
	Err    string           `json:"error,omitempty"`
	Cached bool             `json:"cached,omitempty"`
}

// Summary aggregates one batch run.
type Summary struct {
	RunID     string           `json:"run_id"`
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []DocumentResult `json:"results"`
}

// Runner dispatches documents to the analyzer across a worker pool.
type Runner struct {
	analyzer *analyzer.Analyzer
	cache    *store.ResultCache // nil disables caching
	workers  int
	exts     []string
	log      *zap.Logger
}

// NewRunner builds a batch runner. cache may be nil.
func NewRunner(a *analyzer.Analyzer, cache *store.ResultCache, workers int, extensions []string, log *zap.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if len(extensions) == 0 {
		extensions = []string{".txt", ".md"}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{analyzer: a, cache: cache, workers: workers, exts: extensions, log: log}
}

// Run analyzes every matching document under dir. Per-document failures
// (unreadable files, oversized input) are captured in the summary; only
// discovery errors and context cancellation abort the run.
func (r *Runner) Run(ctx context.Context, dir string) (*Summary, error) {
	paths, err := Discover(dir, r.exts)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	summary := &Summary{RunID: runID, Total: len(paths), Results: make([]DocumentResult, len(paths))}
	if len(paths) == 0 {
		return summary, nil
	}

	r.log.Info("starting batch run",
		zap.String("run_id", runID),
		zap.String("dir", dir),
		zap.Int("documents", len(paths)),
		zap.Int("workers", r.workers))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := r.processOne(path, runID)
			mu.Lock()
			summary.Results[i] = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range summary.Results {
		if res.Err == "" {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	r.log.Info("batch run complete",
		zap.String("run_id", runID),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed))

	return summary, nil
}

func (r *Runner) processOne(path, runID string) DocumentResult {
	text, err := ReadDocument(path)
	if err != nil {
		r.log.Warn("skipping unreadable document", zap.String("path", path), zap.Error(err))
		return DocumentResult{Path: path, Err: err.Error()}
	}

	if r.cache != nil {
		if cached, ok, err := r.cache.Get(text, r.analyzer.LexiconVersion()); err != nil {
			r.log.Warn("cache lookup failed", zap.String("path", path), zap.Error(err))
		} else if ok {
			return DocumentResult{Path: path, Result: cached, Cached: true}
		}
	}

	result, err := r.analyzer.Analyze(text)
	if err != nil {
		r.log.Warn("analysis failed", zap.String("path", path), zap.Error(err))
		return DocumentResult{Path: path, Err: err.Error()}
	}

	if r.cache != nil {
		if err := r.cache.Put(text, r.analyzer.LexiconVersion(), runID, result); err != nil {
			// Cache writes are best-effort; the analysis already succeeded.
			r.log.Warn("cache write failed", zap.String("path", path), zap.Error(err))
		}
	}

	return DocumentResult{Path: path, Result: result}
}
