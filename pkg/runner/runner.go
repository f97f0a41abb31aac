package runner

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gofmlint/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// Files are fanned out across a bounded worker group and the run waits for
// every scheduled file before returning. A processing failure (unreadable
// file, failed write) aborts the batch: in-flight siblings finish, no new
// work is scheduled, and the failure propagates to the caller alongside the
// partial result.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	// Each worker writes only its own slot, so no locking is needed.
	outcomes := make([]FileOutcome, len(files))

	for i, path := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			pr, err := r.Pipeline.ProcessFile(groupCtx, path, opts.Config)
			outcomes[i] = FileOutcome{Path: path, Result: pr, Error: err}
			return err
		})
	}

	runErr := group.Wait()

	// Accumulate in discovery order so totals and output are deterministic.
	// Slots left empty by an aborted batch carry no path and are dropped.
	for _, outcome := range outcomes {
		if outcome.Path == "" {
			continue
		}
		result.accumulate(outcome)
	}

	if runErr != nil {
		result.Errors = append(result.Errors, runErr)
		return result, runErr
	}

	return result, nil
}
