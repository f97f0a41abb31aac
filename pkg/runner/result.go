package runner

import "github.com/yaklabco/gofmlint/pkg/lint"

// FileOutcome wraps a pipeline result with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// May be nil if the file encountered an error during processing.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped (e.g., due to concurrent modification).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// FilesModified is the number of files rewritten by fix mode.
	FilesModified int

	// ErrorCount is the total number of error-severity diagnostics.
	ErrorCount int

	// WarningCount is the total number of warning-severity diagnostics.
	WarningCount int

	// FixableErrors is the number of error-severity diagnostics that fix
	// mode would resolve.
	FixableErrors int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any error-severity diagnostics or processing
// errors occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.ErrorCount > 0 || r.Stats.FilesErrored > 0 || len(r.Errors) > 0
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.ErrorCount > 0 || r.Stats.WarningCount > 0
}

// accumulate updates the result with a file outcome. Merging is commutative,
// so accumulation order does not affect the final totals.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}

	if outcome.Result.Written {
		r.Stats.FilesModified++
	}

	if outcome.Result.FileResult == nil {
		return
	}

	fr := outcome.Result.FileResult
	r.Stats.ErrorCount += fr.ErrorCount
	r.Stats.WarningCount += fr.WarningCount
	r.Stats.FixableErrors += fr.FixableCount()

	if fr.HasIssues() {
		r.Stats.FilesWithIssues++
	}
}
