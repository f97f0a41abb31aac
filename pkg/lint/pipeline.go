package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/frontmatter"
	"github.com/yaklabco/gofmlint/pkg/fsutil"
)

// Identifiers of the two diagnostics produced outside the rule catalogue:
// a file without a front-matter block, and a block the YAML parser rejects.
const (
	NoFrontMatterID   = "FM000"
	NoFrontMatterName = "no-front-matter"

	InvalidYAMLID   = "FM900"
	InvalidYAMLName = "invalid-front-matter"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult contains the lint diagnostics and tallies.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// Modified is true if fix mode produced a block differing from the
	// original.
	Modified bool

	// Written is true if the corrected file was written to disk.
	Written bool

	// Skipped is true if a pending write was abandoned (e.g., the file
	// changed under us).
	Skipped bool

	// SkipReason explains why the write was skipped.
	SkipReason string
}

// Pipeline orchestrates the per-file lint operation: read, locate, parse,
// scan, and (in fix mode) rewrite.
type Pipeline struct {
	// Engine is the lint engine used for rule execution.
	Engine *Engine
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full per-file operation.
//
// Steps:
//  1. Read the file and capture its state for modification detection.
//  2. Locate the front-matter block. Absent block: report no-front-matter
//     (error when mandatory, warning otherwise) and stop.
//  3. Parse the block body. Parse failure: report one positioned
//     invalid-front-matter error and stop; rules cannot run on an
//     unparseable block.
//  4. Run the rule engine (and plugins).
//  5. In fix mode, re-serialize the block and, when it differs, write the
//     corrected file atomically after re-checking for concurrent changes.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	block, ok := frontmatter.Locate(content)
	if !ok {
		result.FileResult = missingFrontMatterResult(path, cfg)
		return result, nil
	}

	attrs, err := frontmatter.Parse(block.Body())
	if err != nil {
		result.FileResult = parseFailureResult(path, block, err)
		return result, nil
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
	default:
	}

	result.FileResult = p.Engine.LintBlock(path, block, attrs, cfg)

	if cfg == nil || !cfg.Fix {
		return result, nil
	}

	fixed, err := frontmatter.Rewrite(content, block, attrs)
	if err != nil {
		return nil, fmt.Errorf("rewrite front matter: %w", err)
	}
	if bytes.Equal(fixed, content) {
		return result, nil
	}
	result.Modified = true

	changed, err := fsutil.CheckModifiedQuick(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if changed {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if err := fsutil.WriteAtomic(ctx, path, fixed, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// missingFrontMatterResult builds the single-diagnostic result for a file
// with no front-matter block. Severity depends on the mandatory setting;
// either way linting stops here.
func missingFrontMatterResult(path string, cfg *config.Config) *FileResult {
	severity := config.SeverityWarning
	if cfg != nil && cfg.Mandatory {
		severity = config.SeverityError
	}

	result := newFileResult(path)
	result.add(Diagnostic{
		RuleID:   NoFrontMatterID,
		RuleName: NoFrontMatterName,
		Message:  "File has no front matter block",
		Severity: severity,
		FilePath: path,
	})
	return result
}

// parseFailureResult builds the single-diagnostic result for a block the
// YAML parser rejected, mapping the parser's body-relative line back to a
// block row when available.
func parseFailureResult(path string, block *frontmatter.Block, err error) *FileResult {
	diag := Diagnostic{
		RuleID:   InvalidYAMLID,
		RuleName: InvalidYAMLName,
		Message:  err.Error(),
		Severity: config.SeverityError,
		FilePath: path,
	}

	var parseErr *frontmatter.ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		// Body line 1 is block row 2 (row 1 is the opening delimiter).
		diag.Row = parseErr.Line + 1
		diag.Snippet = RenderSnippet(block.Lines, diag.Row, 0)
	}

	result := newFileResult(path)
	result.add(diag)
	return result
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}
