// Package lint provides the rule engine, diagnostics, and registry for gofmlint.
package lint

import "github.com/yaklabco/gofmlint/pkg/config"

// Diagnostic represents a single issue found in a front-matter block.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic,
	// or the plugin name for plugin-reported issues.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "no-quotes").
	// For plugin-reported issues this is the message text, which also keys
	// the per-rule aggregation maps.
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Row is the 1-based line number within the block. Block-level issues
	// (missing-required-attribute, no-front-matter) carry row 0.
	Row int

	// Column is the 1-based column where the issue starts (0 if none).
	Column int

	// EndColumn is the 1-based column just past the issue span (0 if none).
	EndColumn int

	// Snippet is the rendered context window for positioned diagnostics.
	Snippet string

	// Fixable marks error diagnostics that fix mode's re-serialization
	// resolves.
	Fixable bool
}

// HasPosition reports whether the diagnostic points at a specific line.
func (d *Diagnostic) HasPosition() bool {
	return d.Row > 0
}

// Rule defines the interface that all front-matter rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "FM005").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// FixedByRewrite reports whether re-serializing the block resolves this
	// rule's findings. Such rules are skipped in fix mode.
	FixedByRewrite() bool

	// Apply executes the rule against the given context and returns
	// diagnostics. Rules are pure pattern scans over the block lines; they
	// run to completion and never fail.
	Apply(ctx *RuleContext) []Diagnostic
}
