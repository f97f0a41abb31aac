package lint

import (
	"fmt"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/frontmatter"
)

// FileResult contains the results of linting a single file's front matter.
// It is created fresh per file and never mutated after the engine returns it.
type FileResult struct {
	// Path is the file the result belongs to.
	Path string

	// Diagnostics contains all issues found, in rule order.
	Diagnostics []Diagnostic

	// ErrorCount and WarningCount tally diagnostics by severity.
	ErrorCount   int
	WarningCount int

	// ErrorsByRule and WarningsByRule group diagnostics by rule name (or,
	// for plugin issues, by message text).
	ErrorsByRule   map[string][]Diagnostic
	WarningsByRule map[string][]Diagnostic

	// RuleErrors records plugins that failed at runtime, keyed by plugin name.
	RuleErrors map[string]error
}

// newFileResult creates an empty FileResult for path.
func newFileResult(path string) *FileResult {
	return &FileResult{
		Path:           path,
		ErrorsByRule:   make(map[string][]Diagnostic),
		WarningsByRule: make(map[string][]Diagnostic),
		RuleErrors:     make(map[string]error),
	}
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// FixableCount returns the number of error diagnostics that fix mode's
// re-serialization resolves.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.Fixable {
			count++
		}
	}
	return count
}

// add folds a diagnostic into the result's tallies and grouping maps.
func (fr *FileResult) add(diag Diagnostic) {
	fr.Diagnostics = append(fr.Diagnostics, diag)
	switch diag.Severity {
	case config.SeverityError:
		fr.ErrorCount++
		fr.ErrorsByRule[diag.RuleName] = append(fr.ErrorsByRule[diag.RuleName], diag)
	default:
		fr.WarningCount++
		fr.WarningsByRule[diag.RuleName] = append(fr.WarningsByRule[diag.RuleName], diag)
	}
}

// Engine coordinates rule and plugin execution against a located block.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry

	// Plugins are caller-supplied extra rules, run after the catalogue.
	Plugins []Plugin
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// LintBlock runs every enabled rule against the block and folds plugin
// findings into the same result.
//
// In fix mode, rules whose findings the rewrite resolves are skipped: the
// re-serialization already normalizes whitespace, quoting, and indentation.
// The remaining rules (missing-required-attribute and the warning-level
// pattern rules) still run so residual issues are reported.
func (e *Engine) LintBlock(
	path string,
	block *frontmatter.Block,
	attrs *frontmatter.Attributes,
	cfg *config.Config,
) *FileResult {
	result := newFileResult(path)

	resolved := ResolveRules(e.Registry, cfg)
	ruleCtx := NewRuleContext(path, block, attrs, cfg)

	for _, rr := range resolved {
		if cfg != nil && cfg.Fix && rr.Rule.FixedByRewrite() {
			continue
		}

		for _, diag := range rr.Rule.Apply(ruleCtx) {
			diag.Severity = rr.Severity
			diag.FilePath = path
			if diag.RuleName == "" {
				diag.RuleName = rr.Rule.Name()
			}
			diag.Fixable = rr.Rule.FixedByRewrite() && diag.Severity == config.SeverityError
			if diag.HasPosition() && diag.Snippet == "" {
				diag.Snippet = RenderSnippet(block.Lines, diag.Row, diag.Column)
			}
			result.add(diag)
		}
	}

	for _, plugin := range e.Plugins {
		e.applyPlugin(result, plugin, block, attrs)
	}

	return result
}

// applyPlugin runs one plugin, containing any runtime failure to this file.
func (e *Engine) applyPlugin(
	result *FileResult,
	plugin Plugin,
	block *frontmatter.Block,
	attrs *frontmatter.Attributes,
) {
	defer func() {
		if r := recover(); r != nil {
			result.RuleErrors[plugin.Name()] = fmt.Errorf("plugin %s failed: %v", plugin.Name(), r)
		}
	}()

	for _, issue := range plugin.Evaluate(attrs, block.Body()) {
		diag := Diagnostic{
			RuleID:   plugin.Name(),
			RuleName: issue.Message,
			Message:  issue.Message,
			Severity: issue.Severity,
			FilePath: result.Path,
			Row:      issue.Row,
			Column:   issue.Column,
			Snippet:  issue.Snippet,
		}
		if diag.Severity == "" {
			diag.Severity = config.SeverityWarning
		}
		if diag.HasPosition() && diag.Snippet == "" {
			diag.Snippet = RenderSnippet(block.Lines, diag.Row, diag.Column)
		}
		result.add(diag)
	}
}
