package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/yaklabco/gofmlint/internal/ui/pretty"
	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
	"github.com/yaklabco/gofmlint/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.displayPath(file.Path)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		diagnostics := file.Result.Diagnostics
		if r.opts.Quiet {
			diagnostics = errorsOnly(diagnostics)
		}
		if len(diagnostics) == 0 && len(file.Result.RuleErrors) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(r.displayPath(file.Path), len(diagnostics)))

		for _, diag := range diagnostics {
			diag.FilePath = r.displayPath(diag.FilePath)
			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, r.opts.ShowContext))
			total++
		}

		r.writeRuleErrors(file.Result.RuleErrors)

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// writeRuleErrors prints plugin failures attributed to the file.
func (r *TextReporter) writeRuleErrors(ruleErrors map[string]error) {
	if len(ruleErrors) == 0 {
		return
	}

	names := make([]string, 0, len(ruleErrors))
	for name := range ruleErrors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.Error.Render("rule "+name+" failed:"),
			ruleErrors[name],
		)
	}
}

// displayPath makes the path relative to WorkingDir when configured.
func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil {
		return path
	}
	return rel
}

// errorsOnly filters out warning-severity diagnostics.
func errorsOnly(diags []lint.Diagnostic) []lint.Diagnostic {
	filtered := make([]lint.Diagnostic, 0, len(diags))
	for _, diag := range diags {
		if diag.Severity == config.SeverityError {
			filtered = append(filtered, diag)
		}
	}
	return filtered
}
