package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
	"github.com/yaklabco/gofmlint/pkg/runner"
)

func plainStyles() *Styles {
	return NewStyles(false)
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))

	// Auto with a non-TTY writer.
	assert.False(t, IsColorEnabled("auto", &buf))
	assert.False(t, IsColorEnabled("", &buf))
}

func TestIsColorEnabledNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	assert.False(t, IsColorEnabled("auto", &buf))

	// Explicit always still wins.
	assert.True(t, IsColorEnabled("always", &buf))
}

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	diag := &lint.Diagnostic{
		RuleID:   "FM004",
		RuleName: "no-quotes",
		Message:  "Quote character",
		Severity: config.SeverityError,
		FilePath: "posts/hello.md",
		Row:      2,
		Column:   8,
		Snippet:  " 1 | ---\n 2 | title: 'Hi'\n   |        ^\n",
	}

	out := plainStyles().FormatDiagnostic(diag, true)

	assert.Contains(t, out, "posts/hello.md:2:8")
	assert.Contains(t, out, "error")
	assert.Contains(t, out, "Quote character")
	assert.Contains(t, out, "(FM004/no-quotes)")
	assert.Contains(t, out, "title: 'Hi'")

	// Snippet suppressed on request.
	withoutContext := plainStyles().FormatDiagnostic(diag, false)
	assert.NotContains(t, withoutContext, "title: 'Hi'")
}

func TestFormatDiagnosticBlockLevel(t *testing.T) {
	t.Parallel()

	diag := &lint.Diagnostic{
		RuleID:   "FM001",
		RuleName: "missing-required-attribute",
		Message:  `Required attribute "date" is missing`,
		Severity: config.SeverityError,
		FilePath: "posts/hello.md",
	}

	out := plainStyles().FormatDiagnostic(diag, true)

	// No position: bare path, no row:col suffix.
	assert.Contains(t, out, "posts/hello.md  ")
	assert.NotContains(t, out, "posts/hello.md:0")
}

func TestFormatSeverity(t *testing.T) {
	t.Parallel()

	styles := plainStyles()
	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "note", styles.FormatSeverity(config.Severity("note")))
}

func TestFormatSnippet(t *testing.T) {
	t.Parallel()

	out := plainStyles().FormatSnippet(" 1 | ---\n 2 | title: x\n")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "    "), line)
	}
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := plainStyles()
	assert.Equal(t, "a.md (3 issues)", styles.FormatFileHeader("a.md", 3))
	assert.Equal(t, "a.md", styles.FormatFileHeader("a.md", 0))
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := plainStyles()

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesProcessed: 3},
			want:  "No issues found (3 files checked)\n",
		},
		{
			name: "clean with fixes",
			stats: runner.Stats{
				FilesProcessed: 2,
				FilesModified:  1,
			},
			want: "No issues found (2 files checked), 1 file fixed\n",
		},
		{
			name: "mixed severities",
			stats: runner.Stats{
				ErrorCount:      2,
				WarningCount:    1,
				FilesWithIssues: 2,
				FixableErrors:   2,
			},
			want: "3 issues (2 errors, 1 warnings), in 2 files, 2 fixable\n",
		},
		{
			name: "single issue",
			stats: runner.Stats{
				ErrorCount:      1,
				FilesWithIssues: 1,
			},
			want: "1 issue (1 errors), in 1 file\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := plainStyles()

	out := styles.FormatSummary(runner.Stats{
		FilesProcessed:  3,
		FilesWithIssues: 1,
		ErrorCount:      2,
		FixableErrors:   1,
	})

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files checked:     3")
	assert.Contains(t, out, "Files with issues: 1")
	assert.Contains(t, out, "Errors:          2")
	assert.Contains(t, out, "Fixable:         1")
	assert.Contains(t, out, "Lint failed with errors")

	clean := styles.FormatSummary(runner.Stats{FilesProcessed: 2})
	assert.Contains(t, clean, "Lint passed")

	warned := styles.FormatSummary(runner.Stats{WarningCount: 1, FilesWithIssues: 1})
	assert.Contains(t, warned, "Lint completed with warnings")
}
