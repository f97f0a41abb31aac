package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, showContext bool) string {
	var builder strings.Builder

	// Location: path:line:col, or just the path for block-level diagnostics.
	location := s.FilePath.Render(diag.FilePath)
	if diag.HasPosition() {
		location = fmt.Sprintf("%s:%d:%d",
			s.FilePath.Render(diag.FilePath),
			diag.Row,
			diag.Column,
		)
	}

	severity := s.FormatSeverity(diag.Severity)
	ruleDisplay := s.RuleID.Render("(" + diag.RuleID + "/" + diag.RuleName + ")")

	// Main line: location  severity  message  (rule-id/rule-name)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(diag.Message),
		ruleDisplay,
	))

	if showContext && diag.Snippet != "" {
		builder.WriteString(s.FormatSnippet(diag.Snippet))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}

// FormatSnippet indents and dims a rendered context snippet.
func (s *Styles) FormatSnippet(snippet string) string {
	var builder strings.Builder

	const indent = "    "
	for line := range strings.SplitSeq(strings.TrimRight(snippet, "\n"), "\n") {
		builder.WriteString(indent + s.SourceLine.Render(line) + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
