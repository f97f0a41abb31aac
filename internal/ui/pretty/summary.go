package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gofmlint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 errors, 4 warnings) in 3 files, 6 fixable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	total := stats.ErrorCount + stats.WarningCount

	if total == 0 {
		msg := s.Success.Render("No issues found") + s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		if stats.FilesModified > 0 {
			fileWord := wordFiles
			if stats.FilesModified == 1 {
				fileWord = wordFile
			}
			msg += ", " + s.Success.Render(fmt.Sprintf("%d %s fixed", stats.FilesModified, fileWord))
		}
		return msg + "\n"
	}

	var parts []string

	issueWord := "issues"
	if total == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if stats.ErrorCount > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", stats.ErrorCount)))
	}
	if stats.WarningCount > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", stats.WarningCount)))
	}

	parts = append(parts, fmt.Sprintf("%d %s (%s)", total, issueWord, strings.Join(severityParts, ", ")))

	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	if stats.FixableErrors > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d fixable", stats.FixableErrors)))
	}

	if stats.FilesModified > 0 {
		fixedFileWord := wordFiles
		if stats.FilesModified == 1 {
			fixedFileWord = wordFile
		}
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s fixed", stats.FilesModified, fixedFileWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesModified > 0 {
		builder.WriteString("  Files modified:    " +
			s.Success.Render(strconv.Itoa(stats.FilesModified)) + "\n")
	}

	builder.WriteString("\n")

	// Diagnostics by severity
	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.ErrorCount+stats.WarningCount)) + "\n")

	if stats.ErrorCount > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(stats.ErrorCount)) + "\n")
	}
	if stats.WarningCount > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(stats.WarningCount)) + "\n")
	}

	if stats.FixableErrors > 0 {
		builder.WriteString("    Fixable:         " +
			s.Success.Render(strconv.Itoa(stats.FixableErrors)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.ErrorCount > 0:
		builder.WriteString(s.Failure.Render("Lint failed with errors"))
	case stats.WarningCount > 0:
		builder.WriteString(s.Warning.Render("Lint completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
