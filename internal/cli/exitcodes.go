package cli

import "github.com/yaklabco/gofmlint/pkg/runner"

// Exit codes for gofmlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint completed but found warnings (when strict mode).
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.ErrorCount > 0 || result.Stats.FilesErrored > 0 || len(result.Errors) > 0 {
		return ExitLintErrors
	}

	if strict && result.Stats.WarningCount > 0 {
		return ExitLintWarnings
	}

	return ExitSuccess
}
