// Package main is the entry point for the gofmlint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gofmlint/internal/cli"
	"github.com/yaklabco/gofmlint/internal/logging"
	"github.com/yaklabco/gofmlint/pkg/fsutil"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/gofmlint/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	// Issue sentinels are pure exit-code signals; everything else is logged.
	switch {
	case errors.Is(err, cli.ErrLintIssuesFound):
		return cli.ExitLintErrors
	case errors.Is(err, cli.ErrLintWarningsFound):
		return cli.ExitLintWarnings
	}

	logger := logging.Default()
	logger.Error("command failed", logging.FieldError, err)

	switch {
	case errors.Is(err, cli.ErrConfigLoad):
		return cli.ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return cli.ExitIOError
	}

	return cli.ExitLintErrors
}
