package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofmlint/internal/configloader"
	"github.com/yaklabco/gofmlint/internal/logging"
	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
	_ "github.com/yaklabco/gofmlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/gofmlint/pkg/reporter"
	"github.com/yaklabco/gofmlint/pkg/runner"
)

// Sentinel errors used to signal exit codes from command execution.
var (
	// ErrLintIssuesFound is returned when lint errors are found.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrLintWarningsFound is returned in strict mode when only warnings are found.
	ErrLintWarningsFound = errors.New("lint warnings found")

	// ErrConfigLoad is returned when configuration cannot be loaded.
	ErrConfigLoad = errors.New("failed to load configuration")
)

type checkFlags struct {
	format      string
	required    []string
	excludeDirs []string
	includeDirs []string
	extensions  []string
	strict      bool
	noContext   bool
	compact     bool
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check front matter in Markdown files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	addCheckFlags(cmd, &cfg, flags)

	return cmd
}

const checkLongDescription = `Check the YAML front matter of Markdown files for style issues.

By default, checks all .md and .markdown files in the current directory.
Specify paths to check specific files or directories.

Examples:
  gofmlint check                        # Check current directory
  gofmlint check docs/ --recursive      # Check docs tree
  gofmlint check README.md              # Check single file
  gofmlint check --fix                  # Check and auto-fix issues
  gofmlint check --required title,date  # Require keys in every block
  gofmlint check --format json          # Output as JSON for CI
  gofmlint check --strict               # Treat warnings as errors`

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Format = config.OutputFormat(flags.format)
	cfg.RequiredAttributes = flags.required
	cfg.ExtraExcludeDirs = flags.excludeDirs
	cfg.IncludeDirs = flags.includeDirs
	cfg.Extensions = flags.extensions

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFix, finalCfg.Fix,
		logging.FieldRecursive, finalCfg.Recursive,
		logging.FieldMandatory, finalCfg.Mandatory,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldFormat, finalCfg.Format,
	)

	// Use the default registry which has all built-in rules registered.
	engine := lint.NewEngine(lint.DefaultRegistry)
	pipeline := lint.NewPipeline(engine)
	checkRunner := runner.New(pipeline)

	runOpts := runner.Options{
		Paths:            args,
		WorkingDir:       workDir,
		Extensions:       finalCfg.Extensions,
		Recursive:        finalCfg.Recursive,
		ExcludeDirs:      finalCfg.ExcludeDirs,
		IncludeDirs:      finalCfg.IncludeDirs,
		ExtraExcludeDirs: finalCfg.ExtraExcludeDirs,
		Jobs:             finalCfg.Jobs,
		Config:           finalCfg,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, runErr := checkRunner.Run(ctx, runOpts)
	if runErr != nil && result == nil {
		return errors.Join(errors.New("check run failed"), runErr)
	}

	logger.Debug("check run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFilesModified, result.Stats.FilesModified,
		logging.FieldErrors, result.Stats.ErrorCount,
		logging.FieldWarnings, result.Stats.WarningCount,
		logging.FieldFixableErrors, result.Stats.FixableErrors,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Quiet:       finalCfg.Quiet,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if runErr != nil {
		return errors.Join(errors.New("check run failed"), runErr)
	}

	switch ExitCodeFromResult(result, flags.strict) {
	case ExitLintErrors:
		return ErrLintIssuesFound
	case ExitLintWarnings:
		return ErrLintWarningsFound
	}

	return nil
}

func addCheckFlags(cmd *cobra.Command, cfg *config.Config, flags *checkFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues by rewriting front matter")
	cmd.Flags().BoolVarP(&cfg.Recursive, "recursive", "r", false, "recurse into subdirectories")
	cmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress warning-severity output")
	cmd.Flags().BoolVar(&cfg.Mandatory, "mandatory", false, "treat missing front matter as an error")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.required, "required", nil, "front-matter keys required in every block")
	cmd.Flags().StringSliceVar(&flags.excludeDirs, "exclude-dir", nil, "extra directory names to exclude")
	cmd.Flags().StringSliceVar(&flags.includeDirs, "include-dir", nil, "directory names to include despite exclusion")
	cmd.Flags().StringSliceVar(&flags.extensions, "extension", nil, "file extensions to check")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source snippets in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
