// Package runner provides multi-file linting orchestration.
package runner

import "github.com/yaklabco/gofmlint/pkg/config"

// Options controls multi-file linting behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered lintable. Defaults to the configured extensions, falling
	// back to [".md", ".markdown"].
	Extensions []string

	// Recursive controls whether directories are descended into. When false,
	// only the immediate entries of a directory path are considered.
	Recursive bool

	// ExcludeDirs are directory names skipped during recursive traversal.
	ExcludeDirs []string

	// IncludeDirs are directory names descended into even when they match
	// an exclusion. Include rules override exclusion.
	IncludeDirs []string

	// ExtraExcludeDirs are additional exclusions merged with ExcludeDirs,
	// typically supplied on the command line.
	ExtraExcludeDirs []string

	// Jobs controls the maximum number of concurrent file operations.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	if o.Config != nil && len(o.Config.Extensions) > 0 {
		return o.Config.Extensions
	}
	return []string{".md", ".markdown"}
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// excludedDirs merges ExcludeDirs and ExtraExcludeDirs, falling back to the
// configured exclusions when neither is set.
func (o Options) excludedDirs() []string {
	merged := make([]string, 0, len(o.ExcludeDirs)+len(o.ExtraExcludeDirs))
	merged = append(merged, o.ExcludeDirs...)
	merged = append(merged, o.ExtraExcludeDirs...)
	if len(merged) == 0 && o.Config != nil {
		merged = o.Config.AllExcludeDirs()
	}
	return merged
}

// includedDirs returns the include overrides, falling back to configuration.
func (o Options) includedDirs() []string {
	if len(o.IncludeDirs) > 0 {
		return o.IncludeDirs
	}
	if o.Config != nil {
		return o.Config.IncludeDirs
	}
	return nil
}
