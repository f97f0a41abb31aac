// Package config defines core configuration types for gofmlint.
// These types are pure data structures with no dependency on the config
// loader or CLI layers.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool   `yaml:"enabled"`
	Severity *string `yaml:"severity"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// Config is the root configuration structure for gofmlint.
type Config struct {
	// Extensions is the set of file extensions treated as documents
	// (lowercase, with leading dot).
	Extensions []string `yaml:"extensions"`

	// ExcludeDirs are directory names skipped during recursive traversal.
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// IncludeDirs are directory names traversed even when excluded.
	// Include rules override exclusion.
	IncludeDirs []string `yaml:"include_dirs"`

	// ExtraExcludeDirs are additional exclusions merged with ExcludeDirs,
	// typically supplied per-project on top of the defaults.
	ExtraExcludeDirs []string `yaml:"extra_exclude_dirs"`

	// RequiredAttributes are top-level keys that must appear in every
	// front-matter block.
	RequiredAttributes []string `yaml:"required_attributes"`

	// Mandatory controls the severity of a missing front-matter block:
	// error when true, warning when false.
	Mandatory bool `yaml:"mandatory"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// CLI-level options (not persisted to config files).

	// Fix enables rewriting front matter to its canonical serialization.
	Fix bool `yaml:"-"`

	// Recursive descends into subdirectories instead of listing one level.
	Recursive bool `yaml:"-"`

	// Quiet suppresses per-violation output, keeping only the summary.
	Quiet bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers (0 = auto).
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions:  []string{".md", ".markdown"},
		ExcludeDirs: []string{".git", "node_modules", "vendor"},
		Rules:       make(map[string]RuleConfig),
		Format:      FormatText,
		Jobs:        0,
	}
}

// AllExcludeDirs returns ExcludeDirs merged with ExtraExcludeDirs.
func (c *Config) AllExcludeDirs() []string {
	if len(c.ExtraExcludeDirs) == 0 {
		return c.ExcludeDirs
	}
	merged := make([]string, 0, len(c.ExcludeDirs)+len(c.ExtraExcludeDirs))
	merged = append(merged, c.ExcludeDirs...)
	merged = append(merged, c.ExtraExcludeDirs...)
	return merged
}

// HasExtension reports whether ext (lowercase, leading dot) is configured.
func (c *Config) HasExtension(ext string) bool {
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
