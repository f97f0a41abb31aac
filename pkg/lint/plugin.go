package lint

import (
	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/frontmatter"
)

// PluginIssue is one finding reported by an extra rule plugin. An issue with
// neither a row nor a pre-rendered snippet is treated as file-level and
// recorded at row 0.
type PluginIssue struct {
	// Severity classifies the issue as an error or a warning.
	Severity config.Severity

	// Message describes the issue. It also keys the per-rule aggregation
	// maps, playing the role a rule name plays for built-in rules.
	Message string

	// Row is the 1-based line within the block (0 for no location).
	Row int

	// Column is the 1-based column (0 for none).
	Column int

	// Snippet is an optional pre-rendered context snippet.
	Snippet string
}

// Plugin is a caller-supplied rule evaluated against the parsed attributes
// and the raw block lines. Implementations are trusted not to mutate their
// arguments; a panicking plugin is contained by the engine and recorded as
// a per-file rule error.
type Plugin interface {
	// Name identifies the plugin in diagnostics and error reports.
	Name() string

	// Evaluate inspects the attributes and body lines and returns any issues.
	Evaluate(attrs *frontmatter.Attributes, body []string) []PluginIssue
}

// PluginFunc adapts a function to the Plugin interface.
type PluginFunc struct {
	// PluginName identifies the plugin.
	PluginName string

	// Fn is invoked as Evaluate.
	Fn func(attrs *frontmatter.Attributes, body []string) []PluginIssue
}

// Name implements Plugin.
func (p PluginFunc) Name() string {
	return p.PluginName
}

// Evaluate implements Plugin.
func (p PluginFunc) Evaluate(attrs *frontmatter.Attributes, body []string) []PluginIssue {
	if p.Fn == nil {
		return nil
	}
	return p.Fn(attrs, body)
}
