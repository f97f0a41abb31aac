package lint

import "github.com/yaklabco/gofmlint/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface
// methods. Use NewBaseRule to construct one.
type BaseRule struct {
	id       string          // Unique identifier (e.g., "FM005")
	name     string          // Human-readable name
	desc     string          // Detailed description
	severity config.Severity // Default severity
	rewrite  bool            // Whether the rewrite fixer resolves findings
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, severity config.Severity, rewrite bool) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		severity: severity,
		rewrite:  rewrite,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultSeverity returns the default severity for this rule.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// FixedByRewrite reports whether re-serialization resolves this rule's findings.
func (r *BaseRule) FixedByRewrite() bool {
	return r.rewrite
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no diagnostics.
func (r *BaseRule) Apply(_ *RuleContext) []Diagnostic {
	return nil
}
