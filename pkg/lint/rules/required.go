package rules

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
)

// topLevelKeyRe matches a top-level mapping key line (no leading whitespace).
var topLevelKeyRe = regexp.MustCompile(`^([^\s:#][^:]*):`)

// RequiredAttributesRule checks that every configured required attribute
// appears as a top-level key in the block.
type RequiredAttributesRule struct {
	lint.BaseRule
}

// NewRequiredAttributesRule creates a new required attributes rule.
func NewRequiredAttributesRule() *RequiredAttributesRule {
	return &RequiredAttributesRule{
		BaseRule: lint.NewBaseRule(
			"FM001",
			"missing-required-attribute",
			"All required attributes must be present as top-level keys",
			config.SeverityError,
			false, // Rewriting cannot invent missing keys.
		),
	}
}

// Apply records one violation per required key never seen as a top-level
// `key:` line. This is a block-wide absence check, so the diagnostics carry
// no position.
func (r *RequiredAttributesRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	if ctx.Config == nil || len(ctx.Config.RequiredAttributes) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	ctx.EachBodyLine(func(_ int, line string) {
		if m := topLevelKeyRe.FindStringSubmatch(line); m != nil {
			seen[m[1]] = true
		}
	})

	var diags []lint.Diagnostic
	for _, key := range ctx.Config.RequiredAttributes {
		if seen[key] {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:  r.ID(),
			Message: fmt.Sprintf("Required attribute %q is missing", key),
		})
	}

	return diags
}
