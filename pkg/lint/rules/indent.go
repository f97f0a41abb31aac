package rules

import (
	"fmt"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
)

// maxIndentStep is the largest allowed increase in leading whitespace
// between a line and the previous non-blank line.
const maxIndentStep = 2

// IndentationJumpRule checks that indentation deepens gradually.
type IndentationJumpRule struct {
	lint.BaseRule
}

// NewIndentationJumpRule creates a new indentation jump rule.
func NewIndentationJumpRule() *IndentationJumpRule {
	return &IndentationJumpRule{
		BaseRule: lint.NewBaseRule(
			"FM008",
			"indentation-jump",
			"Indentation should not increase by more than two columns at once",
			config.SeverityError,
			true,
		),
	}
}

// Apply reports lines whose leading whitespace exceeds the previous
// non-blank line's by more than two columns. The span runs from the start
// of the line to the end of the excess indentation. The opening delimiter
// (indent 0) seeds the comparison for the first body line.
func (r *IndentationJumpRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	var diags []lint.Diagnostic

	prev := 0
	ctx.EachBodyLine(func(row int, line string) {
		if lint.IsBlankLine(line) {
			return
		}

		indent := lint.LeadingWhitespaceWidth(line)
		if indent > prev+maxIndentStep {
			diags = append(diags, lint.Diagnostic{
				RuleID:    r.ID(),
				Message:   fmt.Sprintf("Indentation jumps from %d to %d", prev, indent),
				Row:       row,
				Column:    1,
				EndColumn: indent + 1,
			})
		}
		prev = indent
	})

	return diags
}
