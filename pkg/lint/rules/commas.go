package rules

import (
	"regexp"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
)

var trailingCommaLineRe = regexp.MustCompile(`,[ \t]*$`)

// TrailingCommasRule checks for lines ending with a comma.
type TrailingCommasRule struct {
	lint.BaseRule
}

// NewTrailingCommasRule creates a new trailing commas rule.
func NewTrailingCommasRule() *TrailingCommasRule {
	return &TrailingCommasRule{
		BaseRule: lint.NewBaseRule(
			"FM009",
			"no-trailing-commas",
			"Lines should not end with a comma",
			config.SeverityError,
			true,
		),
	}
}

// Apply reports lines ending with a comma, optionally followed by
// whitespace. The span covers the comma through the end of the line.
func (r *TrailingCommasRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	var diags []lint.Diagnostic

	ctx.EachBodyLine(func(row int, line string) {
		if lint.IsBlankLine(line) {
			return
		}
		loc := trailingCommaLineRe.FindStringIndex(line)
		if loc == nil {
			return
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:    r.ID(),
			Message:   "Trailing comma",
			Row:       row,
			Column:    loc[0] + 1,
			EndColumn: loc[1] + 1,
		})
	})

	return diags
}

// CommaFollowedByCharRule checks for commas not followed by whitespace.
type CommaFollowedByCharRule struct {
	lint.BaseRule
}

// NewCommaFollowedByCharRule creates a new comma-followed-by-char rule.
func NewCommaFollowedByCharRule() *CommaFollowedByCharRule {
	return &CommaFollowedByCharRule{
		BaseRule: lint.NewBaseRule(
			"FM012",
			"comma-followed-by-char",
			"Commas should be followed by a space",
			config.SeverityWarning,
			false,
		),
	}
}

// Apply reports each comma immediately followed by a non-whitespace
// character. The position is the comma itself.
func (r *CommaFollowedByCharRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	var diags []lint.Diagnostic

	ctx.EachBodyLine(func(row int, line string) {
		if lint.IsBlankLine(line) {
			return
		}
		for idx := 0; idx+1 < len(line); idx++ {
			if line[idx] != ',' {
				continue
			}
			next := line[idx+1]
			if next == ' ' || next == '\t' {
				continue
			}
			diags = append(diags, lint.Diagnostic{
				RuleID:    r.ID(),
				Message:   "Comma not followed by a space",
				Row:       row,
				Column:    idx + 1,
				EndColumn: idx + 2,
			})
		}
	})

	return diags
}
