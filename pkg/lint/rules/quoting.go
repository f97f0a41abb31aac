package rules

import (
	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
)

// charOccurrenceRule is the shared scan for rules that flag individual
// characters. Each occurrence is reported separately.
func charOccurrenceRule(
	ctx *lint.RuleContext,
	ruleID, message string,
	match func(byte) bool,
) []lint.Diagnostic {
	var diags []lint.Diagnostic

	ctx.EachBodyLine(func(row int, line string) {
		if lint.IsBlankLine(line) {
			return
		}
		for idx := 0; idx < len(line); idx++ {
			if !match(line[idx]) {
				continue
			}
			diags = append(diags, lint.Diagnostic{
				RuleID:    ruleID,
				Message:   message,
				Row:       row,
				Column:    idx + 1,
				EndColumn: idx + 2,
			})
		}
	})

	return diags
}

// QuotesRule checks for quote characters anywhere in the block.
type QuotesRule struct {
	lint.BaseRule
}

// NewQuotesRule creates a new quotes rule.
func NewQuotesRule() *QuotesRule {
	return &QuotesRule{
		BaseRule: lint.NewBaseRule(
			"FM004",
			"no-quotes",
			"Values should not be quoted",
			config.SeverityError,
			true,
		),
	}
}

// Apply reports every single or double quote character.
func (r *QuotesRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	return charOccurrenceRule(ctx, r.ID(), "Quote character", func(c byte) bool {
		return c == '\'' || c == '"'
	})
}

// BracketsRule checks for square brackets anywhere in the block.
type BracketsRule struct {
	lint.BaseRule
}

// NewBracketsRule creates a new brackets rule.
func NewBracketsRule() *BracketsRule {
	return &BracketsRule{
		BaseRule: lint.NewBaseRule(
			"FM006",
			"no-brackets",
			"Flow-style sequences are not allowed",
			config.SeverityError,
			true,
		),
	}
}

// Apply reports every square bracket character.
func (r *BracketsRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	return charOccurrenceRule(ctx, r.ID(), "Bracket character", func(c byte) bool {
		return c == '[' || c == ']'
	})
}

// CurlyBracesRule checks for curly braces anywhere in the block.
type CurlyBracesRule struct {
	lint.BaseRule
}

// NewCurlyBracesRule creates a new curly braces rule.
func NewCurlyBracesRule() *CurlyBracesRule {
	return &CurlyBracesRule{
		BaseRule: lint.NewBaseRule(
			"FM007",
			"no-curly-braces",
			"Flow-style mappings are not allowed",
			config.SeverityError,
			true,
		),
	}
}

// Apply reports every curly brace character.
func (r *CurlyBracesRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	return charOccurrenceRule(ctx, r.ID(), "Curly brace character", func(c byte) bool {
		return c == '{' || c == '}'
	})
}
