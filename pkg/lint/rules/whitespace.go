package rules

import (
	"regexp"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
)

var (
	whitespaceBeforeColonRe = regexp.MustCompile(`([ \t]+):`)
	trailingWhitespaceRe    = regexp.MustCompile(`[ \t]+$`)
	extraSpaceAfterColonRe  = regexp.MustCompile(`:([ \t]{2,})`)
)

// WhitespaceBeforeColonRule checks for whitespace immediately preceding a colon.
type WhitespaceBeforeColonRule struct {
	lint.BaseRule
}

// NewWhitespaceBeforeColonRule creates a new whitespace-before-colon rule.
func NewWhitespaceBeforeColonRule() *WhitespaceBeforeColonRule {
	return &WhitespaceBeforeColonRule{
		BaseRule: lint.NewBaseRule(
			"FM002",
			"no-whitespace-before-colon",
			"Keys should not have whitespace before the colon",
			config.SeverityError,
			true,
		),
	}
}

// Apply reports each whitespace run that precedes a colon. The span covers
// the run and ends just before the colon.
func (r *WhitespaceBeforeColonRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	var diags []lint.Diagnostic

	ctx.EachBodyLine(func(row int, line string) {
		if lint.IsBlankLine(line) {
			return
		}
		for _, loc := range whitespaceBeforeColonRe.FindAllStringSubmatchIndex(line, -1) {
			diags = append(diags, lint.Diagnostic{
				RuleID:    r.ID(),
				Message:   "Whitespace before colon",
				Row:       row,
				Column:    loc[2] + 1,
				EndColumn: loc[3] + 1,
			})
		}
	})

	return diags
}

// EmptyLinesRule checks for empty or whitespace-only lines inside the block.
type EmptyLinesRule struct {
	lint.BaseRule
}

// NewEmptyLinesRule creates a new empty lines rule.
func NewEmptyLinesRule() *EmptyLinesRule {
	return &EmptyLinesRule{
		BaseRule: lint.NewBaseRule(
			"FM003",
			"no-empty-lines",
			"Front matter should not contain empty lines",
			config.SeverityError,
			true,
		),
	}
}

// Apply reports each blank body line. Blank lines trigger no other rule, so
// this is the only diagnostic such a line can produce.
func (r *EmptyLinesRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	var diags []lint.Diagnostic

	ctx.EachBodyLine(func(row int, line string) {
		if !lint.IsBlankLine(line) {
			return
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:    r.ID(),
			Message:   "Empty line in front matter",
			Row:       row,
			Column:    1,
			EndColumn: len(line) + 1,
		})
	})

	return diags
}

// TrailingSpacesRule checks for trailing whitespace on block lines.
type TrailingSpacesRule struct {
	lint.BaseRule
}

// NewTrailingSpacesRule creates a new trailing spaces rule.
func NewTrailingSpacesRule() *TrailingSpacesRule {
	return &TrailingSpacesRule{
		BaseRule: lint.NewBaseRule(
			"FM005",
			"no-trailing-spaces",
			"Lines should not have trailing whitespace",
			config.SeverityError,
			true,
		),
	}
}

// Apply reports the trailing whitespace run of each line that has one.
// The span ends at line length + 1.
func (r *TrailingSpacesRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	var diags []lint.Diagnostic

	ctx.EachBodyLine(func(row int, line string) {
		if lint.IsBlankLine(line) {
			return
		}
		loc := trailingWhitespaceRe.FindStringIndex(line)
		if loc == nil {
			return
		}
		diags = append(diags, lint.Diagnostic{
			RuleID:    r.ID(),
			Message:   "Trailing whitespace",
			Row:       row,
			Column:    loc[0] + 1,
			EndColumn: loc[1] + 1,
		})
	})

	return diags
}

// RepeatingWhitespaceRule checks for runs of two or more spaces between two
// non-space characters.
type RepeatingWhitespaceRule struct {
	lint.BaseRule
}

// NewRepeatingWhitespaceRule creates a new repeating whitespace rule.
func NewRepeatingWhitespaceRule() *RepeatingWhitespaceRule {
	return &RepeatingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"FM010",
			"repeating-whitespace",
			"Values should not contain repeated whitespace",
			config.SeverityWarning,
			false, // Warning-level pattern; still scanned in fix mode.
		),
	}
}

// Apply reports every interior run of two or more spaces. Runs are found by
// a manual scan so adjacent runs sharing a boundary character both count.
func (r *RepeatingWhitespaceRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	var diags []lint.Diagnostic

	ctx.EachBodyLine(func(row int, line string) {
		if lint.IsBlankLine(line) {
			return
		}
		for _, span := range interiorSpaceRuns(line) {
			diags = append(diags, lint.Diagnostic{
				RuleID:    r.ID(),
				Message:   "Repeating whitespace",
				Row:       row,
				Column:    span[0] + 1,
				EndColumn: span[1] + 1,
			})
		}
	})

	return diags
}

// interiorSpaceRuns returns the [start, end) byte spans of space runs of
// length >= 2 bounded by non-space characters on both sides.
func interiorSpaceRuns(line string) [][2]int {
	var runs [][2]int

	idx := 0
	for idx < len(line) {
		if line[idx] != ' ' {
			idx++
			continue
		}
		start := idx
		for idx < len(line) && line[idx] == ' ' {
			idx++
		}
		if idx-start >= 2 && start > 0 && idx < len(line) {
			runs = append(runs, [2]int{start, idx})
		}
	}

	return runs
}

// ExtraSpaceAfterColonRule checks for two or more spaces directly after a colon.
type ExtraSpaceAfterColonRule struct {
	lint.BaseRule
}

// NewExtraSpaceAfterColonRule creates a new extra-space-after-colon rule.
func NewExtraSpaceAfterColonRule() *ExtraSpaceAfterColonRule {
	return &ExtraSpaceAfterColonRule{
		BaseRule: lint.NewBaseRule(
			"FM011",
			"extra-space-after-colon",
			"Colons should be followed by a single space",
			config.SeverityWarning,
			false,
		),
	}
}

// Apply reports each whitespace run of two or more directly after a colon.
func (r *ExtraSpaceAfterColonRule) Apply(ctx *lint.RuleContext) []lint.Diagnostic {
	var diags []lint.Diagnostic

	ctx.EachBodyLine(func(row int, line string) {
		if lint.IsBlankLine(line) {
			return
		}
		for _, loc := range extraSpaceAfterColonRe.FindAllStringSubmatchIndex(line, -1) {
			diags = append(diags, lint.Diagnostic{
				RuleID:    r.ID(),
				Message:   "Extra space after colon",
				Row:       row,
				Column:    loc[2] + 1,
				EndColumn: loc[3] + 1,
			})
		}
	})

	return diags
}
