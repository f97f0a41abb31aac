package lint

import (
	"strings"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/frontmatter"
)

// RuleContext provides all context needed by a rule to scan one block.
// It is a short-lived parameter object created per file-lint operation.
type RuleContext struct {
	// FilePath is the path of the file being linted.
	FilePath string

	// Block is the located front-matter block.
	Block *frontmatter.Block

	// Attrs is the parsed mapping (nil only if parsing was skipped).
	Attrs *frontmatter.Attributes

	// Config is the resolved configuration.
	Config *config.Config
}

// NewRuleContext creates a RuleContext for the given block and configuration.
func NewRuleContext(
	path string,
	block *frontmatter.Block,
	attrs *frontmatter.Attributes,
	cfg *config.Config,
) *RuleContext {
	return &RuleContext{
		FilePath: path,
		Block:    block,
		Attrs:    attrs,
		Config:   cfg,
	}
}

// EachBodyLine calls fn for every body line in ascending order. The row is
// the 1-based line number within the block (the opening delimiter is row 1,
// so the first body line is row 2).
func (rc *RuleContext) EachBodyLine(fn func(row int, line string)) {
	for row := rc.Block.Start + 1; row < rc.Block.End; row++ {
		fn(row, rc.Block.Line(row))
	}
}

// IsBlankLine reports whether line is empty or whitespace-only. Blank lines
// are reported by the no-empty-lines rule alone; every other line rule
// skips them.
func IsBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// LeadingWhitespaceWidth returns the number of leading space/tab characters.
func LeadingWhitespaceWidth(line string) int {
	for idx := 0; idx < len(line); idx++ {
		if line[idx] != ' ' && line[idx] != '\t' {
			return idx
		}
	}
	return len(line)
}
