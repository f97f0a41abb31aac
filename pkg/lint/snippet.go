package lint

import (
	"fmt"
	"strings"
)

// RenderSnippet renders a three-line context window around the given block
// row: the previous line, the line itself with a caret marking col, and the
// next line. The lines slice is the block's 1-indexed line array (sentinel
// at index 0). A col of 0 omits the caret.
func RenderSnippet(lines []string, row, col int) string {
	if row < 1 || row >= len(lines) {
		return ""
	}

	width := len(fmt.Sprintf("%d", min(row+1, len(lines)-1)))

	var b strings.Builder

	if row > 1 {
		fmt.Fprintf(&b, " %*d | %s\n", width, row-1, lines[row-1])
	}
	fmt.Fprintf(&b, " %*d | %s\n", width, row, lines[row])
	if col > 0 {
		fmt.Fprintf(&b, " %s | %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", col-1))
	}
	if row+1 < len(lines) {
		fmt.Fprintf(&b, " %*d | %s\n", width, row+1, lines[row+1])
	}

	return b.String()
}
