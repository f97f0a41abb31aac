// Package frontmatter locates, parses, and rewrites the YAML metadata block
// at the top of a document.
package frontmatter

import "strings"

// Delimiter is the line that opens and closes a front-matter block.
const Delimiter = "---"

// Block is a located front-matter region.
type Block struct {
	// Lines holds the raw file lines with a sentinel empty line prepended,
	// so Lines[1] is line 1 of the file.
	Lines []string

	// Start is the 1-based line number of the opening delimiter (always 1).
	Start int

	// End is the 1-based line number of the closing delimiter.
	End int

	// EndOffset is the byte offset just past the closing delimiter line,
	// i.e. where the document body begins.
	EndOffset int
}

// Body returns the lines strictly between the two delimiters.
func (b *Block) Body() []string {
	if b.End <= b.Start+1 {
		return nil
	}
	return b.Lines[b.Start+1 : b.End]
}

// Line returns the raw content of the given 1-based line, or "" if out of range.
func (b *Block) Line(num int) string {
	if num < 1 || num >= len(b.Lines) {
		return ""
	}
	return b.Lines[num]
}

// Locate finds the front-matter block in content. Front matter is present
// iff line 1 starts with the delimiter and a line consisting of exactly the
// delimiter exists at line 2 or later. Line terminators are normalized; CRLF
// is accepted.
func Locate(content []byte) (*Block, bool) {
	if len(content) == 0 {
		return nil, false
	}

	lines, offsets := splitLines(content)
	if len(lines) == 0 || !strings.HasPrefix(lines[0], Delimiter) {
		return nil, false
	}

	// Scan forward from line 2 for the closing delimiter.
	for idx := 1; idx < len(lines); idx++ {
		if lines[idx] != Delimiter {
			continue
		}

		// Prepend the sentinel so indices are 1-based.
		indexed := make([]string, 0, len(lines)+1)
		indexed = append(indexed, "")
		indexed = append(indexed, lines...)

		return &Block{
			Lines:     indexed,
			Start:     1,
			End:       idx + 1,
			EndOffset: offsets[idx],
		}, true
	}

	return nil, false
}

// splitLines splits content on newlines, stripping terminators. For each
// line it also records the byte offset just past that line's terminator.
func splitLines(content []byte) ([]string, []int) {
	var lines []string
	var ends []int

	start := 0
	for idx := 0; idx < len(content); idx++ {
		if content[idx] != '\n' {
			continue
		}
		end := idx
		if end > start && content[end-1] == '\r' {
			end--
		}
		lines = append(lines, string(content[start:end]))
		ends = append(ends, idx+1)
		start = idx + 1
	}

	if start < len(content) {
		lines = append(lines, string(content[start:]))
		ends = append(ends, len(content))
	}

	return lines, ends
}
