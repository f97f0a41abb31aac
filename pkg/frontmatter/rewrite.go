package frontmatter

import (
	"bytes"
	"regexp"
)

// trailingCommaRe matches comma artifacts the serializer can leave at the
// end of a body line (flow-style collections collapsed to scalars).
var trailingCommaRe = regexp.MustCompile(`,[ \t]*$`)

// Rewrite returns content with the front-matter block replaced by the
// canonical serialization of attrs. Everything past the closing delimiter is
// copied byte-for-byte. Rewriting an already-canonical block is a no-op.
func Rewrite(content []byte, block *Block, attrs *Attributes) ([]byte, error) {
	body, err := attrs.Serialize()
	if err != nil {
		return nil, err
	}

	body = stripTrailingCommas(body)

	var out bytes.Buffer
	out.Grow(len(body) + len(content) - block.EndOffset + 2*len(Delimiter) + 2)
	out.WriteString(Delimiter)
	out.WriteByte('\n')
	out.Write(body)
	if len(body) > 0 && body[len(body)-1] != '\n' {
		out.WriteByte('\n')
	}
	out.WriteString(Delimiter)
	out.WriteByte('\n')
	out.Write(content[block.EndOffset:])

	return out.Bytes(), nil
}

// stripTrailingCommas removes trailing-comma artifacts from each body line.
func stripTrailingCommas(body []byte) []byte {
	lines := bytes.Split(body, []byte("\n"))
	for idx, line := range lines {
		lines[idx] = trailingCommaRe.ReplaceAll(line, nil)
	}
	return bytes.Join(lines, []byte("\n"))
}
