package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError describes a rejected front-matter body with the parser's own
// position mark when one was recoverable.
type ParseError struct {
	// Line is the 1-based line within the block body, or 0 if unknown.
	Line int

	// Msg is the parser's message.
	Msg string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid front matter at line %d: %s", e.Line, e.Msg)
	}
	return "invalid front matter: " + e.Msg
}

// yamlLineRe extracts the line number yaml.v3 embeds in syntax errors.
var yamlLineRe = regexp.MustCompile(`line (\d+):\s*(.*)`)

// Attributes is the key/value mapping parsed from a block body. Key order is
// preserved for deterministic re-serialization; duplicate keys collapse to a
// single entry holding the last occurrence's value.
type Attributes struct {
	node *yaml.Node // mapping node
}

// Parse decodes the block body lines into an Attributes mapping.
func Parse(body []string) (*Attributes, error) {
	src := strings.Join(body, "\n")

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, parseError(err)
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return nil, &ParseError{Line: root.Line, Msg: "front matter must be a mapping"}
		}
		mapping = root
	}

	dedupeKeys(mapping)

	return &Attributes{node: mapping}, nil
}

// Len returns the number of keys.
func (a *Attributes) Len() int {
	return len(a.node.Content) / 2
}

// Keys returns the top-level keys in insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, 0, a.Len())
	for idx := 0; idx < len(a.node.Content); idx += 2 {
		keys = append(keys, a.node.Content[idx].Value)
	}
	return keys
}

// Has reports whether the mapping contains key.
func (a *Attributes) Has(key string) bool {
	for idx := 0; idx < len(a.node.Content); idx += 2 {
		if a.node.Content[idx].Value == key {
			return true
		}
	}
	return false
}

// Get returns the decoded value for key.
func (a *Attributes) Get(key string) (any, bool) {
	for idx := 0; idx < len(a.node.Content); idx += 2 {
		if a.node.Content[idx].Value != key {
			continue
		}
		var value any
		if err := a.node.Content[idx+1].Decode(&value); err != nil {
			return nil, false
		}
		return value, true
	}
	return nil, false
}

// Serialize encodes the mapping back to YAML body lines (2-space indent).
// Scalar quoting and flow styles are discarded so the output is canonical:
// plain scalars, block collections, quotes only where YAML demands them.
func (a *Attributes) Serialize() ([]byte, error) {
	if a.Len() == 0 {
		return nil, nil
	}

	clearStyles(a.node)

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(a.node); err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// clearStyles resets styles recursively so the encoder picks plain scalars
// and block collections.
func clearStyles(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyles(child)
	}
}

// dedupeKeys collapses duplicate mapping keys in place: the key keeps its
// first position, the value comes from the last occurrence.
func dedupeKeys(mapping *yaml.Node) {
	seen := make(map[string]int)
	content := mapping.Content[:0]

	for idx := 0; idx < len(mapping.Content); idx += 2 {
		key := mapping.Content[idx]
		value := mapping.Content[idx+1]

		if at, ok := seen[key.Value]; ok {
			content[at+1] = value
			continue
		}
		seen[key.Value] = len(content)
		content = append(content, key, value)
	}

	mapping.Content = content
}

// parseError converts a yaml.v3 error into a ParseError, recovering the
// line mark from the message when present.
func parseError(err error) error {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		return parseError(errors.New(typeErr.Errors[0]))
	}

	msg := strings.TrimPrefix(err.Error(), "yaml: ")
	if m := yamlLineRe.FindStringSubmatch(msg); m != nil {
		line, convErr := strconv.Atoi(m[1])
		if convErr == nil {
			return &ParseError{Line: line, Msg: m[2]}
		}
	}
	return &ParseError{Msg: msg}
}
