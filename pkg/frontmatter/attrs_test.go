package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     []string
		wantKeys []string
	}{
		{
			name:     "scalar values",
			body:     []string{"title: Hello", "draft: true", "weight: 10"},
			wantKeys: []string{"title", "draft", "weight"},
		},
		{
			name:     "empty body",
			body:     nil,
			wantKeys: []string{},
		},
		{
			name:     "nested mapping",
			body:     []string{"author:", "  name: Ada", "  email: ada@example.com"},
			wantKeys: []string{"author"},
		},
		{
			name:     "sequence value",
			body:     []string{"tags:", "  - go", "  - lint"},
			wantKeys: []string{"tags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs, err := Parse(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, attrs.Keys())
			assert.Equal(t, len(tt.wantKeys), attrs.Len())
		})
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	t.Parallel()

	attrs, err := Parse([]string{"title: First", "draft: true", "title: Second"})
	require.NoError(t, err)

	// The key keeps its first position; the value comes from the last
	// occurrence.
	assert.Equal(t, []string{"title", "draft"}, attrs.Keys())

	value, ok := attrs.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Second", value)
}

func TestParseNonMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body []string
	}{
		{name: "scalar root", body: []string{"just a string"}},
		{name: "sequence root", body: []string{"- one", "- two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.body)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Contains(t, parseErr.Msg, "mapping")
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{"title: Hello", "broken: [unclosed"})
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Line)
}

func TestAttributesAccessors(t *testing.T) {
	t.Parallel()

	attrs, err := Parse([]string{"title: Hello", "weight: 10"})
	require.NoError(t, err)

	assert.True(t, attrs.Has("title"))
	assert.False(t, attrs.Has("missing"))

	value, ok := attrs.Get("weight")
	require.True(t, ok)
	assert.Equal(t, 10, value)

	_, ok = attrs.Get("missing")
	assert.False(t, ok)
}

func TestSerialize(t *testing.T) {
	t.Parallel()

	attrs, err := Parse([]string{"title: Hello", "draft: true"})
	require.NoError(t, err)

	out, err := attrs.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "title: Hello\ndraft: true\n", string(out))
}

func TestSerializeEmpty(t *testing.T) {
	t.Parallel()

	attrs, err := Parse(nil)
	require.NoError(t, err)

	out, err := attrs.Serialize()
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	withLine := &ParseError{Line: 3, Msg: "bad indent"}
	assert.Equal(t, "invalid front matter at line 3: bad indent", withLine.Error())

	withoutLine := &ParseError{Msg: "bad document"}
	assert.Equal(t, "invalid front matter: bad document", withoutLine.Error())
}
