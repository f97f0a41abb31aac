package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitespaceBeforeColonRule(t *testing.T) {
	t.Parallel()

	rule := NewWhitespaceBeforeColonRule()

	tests := []struct {
		name      string
		body      []string
		wantDiags int
	}{
		{name: "clean key", body: []string{"title: Hello"}, wantDiags: 0},
		{name: "space before colon", body: []string{"title : Hello"}, wantDiags: 1},
		{name: "tab before colon", body: []string{"title\t: Hello"}, wantDiags: 1},
		{name: "two offending colons", body: []string{"a : b : c"}, wantDiags: 2},
		{name: "blank line skipped", body: []string{"title: Hello", ""}, wantDiags: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := applyRule(t, rule, nil, tt.body...)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestWhitespaceBeforeColonPosition(t *testing.T) {
	t.Parallel()

	diags := applyRule(t, NewWhitespaceBeforeColonRule(), nil, "title : Hello")
	require.Len(t, diags, 1)

	// The span covers the whitespace run, ending just before the colon.
	assert.Equal(t, 2, diags[0].Row)
	assert.Equal(t, 6, diags[0].Column)
	assert.Equal(t, 7, diags[0].EndColumn)
	assert.Equal(t, "FM002", diags[0].RuleID)
}

func TestEmptyLinesRule(t *testing.T) {
	t.Parallel()

	rule := NewEmptyLinesRule()

	tests := []struct {
		name      string
		body      []string
		wantDiags int
		wantRows  []int
	}{
		{name: "no blanks", body: []string{"title: Hello", "draft: true"}, wantDiags: 0},
		{name: "one blank", body: []string{"title: Hello", "", "draft: true"}, wantDiags: 1, wantRows: []int{3}},
		{name: "whitespace-only line", body: []string{"title: Hello", "   "}, wantDiags: 1, wantRows: []int{3}},
		{name: "consecutive blanks", body: []string{"", "", "title: Hello"}, wantDiags: 2, wantRows: []int{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := applyRule(t, rule, nil, tt.body...)
			require.Len(t, diags, tt.wantDiags)
			for idx, row := range tt.wantRows {
				assert.Equal(t, row, diags[idx].Row)
			}
		})
	}
}

func TestTrailingSpacesRule(t *testing.T) {
	t.Parallel()

	rule := NewTrailingSpacesRule()

	tests := []struct {
		name      string
		body      []string
		wantDiags int
	}{
		{name: "clean line", body: []string{"title: Hello"}, wantDiags: 0},
		{name: "trailing spaces", body: []string{"title: Hello  "}, wantDiags: 1},
		{name: "trailing tab", body: []string{"title: Hello\t"}, wantDiags: 1},
		{name: "blank line not reported here", body: []string{"   "}, wantDiags: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := applyRule(t, rule, nil, tt.body...)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestTrailingSpacesSpan(t *testing.T) {
	t.Parallel()

	line := "title: Hello   "
	diags := applyRule(t, NewTrailingSpacesRule(), nil, line)
	require.Len(t, diags, 1)

	// The span ends just past the last character and covers exactly the
	// whitespace run.
	assert.Equal(t, len(line)+1, diags[0].EndColumn)
	assert.Equal(t, diags[0].EndColumn-3, diags[0].Column)
}

func TestRepeatingWhitespaceRule(t *testing.T) {
	t.Parallel()

	rule := NewRepeatingWhitespaceRule()

	tests := []struct {
		name      string
		body      []string
		wantDiags int
	}{
		{name: "single spaces", body: []string{"title: Hello World"}, wantDiags: 0},
		{name: "double space in value", body: []string{"title: Hello  World"}, wantDiags: 1},
		{name: "leading indent not counted", body: []string{"nested:", "  child: value"}, wantDiags: 0},
		{name: "trailing run not counted", body: []string{"title: Hello  "}, wantDiags: 0},
		{name: "two separate runs", body: []string{"a  b  c: v"}, wantDiags: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := applyRule(t, rule, nil, tt.body...)
			assert.Len(t, diags, tt.wantDiags)
			for _, diag := range diags {
				assert.Equal(t, "FM010", diag.RuleID)
			}
		})
	}
}

func TestExtraSpaceAfterColonRule(t *testing.T) {
	t.Parallel()

	rule := NewExtraSpaceAfterColonRule()

	tests := []struct {
		name      string
		body      []string
		wantDiags int
	}{
		{name: "single space", body: []string{"title: Hello"}, wantDiags: 0},
		{name: "double space", body: []string{"title:  Hello"}, wantDiags: 1},
		{name: "no space", body: []string{"title:Hello"}, wantDiags: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := applyRule(t, rule, nil, tt.body...)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}
