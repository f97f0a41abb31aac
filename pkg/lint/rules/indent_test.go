package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndentationJumpRule(t *testing.T) {
	t.Parallel()

	rule := NewIndentationJumpRule()

	tests := []struct {
		name      string
		body      []string
		wantDiags int
	}{
		{
			name:      "flat mapping",
			body:      []string{"title: Hello", "draft: true"},
			wantDiags: 0,
		},
		{
			name:      "gradual nesting",
			body:      []string{"author:", "  name: Ada", "  links:", "    - home"},
			wantDiags: 0,
		},
		{
			name:      "jump of two",
			body:      []string{"author:", "  name: Ada"},
			wantDiags: 0,
		},
		{
			name:      "jump of three",
			body:      []string{"author:", "   name: Ada"},
			wantDiags: 1,
		},
		{
			name:      "first line over-indented",
			body:      []string{"   title: Hello"},
			wantDiags: 1,
		},
		{
			name:      "dedent never fires",
			body:      []string{"author:", "  name: Ada", "title: Hello"},
			wantDiags: 0,
		},
		{
			name:      "blank line keeps previous depth",
			body:      []string{"author:", "  name: Ada", "", "  email: a@b.c"},
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := applyRule(t, rule, nil, tt.body...)
			assert.Len(t, diags, tt.wantDiags)
		})
	}
}

func TestIndentationJumpDiagnostic(t *testing.T) {
	t.Parallel()

	diags := applyRule(t, NewIndentationJumpRule(), nil,
		"author:",
		"  name: Ada",
		"     email: a@b.c",
	)
	require.Len(t, diags, 1)

	diag := diags[0]
	assert.Equal(t, "Indentation jumps from 2 to 5", diag.Message)
	assert.Equal(t, 4, diag.Row)
	assert.Equal(t, 1, diag.Column)
	assert.Equal(t, 6, diag.EndColumn)
}
