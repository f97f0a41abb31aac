package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSnippet(t *testing.T) {
	t.Parallel()

	// Sentinel at index 0, delimiters at rows 1 and 4.
	lines := []string{"", "---", "title: 'Hi'", "draft: true", "---"}

	tests := []struct {
		name string
		row  int
		col  int
		want string
	}{
		{
			name: "middle row with caret",
			row:  2,
			col:  8,
			want: " 1 | ---\n 2 | title: 'Hi'\n   |        ^\n 3 | draft: true\n",
		},
		{
			name: "no caret when column is zero",
			row:  3,
			col:  0,
			want: " 2 | title: 'Hi'\n 3 | draft: true\n 4 | ---\n",
		},
		{
			name: "first row has no previous line",
			row:  1,
			col:  1,
			want: " 1 | ---\n   | ^\n 2 | title: 'Hi'\n",
		},
		{
			name: "last row has no next line",
			row:  4,
			col:  1,
			want: " 3 | draft: true\n 4 | ---\n   | ^\n",
		},
		{name: "row out of range", row: 9, col: 1, want: ""},
		{name: "row zero", row: 0, col: 1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, RenderSnippet(lines, tt.row, tt.col))
		})
	}
}
