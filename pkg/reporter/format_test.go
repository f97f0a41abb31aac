package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "text", input: "text", want: FormatText},
		{name: "json", input: "json", want: FormatJSON},
		{name: "summary", input: "summary", want: FormatSummary},
		{name: "empty defaults to text", input: "", want: FormatText},
		{name: "unknown", input: "xml", wantErr: true},
		{name: "case sensitive", input: "JSON", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, FormatText.IsValid())
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatSummary.IsValid())
	assert.False(t, Format("sarif").IsValid())
	assert.False(t, Format("").IsValid())
}

func TestNewReporter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   Format
		wantType any
	}{
		{name: "text", format: FormatText, wantType: &TextReporter{}},
		{name: "json", format: FormatJSON, wantType: &JSONReporter{}},
		{name: "summary", format: FormatSummary, wantType: &SummaryReporter{}},
		{name: "empty defaults to text", format: "", wantType: &TextReporter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := DefaultOptions()
			opts.Format = tt.format

			r, err := New(opts)
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, r)
		})
	}
}

func TestNewReporterInvalidFormat(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Format = "sarif"

	_, err := New(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
