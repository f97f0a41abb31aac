package lint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
)

func newPipeline(t *testing.T) *lint.Pipeline {
	t.Helper()
	return lint.NewPipeline(newEngine(t))
}

func writeTestFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessFileClean(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "---\ntitle: Hello\n---\n# Body\n")

	result, err := newPipeline(t).ProcessFile(t.Context(), path, config.NewConfig())
	require.NoError(t, err)

	assert.False(t, result.HasIssues())
	assert.False(t, result.Modified)
	assert.False(t, result.Written)
}

func TestProcessFileNoFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mandatory    bool
		wantSeverity config.Severity
	}{
		{name: "mandatory", mandatory: true, wantSeverity: config.SeverityError},
		{name: "optional", mandatory: false, wantSeverity: config.SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTestFile(t, "# Just a heading\n")

			cfg := config.NewConfig()
			cfg.Mandatory = tt.mandatory

			result, err := newPipeline(t).ProcessFile(t.Context(), path, cfg)
			require.NoError(t, err)

			require.Len(t, result.Diagnostics, 1)
			diag := result.Diagnostics[0]
			assert.Equal(t, lint.NoFrontMatterID, diag.RuleID)
			assert.Equal(t, lint.NoFrontMatterName, diag.RuleName)
			assert.Equal(t, tt.wantSeverity, diag.Severity)
			assert.False(t, diag.HasPosition())
		})
	}
}

func TestProcessFileUnclosedBlock(t *testing.T) {
	t.Parallel()

	// An opening delimiter with no closing one is not a block at all.
	path := writeTestFile(t, "---\ntitle: Hello\n")

	result, err := newPipeline(t).ProcessFile(t.Context(), path, config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, lint.NoFrontMatterID, result.Diagnostics[0].RuleID)
}

func TestProcessFileInvalidYAML(t *testing.T) {
	t.Parallel()

	// A sequence root is rejected with the parser's line mark, which maps
	// to the block row just past the opening delimiter.
	path := writeTestFile(t, "---\n- one\n- two\n---\n")

	result, err := newPipeline(t).ProcessFile(t.Context(), path, config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	diag := result.Diagnostics[0]
	assert.Equal(t, lint.InvalidYAMLID, diag.RuleID)
	assert.Equal(t, lint.InvalidYAMLName, diag.RuleName)
	assert.Equal(t, config.SeverityError, diag.Severity)
	assert.Equal(t, 2, diag.Row)
	assert.NotEmpty(t, diag.Snippet)
	assert.Equal(t, 1, result.ErrorCount)
}

func TestProcessFileMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.md")

	_, err := newPipeline(t).ProcessFile(t.Context(), path, config.NewConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrFileNotFound)
}

func TestProcessFileFix(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "---\ntitle: 'Hello'\ntags: [go, lint]\n---\n# Body\n")

	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := newPipeline(t).ProcessFile(t.Context(), path, cfg)
	require.NoError(t, err)

	assert.True(t, result.Modified)
	assert.True(t, result.Written)
	assert.False(t, result.Skipped)

	fixed, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Hello\ntags:\n  - go\n  - lint\n---\n# Body\n", string(fixed))

	// A second pass finds nothing to change.
	again, err := newPipeline(t).ProcessFile(t.Context(), path, cfg)
	require.NoError(t, err)
	assert.False(t, again.Modified)
	assert.False(t, again.Written)
}

func TestProcessFileFixReportsResidualIssues(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "---\ntitle: 'Hello'\n---\n")

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.RequiredAttributes = []string{"date"}

	result, err := newPipeline(t).ProcessFile(t.Context(), path, cfg)
	require.NoError(t, err)

	// The rewrite removes the quotes, but no rewrite invents a missing key.
	assert.True(t, result.Written)
	require.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, "FM001", result.Diagnostics[0].RuleID)
}

func TestProcessFileFixCanonicalNoWrite(t *testing.T) {
	t.Parallel()

	content := "---\ntitle: Hello\n---\nbody\n"
	path := writeTestFile(t, content)

	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := newPipeline(t).ProcessFile(t.Context(), path, cfg)
	require.NoError(t, err)
	assert.False(t, result.Modified)
	assert.False(t, result.Written)

	unchanged, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(unchanged))
}
