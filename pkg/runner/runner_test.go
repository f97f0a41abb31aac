package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/lint"
	"github.com/yaklabco/gofmlint/pkg/lint/rules"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	return New(lint.NewPipeline(lint.NewEngine(registry)))
}

func TestRunAggregates(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}
	write("clean.md", "---\ntitle: Hello\n---\n")
	write("quoted.md", "---\ntitle: 'Hello'\n---\n")
	write("spaced.md", "---\ntitle:  Hello\n---\n")
	write("bare.md", "# No front matter\n")

	result, err := newTestRunner(t).Run(t.Context(), Options{
		WorkingDir: root,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stats.FilesDiscovered)
	assert.Equal(t, 4, result.Stats.FilesProcessed)
	assert.Equal(t, 0, result.Stats.FilesErrored)
	assert.Equal(t, 3, result.Stats.FilesWithIssues)

	// quoted.md: two quote errors. spaced.md: two warnings. bare.md: one
	// missing-block warning (not mandatory by default).
	assert.Equal(t, 2, result.Stats.ErrorCount)
	assert.Equal(t, 3, result.Stats.WarningCount)
	assert.Equal(t, 2, result.Stats.FixableErrors)
	assert.True(t, result.HasFailures())
	assert.True(t, result.HasIssues())

	// Outcomes follow discovery order.
	require.Len(t, result.Files, 4)
	assert.Contains(t, result.Files[0].Path, "bare.md")
	assert.Contains(t, result.Files[3].Path, "spaced.md")
}

func TestRunEmptyDirectory(t *testing.T) {
	t.Parallel()

	result, err := newTestRunner(t).Run(t.Context(), Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasFailures())
}

func TestRunSingleWorker(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.md"} {
		require.NoError(t, os.WriteFile(
			filepath.Join(root, name), []byte("---\ntitle: x\n---\n"), 0o644))
	}

	result, err := newTestRunner(t).Run(t.Context(), Options{
		WorkingDir: root,
		Jobs:       1,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.False(t, result.HasIssues())
}

func TestRunFixMode(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "post.md")
	require.NoError(t, os.WriteFile(path, []byte("---\ntitle: 'Hello'\n---\n"), 0o644))

	cfg := config.NewConfig()
	cfg.Fix = true

	result, err := newTestRunner(t).Run(t.Context(), Options{
		WorkingDir: root,
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesModified)

	fixed, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Hello\n---\n", string(fixed))
}

func TestRunProcessingFailure(t *testing.T) {
	t.Parallel()

	if os.Getuid() == 0 {
		t.Skip("running as root; permission checks are bypassed")
	}

	root := t.TempDir()
	good := filepath.Join(root, "good.md")
	require.NoError(t, os.WriteFile(good, []byte("---\ntitle: x\n---\n"), 0o644))

	doomed := filepath.Join(root, "doomed.md")
	require.NoError(t, os.WriteFile(doomed, []byte("---\ntitle: x\n---\n"), 0o000))

	result, err := newTestRunner(t).Run(t.Context(), Options{
		WorkingDir: root,
		Config:     config.NewConfig(),
	})

	// The failure propagates alongside the partial result.
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrPermissionDenied)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Errors)
	assert.True(t, result.HasFailures())
	assert.GreaterOrEqual(t, result.Stats.FilesErrored, 1)
}

func TestResultAccumulate(t *testing.T) {
	t.Parallel()

	result := &Result{}

	result.accumulate(FileOutcome{
		Path: "a.md",
		Result: &lint.PipelineResult{
			Path:    "a.md",
			Written: true,
		},
	})
	result.accumulate(FileOutcome{Path: "b.md", Error: os.ErrPermission})
	result.accumulate(FileOutcome{
		Path:   "c.md",
		Result: &lint.PipelineResult{Path: "c.md", Skipped: true},
	})

	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.Equal(t, 1, result.Stats.FilesSkipped)
	assert.Len(t, result.Files, 3)
	assert.True(t, result.HasFailures())
	assert.False(t, result.HasIssues())
}

func TestResultNilReceivers(t *testing.T) {
	t.Parallel()

	var result *Result
	assert.False(t, result.HasFailures())
	assert.False(t, result.HasIssues())
}
