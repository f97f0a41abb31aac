package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofmlint/pkg/config"
	"github.com/yaklabco/gofmlint/pkg/frontmatter"
	"github.com/yaklabco/gofmlint/pkg/lint"
)

// applyRule runs a single rule against a synthetic block built from the
// given body lines.
func applyRule(t *testing.T, rule lint.Rule, cfg *config.Config, body ...string) []lint.Diagnostic {
	t.Helper()

	content := "---\n"
	if len(body) > 0 {
		content += strings.Join(body, "\n") + "\n"
	}
	content += "---\n"

	block, ok := frontmatter.Locate([]byte(content))
	require.True(t, ok)

	if cfg == nil {
		cfg = config.NewConfig()
	}

	return rule.Apply(lint.NewRuleContext("test.md", block, nil, cfg))
}
