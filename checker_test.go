package cssom

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssom/internal/meta"
)

const checkSample = `.a {
  margin-top: 0;
  margin-right: auto;
  margin-bottom: 0;
  margin-left: auto;
}
.b {
  margin: 1px 2px 3px 4px 5px;
}
`

func TestCheckReader(t *testing.T) {
	result, err := CheckReader("styles.css", strings.NewReader(checkSample), CheckConfig{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 2, result.RulesChecked)
	assert.Equal(t, 5, result.Declarations)
	assert.Equal(t, 1, result.ShorthandsWritten)
	assert.Equal(t, 4, result.LonghandsWritten)
	assert.Equal(t, 1, result.CompactableGroups)
	assert.InDelta(t, 50.0, result.ShorthandRate, 0.1)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.ByCategory[meta.CategoryLayout])

	require.Len(t, result.Issues, 2)

	compact := result.Issues[0]
	assert.Equal(t, SeverityWarning, compact.Severity)
	assert.Equal(t, linterName, compact.FromLinter)
	assert.Equal(t, `margin-top, margin-right, margin-bottom, margin-left can be written as "margin: 0 auto"`, compact.Text)
	assert.Equal(t, IssuePos{Filename: "styles.css", Line: 2, Column: 3}, compact.Pos)
	require.NotNil(t, compact.LineRange)
	assert.Equal(t, LineRange{From: 2, To: 5}, *compact.LineRange)
	require.NotNil(t, compact.Replacement)
	assert.Equal(t, "margin: 0 auto;", compact.Replacement.NewText)
	assert.Equal(t, []string{"  margin-top: 0;"}, compact.SourceLines)

	invalid := result.Issues[1]
	assert.Equal(t, SeverityError, invalid.Severity)
	assert.True(t, strings.HasPrefix(invalid.Text, "invalid margin value: "), invalid.Text)
	assert.Equal(t, 8, invalid.Pos.Line)
	assert.Equal(t, 3, invalid.Pos.Column)

	assert.Len(t, result.IssuesByCategory[CategoryCompactable], 1)
	assert.Len(t, result.IssuesByCategory[CategoryInvalid], 1)

	require.Len(t, result.QuickWins, 1)
	assert.Equal(t, QuickWin{Shorthand: "margin", Occurrences: 1, Suggestion: "margin: 0 auto"}, result.QuickWins[0])
}

func TestCheckReaderNothingToFold(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "partial longhands",
			src:  ".a { margin-top: 0; margin-left: auto; }",
		},
		{
			name: "shorthand already written",
			src:  ".a { margin: 0; margin-top: 1px; }",
		},
		{
			name: "mixed priority",
			src:  ".a { padding-top: 0; padding-right: 0 !important; padding-bottom: 0; padding-left: 0; }",
		},
		{
			name: "important longhand outlives a later normal one",
			src:  ".a { margin-top: 1px !important; margin-top: 0; margin-right: 0; margin-bottom: 0; margin-left: 0; }",
		},
		{
			name: "unrelated properties",
			src:  ".a { color: red; display: block; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CheckReader("styles.css", strings.NewReader(tt.src), CheckConfig{})
			require.NoError(t, err)
			assert.Equal(t, 0, result.CompactableGroups)
			assert.Empty(t, result.Issues)
			assert.Empty(t, result.QuickWins)
		})
	}
}

func TestCheckReaderSingleLineGroup(t *testing.T) {
	src := ".a { overflow-x: hidden; overflow-y: auto; }"
	result, err := CheckReader("inline.css", strings.NewReader(src), CheckConfig{})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Nil(t, issue.LineRange)
	assert.Equal(t, 1, issue.Pos.Line)
	assert.Equal(t, 6, issue.Pos.Column)
	assert.Equal(t, "overflow: hidden auto;", issue.Replacement.NewText)
	assert.InDelta(t, 0.0, result.ShorthandRate, 0.1)
}

func TestCheck(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"app.css":        checkSample,
		"vendor.min.css": checkSample,
		"theme/ok.css":   ".c { margin: 0 auto; }\n",
	})

	result, err := Check(CheckConfig{Paths: []string{filepath.Join(tmpDir, "**/*.css")}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 1, result.Stats.FilesSkipped)
	assert.Equal(t, 3, result.RulesChecked)
	assert.Equal(t, 2, result.ShorthandsWritten)
	assert.Equal(t, 1, result.CompactableGroups)
	assert.Equal(t, 1, result.ErrorCount)
	for _, issue := range result.Issues {
		assert.Equal(t, filepath.Join(tmpDir, "app.css"), issue.Pos.Filename)
	}
}

func TestCheckAppliesLimits(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&sb, ".r%d { margin: 1px 2px 3px 4px 5px; }\n", i)
	}

	result, err := CheckReader("many.css", strings.NewReader(sb.String()), CheckConfig{MaxSameIssues: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, result.ErrorCount)
	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 3, result.TruncatedCount)
}

func TestSortByFrequency(t *testing.T) {
	freq := map[string]int{"margin": 3, "padding": 3, "flex": 1, "gap": 2}
	suggestions := map[string]string{
		"margin":  "margin: 0 auto",
		"padding": "padding: 1rem",
		"flex":    "flex: 1",
		"gap":     "gap: 4px",
	}

	wins := sortByFrequency(freq, suggestions)

	// Sorted by occurrences, ties by name
	require.Len(t, wins, 4)
	assert.Equal(t, "margin", wins[0].Shorthand)
	assert.Equal(t, "margin: 0 auto", wins[0].Suggestion)
	assert.Equal(t, "padding", wins[1].Shorthand)
	assert.Equal(t, "gap", wins[2].Shorthand)
	assert.Equal(t, 2, wins[2].Occurrences)
	assert.Equal(t, "flex", wins[3].Shorthand)
}

func TestSortByFrequencyKeepsTopTen(t *testing.T) {
	freq := make(map[string]int)
	for i := 0; i < 15; i++ {
		freq[fmt.Sprintf("p%02d", i)] = i + 1
	}

	wins := sortByFrequency(freq, nil)

	require.Len(t, wins, 10)
	assert.Equal(t, "p14", wins[0].Shorthand)
	assert.Equal(t, "p05", wins[9].Shorthand)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"},
		{Text: "b"}, {Text: "b"},
		{Text: "c"},
	}

	tests := []struct {
		name          string
		config        CheckConfig
		wantTexts     []string
		wantTruncated int
	}{
		{
			name:          "unlimited",
			config:        CheckConfig{},
			wantTexts:     []string{"a", "a", "a", "b", "b", "c"},
			wantTruncated: 0,
		},
		{
			name:          "max issues per linter",
			config:        CheckConfig{MaxIssuesPerLinter: 4},
			wantTexts:     []string{"a", "a", "a", "b"},
			wantTruncated: 2,
		},
		{
			name:          "max same issues",
			config:        CheckConfig{MaxSameIssues: 1},
			wantTexts:     []string{"a", "b", "c"},
			wantTruncated: 3,
		},
		{
			name:          "both limits",
			config:        CheckConfig{MaxIssuesPerLinter: 5, MaxSameIssues: 2},
			wantTexts:     []string{"a", "a", "b", "b"},
			wantTruncated: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := limitIssues(issues, tt.config)

			texts := make([]string, len(got))
			for i, issue := range got {
				texts[i] = issue.Text
			}
			assert.Equal(t, tt.wantTexts, texts)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "", pluralize(1))
	assert.Equal(t, "s", pluralize(0))
	assert.Equal(t, "s", pluralize(2))
}
