package cssom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssom/internal/meta"
)

func TestCaretPadding(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  margin-top: 0;",
			column:     3,
			want:       "  ",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t.a { padding: 0; }",
			column:     8,
			want:       "\t\t     ", // 2 tabs + 5 spaces
		},
		{
			name:       "start of line",
			sourceLine: "color: red;",
			column:     1,
			want:       "",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, caretPadding(tt.sourceLine, tt.column))
		})
	}
}

func TestPrintIssues(t *testing.T) {
	issues := []Issue{
		{FromLinter: linterName, Text: "second", Pos: IssuePos{Filename: "b.css", Line: 1, Column: 1}},
		{
			FromLinter:  linterName,
			Text:        `margin-top, margin-right, margin-bottom, margin-left can be written as "margin: 0 auto"`,
			Severity:    SeverityWarning,
			SourceLines: []string{"  margin-top: 0;"},
			Pos:         IssuePos{Filename: "a.css", Line: 2, Column: 3},
			LineRange:   &LineRange{From: 2, To: 5},
			Replacement: &Replacement{NewText: "margin: 0 auto;"},
		},
		{
			FromLinter:  linterName,
			Text:        "invalid margin value: wrong value count",
			Severity:    SeverityError,
			SourceLines: []string{"\tmargin: 1px 2px 3px 4px 5px;"},
			Pos:         IssuePos{Filename: "a.css", Line: 8, Column: 2},
		},
	}

	tests := []struct {
		name     string
		reporter Reporter
		want     string
	}{
		{
			name:     "with source lines",
			reporter: Reporter{printLines: true, printLinterName: true},
			want: "a.css:2:3: warning: margin-top, margin-right, margin-bottom, margin-left can be written as \"margin: 0 auto\" (cssom)\n" +
				"\t  margin-top: 0;\n" +
				"\t  ^ lines 2-5\n" +
				"\t  margin: 0 auto;\n" +
				"a.css:8:2: error: invalid margin value: wrong value count (cssom)\n" +
				"\t\tmargin: 1px 2px 3px 4px 5px;\n" +
				"\t\t^\n" +
				"b.css:1:1: second (cssom)\n",
		},
		{
			name:     "locations only",
			reporter: Reporter{},
			want: "a.css:2:3: warning: margin-top, margin-right, margin-bottom, margin-left can be written as \"margin: 0 auto\"\n" +
				"a.css:8:2: error: invalid margin value: wrong value count\n" +
				"b.css:1:1: second\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := tt.reporter
			reporter.w = &buf
			reporter.PrintIssues(issues)
			assert.Equal(t, tt.want, buf.String())
		})
	}

	// The caller's order is left alone
	assert.Equal(t, "b.css", issues[0].Pos.Filename)
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result CheckResult
		want   string
	}{
		{
			name:   "no issues",
			result: CheckResult{},
			want:   "\n0 issues:\n",
		},
		{
			name: "errors and warnings with truncation",
			result: CheckResult{
				Issues:         []Issue{{Severity: SeverityError}, {Severity: SeverityWarning, Replacement: &Replacement{NewText: "gap: 0;"}}},
				TruncatedCount: 3,
				IssuesByCategory: map[string][]Issue{
					CategoryInvalid:     {{}},
					CategoryCompactable: {{}, {}, {}, {}},
				},
			},
			want: "\n2 issues (1 error, 1 warning, 3 issues truncated):\n" +
				"* compactable: 4\n" +
				"* invalid: 1\n" +
				"\n1 group with a suggested shorthand\n" +
				"Hint: Run with --output-format full to see statistics and Quick Wins\n",
		},
		{
			name: "errors only",
			result: CheckResult{
				Issues:           []Issue{{Severity: SeverityError}, {Severity: SeverityError}},
				IssuesByCategory: map[string][]Issue{CategoryInvalid: {{}, {}}},
			},
			want: "\n2 issues (2 errors):\n" +
				"* invalid: 2\n" +
				"\nHint: Run with --output-format full to see statistics and Quick Wins\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := &Reporter{w: &buf}
			reporter.PrintSummary(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestVerboseReporter(t *testing.T) {
	result := CheckResult{
		FilesScanned:      2,
		CompactableGroups: 3,
		ShorthandRate:     50,
		ByCategory:        map[meta.Category]int{meta.CategoryTypography: 1, meta.CategoryLayout: 2},
		QuickWins:         []QuickWin{{Shorthand: "margin", Occurrences: 2, Suggestion: "margin: 0 auto"}},
		Warnings:          []string{"cannot read missing.css"},
	}

	var buf bytes.Buffer
	printVerbose(NewVerboseReporter(&buf, false), &result)
	out := buf.String()

	assert.Contains(t, out, "Files Scanned:           2\n")
	assert.Contains(t, out, "Compactable Groups:      3\n")
	assert.Contains(t, out, "[██████████░░░░░░░░░░] 50.0%\n")
	assert.Contains(t, out, "Layout:      2 groups\nTypography:  1 group\n")
	assert.Contains(t, out, "1. margin - 2 occurrences → e.g. margin: 0 auto\n")
	assert.Contains(t, out, "• cannot read missing.css\n")
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "7 errors", pluralizeCount(7, "error", "errors"))
}
