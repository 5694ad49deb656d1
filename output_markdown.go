package cssom

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the check result as a shareable Markdown report
func WriteMarkdown(w io.Writer, result *CheckResult) error {
	bw := bufio.NewWriter(w)
	errors, warnings := countSeverities(result.Issues)

	fmt.Fprintln(bw, "# CSS Shorthand Report")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "## Executive Summary")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "| Metric | Value |")
	fmt.Fprintln(bw, "|--------|-------|")
	fmt.Fprintf(bw, "| **Status** | %s |\n", markdownStatus(result))
	fmt.Fprintf(bw, "| **Total Issues** | %d (%d errors, %d warnings) |\n", len(result.Issues), errors, warnings)
	fmt.Fprintf(bw, "| **Files Scanned** | %d |\n", result.FilesScanned)
	fmt.Fprintf(bw, "| **Shorthand Rate** | %.1f%% |\n", result.ShorthandRate)
	fmt.Fprintf(bw, "| **Compactable Groups** | %d |\n", result.CompactableGroups)

	if len(result.QuickWins) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "## Quick Wins")
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "| Shorthand | Occurrences | Example |")
		fmt.Fprintln(bw, "|-----------|-------------|---------|")
		for _, win := range result.QuickWins {
			fmt.Fprintf(bw, "| `%s` | %d | `%s` |\n",
				win.Shorthand, win.Occurrences, escapeMarkdownCell(win.Suggestion))
		}
	}

	if errors > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "## Errors")
		fmt.Fprintln(bw)
		for _, issue := range result.Issues {
			if issue.Severity != SeverityError {
				continue
			}
			fmt.Fprintf(bw, "- `%s:%d:%d` %s\n", GetRelativePath(issue.Pos.Filename), issue.Pos.Line, issue.Pos.Column, issue.Text)
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "## Detailed Statistics")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "- Rules checked: %d\n", result.RulesChecked)
	fmt.Fprintf(bw, "- Declarations: %d\n", result.Declarations)
	fmt.Fprintf(bw, "- Shorthands written: %d\n", result.ShorthandsWritten)
	fmt.Fprintf(bw, "- Longhands written: %d\n", result.LonghandsWritten)
	for _, cat := range sortedCategories(result.ByCategory) {
		fmt.Fprintf(bw, "- %s groups: %d\n", cat, result.ByCategory[cat])
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "---")
	fmt.Fprintln(bw, "*Generated by cssom check*")

	return bw.Flush()
}

// markdownStatus rates a result: no errors and at least 80% of groups
// written as shorthands is excellent
func markdownStatus(result *CheckResult) string {
	switch {
	case result.ErrorCount > 0 || (result.CompactableGroups > 0 && result.ShorthandRate < 50):
		return "Needs Attention"
	case result.CompactableGroups == 0 || result.ShorthandRate >= 80:
		return "Excellent"
	default:
		return "Good Progress"
	}
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
