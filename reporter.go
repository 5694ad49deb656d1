package cssom

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Reporter prints issues one location per line, in the
// "file:line:col: severity: message" form editors and CI annotate from.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config CheckConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config CheckConfig) bool {
	switch {
	case config.UseColors, os.Getenv("FORCE_COLOR") != "", os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	}
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func compareIssues(a, b Issue) int {
	if c := cmp.Compare(a.Pos.Filename, b.Pos.Filename); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Pos.Line, b.Pos.Line); c != 0 {
		return c
	}
	return cmp.Compare(a.Pos.Column, b.Pos.Column)
}

// PrintIssues prints the issues in source order. issues is not modified.
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := slices.Clone(issues)
	slices.SortStableFunc(sorted, compareIssues)
	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue writes the location line and, when source lines are on,
// the declaration with a caret under it. A foldable group gets the
// span it covers next to the caret and the shorthand that replaces it
// on the line below:
//
//	app.css:2:3: warning: margin-top, ... can be written as "margin: 0 auto" (cssom)
//		  margin-top: 0;
//		  ^ lines 2-5
//		  margin: 0 auto;
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linter := ""
	if r.printLinterName {
		linter = " (" + issue.FromLinter + ")"
	}
	fmt.Fprintf(r.w, "%s %s%s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		r.severityLabel(issue.Severity),
		issue.Text,
		RenderStyle(StyleGray, linter, r.useColors))

	if !r.printLines || len(issue.SourceLines) == 0 {
		return
	}
	for _, line := range issue.SourceLines {
		fmt.Fprintf(r.w, "\t%s\n", line)
	}

	pad := caretPadding(issue.SourceLines[0], issue.Pos.Column)
	caret := "^"
	if lr := issue.LineRange; lr != nil && lr.To > lr.From {
		caret += fmt.Sprintf(" lines %d-%d", lr.From, lr.To)
	}
	fmt.Fprintf(r.w, "\t%s%s\n", pad, RenderStyle(StyleYellow, caret, r.useColors))

	if rep := issue.Replacement; rep != nil && rep.NewText != "" {
		fmt.Fprintf(r.w, "\t%s%s\n", pad, RenderStyle(StyleGreen, rep.NewText, r.useColors))
	}
}

func (r *Reporter) severityLabel(severity string) string {
	switch severity {
	case SeverityError:
		return RenderStyle(StyleRed, "error:", r.useColors) + " "
	case SeverityWarning:
		return RenderStyle(StyleYellow, "warning:", r.useColors) + " "
	}
	return ""
}

// caretPadding returns the whitespace that puts a marker under column.
// Tabs in the prefix are kept so the marker lines up under tab-indented
// CSS.
func caretPadding(sourceLine string, column int) string {
	if column <= 1 {
		return ""
	}
	prefix := sourceLine[:min(column-1, len(sourceLine))]

	var pad strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
	}
	return pad.String()
}

// PrintSummary prints the issue totals by severity and category, and how
// many groups already come with their shorthand.
func (r *Reporter) PrintSummary(result CheckResult) {
	bySeverity := make(map[string]int)
	suggested := 0
	for _, issue := range result.Issues {
		bySeverity[issue.Severity]++
		if issue.Replacement != nil {
			suggested++
		}
	}

	var details []string
	if n := bySeverity[SeverityError]; n > 0 {
		details = append(details, pluralizeCount(n, "error", "errors"))
	}
	if n := bySeverity[SeverityWarning]; n > 0 {
		details = append(details, pluralizeCount(n, "warning", "warnings"))
	}
	if n := result.TruncatedCount; n > 0 {
		details = append(details, pluralizeCount(n, "issue", "issues")+" truncated")
	}

	head := pluralizeCount(len(result.Issues), "issue", "issues")
	if len(details) > 0 {
		head += " (" + strings.Join(details, ", ") + ")"
	}
	fmt.Fprintf(r.w, "\n%s:\n", head)

	categories := make([]string, 0, len(result.IssuesByCategory))
	for category := range result.IssuesByCategory {
		categories = append(categories, category)
	}
	slices.Sort(categories)
	for _, category := range categories {
		fmt.Fprintf(r.w, "* %s: %d\n", category, len(result.IssuesByCategory[category]))
	}

	if len(result.Issues) == 0 {
		return
	}
	fmt.Fprintln(r.w)
	if suggested > 0 {
		fmt.Fprintf(r.w, "%s with a suggested shorthand\n",
			RenderStyle(StyleGreen, pluralizeCount(suggested, "group", "groups"), r.useColors))
	}
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics and Quick Wins", r.useColors))
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
