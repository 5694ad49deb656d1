package cssom

import (
	"fmt"
	"io"
	"sort"

	"github.com/yacobolo/cssom/internal/meta"
)

// VerboseReporter handles detailed statistics and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed check statistics
func (r *VerboseReporter) PrintStatistics(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Shorthand Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Scanned:           %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Rules Checked:           %d\n", result.RulesChecked)
	fmt.Fprintf(r.w, "Declarations:            %d\n", result.Declarations)
	fmt.Fprintf(r.w, "Shorthands Written:      %d\n", result.ShorthandsWritten)
	fmt.Fprintf(r.w, "Longhands Written:       %d\n", result.LonghandsWritten)
	fmt.Fprintf(r.w, "Compactable Groups:      %d\n", result.CompactableGroups)
	fmt.Fprintf(r.w, "Invalid Shorthands:      %d\n", result.ErrorCount)
}

// PrintShorthandProgress shows the share of groups already written as
// shorthands
func (r *VerboseReporter) PrintShorthandProgress(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Shorthand Usage", r.useColors))
	fmt.Fprintln(r.w, "-------------------")
	printProgressBar(r.w, result.ShorthandRate)
}

// PrintCategories breaks compactable groups down by category
func (r *VerboseReporter) PrintCategories(result CheckResult) {
	if len(result.ByCategory) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Compactable by Category", r.useColors))
	fmt.Fprintln(r.w, "---------------------------")

	for _, cat := range sortedCategories(result.ByCategory) {
		count := result.ByCategory[cat]
		fmt.Fprintf(r.w, "%-12s %d group%s\n", string(cat)+":", count, pluralize(count))
	}
}

// PrintQuickWins shows the shorthands most often left as longhands
func (r *VerboseReporter) PrintQuickWins(result CheckResult) {
	if len(result.QuickWins) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	for i, win := range result.QuickWins {
		if i >= 10 {
			break
		}
		fmt.Fprintf(r.w, "%d. %s - %d occurrence%s → e.g. %s\n",
			i+1, win.Shorthand, win.Occurrences, pluralize(win.Occurrences), win.Suggestion)
	}
}

// PrintWarnings shows checker warnings
func (r *VerboseReporter) PrintWarnings(result CheckResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

func sortedCategories(counts map[meta.Category]int) []meta.Category {
	categories := make([]meta.Category, 0, len(counts))
	for cat := range counts {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}

func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
