package cssom

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/cssom/internal/meta"
)

// CheckConfig holds stylesheet checking configuration
type CheckConfig struct {
	Paths   []string // Patterns to check (e.g., "web/static/**/*.css")
	Verbose bool

	// golangci-style configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (cssom) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)

	// SequenceShorthands enables cue, pause and rest
	SequenceShorthands bool
	Logger             *zap.Logger // nil disables logging
}

// CheckResult contains stylesheet analysis results
type CheckResult struct {
	// Statistics
	FilesScanned      int
	RulesChecked      int
	Declarations      int // Declarations as written
	ShorthandsWritten int // Declarations naming a shorthand
	LonghandsWritten  int // Declarations naming a longhand some shorthand covers
	CompactableGroups int // Longhand runs that fold into a shorthand
	ShorthandRate     float64
	ByCategory        map[meta.Category]int // Compactable groups per category

	// Issues in golangci-lint format
	Issues           []Issue            // All issues found
	IssuesByCategory map[string][]Issue // Grouped by type for stats
	ErrorCount       int                // Count of invalid shorthand values
	TruncatedCount   int                // Issues removed due to limits

	// Summary
	Warnings  []string
	QuickWins []QuickWin // Most frequently compactable shorthands
	Stats     ScanStats
}

// QuickWin represents a frequently missed shorthand
type QuickWin struct {
	Shorthand   string // "margin"
	Occurrences int    // 45
	Suggestion  string // "margin: 0 auto"
}

// checker accumulates results across files
type checker struct {
	config      CheckConfig
	log         *zap.Logger
	result      *CheckResult
	freq        map[string]int
	suggestions map[string]string
}

func newChecker(config CheckConfig) *checker {
	return &checker{
		config: config,
		log:    Config{Logger: config.Logger}.logger().Named("check"),
		result: &CheckResult{
			ByCategory:       make(map[meta.Category]int),
			IssuesByCategory: make(map[string][]Issue),
		},
		freq:        make(map[string]int),
		suggestions: make(map[string]string),
	}
}

// Check parses every stylesheet matching the configured patterns and
// reports invalid shorthands and longhands that fold into one.
func Check(config CheckConfig) (*CheckResult, error) {
	c := newChecker(config)

	// Step 1: Discover stylesheets
	files, stats, err := expandGlobPatternsWithStats(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to expand patterns: %w", err)
	}
	c.result.Stats = stats
	if config.Verbose && stats.FilesSkipped > 0 {
		c.log.Info("files skipped", zap.Int("scanned", stats.FilesScanned), zap.Int("skipped", stats.FilesSkipped))
	}

	// Step 2: Check each file
	for _, path := range files {
		file, err := readSourceFile(path)
		if err != nil {
			c.result.Warnings = append(c.result.Warnings, fmt.Sprintf("cannot read %s: %v", path, err))
			continue
		}
		c.checkFile(file)
	}

	// Steps 3 and 4: Statistics and limits
	return c.finish(), nil
}

// CheckReader checks one stylesheet read from r, reported under name.
func CheckReader(name string, r io.Reader, config CheckConfig) (*CheckResult, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	c := newChecker(config)
	c.checkFile(&sourceFile{Path: name, Src: src, Lines: strings.Split(string(src), "\n")})
	return c.finish(), nil
}

func (c *checker) finish() *CheckResult {
	result := c.result
	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			result.ErrorCount++
		}
	}
	if total := result.ShorthandsWritten + result.CompactableGroups; total > 0 {
		result.ShorthandRate = float64(result.ShorthandsWritten) / float64(total) * 100
	}
	result.QuickWins = sortByFrequency(c.freq, c.suggestions)

	if c.config.MaxIssuesPerLinter > 0 || c.config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, c.config)
	}
	return result
}

func (c *checker) checkFile(file *sourceFile) {
	c.log.Debug("checking file", zap.String("file", file.Path))
	c.result.FilesScanned++
	sheet := ParseStylesheet(file.Src)

	for _, syntaxErr := range sheet.Errors {
		c.result.addIssue(CategoryParse, Issue{
			FromLinter:  linterName,
			Text:        fmt.Sprintf(IssueParseError, syntaxErr.Message),
			Severity:    SeverityWarning,
			SourceLines: sourceLines(file, syntaxErr.Line),
			Pos:         IssuePos{Filename: file.Path, Line: syntaxErr.Line, Column: syntaxErr.Column},
		})
	}

	for _, rule := range sheet.Rules {
		c.result.RulesChecked++
		c.checkRule(file, rule)
	}
}

// checkRule replays the declarations of one rule into a Declaration and
// compares what was written with what it serializes to.
func (c *checker) checkRule(file *sourceFile, rule Rule) {
	result := c.result
	decl := NewDeclaration(Config{Logger: c.log, SequenceShorthands: c.config.SequenceShorthands})
	written := make(map[string]RuleDeclaration)

	for _, rd := range rule.Declarations {
		name := strings.ToLower(rd.Property)
		result.Declarations++
		switch {
		case meta.IsShorthand(name):
			result.ShorthandsWritten++
		case len(meta.Containing(name)) > 0:
			result.LonghandsWritten++
		}

		before := len(decl.Issues())
		err := decl.setCascaded(name, rd.Value)
		if err == nil {
			written[name] = rd
			continue
		}
		if !errors.Is(err, ErrInvalidValue) {
			continue
		}

		text := fmt.Sprintf(IssueInvalidShorthand, name, fmt.Sprintf("cannot parse %q", rd.Value))
		if issues := decl.Issues(); len(issues) > before {
			text = issues[len(issues)-1].Text
		}
		result.addIssue(CategoryInvalid, Issue{
			FromLinter:  linterName,
			Text:        text,
			Severity:    SeverityError,
			SourceLines: sourceLines(file, rd.Line),
			Pos:         IssuePos{Filename: file.Path, Line: rd.Line, Column: rd.Column},
		})
	}

	for _, out := range decl.declarations(false) {
		sh, ok := meta.ByName(out.Name)
		if !ok {
			continue
		}
		if _, ok := written[sh.String()]; ok {
			continue
		}

		// The longhands of the rule this shorthand replaces
		var covered []RuleDeclaration
		for _, longhand := range sh.Subproperties() {
			if rd, ok := written[longhand]; ok {
				covered = append(covered, rd)
			}
		}
		if len(covered) < 2 {
			continue
		}
		sort.Slice(covered, func(i, j int) bool {
			if covered[i].Line != covered[j].Line {
				return covered[i].Line < covered[j].Line
			}
			return covered[i].Column < covered[j].Column
		})

		names := make([]string, len(covered))
		for i, rd := range covered {
			names[i] = rd.Property
		}
		suggestion := strings.TrimSuffix(out.Text(false), ";")
		first := covered[0]

		result.CompactableGroups++
		result.ByCategory[sh.Category()]++
		c.freq[sh.String()]++
		if _, ok := c.suggestions[sh.String()]; !ok {
			c.suggestions[sh.String()] = suggestion
		}

		last := covered[len(covered)-1].Line
		var lineRange *LineRange
		if last != first.Line {
			lineRange = &LineRange{From: first.Line, To: last}
		}
		result.addIssue(CategoryCompactable, Issue{
			FromLinter:  linterName,
			Text:        fmt.Sprintf(IssueCompactable, strings.Join(names, ", "), suggestion),
			Severity:    SeverityWarning,
			SourceLines: sourceLines(file, first.Line),
			Pos:         IssuePos{Filename: file.Path, Line: first.Line, Column: first.Column},
			LineRange:   lineRange,
			Replacement: &Replacement{NewText: out.Text(false)},
		})
	}
}

func (r *CheckResult) addIssue(category string, issue Issue) {
	r.Issues = append(r.Issues, issue)
	r.IssuesByCategory[category] = append(r.IssuesByCategory[category], issue)
}

func sourceLines(file *sourceFile, line int) []string {
	if text := file.line(line); text != "" {
		return []string{text}
	}
	return nil
}

// sortByFrequency returns the ten most frequently compactable shorthands
func sortByFrequency(freq map[string]int, suggestions map[string]string) []QuickWin {
	var wins []QuickWin

	for name, count := range freq {
		wins = append(wins, QuickWin{
			Shorthand:   name,
			Occurrences: count,
			Suggestion:  suggestions[name],
		})
	}

	// Sort by occurrences (descending), then by name for stable output
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		return wins[i].Shorthand < wins[j].Shorthand
	})

	// Limit to top 10
	if len(wins) > 10 {
		wins = wins[:10]
	}

	return wins
}

// limitIssues applies max-issues-per-linter and max-same-issues limits
func limitIssues(issues []Issue, config CheckConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues keeps at most maxSame issues per message
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}

// pluralize returns "s" for counts other than one
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
