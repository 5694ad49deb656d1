package cssom

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	QuickWins []JSONQuickWin `json:"quick_wins"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains shorthand usage statistics
type JSONStats struct {
	RulesChecked      int            `json:"rules_checked"`
	Declarations      int            `json:"declarations"`
	ShorthandsWritten int            `json:"shorthands_written"`
	LonghandsWritten  int            `json:"longhands_written"`
	CompactableGroups int            `json:"compactable_groups"`
	ShorthandRate     float64        `json:"shorthand_rate"`
	ByCategory        map[string]int `json:"by_category"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// JSONQuickWin represents a frequently missed shorthand
type JSONQuickWin struct {
	Shorthand   string `json:"shorthand"`
	Occurrences int    `json:"occurrences"`
	Suggestion  string `json:"suggestion"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult) JSONOutput {
	errors, warnings := countSeverities(result.Issues)

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		replacement := ""
		if issue.Replacement != nil {
			replacement = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Message:     issue.Text,
			Linter:      issue.FromLinter,
			Source:      source,
			Replacement: replacement,
		}
	}

	quickWins := make([]JSONQuickWin, len(result.QuickWins))
	for i, win := range result.QuickWins {
		quickWins[i] = JSONQuickWin{
			Shorthand:   win.Shorthand,
			Occurrences: win.Occurrences,
			Suggestion:  win.Suggestion,
		}
	}

	byCategory := make(map[string]int, len(result.ByCategory))
	for cat, count := range result.ByCategory {
		byCategory[string(cat)] = count
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			RulesChecked:      result.RulesChecked,
			Declarations:      result.Declarations,
			ShorthandsWritten: result.ShorthandsWritten,
			LonghandsWritten:  result.LonghandsWritten,
			CompactableGroups: result.CompactableGroups,
			ShorthandRate:     result.ShorthandRate,
			ByCategory:        byCategory,
		},
		Issues:    jsonIssues,
		QuickWins: quickWins,
	}
}

func countSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
