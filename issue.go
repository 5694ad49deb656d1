package cssom

// Issue represents a single finding in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "cssom"
	Text        string       `json:"Text"`        // "margin: wrong value count: expected 1 to 4 values, got 5"
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	LineRange   *LineRange   `json:"LineRange"`   // Optional range
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/static/app.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 3 (1-based, start of the property name)
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// Replacement provides an automated fix suggestion
type Replacement struct {
	NewText      string // "margin: 0 auto;"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// linterName is the FromLinter value of every issue
const linterName = "cssom"

// Issue message formats
const (
	IssueInvalidShorthand = "invalid %s value: %s"
	IssueCompactable      = "%s can be written as %q"
	IssueParseError       = "cannot parse stylesheet: %s"
)

// Issue categories used in CheckResult.IssuesByCategory
const (
	CategoryInvalid     = "invalid"
	CategoryCompactable = "compactable"
	CategoryParse       = "parse"
)
