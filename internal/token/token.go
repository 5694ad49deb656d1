// Package token holds the lexical units a shorthand setter walks over.
//
// Tokens are produced from CSS value text by Lex, which adapts the
// tdewolff CSS lexer: whitespace and comments are dropped, function,
// bracket and parenthesis blocks are nested into their Args, and numeric
// tokens are classified (integer, real, percentage, dimension).
package token

import (
	"strings"
)

// Kind tags a Token.
type Kind int

// Token kinds
const (
	Ident Kind = iota
	String
	Integer
	Real
	Percentage
	Dimension
	Function
	VendorFunction
	Comma
	Slash
	CSSWide
	Hash
	URL
	Bracket
	Paren
	Delim
)

var kindNames = [...]string{
	Ident:          "ident",
	String:         "string",
	Integer:        "integer",
	Real:           "real",
	Percentage:     "percentage",
	Dimension:      "dimension",
	Function:       "function",
	VendorFunction: "vendor-function",
	Comma:          "comma",
	Slash:          "slash",
	CSSWide:        "css-wide",
	Hash:           "hash",
	URL:            "url",
	Bracket:        "bracket",
	Paren:          "paren",
	Delim:          "delim",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is one lexical unit of a property value.
type Token struct {
	Kind Kind
	// Text is the token as written. Functions keep their name only
	// (without the parenthesis), strings keep their quotes, numeric tokens
	// keep their unit.
	Text string
	Num  float64
	// Unit is the lower-cased unit of a dimension, "%" for percentages.
	Unit string
	// Args holds the content of function, bracket and parenthesis blocks.
	Args []Token
}

// CSS-wide keywords, valid for every property.
var cssWide = map[string]bool{
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
	"revert-layer": true,
}

// IsCSSWideKeyword reports whether name is a CSS-wide keyword.
func IsCSSWideKeyword(name string) bool {
	return cssWide[strings.ToLower(name)]
}

// NewIdent returns an identifier token, or a CSS-wide token for the
// CSS-wide keywords.
func NewIdent(name string) Token {
	if IsCSSWideKeyword(name) {
		return Token{Kind: CSSWide, Text: name}
	}
	return Token{Kind: Ident, Text: name}
}

// Lower returns the lower-cased text. Identifiers are matched
// case-insensitively.
func (t Token) Lower() string {
	return strings.ToLower(t.Text)
}

// IsIdent reports whether t is an identifier equal to one of names.
func (t Token) IsIdent(names ...string) bool {
	if t.Kind != Ident {
		return false
	}
	if len(names) == 0 {
		return true
	}
	lower := t.Lower()
	for _, name := range names {
		if lower == name {
			return true
		}
	}
	return false
}

// IsNumber reports whether t is an integer or real number.
func (t Token) IsNumber() bool {
	return t.Kind == Integer || t.Kind == Real
}

// IsZero reports whether t is a unitless zero.
func (t Token) IsZero() bool {
	return t.IsNumber() && t.Num == 0
}

// IsNonNegative reports whether a numeric token is zero or positive.
func (t Token) IsNonNegative() bool {
	return t.Num >= 0
}

// IsFunction reports whether t is a function named one of names.
func (t Token) IsFunction(names ...string) bool {
	if t.Kind != Function {
		return false
	}
	if len(names) == 0 {
		return true
	}
	lower := t.Lower()
	for _, name := range names {
		if lower == name {
			return true
		}
	}
	return false
}

// IsMath reports whether t is a math function whose result type is only
// known at computed-value time.
func (t Token) IsMath() bool {
	return t.IsFunction("calc", "min", "max", "clamp", "round", "mod", "rem", "abs", "sign")
}

var lengthUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "ex": true, "rex": true, "ch": true, "rch": true,
	"cap": true, "rcap": true, "ic": true, "ric": true, "lh": true, "rlh": true,
	"cm": true, "mm": true, "q": true, "in": true, "pt": true, "pc": true,
	"vw": true, "vh": true, "vi": true, "vb": true, "vmin": true, "vmax": true,
	"svw": true, "svh": true, "lvw": true, "lvh": true, "dvw": true, "dvh": true,
	"cqw": true, "cqh": true, "cqi": true, "cqb": true, "cqmin": true, "cqmax": true,
}

// IsLength reports whether t is a length, a unitless zero or a math
// function.
func (t Token) IsLength() bool {
	switch {
	case t.Kind == Dimension:
		return lengthUnits[t.Unit]
	case t.IsZero():
		return true
	}
	return t.IsMath()
}

// IsLengthPercentage reports whether t is a length or a percentage.
func (t Token) IsLengthPercentage() bool {
	return t.Kind == Percentage || t.IsLength()
}

// IsTime reports whether t is a time value.
func (t Token) IsTime() bool {
	if t.Kind == Dimension {
		return t.Unit == "s" || t.Unit == "ms"
	}
	return t.IsMath()
}

// IsFlex reports whether t is a flexible length (fr).
func (t Token) IsFlex() bool {
	return t.Kind == Dimension && t.Unit == "fr"
}

// IsEscape reports whether t forces the whole shorthand to be kept as an
// opaque value: a vendor-prefixed function or a variable reference.
func (t Token) IsEscape() bool {
	if t.Kind == VendorFunction || t.IsFunction("var", "env", "attr") {
		return true
	}
	return ContainsEscape(t.Args)
}

// ContainsEscape reports whether any token of the run is an escape.
func ContainsEscape(toks []Token) bool {
	for _, t := range toks {
		if t.IsEscape() {
			return true
		}
	}
	return false
}

// Equal compares two tokens structurally. Identifiers compare
// case-insensitively.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind || len(t.Args) != len(o.Args) {
		return false
	}
	switch t.Kind {
	case Ident, CSSWide, Function, VendorFunction:
		if !strings.EqualFold(t.Text, o.Text) {
			return false
		}
	case Integer, Real, Percentage:
		if t.Num != o.Num {
			return false
		}
	case Dimension:
		if t.Num != o.Num || t.Unit != o.Unit {
			return false
		}
	default:
		if t.Text != o.Text {
			return false
		}
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// EqualRuns compares two token runs.
func EqualRuns(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (t Token) String() string {
	return Serialize([]Token{t}, false)
}

// Split cuts a run at every top-level token of the given kind. A run
// without separators yields one chunk; a trailing separator yields an
// empty last chunk.
func Split(toks []Token, sep Kind) [][]Token {
	chunks := [][]Token{{}}
	for _, t := range toks {
		if t.Kind == sep {
			chunks = append(chunks, []Token{})
			continue
		}
		chunks[len(chunks)-1] = append(chunks[len(chunks)-1], t)
	}
	return chunks
}

// Count returns the number of top-level tokens of the given kind.
func Count(toks []Token, kind Kind) int {
	n := 0
	for _, t := range toks {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
