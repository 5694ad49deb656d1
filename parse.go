package cssom

import (
	"bytes"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// ParseDeclaration parses the body of a style attribute or rule, like
// "margin: 0 auto; color: red", into a Declaration. Invalid declarations
// are skipped and reported through Issues and Err. A later normal
// declaration does not override an earlier important one.
func ParseDeclaration(text string, cfg Config) *Declaration {
	d := NewDeclaration(cfg)
	input := parse.NewInputString(text)
	p := css.NewParser(input, true)
	lastError := -1

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == nil || errors.Is(err, io.EOF) || input.Offset() == lastError {
				return d
			}
			lastError = input.Offset()
			d.log.Debug("declaration parse error", zap.Error(err))
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			name := string(data)
			if err := d.setCascaded(name, valueText(p.Values())); err != nil {
				d.log.Debug("declaration skipped", zap.String("property", name), zap.Error(err))
			}
		}
	}
}

// valueText rebuilds the value text of a declaration. Whitespace runs
// collapse to one space; "!important" stays in the text.
func valueText(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken || t.TokenType == css.CommentToken {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// Rule is one block of declarations in a stylesheet: a style rule or an
// at-rule holding declarations, like @font-face.
type Rule struct {
	Prelude      string
	Line         int
	Declarations []RuleDeclaration
}

// RuleDeclaration is one declaration of a Rule as written.
type RuleDeclaration struct {
	Property string
	Value    string
	Line     int
	Column   int // 1-based, start of the property name
}

// Text formats the declaration the way it was read.
func (rd RuleDeclaration) Text() string {
	return rd.Property + ": " + rd.Value
}

// Stylesheet is a parsed CSS file.
type Stylesheet struct {
	Rules []Rule
	// Errors holds syntax errors the parser recovered from
	Errors []SyntaxError
	lines  []int
}

// SyntaxError is a recovered parse error.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
}

// ParseStylesheet parses CSS source into its declaration blocks. Rules
// nested in at-rules are returned flat, in source order.
func ParseStylesheet(src []byte) *Stylesheet {
	sheet := &Stylesheet{lines: lineStarts(src)}
	input := parse.NewInput(bytes.NewReader(src))
	p := css.NewParser(input, false)

	var stack []*Rule
	prev := 0
	lastError := -1

	for {
		gt, _, data := p.Next()
		offset := input.Offset()

		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == nil || errors.Is(err, io.EOF) || offset == lastError {
				for len(stack) > 0 {
					sheet.close(stack[len(stack)-1])
					stack = stack[:len(stack)-1]
				}
				return sheet
			}
			lastError = offset
			line, col := sheet.position(prev)
			sheet.Errors = append(sheet.Errors, SyntaxError{Message: err.Error(), Line: line, Column: col})

		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			start := skipSpace(src, prev)
			line, _ := sheet.position(start)
			stack = append(stack, &Rule{Prelude: prelude(data, p.Values()), Line: line})

		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			if len(stack) > 0 {
				sheet.close(stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if len(stack) == 0 {
				break
			}
			name := string(data)
			start := prev
			if i := indexFold(src[prev:min(offset, len(src))], name); i >= 0 {
				start = prev + i
			}
			line, col := sheet.position(start)
			top := stack[len(stack)-1]
			top.Declarations = append(top.Declarations, RuleDeclaration{
				Property: name,
				Value:    valueText(p.Values()),
				Line:     line,
				Column:   col,
			})
		}
		prev = offset
	}
}

// close keeps a finished rule when it holds declarations.
func (s *Stylesheet) close(r *Rule) {
	if len(r.Declarations) > 0 {
		s.Rules = append(s.Rules, *r)
	}
}

// position converts a byte offset to a 1-based line and column.
func (s *Stylesheet) position(offset int) (int, int) {
	i := sort.SearchInts(s.lines, offset+1) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, offset - s.lines[i] + 1
}

func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func prelude(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

func skipSpace(src []byte, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r' || src[i] == '\f') {
		i++
	}
	return i
}

func indexFold(haystack []byte, needle string) int {
	return bytes.Index(bytes.ToLower(haystack), []byte(strings.ToLower(needle)))
}
