package token

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Lexing errors
var (
	ErrUnbalanced = errors.New("unbalanced block")
	ErrBadToken   = errors.New("unexpected token")
	ErrEmpty      = errors.New("empty value")
)

// lexState accumulates tokens while blocks are open.
type lexState struct {
	root  []Token
	stack []Token // open function, bracket and parenthesis blocks
}

func (s *lexState) add(t Token) {
	if n := len(s.stack); n > 0 {
		s.stack[n-1].Args = append(s.stack[n-1].Args, t)
		return
	}
	s.root = append(s.root, t)
}

func (s *lexState) push(t Token) {
	s.stack = append(s.stack, t)
}

// pop closes the innermost block if it is one of kinds.
func (s *lexState) pop(kinds ...Kind) error {
	n := len(s.stack)
	if n == 0 {
		return ErrUnbalanced
	}
	top := s.stack[n-1]
	for _, k := range kinds {
		if top.Kind == k {
			s.stack = s.stack[:n-1]
			s.add(top)
			return nil
		}
	}
	return ErrUnbalanced
}

// finish closes blocks left open at end of input, as CSS does.
func (s *lexState) finish() []Token {
	for len(s.stack) > 0 {
		n := len(s.stack)
		top := s.stack[n-1]
		s.stack = s.stack[:n-1]
		s.add(top)
	}
	return s.root
}

// Lex splits a property value into tokens. A trailing "!important" is
// removed from the run and reported through the boolean result.
func Lex(text string) ([]Token, bool, error) {
	lexer := css.NewLexer(parse.NewInputString(text))
	state := &lexState{}
	important := false
	bang := false

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, false, fmt.Errorf("lex %q: %w", text, err)
			}
			break
		}

		if tt == css.WhitespaceToken || tt == css.CommentToken {
			continue
		}

		// Nothing may follow !important
		if important {
			return nil, false, fmt.Errorf("lex %q: %w after !important", text, ErrBadToken)
		}
		if bang {
			if tt != css.IdentToken || !strings.EqualFold(string(data), "important") || len(state.stack) > 0 {
				return nil, false, fmt.Errorf("lex %q: %w after '!'", text, ErrBadToken)
			}
			important = true
			bang = false
			continue
		}

		switch tt {
		case css.IdentToken, css.CustomPropertyNameToken:
			state.add(NewIdent(string(data)))
		case css.StringToken:
			state.add(Token{Kind: String, Text: string(data)})
		case css.NumberToken:
			tok, err := numberToken(string(data))
			if err != nil {
				return nil, false, fmt.Errorf("lex %q: %w", text, err)
			}
			state.add(tok)
		case css.PercentageToken:
			s := string(data)
			n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
			if err != nil {
				return nil, false, fmt.Errorf("lex %q: %w", text, err)
			}
			state.add(Token{Kind: Percentage, Text: s, Num: n, Unit: "%"})
		case css.DimensionToken:
			tok, err := dimensionToken(string(data))
			if err != nil {
				return nil, false, fmt.Errorf("lex %q: %w", text, err)
			}
			state.add(tok)
		case css.HashToken:
			state.add(Token{Kind: Hash, Text: string(data)})
		case css.URLToken:
			state.add(Token{Kind: URL, Text: string(data)})
		case css.FunctionToken:
			name := strings.TrimSuffix(string(data), "(")
			kind := Function
			if len(name) > 1 && name[0] == '-' && name[1] != '-' {
				kind = VendorFunction
			}
			state.push(Token{Kind: kind, Text: name})
		case css.LeftParenthesisToken:
			state.push(Token{Kind: Paren, Text: "("})
		case css.LeftBracketToken:
			state.push(Token{Kind: Bracket, Text: "["})
		case css.RightParenthesisToken:
			if err := state.pop(Function, VendorFunction, Paren); err != nil {
				return nil, false, fmt.Errorf("lex %q: %w", text, err)
			}
		case css.RightBracketToken:
			if err := state.pop(Bracket); err != nil {
				return nil, false, fmt.Errorf("lex %q: %w", text, err)
			}
		case css.CommaToken:
			state.add(Token{Kind: Comma, Text: ","})
		case css.DelimToken:
			switch string(data) {
			case "/":
				state.add(Token{Kind: Slash, Text: "/"})
			case "!":
				if len(state.stack) > 0 {
					return nil, false, fmt.Errorf("lex %q: %w '!'", text, ErrBadToken)
				}
				bang = true
			default:
				state.add(Token{Kind: Delim, Text: string(data)})
			}
		case css.ColonToken, css.UnicodeRangeToken:
			state.add(Token{Kind: Delim, Text: string(data)})
		default:
			// Braces, semicolons, bad strings and urls, CDO/CDC
			return nil, false, fmt.Errorf("lex %q: %w %q", text, ErrBadToken, string(data))
		}
	}

	if bang {
		return nil, false, fmt.Errorf("lex %q: %w: dangling '!'", text, ErrBadToken)
	}
	toks := state.finish()
	if len(toks) == 0 {
		return nil, important, ErrEmpty
	}
	return toks, important, nil
}

// MustLex lexes static text and panics on failure. It is meant for
// package-level tables.
func MustLex(text string) []Token {
	toks, _, err := Lex(text)
	if err != nil {
		panic(err)
	}
	return toks
}

func numberToken(s string) (Token, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Token{}, err
	}
	kind := Integer
	if strings.ContainsAny(s, ".eE") {
		kind = Real
	}
	return Token{Kind: kind, Text: s, Num: n}, nil
}

func dimensionToken(s string) (Token, error) {
	split := numericPrefix(s)
	n, err := strconv.ParseFloat(s[:split], 64)
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: Dimension, Text: s, Num: n, Unit: strings.ToLower(s[split:])}, nil
}

// numericPrefix returns the length of the number at the start of a
// dimension token.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	// An exponent needs a digit, otherwise the 'e' starts the unit (1em)
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
