// Package value is the object-model value of a single longhand property.
package value

import (
	"fmt"
	"strings"

	"github.com/yacobolo/cssom/internal/token"
)

// Kind tags a Value.
type Kind int

// Value kinds
const (
	// Tokens is a single space-separated run, like "1px" or "ease-in 2s".
	Tokens Kind = iota
	// List is a comma-separated list of runs, one per layer.
	List
	// Keyword is a lone CSS-wide keyword.
	Keyword
	// Pending is the text of a shorthand that could not be decomposed,
	// bound to every longhand of that shorthand.
	Pending
)

// Value is immutable once built.
type Value struct {
	kind  Kind
	toks  []token.Token
	items []Value
	// owner names the shorthand of a pending value.
	owner string
}

// FromTokens builds a value from a token run. Top-level commas make a
// list; a lone CSS-wide keyword makes a keyword value.
func FromTokens(toks []token.Token) Value {
	if len(toks) == 1 && toks[0].Kind == token.CSSWide {
		return Value{kind: Keyword, toks: toks}
	}
	if token.Count(toks, token.Comma) > 0 {
		chunks := token.Split(toks, token.Comma)
		items := make([]Value, len(chunks))
		for i, chunk := range chunks {
			items[i] = Value{kind: Tokens, toks: chunk}
		}
		return Value{kind: List, items: items}
	}
	return Value{kind: Tokens, toks: toks}
}

// Parse lexes text into a value. "!important" is not accepted here.
func Parse(text string) (Value, error) {
	toks, important, err := token.Lex(text)
	if err != nil {
		return Value{}, err
	}
	if important {
		return Value{}, fmt.Errorf("parse %q: unexpected priority", text)
	}
	return FromTokens(toks), nil
}

// MustParse parses static text and panics on failure.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Ident returns a single-identifier value.
func Ident(name string) Value {
	return FromTokens([]token.Token{token.NewIdent(name)})
}

// NewList joins per-layer values into a comma-separated list. A single
// item is returned as is.
func NewList(items []Value) Value {
	if len(items) == 1 {
		return items[0]
	}
	return Value{kind: List, items: append([]Value(nil), items...)}
}

// NewPending wraps the full token run of shorthand owner.
func NewPending(owner string, toks []token.Token) Value {
	return Value{kind: Pending, toks: toks, owner: owner}
}

// Kind returns the value kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsZero reports whether v is the zero Value (never set).
func (v Value) IsZero() bool {
	return v.kind == Tokens && len(v.toks) == 0 && len(v.items) == 0
}

// IsList reports whether v is a comma-separated list.
func (v Value) IsList() bool {
	return v.kind == List
}

// IsPending reports whether v is an undecomposed shorthand text.
func (v Value) IsPending() bool {
	return v.kind == Pending
}

// Owner returns the shorthand of a pending value.
func (v Value) Owner() string {
	return v.owner
}

// Keyword returns the CSS-wide keyword of a keyword value, lower-cased,
// or "".
func (v Value) Keyword() string {
	if v.kind != Keyword {
		return ""
	}
	return v.toks[0].Lower()
}

// Len returns the number of layers: list length, or 1.
func (v Value) Len() int {
	if v.kind == List {
		return len(v.items)
	}
	return 1
}

// Item returns layer i. Non-list values are their own single layer.
func (v Value) Item(i int) Value {
	if v.kind == List {
		return v.items[i]
	}
	return v
}

// Tokens returns the token run of a non-list value.
func (v Value) Tokens() []token.Token {
	if v.kind == List {
		var out []token.Token
		for i, item := range v.items {
			if i > 0 {
				out = append(out, token.Token{Kind: token.Comma, Text: ","})
			}
			out = append(out, item.toks...)
		}
		return out
	}
	return v.toks
}

// IsIdent reports whether v is a single identifier equal to one of
// names.
func (v Value) IsIdent(names ...string) bool {
	return v.kind == Tokens && len(v.toks) == 1 && v.toks[0].IsIdent(names...)
}

// Single returns the only token of a one-token value.
func (v Value) Single() (token.Token, bool) {
	if v.kind == List || len(v.toks) != 1 {
		return token.Token{}, false
	}
	return v.toks[0], true
}

// Text serializes the value.
func (v Value) Text(minify bool) string {
	if v.kind == List {
		sep := ", "
		if minify {
			sep = ","
		}
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.Text(minify)
		}
		return strings.Join(parts, sep)
	}
	return token.Serialize(v.toks, minify)
}

func (v Value) String() string {
	return v.Text(false)
}

// Equal compares two values structurally.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == List {
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return v.owner == o.owner && token.EqualRuns(v.toks, o.toks)
}

// Repeats reports whether o is v repeated to o's length, the way a
// shorter layered list is reused for the extra layers: "1s" repeats as
// "1s, 1s" and "a, b" as "a, b, a".
func (v Value) Repeats(o Value) bool {
	layered := func(k Kind) bool { return k == List || k == Tokens }
	if !layered(v.kind) || !layered(o.kind) || v.Len() > o.Len() {
		return false
	}
	for i := 0; i < o.Len(); i++ {
		if !v.Item(i % v.Len()).Equal(o.Item(i)) {
			return false
		}
	}
	return true
}
