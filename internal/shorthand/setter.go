package shorthand

import (
	"fmt"

	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
	"github.com/yacobolo/cssom/internal/value"
)

// setter is the per-assignment state shared by every shorthand grammar.
// Values are buffered in values until flush.
type setter struct {
	sh        meta.Shorthand
	cur       *token.Cursor
	important bool
	sink      Sink
	values    map[string]value.Value
}

func newSetter(sh meta.Shorthand, toks []token.Token, important bool, sink Sink) *setter {
	if sink == nil {
		sink = discard{}
	}
	return &setter{
		sh:        sh,
		cur:       token.NewCursor(toks),
		important: important,
		sink:      sink,
		values:    make(map[string]value.Value, len(sh.Longhands())),
	}
}

func (s *setter) set(name string, v value.Value) {
	s.values[name] = v
}

func (s *setter) setTokens(name string, toks ...token.Token) {
	s.values[name] = value.FromTokens(toks)
}

func (s *setter) isSet(name string) bool {
	_, ok := s.values[name]
	return ok
}

// fail reports a problem and aborts the run.
func (s *setter) fail(kind ProblemKind, format string, args ...any) Result {
	s.sink.Report(Problem{
		Kind:     kind,
		Property: s.sh.String(),
		Value:    token.Serialize(s.cur.Tokens(), false),
		Message:  fmt.Sprintf(format, args...),
	})
	return SyntaxError
}

// unexpected reports the token the grammar could not place.
func (s *setter) unexpected(t token.Token) Result {
	if t.Kind == token.Ident {
		return s.fail(UnknownIdentifier, "unexpected identifier %q", t.Text)
	}
	return s.fail(MalformedValue, "unexpected %s %q", t.Kind, t.String())
}

// flush writes every longhand of the shorthand. Longhands the grammar
// left unset take their initial value.
func (s *setter) flush(store Store) {
	for _, name := range s.sh.Longhands() {
		v, ok := s.values[name]
		if !ok {
			if v, ok = meta.Initial(name); !ok {
				continue
			}
		}
		store.Set(name, v, s.important)
	}
}
