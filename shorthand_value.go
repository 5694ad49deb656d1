package cssom

import (
	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
)

// ShorthandValue is the text last assigned to a shorthand. It owns the
// longhands it wrote until each of them is written again or removed.
type ShorthandValue struct {
	name      string
	toks      []token.Token
	important bool
	// owned maps each longhand to its generation at assignment
	owned map[string]uint64
	decl  *Declaration
}

// newShorthandValue owns the longhands of sh written after generation
// since.
func newShorthandValue(d *Declaration, sh meta.Shorthand, toks []token.Token, important bool, since uint64) *ShorthandValue {
	sv := &ShorthandValue{
		name:      sh.String(),
		toks:      toks,
		important: important,
		owned:     make(map[string]uint64, len(sh.Longhands())),
		decl:      d,
	}
	for _, name := range sh.Longhands() {
		if e, ok := d.entries[name]; ok && e.generation > since {
			sv.owned[name] = e.generation
		}
	}
	return sv
}

// Name returns the shorthand property name.
func (sv *ShorthandValue) Name() string {
	return sv.name
}

// Text returns the value as assigned.
func (sv *ShorthandValue) Text(minify bool) string {
	return token.Serialize(sv.toks, minify)
}

// Important reports the priority it was assigned with.
func (sv *ShorthandValue) Important() bool {
	return sv.important
}

// Owns reports whether longhand still holds the value this shorthand
// wrote.
func (sv *ShorthandValue) Owns(longhand string) bool {
	gen, ok := sv.owned[longhand]
	if !ok {
		return false
	}
	e, ok := sv.decl.entries[longhand]
	return ok && e.generation == gen
}

// Alive reports whether any longhand is still owned.
func (sv *ShorthandValue) Alive() bool {
	for name := range sv.owned {
		if sv.Owns(name) {
			return true
		}
	}
	return false
}
