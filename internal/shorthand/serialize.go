package shorthand

import (
	"strings"

	"github.com/yacobolo/cssom/internal/meta"
)

// Declaration is one emitted property: a shorthand, or a longhand no
// builder could fold.
type Declaration struct {
	Name      string
	Value     string
	Important bool
}

// Text formats the declaration as "name: value !important;" or, minified,
// "name:value!important;".
func (d Declaration) Text(minify bool) string {
	var sb strings.Builder
	sb.WriteString(d.Name)
	if minify {
		sb.WriteByte(':')
	} else {
		sb.WriteString(": ")
	}
	sb.WriteString(d.Value)
	if d.Important {
		if minify {
			sb.WriteString("!important")
		} else {
			sb.WriteString(" !important")
		}
	}
	sb.WriteByte(';')
	return sb.String()
}

// Serialize writes the longhands of store, walked in order, as the
// shortest declaration list that parses back to the same longhands.
func Serialize(store Store, order []string, minify bool, opts Options) string {
	decls := Declarations(store, order, minify, opts)
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.Text(minify)
	}
	sep := " "
	if minify {
		sep = ""
	}
	return strings.Join(parts, sep)
}

// Declarations folds the longhands of store into declarations. Each
// longhand is visited in order; the first shorthand containing it whose
// builder succeeds is emitted in its place. A declared extra the
// shorthand cannot carry is emitted later as a longhand, which keeps it
// after the shorthand that resets it.
func Declarations(store Store, order []string, minify bool, opts Options) []Declaration {
	var out []Declaration
	emitted := map[string]bool{}

	for _, name := range order {
		if emitted[name] {
			continue
		}
		v, ok := store.Value(name)
		if !ok {
			continue
		}
		important := store.IsImportant(name)

		// An undecomposed shorthand is written back once, as is
		if v.IsPending() {
			out = append(out, Declaration{Name: v.Owner(), Value: v.Text(minify), Important: important})
			if sh, ok := meta.ByName(v.Owner()); ok {
				for _, longhand := range sh.Longhands() {
					other, ok := store.Value(longhand)
					if ok && other.Equal(v) && store.IsImportant(longhand) == important {
						emitted[longhand] = true
					}
				}
			}
			emitted[name] = true
			continue
		}

		folded := false
		for _, sh := range meta.Containing(name) {
			declared := declaredSet(store, sh, important, emitted)
			built, res := Build(sh, store, declared, important, opts)
			if res != OK || resetsEmitted(store, built.Deferred, important, emitted) {
				continue
			}
			for _, f := range built.Fragments {
				out = append(out, Declaration{Name: f.Name, Value: f.Text(minify), Important: important})
			}
			for _, covered := range built.Covered {
				emitted[covered] = true
			}
			folded = true
			break
		}
		if folded {
			continue
		}

		out = append(out, Declaration{Name: name, Value: v.Text(minify), Important: important})
		emitted[name] = true
	}
	return out
}

// declaredSet returns the subproperties of sh present in store with the
// given priority and not emitted yet. Extras stay out of the set: a
// non-initial one is written as a longhand of its own.
func declaredSet(store Store, sh meta.Shorthand, important bool, emitted map[string]bool) []string {
	var declared []string
	for _, name := range sh.Subproperties() {
		if emitted[name] || !store.IsDeclared(name) || store.IsImportant(name) != important {
			continue
		}
		declared = append(declared, name)
	}
	return declared
}

// resetsEmitted reports whether a shorthand would reset an extra that is
// already written with the same priority.
func resetsEmitted(store Store, deferred []string, important bool, emitted map[string]bool) bool {
	for _, name := range deferred {
		if emitted[name] && store.IsImportant(name) == important {
			return true
		}
	}
	return false
}
