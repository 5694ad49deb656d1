package shorthand

import (
	"slices"

	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
	"github.com/yacobolo/cssom/internal/value"
)

// Fragment is one declaration produced by a builder: the shorthand
// itself, or for grid-area a narrower shorthand or a longhand.
type Fragment struct {
	Name   string
	Tokens []token.Token
}

// Text serializes the fragment value.
func (f Fragment) Text(minify bool) string {
	return token.Serialize(f.Tokens, minify)
}

// Built is the output of a successful build.
type Built struct {
	Fragments []Fragment
	// Covered lists every longhand the fragments write, in store order.
	Covered []string
	// Deferred lists the declared extras the fragments reset to a
	// different value. They must be written after the fragments.
	Deferred []string
}

// builder is the per-group state shared by every reconstruction
// strategy.
type builder struct {
	sh        meta.Shorthand
	store     Store
	declared  []string
	important bool
	opts      Options
}

func (b *builder) value(name string) value.Value {
	v, _ := b.store.Value(name)
	return v
}

func (b *builder) isDeclared(name string) bool {
	return slices.Contains(b.declared, name)
}

func (b *builder) single(toks []token.Token) []Fragment {
	return []Fragment{{Name: b.sh.String(), Tokens: toks}}
}

// Build tries to write the longhands in declared as sh. declared holds
// the subproperties of sh that are present in store with the given
// priority and not written yet.
//
// The candidate text is decomposed again before it is accepted: any
// longhand that would come back different, or any longhand outside
// declared that the text would overwrite, makes the build decline.
// Extras are the exception: one the text would reset to a value other
// than its own is returned in Deferred, so the caller can write it
// after the shorthand.
func Build(sh meta.Shorthand, store Store, declared []string, important bool, opts Options) (Built, Result) {
	b := &builder{sh: sh, store: store, declared: declared, important: important, opts: opts}

	subs := 0
	for _, name := range sh.Subproperties() {
		if b.isDeclared(name) {
			subs++
		}
	}
	if subs < sh.MinDeclared() {
		return Built{}, Decline
	}

	keyword := ""
	keywords := 0
	for _, name := range declared {
		v, ok := store.Value(name)
		switch {
		case !ok, v.IsPending():
			return Built{}, Decline
		case v.IsList() && !meta.AllowsList(name):
			return Built{}, Decline
		}
		if kw := v.Keyword(); kw != "" {
			if keyword != "" && kw != keyword {
				return Built{}, Decline
			}
			keyword = kw
			keywords++
		}
	}

	var frags []Fragment
	switch {
	case keywords > 0:
		// All or nothing, like the setter's short-circuit
		if keywords != len(declared) || subs != len(sh.Subproperties()) {
			return Built{}, Decline
		}
		frags = b.single([]token.Token{token.NewIdent(keyword)})
	default:
		var res Result
		frags, res = dispatch(b)
		if res != OK {
			return Built{}, Decline
		}
	}

	built, ok := verify(b, frags)
	if !ok {
		return Built{}, Decline
	}
	return built, OK
}

func dispatch(b *builder) ([]Fragment, Result) {
	switch b.sh {
	case meta.Margin, meta.Padding, meta.Inset, meta.BorderWidth, meta.BorderStyle, meta.BorderColor:
		return buildBox(b)
	case meta.BorderRadius:
		return buildBorderRadius(b)
	case meta.Border:
		return buildBorder(b)
	case meta.BorderImage:
		return buildBorderImage(b)
	case meta.BorderTop, meta.BorderRight, meta.BorderBottom, meta.BorderLeft, meta.Outline, meta.ColumnRule,
		meta.FlexFlow, meta.Columns, meta.ListStyle, meta.TextDecoration:
		return buildGeneric(b)
	case meta.Flex:
		return buildFlex(b)
	case meta.Font:
		return buildFont(b)
	case meta.FontVariant:
		return buildFontVariant(b)
	case meta.Animation:
		return buildAnimation(b)
	case meta.Transition:
		return buildTransition(b)
	case meta.Background:
		return buildBackground(b)
	case meta.GridRow, meta.GridColumn:
		return buildGridPlacement(b)
	case meta.GridArea:
		return buildGridArea(b)
	case meta.GridTemplate:
		return buildGridTemplate(b)
	case meta.Gap, meta.PlaceContent, meta.PlaceItems, meta.PlaceSelf, meta.Overflow:
		return buildOrderedTwo(b)
	case meta.Cue, meta.Pause, meta.Rest:
		return buildSequence(b)
	}
	return nil, Decline
}

// verify decomposes the fragments into a scratch store and compares the
// result with the declared longhands. Layered longhands compare by list
// repetition, so "1s" stands for "1s, 1s".
func verify(b *builder, frags []Fragment) (Built, bool) {
	scratch := NewMapStore()
	for _, f := range frags {
		if sh, ok := meta.ByName(f.Name); ok {
			if Decompose(sh, f.Tokens, b.important, scratch, nil, b.opts) != OK {
				return Built{}, false
			}
			continue
		}
		if len(f.Tokens) == 0 {
			return Built{}, false
		}
		scratch.Set(f.Name, value.FromTokens(f.Tokens), b.important)
	}

	for _, name := range b.declared {
		if !scratch.IsDeclared(name) {
			return Built{}, false
		}
	}

	built := Built{Fragments: frags}
	for _, name := range scratch.Order() {
		got, _ := scratch.Value(name)
		switch {
		case b.isDeclared(name):
			want, _ := b.store.Value(name)
			if !want.Equal(got) && !(meta.AllowsList(name) && want.Repeats(got)) {
				return Built{}, false
			}
		case !b.store.IsDeclared(name):
		case slices.Contains(b.sh.Extras(), name):
			want, _ := b.store.Value(name)
			important := b.store.IsImportant(name)
			switch {
			case b.important && !important:
				// An important reset hides the extra whatever comes after
				return Built{}, false
			case important != b.important || !want.Equal(got):
				built.Deferred = append(built.Deferred, name)
				continue
			}
		default:
			// The text would overwrite a longhand outside the group
			return Built{}, false
		}
		built.Covered = append(built.Covered, name)
	}
	return built, true
}

// buildGeneric writes the non-initial subproperties in canonical order.
func buildGeneric(b *builder) ([]Fragment, Result) {
	var out []token.Token
	for _, name := range b.sh.Subproperties() {
		v := b.value(name)
		if !meta.IsInitial(name, v) {
			out = append(out, v.Tokens()...)
		}
	}
	if len(out) == 0 {
		name := b.sh.Subproperties()[emptyIndex[b.sh]]
		initial, _ := meta.Initial(name)
		out = initial.Tokens()
	}
	return b.single(out), OK
}

// emptyIndex picks the subproperty whose initial value stands for a
// shorthand with every subproperty at its initial value.
var emptyIndex = map[meta.Shorthand]int{
	meta.BorderTop:    1,
	meta.BorderRight:  1,
	meta.BorderBottom: 1,
	meta.BorderLeft:   1,
	meta.Outline:      1,
	meta.ColumnRule:   1,
	meta.ListStyle:    2,
}
