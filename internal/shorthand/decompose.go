package shorthand

import (
	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
	"github.com/yacobolo/cssom/internal/value"
)

// Decompose assigns the longhands of sh from a shorthand token run. On OK
// every longhand in sh.Longhands() has been written to store. On
// VendorEscape and SyntaxError the store is untouched; the caller decides
// how to keep an escaped value.
func Decompose(sh meta.Shorthand, toks []token.Token, important bool, store Store, sink Sink, opts Options) Result {
	s := newSetter(sh, toks, important, sink)

	// 1. Nothing to assign
	if len(toks) == 0 {
		return s.fail(WrongValueCount, "empty value")
	}

	// 2. Opaque syntax
	if token.ContainsEscape(toks) {
		return VendorEscape
	}

	// 3. CSS-wide keywords stand alone
	for _, t := range toks {
		if t.Kind != token.CSSWide {
			continue
		}
		if len(toks) != 1 {
			return s.fail(MalformedValue, "%q must be the only value", t.Text)
		}
		kw := value.FromTokens(toks)
		for _, name := range sh.Longhands() {
			s.set(name, kw)
		}
		s.flush(store)
		return OK
	}

	// 4. System fonts
	if sh == meta.Font && len(toks) == 1 && toks[0].Kind == token.Ident && meta.SystemFonts[toks[0].Lower()] {
		s.setTokens("font-family", toks[0])
		s.flush(store)
		return OK
	}

	// 5. Aural sequences are opt-in
	if sh.IsSequence() && !opts.SequenceShorthands {
		return s.fail(UnknownIdentifier, "%s is not enabled", sh)
	}

	// 6. Grammar
	res := assign(s)
	if res == OK {
		s.flush(store)
	}
	return res
}

// assign dispatches to the grammar of s.sh.
func assign(s *setter) Result {
	switch s.sh {
	case meta.Margin, meta.Padding, meta.Inset, meta.BorderWidth, meta.BorderStyle, meta.BorderColor:
		return assignBox(s)
	case meta.BorderRadius:
		return assignBorderRadius(s)
	case meta.BorderTop, meta.BorderRight, meta.BorderBottom, meta.BorderLeft, meta.Outline, meta.ColumnRule:
		return assignBorderSide(s)
	case meta.Border:
		return assignBorder(s)
	case meta.BorderImage:
		return assignBorderImage(s)
	case meta.Flex:
		return assignFlex(s)
	case meta.FlexFlow:
		return assignAnyOrder(s)
	case meta.TextDecoration:
		return assignTextDecoration(s)
	case meta.Columns:
		return assignColumns(s)
	case meta.ListStyle:
		return assignListStyle(s)
	case meta.Font:
		return assignFont(s)
	case meta.FontVariant:
		return assignFontVariant(s)
	case meta.Animation:
		return assignAnimation(s)
	case meta.Transition:
		return assignTransition(s)
	case meta.Background:
		return assignBackground(s)
	case meta.GridRow, meta.GridColumn:
		return assignGridPlacement(s)
	case meta.GridArea:
		return assignGridArea(s)
	case meta.GridTemplate:
		return assignGridTemplate(s)
	case meta.Gap, meta.PlaceContent, meta.PlaceItems, meta.PlaceSelf, meta.Overflow:
		return assignOrderedTwo(s)
	case meta.Cue, meta.Pause, meta.Rest:
		return assignSequence(s)
	}
	return s.fail(UnknownIdentifier, "no grammar for %s", s.sh)
}
