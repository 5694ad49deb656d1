package shorthand

import (
	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
)

const (
	fontStyle      = "font-style"
	fontCaps       = "font-variant-caps"
	fontWeight     = "font-weight"
	fontStretch    = "font-stretch"
	fontSize       = "font-size"
	fontLineHeight = "line-height"
	fontFamily     = "font-family"
)

func isFontWeightNumber(t token.Token) bool {
	return (t.IsNumber() && t.Num >= 1 && t.Num <= 1000) || t.IsMath()
}

// assignFont reads
// [style || small-caps || weight || stretch]? size [/ line-height]? family.
// "normal" before the size stands for any of the four leading longhands.
func assignFont(s *setter) Result {
	pre := 0
leading:
	for pre < 4 {
		t, ok := s.cur.Peek()
		if !ok {
			break
		}
		switch {
		case t.IsIdent("normal"):
		case !s.isSet(fontStyle) && keyword(fontStyle, t):
			s.cur.Advance()
			if next, ok := s.cur.Peek(); ok && t.IsIdent("oblique") && next.Kind == token.Dimension && next.Unit == "deg" {
				s.cur.Advance()
				s.setTokens(fontStyle, t, next)
				pre++
				continue
			}
			s.setTokens(fontStyle, t)
			pre++
			continue
		case !s.isSet(fontCaps) && t.IsIdent("small-caps"):
			s.setTokens(fontCaps, t)
		case !s.isSet(fontWeight) && (keyword(fontWeight, t) || (t.IsNumber() && isFontWeightNumber(t))):
			s.setTokens(fontWeight, t)
		case !s.isSet(fontStretch) && keyword(fontStretch, t):
			s.setTokens(fontStretch, t)
		default:
			break leading
		}
		s.cur.Advance()
		pre++
	}

	size, ok := s.cur.Next()
	if !ok {
		return s.fail(WrongValueCount, "missing font-size")
	}
	if !keyword(fontSize, size) && !isNonNegLengthPercentage(size) {
		return s.unexpected(size)
	}
	s.setTokens(fontSize, size)

	if t, ok := s.cur.Peek(); ok && t.Kind == token.Slash {
		s.cur.Advance()
		lh, ok := s.cur.Next()
		if !ok {
			return s.fail(WrongValueCount, "missing line-height after '/'")
		}
		if !keyword(fontLineHeight, lh) && !isNonNegNumber(lh) && !isNonNegLengthPercentage(lh) {
			return s.unexpected(lh)
		}
		s.setTokens(fontLineHeight, lh)
	}

	family := s.cur.Rest()
	if len(family) == 0 {
		return s.fail(WrongValueCount, "missing font-family")
	}
	for _, name := range token.Split(family, token.Comma) {
		if !isFamilyName(name) {
			return s.fail(MalformedValue, "invalid family name %q", token.Serialize(name, false))
		}
	}
	s.setTokens(fontFamily, family...)
	return OK
}

// isFamilyName accepts one string or a run of identifiers.
func isFamilyName(toks []token.Token) bool {
	if len(toks) == 1 && toks[0].Kind == token.String {
		return true
	}
	if len(toks) == 0 {
		return false
	}
	for _, t := range toks {
		if t.Kind != token.Ident {
			return false
		}
	}
	return true
}

func buildFont(b *builder) ([]Fragment, Result) {
	family := b.value(fontFamily)
	leading := []string{fontStyle, fontCaps, fontWeight, fontStretch}

	// A system font keyword stands alone. With any other longhand set it
	// is an ordinary family name.
	if t, ok := family.Single(); ok && t.Kind == token.Ident && meta.SystemFonts[t.Lower()] {
		alone := true
		for _, name := range b.sh.Subproperties() {
			if name != fontFamily && !meta.IsInitial(name, b.value(name)) {
				alone = false
				break
			}
		}
		if alone {
			return b.single([]token.Token{t}), OK
		}
	}

	if caps := b.value(fontCaps); !caps.IsIdent("normal", "small-caps") {
		return nil, Decline
	}

	var out []token.Token
	for _, name := range leading {
		if v := b.value(name); !meta.IsInitial(name, v) {
			out = append(out, v.Tokens()...)
		}
	}
	out = append(out, b.value(fontSize).Tokens()...)
	if lh := b.value(fontLineHeight); !meta.IsInitial(fontLineHeight, lh) {
		out = append(out, token.Token{Kind: token.Slash, Text: "/"})
		out = append(out, lh.Tokens()...)
	}
	out = append(out, family.Tokens()...)
	return b.single(out), OK
}

// variantSlot places a font-variant keyword. Keywords sharing a slot
// exclude each other.
type variantSlot struct {
	longhand string
	slot     string
}

var variantSlots = map[string]variantSlot{
	"common-ligatures":           {"font-variant-ligatures", "common"},
	"no-common-ligatures":        {"font-variant-ligatures", "common"},
	"discretionary-ligatures":    {"font-variant-ligatures", "discretionary"},
	"no-discretionary-ligatures": {"font-variant-ligatures", "discretionary"},
	"historical-ligatures":       {"font-variant-ligatures", "historical"},
	"no-historical-ligatures":    {"font-variant-ligatures", "historical"},
	"contextual":                 {"font-variant-ligatures", "contextual"},
	"no-contextual":              {"font-variant-ligatures", "contextual"},

	"small-caps":      {"font-variant-caps", "caps"},
	"all-small-caps":  {"font-variant-caps", "caps"},
	"petite-caps":     {"font-variant-caps", "caps"},
	"all-petite-caps": {"font-variant-caps", "caps"},
	"unicase":         {"font-variant-caps", "caps"},
	"titling-caps":    {"font-variant-caps", "caps"},

	"historical-forms": {"font-variant-alternates", "historical-forms"},

	"lining-nums":        {"font-variant-numeric", "figure"},
	"oldstyle-nums":      {"font-variant-numeric", "figure"},
	"proportional-nums":  {"font-variant-numeric", "spacing"},
	"tabular-nums":       {"font-variant-numeric", "spacing"},
	"diagonal-fractions": {"font-variant-numeric", "fraction"},
	"stacked-fractions":  {"font-variant-numeric", "fraction"},
	"ordinal":            {"font-variant-numeric", "ordinal"},
	"slashed-zero":       {"font-variant-numeric", "slashed-zero"},

	"jis78":              {"font-variant-east-asian", "variant"},
	"jis83":              {"font-variant-east-asian", "variant"},
	"jis90":              {"font-variant-east-asian", "variant"},
	"jis04":              {"font-variant-east-asian", "variant"},
	"simplified":         {"font-variant-east-asian", "variant"},
	"traditional":        {"font-variant-east-asian", "variant"},
	"full-width":         {"font-variant-east-asian", "width"},
	"proportional-width": {"font-variant-east-asian", "width"},
	"ruby":               {"font-variant-east-asian", "ruby"},

	"sub":   {"font-variant-position", "position"},
	"super": {"font-variant-position", "position"},
}

var alternateFunctions = map[string]bool{
	"stylistic": true, "styleset": true, "character-variant": true,
	"swash": true, "ornaments": true, "annotation": true,
}

const variantLigatures = "font-variant-ligatures"

func assignFontVariant(s *setter) Result {
	toks := s.cur.Rest()
	if len(toks) == 1 && toks[0].IsIdent("normal") {
		return OK
	}
	if len(toks) == 1 && toks[0].IsIdent("none") {
		s.setTokens(variantLigatures, toks[0])
		return OK
	}

	used := map[string]bool{}
	groups := map[string][]token.Token{}
	for !s.cur.Done() {
		t, _ := s.cur.Next()
		var place variantSlot
		switch {
		case t.Kind == token.Ident:
			var ok bool
			if place, ok = variantSlots[t.Lower()]; !ok {
				return s.unexpected(t)
			}
		case t.Kind == token.Function && alternateFunctions[t.Lower()]:
			place = variantSlot{"font-variant-alternates", t.Lower()}
		default:
			return s.unexpected(t)
		}
		key := place.longhand + "/" + place.slot
		if used[key] {
			return s.fail(MalformedValue, "conflicting value %q", t.String())
		}
		used[key] = true
		groups[place.longhand] = append(groups[place.longhand], t)
	}

	for name, group := range groups {
		s.setTokens(name, group...)
	}
	return OK
}

func buildFontVariant(b *builder) ([]Fragment, Result) {
	var out []token.Token
	ligaturesNone := b.value(variantLigatures).IsIdent("none")
	for _, name := range b.sh.Subproperties() {
		v := b.value(name)
		if meta.IsInitial(name, v) || (name == variantLigatures && ligaturesNone) {
			continue
		}
		out = append(out, v.Tokens()...)
	}

	switch {
	case ligaturesNone && len(out) > 0:
		return nil, Decline
	case ligaturesNone:
		out = []token.Token{token.NewIdent("none")}
	case len(out) == 0:
		out = []token.Token{token.NewIdent("normal")}
	}
	return b.single(out), OK
}
