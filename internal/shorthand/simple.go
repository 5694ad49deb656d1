package shorthand

import (
	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
	"github.com/yacobolo/cssom/internal/value"
)

// assignAnyOrder gives each keyword to the first subproperty accepting it.
func assignAnyOrder(s *setter) Result {
	for !s.cur.Done() {
		t, _ := s.cur.Next()
		placed := false
		for _, name := range s.sh.Subproperties() {
			if !s.isSet(name) && keyword(name, t) {
				s.setTokens(name, t)
				placed = true
				break
			}
		}
		if !placed {
			return s.unexpected(t)
		}
	}
	return OK
}

const (
	flexGrow   = "flex-grow"
	flexShrink = "flex-shrink"
	flexBasis  = "flex-basis"
)

var (
	zero        = token.Token{Kind: token.Integer, Text: "0"}
	one         = token.Token{Kind: token.Integer, Text: "1", Num: 1}
	zeroPercent = token.Token{Kind: token.Percentage, Text: "0%", Unit: "%"}
)

func isFlexFactor(t token.Token) bool {
	return t.IsNumber() && t.IsNonNegative()
}

// assignFlex reads [<grow> <shrink>?] || <basis>. A number is a factor
// until two factors were read; an omitted basis after a factor is 0%.
func assignFlex(s *setter) Result {
	if toks := s.cur.Rest(); len(toks) == 1 && toks[0].IsIdent("none") {
		s.setTokens(flexGrow, zero)
		s.setTokens(flexShrink, zero)
		s.setTokens(flexBasis, token.NewIdent("auto"))
		return OK
	}

	for !s.cur.Done() {
		t, _ := s.cur.Next()
		switch {
		case !s.isSet(flexGrow) && isFlexFactor(t):
			s.setTokens(flexGrow, t)
			if next, ok := s.cur.Peek(); ok && isFlexFactor(next) {
				s.cur.Advance()
				s.setTokens(flexShrink, next)
			}
		case !s.isSet(flexBasis) && (keyword(flexBasis, t) || isNonNegLengthPercentage(t)):
			s.setTokens(flexBasis, t)
		default:
			return s.unexpected(t)
		}
	}

	if !s.isSet(flexGrow) {
		s.setTokens(flexGrow, one)
	} else if !s.isSet(flexBasis) {
		s.setTokens(flexBasis, zeroPercent)
	}
	if !s.isSet(flexShrink) {
		s.setTokens(flexShrink, one)
	}
	return OK
}

func buildFlex(b *builder) ([]Fragment, Result) {
	grow, shrink, basis := b.value(flexGrow), b.value(flexShrink), b.value(flexBasis)
	is := func(v value.Value, t token.Token) bool {
		single, ok := v.Single()
		return ok && single.Equal(t)
	}
	growTok, ok := grow.Single()
	if !ok || !isFlexFactor(growTok) {
		return nil, Decline
	}
	shrinkTok, ok := shrink.Single()
	if !ok || !isFlexFactor(shrinkTok) {
		return nil, Decline
	}
	basisTok, ok := basis.Single()
	if !ok {
		return nil, Decline
	}

	var out []token.Token
	switch {
	case is(grow, zero) && is(shrink, zero) && basisTok.IsIdent("auto"):
		out = []token.Token{token.NewIdent("none")}
	case is(grow, one) && is(shrink, one) && basisTok.IsIdent("auto"):
		out = []token.Token{token.NewIdent("auto")}
	case basisTok.Equal(zeroPercent) && is(shrink, one):
		out = []token.Token{growTok}
	case basisTok.Equal(zeroPercent):
		out = []token.Token{growTok, shrinkTok}
	case is(grow, one) && is(shrink, one) && !basisTok.IsNumber():
		out = []token.Token{basisTok}
	default:
		out = []token.Token{growTok, shrinkTok, basisTok}
	}
	return b.single(out), OK
}

const (
	columnWidth = "column-width"
	columnCount = "column-count"
)

// assignColumns reads <width> || <count>. Each auto fills the first slot
// left unset once the other values are placed.
func assignColumns(s *setter) Result {
	if s.cur.Len() > 2 {
		return s.fail(WrongValueCount, "expected at most 2 values, got %d", s.cur.Len())
	}
	var autos []token.Token
	for !s.cur.Done() {
		t, _ := s.cur.Next()
		switch {
		case t.IsIdent("auto"):
			autos = append(autos, t)
		case !s.isSet(columnCount) && t.Kind == token.Integer && t.Num > 0:
			s.setTokens(columnCount, t)
		case !s.isSet(columnWidth) && t.IsLength() && (t.IsMath() || t.IsNonNegative()):
			s.setTokens(columnWidth, t)
		default:
			return s.unexpected(t)
		}
	}
	for _, auto := range autos {
		switch {
		case !s.isSet(columnWidth):
			s.setTokens(columnWidth, auto)
		case !s.isSet(columnCount):
			s.setTokens(columnCount, auto)
		}
	}
	return OK
}

const (
	listPosition = "list-style-position"
	listImage    = "list-style-image"
	listType     = "list-style-type"
)

// assignListStyle reads position || image || type. "none" is held back
// and given to type, then image, once the other values are placed.
func assignListStyle(s *setter) Result {
	nones := 0
	for !s.cur.Done() {
		t, _ := s.cur.Next()
		switch {
		case t.IsIdent("none"):
			nones++
		case !s.isSet(listPosition) && keyword(listPosition, t):
			s.setTokens(listPosition, t)
		case !s.isSet(listImage) && isImage(t):
			s.setTokens(listImage, t)
		case !s.isSet(listType) && (t.Kind == token.String || isCustomIdent(t) || t.IsFunction("symbols")):
			s.setTokens(listType, t)
		default:
			return s.unexpected(t)
		}
	}

	none := token.NewIdent("none")
	switch nones {
	case 0:
	case 1:
		switch {
		case !s.isSet(listType):
			s.setTokens(listType, none)
		case !s.isSet(listImage):
			s.setTokens(listImage, none)
		default:
			return s.fail(UnassignedValue, "no longhand left for none")
		}
	case 2:
		if s.isSet(listType) || s.isSet(listImage) {
			return s.fail(UnassignedValue, "no longhand left for none")
		}
		s.setTokens(listType, none)
		s.setTokens(listImage, none)
	default:
		return s.fail(WrongValueCount, "too many none values")
	}
	return OK
}

const (
	decorationLine      = "text-decoration-line"
	decorationStyle     = "text-decoration-style"
	decorationColor     = "text-decoration-color"
	decorationThickness = "text-decoration-thickness"
)

// assignTextDecoration reads line || style || color || thickness. The
// line is "none" or adjacent line keywords, each at most once.
func assignTextDecoration(s *setter) Result {
	for !s.cur.Done() {
		t, _ := s.cur.Next()
		switch {
		case !s.isSet(decorationLine) && t.IsIdent("none"):
			s.setTokens(decorationLine, t)
		case !s.isSet(decorationLine) && keyword(decorationLine, t):
			line := []token.Token{t}
			for {
				next, ok := s.cur.Peek()
				if !ok || next.IsIdent("none") || !keyword(decorationLine, next) {
					break
				}
				for _, seen := range line {
					if seen.Equal(next) {
						return s.fail(MalformedValue, "%q repeated", next.Text)
					}
				}
				s.cur.Advance()
				line = append(line, next)
			}
			s.setTokens(decorationLine, line...)
		case !s.isSet(decorationStyle) && keyword(decorationStyle, t):
			s.setTokens(decorationStyle, t)
		case !s.isSet(decorationThickness) && (keyword(decorationThickness, t) || t.IsLengthPercentage()):
			s.setTokens(decorationThickness, t)
		case !s.isSet(decorationColor) && isColor(t):
			s.setTokens(decorationColor, t)
		default:
			return s.unexpected(t)
		}
	}
	return OK
}

// readAxisValue reads one value of a two-axis shorthand.
func readAxisValue(s *setter, property string) ([]token.Token, Result) {
	t, ok := s.cur.Next()
	if !ok {
		return nil, s.fail(WrongValueCount, "missing value for %s", property)
	}

	switch {
	case property == "row-gap" || property == "column-gap":
		if keyword(property, t) || isNonNegLengthPercentage(t) {
			return []token.Token{t}, OK
		}
	case t.IsIdent("safe", "unsafe"):
		next, ok := s.cur.Next()
		if ok && keyword(property, next) && !next.IsIdent("safe", "unsafe", "first", "last", "baseline", "normal", "stretch", "auto", "legacy") {
			return []token.Token{t, next}, OK
		}
	case t.IsIdent("first", "last"):
		next, ok := s.cur.Next()
		if ok && next.IsIdent("baseline") && keyword(property, next) {
			return []token.Token{t, next}, OK
		}
	case t.IsIdent("legacy") && keyword(property, t):
		if next, ok := s.cur.Peek(); ok && next.IsIdent("left", "right", "center") {
			s.cur.Advance()
			return []token.Token{t, next}, OK
		}
		return []token.Token{t}, OK
	case keyword(property, t):
		return []token.Token{t}, OK
	}
	return nil, s.unexpected(t)
}

// assignPair reads one or two values; the second defaults to the first.
func assignPair(s *setter, read func(*setter, string) ([]token.Token, Result)) Result {
	subs := s.sh.Subproperties()
	first, res := read(s, subs[0])
	if res != OK {
		return res
	}
	second := first
	if !s.cur.Done() {
		if second, res = read(s, subs[1]); res != OK {
			return res
		}
	}
	if !s.cur.Done() {
		return s.fail(WrongValueCount, "expected at most 2 values")
	}
	s.setTokens(subs[0], first...)
	s.setTokens(subs[1], second...)
	return OK
}

func assignOrderedTwo(s *setter) Result {
	return assignPair(s, readAxisValue)
}

func readSequenceValue(s *setter, property string) ([]token.Token, Result) {
	t, ok := s.cur.Next()
	if !ok {
		return nil, s.fail(WrongValueCount, "missing value for %s", property)
	}
	switch {
	case keyword(property, t):
		return []token.Token{t}, OK
	case s.sh == meta.Cue && isImage(t):
		return []token.Token{t}, OK
	case s.sh != meta.Cue && t.IsTime() && (t.IsMath() || t.IsNonNegative()):
		return []token.Token{t}, OK
	}
	return nil, s.unexpected(t)
}

func assignSequence(s *setter) Result {
	return assignPair(s, readSequenceValue)
}

// buildPair writes one value when both are equal.
func buildPair(b *builder) ([]Fragment, Result) {
	subs := b.sh.Subproperties()
	first, second := b.value(subs[0]), b.value(subs[1])
	out := append([]token.Token(nil), first.Tokens()...)
	if !first.Equal(second) {
		out = append(out, second.Tokens()...)
	}
	return b.single(out), OK
}

func buildOrderedTwo(b *builder) ([]Fragment, Result) {
	return buildPair(b)
}

func buildSequence(b *builder) ([]Fragment, Result) {
	if !b.opts.SequenceShorthands {
		return nil, Decline
	}
	return buildPair(b)
}
