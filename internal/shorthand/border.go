package shorthand

import (
	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
	"github.com/yacobolo/cssom/internal/value"
)

// readLine reads width, style and color in any order, each at most once.
func readLine(s *setter, props [3]string) ([3]token.Token, [3]bool, Result) {
	var vals [3]token.Token
	var found [3]bool
	for !s.cur.Done() {
		t, _ := s.cur.Next()
		i := -1
		switch {
		case !found[0] && isLineWidth(props[0], t):
			i = 0
		case !found[1] && keyword(props[1], t):
			i = 1
		case !found[2] && (isColor(t) || keyword(props[2], t)):
			i = 2
		}
		if i < 0 {
			return vals, found, s.unexpected(t)
		}
		vals[i] = t
		found[i] = true
	}
	return vals, found, OK
}

func assignBorderSide(s *setter) Result {
	subs := s.sh.Subproperties()
	props := [3]string{subs[0], subs[1], subs[2]}
	vals, found, res := readLine(s, props)
	if res != OK {
		return res
	}
	for i, name := range props {
		if found[i] {
			s.setTokens(name, vals[i])
		}
	}
	return OK
}

// assignBorder applies one line to all four sides. The border-image
// longhands are left to their initial values by flush.
func assignBorder(s *setter) Result {
	top := meta.BorderTop.Subproperties()
	vals, found, res := readLine(s, [3]string{top[0], top[1], top[2]})
	if res != OK {
		return res
	}
	subs := s.sh.Subproperties()
	for part := 0; part < 3; part++ {
		if !found[part] {
			continue
		}
		for side := 0; side < 4; side++ {
			s.setTokens(subs[part*4+side], vals[part])
		}
	}
	return OK
}

// buildBorder writes border only when the four sides agree.
func buildBorder(b *builder) ([]Fragment, Result) {
	subs := b.sh.Subproperties()
	var line [3]value.Value
	var names [3]string
	for part := 0; part < 3; part++ {
		names[part] = subs[part*4]
		line[part] = b.value(subs[part*4])
		for side := 1; side < 4; side++ {
			if !b.value(subs[part*4+side]).Equal(line[part]) {
				return nil, Decline
			}
		}
	}

	var out []token.Token
	for part, v := range line {
		if !meta.IsInitial(names[part], v) {
			out = append(out, v.Tokens()...)
		}
	}
	if len(out) == 0 {
		out = []token.Token{token.NewIdent("none")}
	}
	return b.single(out), OK
}

const (
	imageSource = "border-image-source"
	imageSlice  = "border-image-slice"
	imageWidth  = "border-image-width"
	imageOutset = "border-image-outset"
	imageRepeat = "border-image-repeat"
)

func isSliceValue(t token.Token) bool {
	return isNonNegNumber(t) || (t.Kind == token.Percentage && t.IsNonNegative())
}

func isImageWidthValue(t token.Token) bool {
	return isNonNegLengthPercentage(t) || isNonNegNumber(t) || t.IsIdent("auto")
}

func isImageOutsetValue(t token.Token) bool {
	return (t.IsLength() && (t.IsMath() || t.IsNonNegative())) || isNonNegNumber(t)
}

// assignBorderImage reads source, slice group and repeat in any order.
func assignBorderImage(s *setter) Result {
	for !s.cur.Done() {
		t, _ := s.cur.Peek()
		switch {
		case !s.isSet(imageSource) && (isImage(t) || t.IsIdent("none")):
			s.cur.Advance()
			s.setTokens(imageSource, t)
		case !s.isSet(imageRepeat) && keyword(imageRepeat, t):
			s.cur.Advance()
			toks := []token.Token{t}
			if next, ok := s.cur.Peek(); ok && keyword(imageRepeat, next) {
				s.cur.Advance()
				toks = append(toks, next)
			}
			s.setTokens(imageRepeat, toks...)
		case !s.isSet(imageSlice) && (isSliceValue(t) || t.IsIdent("fill")):
			if res := readImageSlice(s); res != OK {
				return res
			}
		default:
			return s.unexpected(t)
		}
	}
	return OK
}

// readImageSlice reads <slice> [ / <width>? [ / <outset> ]? ]?. The
// width segment may be empty when an outset follows.
func readImageSlice(s *setter) Result {
	var slice []token.Token
	var fill token.Token
	hasFill := false
	for {
		t, ok := s.cur.Peek()
		if !ok {
			break
		}
		if !hasFill && t.IsIdent("fill") {
			s.cur.Advance()
			fill, hasFill = t, true
			if len(slice) > 0 {
				break
			}
			continue
		}
		if len(slice) < 4 && isSliceValue(t) {
			s.cur.Advance()
			slice = append(slice, t)
			continue
		}
		break
	}
	if len(slice) == 0 {
		return s.fail(WrongValueCount, "border-image-slice needs 1 to 4 values")
	}
	if hasFill {
		slice = append(slice, fill)
	}
	s.setTokens(imageSlice, slice...)

	if t, ok := s.cur.Peek(); !ok || t.Kind != token.Slash {
		return OK
	}
	s.cur.Advance()

	width := readUpTo(s, 4, isImageWidthValue)
	if t, ok := s.cur.Peek(); ok && t.Kind == token.Slash {
		s.cur.Advance()
		outset := readUpTo(s, 4, isImageOutsetValue)
		if len(outset) == 0 {
			return s.fail(WrongValueCount, "border-image-outset needs 1 to 4 values")
		}
		s.setTokens(imageOutset, outset...)
	} else if len(width) == 0 {
		return s.fail(WrongValueCount, "border-image-width needs 1 to 4 values")
	}
	if len(width) > 0 {
		s.setTokens(imageWidth, width...)
	}
	return OK
}

// readUpTo consumes at most n tokens accepted by accept.
func readUpTo(s *setter, n int, accept func(token.Token) bool) []token.Token {
	var out []token.Token
	for len(out) < n {
		t, ok := s.cur.Peek()
		if !ok || !accept(t) {
			break
		}
		s.cur.Advance()
		out = append(out, t)
	}
	return out
}

func buildBorderImage(b *builder) ([]Fragment, Result) {
	slash := token.Token{Kind: token.Slash, Text: "/"}
	initial := func(name string) bool {
		return meta.IsInitial(name, b.value(name))
	}

	var out []token.Token
	if !initial(imageSource) {
		out = append(out, b.value(imageSource).Tokens()...)
	}
	needWidth, needOutset := !initial(imageWidth), !initial(imageOutset)
	if !initial(imageSlice) || needWidth || needOutset {
		out = append(out, b.value(imageSlice).Tokens()...)
		if needWidth || needOutset {
			out = append(out, slash)
			if needWidth {
				out = append(out, b.value(imageWidth).Tokens()...)
			}
			if needOutset {
				out = append(out, slash)
				out = append(out, b.value(imageOutset).Tokens()...)
			}
		}
	}
	if !initial(imageRepeat) {
		out = append(out, b.value(imageRepeat).Tokens()...)
	}
	if len(out) == 0 {
		out = []token.Token{token.NewIdent("none")}
	}
	return b.single(out), OK
}
