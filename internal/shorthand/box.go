package shorthand

import (
	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
	"github.com/yacobolo/cssom/internal/value"
)

// expandBox maps 1 to 4 values onto top, right, bottom, left.
func expandBox[T any](vals []T) [4]T {
	var sides [4]T
	switch len(vals) {
	case 1:
		sides = [4]T{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		sides = [4]T{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		sides = [4]T{vals[0], vals[1], vals[2], vals[1]}
	case 4:
		sides = [4]T{vals[0], vals[1], vals[2], vals[3]}
	}
	return sides
}

// Box compaction scores: each equal pair adds its weight.
const (
	scoreTopBottom = 16
	scoreRightLeft = 4
	scoreTopRight  = 1
)

// compactBox returns the shortest form of top, right, bottom, left that
// expandBox maps back to the same four values.
func compactBox(sides [4]value.Value) []value.Value {
	score := 0
	if sides[0].Equal(sides[2]) {
		score += scoreTopBottom
	}
	if sides[1].Equal(sides[3]) {
		score += scoreRightLeft
	}
	if sides[0].Equal(sides[1]) {
		score += scoreTopRight
	}

	switch score {
	case 21:
		return sides[:1]
	case 20:
		return sides[:2]
	case 5, 4:
		return sides[:3]
	case 17, 16, 1, 0:
		return sides[:]
	}
	return sides[:]
}

func acceptsSide(sh meta.Shorthand, property string, t token.Token) bool {
	switch sh {
	case meta.Margin, meta.Inset:
		return keyword(property, t) || t.IsLengthPercentage()
	case meta.Padding:
		return isNonNegLengthPercentage(t)
	case meta.BorderWidth:
		return isLineWidth(property, t)
	case meta.BorderStyle:
		return keyword(property, t)
	case meta.BorderColor:
		return isColor(t)
	}
	return false
}

func assignBox(s *setter) Result {
	subs := s.sh.Subproperties()
	var vals []token.Token
	for !s.cur.Done() {
		t, _ := s.cur.Next()
		if !acceptsSide(s.sh, subs[0], t) {
			return s.unexpected(t)
		}
		vals = append(vals, t)
	}
	if len(vals) > 4 {
		return s.fail(WrongValueCount, "expected 1 to 4 values, got %d", len(vals))
	}

	sides := expandBox(vals)
	for i, name := range subs {
		s.setTokens(name, sides[i])
	}
	return OK
}

func assignBorderRadius(s *setter) Result {
	parts := token.Split(s.cur.Rest(), token.Slash)
	if len(parts) > 2 {
		return s.fail(MalformedValue, "more than one '/'")
	}

	var radii [2][4]token.Token
	for i, part := range parts {
		if len(part) == 0 || len(part) > 4 {
			return s.fail(WrongValueCount, "expected 1 to 4 radii, got %d", len(part))
		}
		for _, t := range part {
			if !isNonNegLengthPercentage(t) {
				return s.unexpected(t)
			}
		}
		radii[i] = expandBox(part)
	}
	if len(parts) == 1 {
		radii[1] = radii[0]
	}

	for i, name := range s.sh.Subproperties() {
		h, v := radii[0][i], radii[1][i]
		if h.Equal(v) {
			s.setTokens(name, h)
		} else {
			s.setTokens(name, h, v)
		}
	}
	return OK
}

func buildBox(b *builder) ([]Fragment, Result) {
	var sides [4]value.Value
	for i, name := range b.sh.Subproperties() {
		sides[i] = b.value(name)
	}

	var out []token.Token
	for _, v := range compactBox(sides) {
		out = append(out, v.Tokens()...)
	}
	return b.single(out), OK
}

func buildBorderRadius(b *builder) ([]Fragment, Result) {
	var h, v [4]value.Value
	for i, name := range b.sh.Subproperties() {
		toks := b.value(name).Tokens()
		switch len(toks) {
		case 1:
			h[i] = value.FromTokens(toks)
			v[i] = h[i]
		case 2:
			h[i] = value.FromTokens(toks[:1])
			v[i] = value.FromTokens(toks[1:])
		default:
			return nil, Decline
		}
	}

	var out []token.Token
	for _, r := range compactBox(h) {
		out = append(out, r.Tokens()...)
	}
	if !equalSides(h, v) {
		out = append(out, token.Token{Kind: token.Slash, Text: "/"})
		for _, r := range compactBox(v) {
			out = append(out, r.Tokens()...)
		}
	}
	return b.single(out), OK
}

func equalSides(a, b [4]value.Value) bool {
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
