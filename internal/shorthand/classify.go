package shorthand

import (
	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
)

var imageFunctions = map[string]bool{
	"url": true, "image": true, "image-set": true, "cross-fade": true, "element": true, "paint": true,
	"linear-gradient": true, "radial-gradient": true, "conic-gradient": true,
	"repeating-linear-gradient": true, "repeating-radial-gradient": true, "repeating-conic-gradient": true,
}

// keyword reports whether t is one of property's identifiers.
func keyword(property string, t token.Token) bool {
	return t.Kind == token.Ident && meta.IsKnownIdentifier(property, t.Text)
}

func isColor(t token.Token) bool {
	switch t.Kind {
	case token.Hash:
		return true
	case token.Function:
		return meta.IsColorFunction(t.Text)
	case token.Ident:
		return meta.IsColorKeyword(t.Text)
	}
	return false
}

func isImage(t token.Token) bool {
	if t.Kind == token.URL {
		return true
	}
	return t.Kind == token.Function && imageFunctions[t.Lower()]
}

// isCustomIdent reports whether t can be an author-defined name.
func isCustomIdent(t token.Token) bool {
	return t.Kind == token.Ident && !t.IsIdent("default")
}

func isInteger(t token.Token) bool {
	return t.Kind == token.Integer || t.IsMath()
}

func isNumber(t token.Token) bool {
	return t.IsNumber() || t.IsMath()
}

func isNonNegNumber(t token.Token) bool {
	return (t.IsNumber() && t.IsNonNegative()) || t.IsMath()
}

func isNonNegLengthPercentage(t token.Token) bool {
	if t.IsMath() {
		return true
	}
	return t.IsLengthPercentage() && t.IsNonNegative()
}

func isLineWidth(property string, t token.Token) bool {
	if t.Kind == token.Ident {
		return keyword(property, t)
	}
	return t.IsLength() && (t.IsMath() || t.IsNonNegative())
}

// isTrackSize reports whether t sizes a grid track.
func isTrackSize(property string, t token.Token) bool {
	switch {
	case t.Kind == token.Ident:
		return keyword(property, t) && !t.IsIdent("none")
	case t.IsLengthPercentage(), t.IsFlex():
		return true
	}
	return t.IsFunction("minmax", "fit-content", "repeat")
}
