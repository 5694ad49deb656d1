package token

import "strings"

// Serialize writes a token run back to CSS text. The verbose form puts a
// space after commas and around slashes; the minified form drops every
// optional space. Both re-lex to the same tokens.
func Serialize(toks []Token, minify bool) string {
	var sb strings.Builder
	writeRun(&sb, toks, minify)
	return sb.String()
}

func writeRun(sb *strings.Builder, toks []Token, minify bool) {
	for i, t := range toks {
		if i > 0 {
			prev := toks[i-1]
			switch {
			case t.Kind == Comma:
			case t.Kind == Slash || prev.Kind == Slash || prev.Kind == Comma:
				if !minify {
					sb.WriteByte(' ')
				}
			default:
				sb.WriteByte(' ')
			}
		}
		writeToken(sb, t, minify)
	}
}

func writeToken(sb *strings.Builder, t Token, minify bool) {
	switch t.Kind {
	case Function, VendorFunction:
		sb.WriteString(t.Text)
		sb.WriteByte('(')
		writeRun(sb, t.Args, minify)
		sb.WriteByte(')')
	case Paren:
		sb.WriteByte('(')
		writeRun(sb, t.Args, minify)
		sb.WriteByte(')')
	case Bracket:
		sb.WriteByte('[')
		writeRun(sb, t.Args, minify)
		sb.WriteByte(']')
	default:
		sb.WriteString(t.Text)
	}
}
