package shorthand

import (
	"strings"

	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
	"github.com/yacobolo/cssom/internal/value"
)

// isGridLine accepts
// auto | <custom-ident> | [<integer> && <custom-ident>?] | [span && [<integer> || <custom-ident>]].
func isGridLine(toks []token.Token) bool {
	if len(toks) == 1 {
		t := toks[0]
		return t.IsIdent("auto") || isLineName(t) || (t.Kind == token.Integer && t.Num != 0)
	}
	if len(toks) == 0 || len(toks) > 3 {
		return false
	}

	var span, integer, ident bool
	var num float64
	for _, t := range toks {
		switch {
		case !span && t.IsIdent("span"):
			span = true
		case !integer && t.Kind == token.Integer && t.Num != 0:
			integer, num = true, t.Num
		case !ident && isLineName(t):
			ident = true
		default:
			return false
		}
	}
	if span {
		return (integer || ident) && (!integer || num > 0)
	}
	return integer
}

func isLineName(t token.Token) bool {
	return isCustomIdent(t) && !t.IsIdent("auto", "span")
}

// lineDefault is the value an omitted end line takes: a copy of a lone
// custom-ident start, auto otherwise.
func lineDefault(start []token.Token) []token.Token {
	if len(start) == 1 && isLineName(start[0]) {
		return start
	}
	return []token.Token{token.NewIdent("auto")}
}

func lineDefaultValue(start value.Value) value.Value {
	return value.FromTokens(lineDefault(start.Tokens()))
}

func splitLines(s *setter, max int) ([][]token.Token, Result) {
	parts := token.Split(s.cur.Rest(), token.Slash)
	if len(parts) > max {
		return nil, s.fail(WrongValueCount, "expected at most %d grid lines, got %d", max, len(parts))
	}
	for _, part := range parts {
		if !isGridLine(part) {
			return nil, s.fail(MalformedValue, "invalid grid line %q", token.Serialize(part, false))
		}
	}
	return parts, OK
}

func assignGridPlacement(s *setter) Result {
	parts, res := splitLines(s, 2)
	if res != OK {
		return res
	}
	subs := s.sh.Subproperties()
	end := lineDefault(parts[0])
	if len(parts) == 2 {
		end = parts[1]
	}
	s.setTokens(subs[0], parts[0]...)
	s.setTokens(subs[1], end...)
	return OK
}

// assignGridArea reads row-start / column-start / row-end / column-end.
func assignGridArea(s *setter) Result {
	parts, res := splitLines(s, 4)
	if res != OK {
		return res
	}
	lines := make([][]token.Token, 4)
	copy(lines, parts)
	if lines[1] == nil {
		lines[1] = lineDefault(lines[0])
	}
	if lines[2] == nil {
		lines[2] = lineDefault(lines[0])
	}
	if lines[3] == nil {
		lines[3] = lineDefault(lines[1])
	}
	for i, name := range s.sh.Subproperties() {
		s.setTokens(name, lines[i]...)
	}
	return OK
}

func joinLines(lines []value.Value) []token.Token {
	var out []token.Token
	for i, line := range lines {
		if i > 0 {
			out = append(out, token.Token{Kind: token.Slash, Text: "/"})
		}
		out = append(out, line.Tokens()...)
	}
	return out
}

func placementTokens(start, end value.Value) []token.Token {
	if end.Equal(lineDefaultValue(start)) {
		return joinLines([]value.Value{start})
	}
	return joinLines([]value.Value{start, end})
}

func buildGridPlacement(b *builder) ([]Fragment, Result) {
	subs := b.sh.Subproperties()
	return b.single(placementTokens(b.value(subs[0]), b.value(subs[1]))), OK
}

const (
	rowStart    = "grid-row-start"
	columnStart = "grid-column-start"
	rowEnd      = "grid-row-end"
	columnEnd   = "grid-column-end"
)

// buildGridArea writes grid-area when all four lines are declared.
// Otherwise each declared pair becomes grid-row or grid-column and the
// remaining lines stay longhands, so no undeclared line is implied.
func buildGridArea(b *builder) ([]Fragment, Result) {
	all := true
	for _, name := range b.sh.Subproperties() {
		all = all && b.isDeclared(name)
	}

	if all {
		rs, cs, re, ce := b.value(rowStart), b.value(columnStart), b.value(rowEnd), b.value(columnEnd)
		lines := []value.Value{rs, cs, re, ce}
		if ce.Equal(lineDefaultValue(cs)) {
			lines = lines[:3]
			if re.Equal(lineDefaultValue(rs)) {
				lines = lines[:2]
				if cs.Equal(lineDefaultValue(rs)) {
					lines = lines[:1]
				}
			}
		}
		return b.single(joinLines(lines)), OK
	}

	var frags []Fragment
	pairs := []struct {
		sh         meta.Shorthand
		start, end string
	}{
		{meta.GridRow, rowStart, rowEnd},
		{meta.GridColumn, columnStart, columnEnd},
	}
	for _, pair := range pairs {
		if b.isDeclared(pair.start) && b.isDeclared(pair.end) {
			frags = append(frags, Fragment{
				Name:   pair.sh.String(),
				Tokens: placementTokens(b.value(pair.start), b.value(pair.end)),
			})
			continue
		}
		for _, name := range []string{pair.start, pair.end} {
			if b.isDeclared(name) {
				frags = append(frags, Fragment{Name: name, Tokens: b.value(name).Tokens()})
			}
		}
	}
	return frags, OK
}

const (
	templateRows    = "grid-template-rows"
	templateColumns = "grid-template-columns"
	templateAreas   = "grid-template-areas"
)

// isTrackList accepts none or a run of track sizes and line names.
func isTrackList(property string, toks []token.Token, allowRepeat bool) bool {
	if len(toks) == 1 && toks[0].IsIdent("none") {
		return true
	}
	sizes := 0
	for _, t := range toks {
		switch {
		case t.Kind == token.Bracket:
		case t.IsFunction("repeat"):
			if !allowRepeat {
				return false
			}
			sizes++
		case isTrackSize(property, t):
			sizes++
		default:
			return false
		}
	}
	return sizes > 0
}

// areaColumns counts the cells of one grid-template-areas row.
func areaColumns(t token.Token) int {
	text := strings.Trim(t.Text, `"'`)
	return len(strings.Fields(text))
}

// assignGridTemplate reads none, <rows> / <columns>, or the area form
// [<line-names>? <string> <track-size>? <line-names>?]+ [/ <explicit-track-list>]?.
func assignGridTemplate(s *setter) Result {
	toks := s.cur.Rest()
	if len(toks) == 1 && toks[0].IsIdent("none") {
		none := token.NewIdent("none")
		s.setTokens(templateRows, none)
		s.setTokens(templateColumns, none)
		s.setTokens(templateAreas, none)
		return OK
	}

	parts := token.Split(toks, token.Slash)
	if len(parts) > 2 {
		return s.fail(MalformedValue, "more than one '/'")
	}

	hasString := false
	for _, t := range parts[0] {
		hasString = hasString || t.Kind == token.String
	}
	if !hasString {
		if len(parts) != 2 {
			return s.fail(WrongValueCount, "expected <rows> / <columns>")
		}
		if !isTrackList(templateRows, parts[0], true) {
			return s.fail(MalformedValue, "invalid row track list")
		}
		if !isTrackList(templateColumns, parts[1], true) {
			return s.fail(MalformedValue, "invalid column track list")
		}
		s.setTokens(templateRows, parts[0]...)
		s.setTokens(templateColumns, parts[1]...)
		s.setTokens(templateAreas, token.NewIdent("none"))
		return OK
	}

	rows, areas, res := readTemplateAreas(s, parts[0])
	if res != OK {
		return res
	}
	s.setTokens(templateRows, rows...)
	s.setTokens(templateAreas, areas...)
	if len(parts) == 2 {
		if len(parts[1]) == 1 && parts[1][0].IsIdent("none") || !isTrackList(templateColumns, parts[1], false) {
			return s.fail(MalformedValue, "invalid explicit column track list")
		}
		s.setTokens(templateColumns, parts[1]...)
	}
	return OK
}

// readTemplateAreas splits the area form into the row track list and the
// area strings. Skipped row sizes are auto; adjacent line-name lists merge.
func readTemplateAreas(s *setter, toks []token.Token) ([]token.Token, []token.Token, Result) {
	var rows, areas []token.Token
	addNames := func(t token.Token) {
		if n := len(rows); n > 0 && rows[n-1].Kind == token.Bracket {
			merged := rows[n-1]
			merged.Args = append(append([]token.Token(nil), merged.Args...), t.Args...)
			rows[n-1] = merged
			return
		}
		rows = append(rows, t)
	}

	columns := -1
	cur := token.NewCursor(toks)
	for !cur.Done() {
		t, _ := cur.Next()
		if t.Kind == token.Bracket {
			addNames(t)
			next, ok := cur.Peek()
			if !ok || next.Kind != token.String {
				return nil, nil, s.fail(MalformedValue, "line names must precede an area string")
			}
			continue
		}
		if t.Kind != token.String {
			return nil, nil, s.unexpected(t)
		}

		n := areaColumns(t)
		if n == 0 || (columns >= 0 && n != columns) {
			return nil, nil, s.fail(MalformedValue, "area rows must have the same number of cells")
		}
		columns = n
		areas = append(areas, t)

		size := token.NewIdent("auto")
		if next, ok := cur.Peek(); ok && next.Kind != token.String && next.Kind != token.Bracket {
			if next.IsFunction("repeat") {
				return nil, nil, s.fail(MalformedValue, "repeat() is not allowed with grid areas")
			}
			if !isTrackSize(templateRows, next) {
				return nil, nil, s.unexpected(next)
			}
			cur.Advance()
			size = next
		}
		rows = append(rows, size)

		if next, ok := cur.Peek(); ok && next.Kind == token.Bracket {
			cur.Advance()
			addNames(next)
		}
	}
	return rows, areas, OK
}

func buildGridTemplate(b *builder) ([]Fragment, Result) {
	rows, columns, areas := b.value(templateRows), b.value(templateColumns), b.value(templateAreas)
	none := func(v value.Value) bool { return v.IsIdent("none") }

	switch {
	case none(rows) && none(columns) && none(areas):
		return b.single([]token.Token{token.NewIdent("none")}), OK
	case none(areas):
		out := append([]token.Token(nil), rows.Tokens()...)
		out = append(out, token.Token{Kind: token.Slash, Text: "/"})
		out = append(out, columns.Tokens()...)
		return b.single(out), OK
	}

	strs := areas.Tokens()
	rowToks := rows.Tokens()
	var out []token.Token
	pos := 0
	for _, str := range strs {
		if str.Kind != token.String {
			return nil, Decline
		}
		if pos < len(rowToks) && rowToks[pos].Kind == token.Bracket {
			out = append(out, rowToks[pos])
			pos++
		}
		out = append(out, str)
		if pos >= len(rowToks) {
			return nil, Decline
		}
		size := rowToks[pos]
		if size.Kind == token.Bracket || size.IsFunction("repeat") {
			return nil, Decline
		}
		pos++
		if !size.IsIdent("auto") {
			out = append(out, size)
		}
		if pos < len(rowToks) && rowToks[pos].Kind == token.Bracket {
			out = append(out, rowToks[pos])
			pos++
		}
	}
	if pos != len(rowToks) {
		return nil, Decline
	}

	if !none(columns) {
		out = append(out, token.Token{Kind: token.Slash, Text: "/"})
		out = append(out, columns.Tokens()...)
	}
	return b.single(out), OK
}
