package cssom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclaration(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		length int
	}{
		{
			name:   "shorthand and longhand",
			input:  "margin: 1px 2px; color: red",
			want:   "margin: 1px 2px; color: red;",
			length: 5,
		},
		{
			name:   "longhands fold",
			input:  "padding-top: 0; padding-right: 0; padding-bottom: 0; padding-left: 0;",
			want:   "padding: 0;",
			length: 4,
		},
		{
			name:   "custom property reference",
			input:  "gap: var(--gap)",
			want:   "gap: var(--gap);",
			length: 2,
		},
		{
			name:   "extra whitespace",
			input:  "margin:0   auto;",
			want:   "margin: 0 auto;",
			length: 4,
		},
		{
			name:   "empty",
			input:  "",
			want:   "",
			length: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDeclaration(tt.input, Config{})
			assert.Equal(t, tt.want, d.CSSText())
			assert.Equal(t, tt.length, d.Length())
			assert.NoError(t, d.Err())
		})
	}
}

func TestParseDeclarationImportant(t *testing.T) {
	d := ParseDeclaration("color: red !important; margin: 0", Config{})

	assert.Equal(t, "important", d.GetPropertyPriority("color"))
	assert.Equal(t, "red", d.GetPropertyValue("color"))
	assert.Equal(t, "", d.GetPropertyPriority("margin"))
}

func TestParseDeclarationImportantWins(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		shorthand string // owner of margin-right afterwards, if any
	}{
		{
			name:      "longhand then longhand",
			input:     "margin-top: 1px !important; margin-top: 2px",
			want:      "margin-top: 1px !important;",
			shorthand: "",
		},
		{
			name:      "shorthand then longhand",
			input:     "margin: 1px !important; margin-top: 2px",
			want:      "margin: 1px !important;",
			shorthand: "margin",
		},
		{
			name:      "shorthand then shorthand",
			input:     "margin: 1px !important; margin: 2px",
			want:      "margin: 1px !important;",
			shorthand: "margin",
		},
		{
			name:      "longhand then shorthand",
			input:     "margin-top: 1px !important; margin: 2px",
			want:      "margin-top: 1px !important; margin-right: 2px; margin-bottom: 2px; margin-left: 2px;",
			shorthand: "margin",
		},
		{
			name:      "important replaces important",
			input:     "margin-top: 1px !important; margin-top: 2px !important",
			want:      "margin-top: 2px !important;",
			shorthand: "",
		},
		{
			name:      "normal replaces normal",
			input:     "color: red; color: blue",
			want:      "color: blue;",
			shorthand: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDeclaration(tt.input, Config{})
			assert.Equal(t, tt.want, d.CSSText())
			assert.NoError(t, d.Err())
			if tt.shorthand != "" {
				sv, ok := d.ShorthandValue(tt.shorthand)
				require.True(t, ok)
				assert.True(t, sv.Owns("margin-right"))
			}
		})
	}
}

func TestParseDeclarationCascadeOwnership(t *testing.T) {
	d := ParseDeclaration("margin-top: 1px !important; margin: 2px", Config{})

	sv, ok := d.ShorthandValue("margin")
	require.True(t, ok)
	assert.Equal(t, "2px", sv.Text(false))
	assert.False(t, sv.Owns("margin-top"))
	assert.Equal(t, "important", d.GetPropertyPriority("margin-top"))
	assert.Equal(t, "1px", d.GetPropertyValue("margin-top"))

	// SetProperty still replaces the important value
	require.NoError(t, d.SetProperty("margin-top", "3px", false))
	assert.Equal(t, "", d.GetPropertyPriority("margin-top"))
	assert.Equal(t, "3px 2px 2px", d.GetPropertyValue("margin"))
}

func TestParseDeclarationSkipsInvalid(t *testing.T) {
	d := ParseDeclaration("margin: 1px 2px 3px 4px 5px; color: red", Config{})

	assert.Equal(t, "color: red;", d.CSSText())
	assert.Equal(t, 1, d.Length())
	assert.Len(t, d.Issues(), 1)
	assert.Error(t, d.Err())
}

const stylesheetSample = `.a {
  margin-top: 0;
  margin-left: auto;
}

@media (min-width: 40em) {
  .b { padding: 1px; }
}
`

func TestParseStylesheet(t *testing.T) {
	sheet := ParseStylesheet([]byte(stylesheetSample))

	assert.Empty(t, sheet.Errors)
	require.Len(t, sheet.Rules, 2)

	a := sheet.Rules[0]
	assert.Contains(t, a.Prelude, ".a")
	assert.Equal(t, 1, a.Line)
	require.Len(t, a.Declarations, 2)
	assert.Equal(t, RuleDeclaration{Property: "margin-top", Value: "0", Line: 2, Column: 3}, a.Declarations[0])
	assert.Equal(t, RuleDeclaration{Property: "margin-left", Value: "auto", Line: 3, Column: 3}, a.Declarations[1])
	assert.Equal(t, "margin-left: auto", a.Declarations[1].Text())

	// Rules nested in @media come back flat
	b := sheet.Rules[1]
	assert.Contains(t, b.Prelude, ".b")
	assert.Equal(t, 7, b.Line)
	require.Len(t, b.Declarations, 1)
	assert.Equal(t, RuleDeclaration{Property: "padding", Value: "1px", Line: 7, Column: 8}, b.Declarations[0])
}

func TestParseStylesheetEmpty(t *testing.T) {
	sheet := ParseStylesheet(nil)
	assert.Empty(t, sheet.Rules)
	assert.Empty(t, sheet.Errors)
}

func TestStylesheetPosition(t *testing.T) {
	src := []byte("ab\ncd\n\nef")
	sheet := &Stylesheet{lines: lineStarts(src)}

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{offset: 0, line: 1, column: 1},
		{offset: 1, line: 1, column: 2},
		{offset: 3, line: 2, column: 1},
		{offset: 6, line: 3, column: 1},
		{offset: 8, line: 4, column: 2},
	}

	for _, tt := range tests {
		line, col := sheet.position(tt.offset)
		assert.Equal(t, tt.line, line, "line of offset %d", tt.offset)
		assert.Equal(t, tt.column, col, "column of offset %d", tt.offset)
	}
}

func TestValueTextHelpers(t *testing.T) {
	assert.Equal(t, 4, skipSpace([]byte(" \n\t x"), 0))
	assert.Equal(t, 2, indexFold([]byte("  Margin-Top: 0"), "margin-top"))
	assert.Equal(t, -1, indexFold([]byte("color: red"), "margin"))
}
