package shorthand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
)

var allShorthands = Options{SequenceShorthands: true}

func run(t *testing.T, name, text string, opts Options) (*MapStore, Result, []Problem) {
	t.Helper()
	sh, ok := meta.ByName(name)
	require.True(t, ok, name)
	toks, _, err := token.Lex(text)
	require.NoError(t, err, text)

	var problems []Problem
	store := NewMapStore()
	res := Decompose(sh, toks, false, store, SinkFunc(func(p Problem) {
		problems = append(problems, p)
	}), opts)
	return store, res, problems
}

func decompose(t *testing.T, name, text string) *MapStore {
	t.Helper()
	store, res, problems := run(t, name, text, allShorthands)
	require.Equal(t, OK, res, "%s: %s %v", name, text, problems)
	return store
}

func text(store *MapStore, name string) string {
	v, ok := store.Value(name)
	if !ok {
		return "<unset>"
	}
	return v.Text(false)
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		input     string
		want      map[string]string
	}{
		{
			name:      "margin two values",
			shorthand: "margin",
			input:     "1px 2px",
			want:      map[string]string{"margin-top": "1px", "margin-right": "2px", "margin-bottom": "1px", "margin-left": "2px"},
		},
		{
			name:      "margin three values",
			shorthand: "margin",
			input:     "1px 2px 3px",
			want:      map[string]string{"margin-top": "1px", "margin-right": "2px", "margin-bottom": "3px", "margin-left": "2px"},
		},
		{
			name:      "inset auto",
			shorthand: "inset",
			input:     "auto 0",
			want:      map[string]string{"top": "auto", "right": "0", "bottom": "auto", "left": "0"},
		},
		{
			name:      "border-style four values",
			shorthand: "border-style",
			input:     "solid dashed dotted none",
			want:      map[string]string{"border-top-style": "solid", "border-right-style": "dashed", "border-bottom-style": "dotted", "border-left-style": "none"},
		},
		{
			name:      "border-radius with vertical radii",
			shorthand: "border-radius",
			input:     "1px 2px / 3px",
			want: map[string]string{
				"border-top-left-radius": "1px 3px", "border-top-right-radius": "2px 3px",
				"border-bottom-right-radius": "1px 3px", "border-bottom-left-radius": "2px 3px",
			},
		},
		{
			name:      "border-radius equal radii collapse",
			shorthand: "border-radius",
			input:     "5px / 5px",
			want:      map[string]string{"border-top-left-radius": "5px"},
		},
		{
			name:      "border side any order",
			shorthand: "border-top",
			input:     "red thick",
			want:      map[string]string{"border-top-width": "thick", "border-top-style": "none", "border-top-color": "red"},
		},
		{
			name:      "border resets border-image",
			shorthand: "border",
			input:     "1px solid red",
			want: map[string]string{
				"border-left-width": "1px", "border-bottom-style": "solid", "border-right-color": "red",
				"border-image-source": "none", "border-image-slice": "100%",
			},
		},
		{
			name:      "outline auto style",
			shorthand: "outline",
			input:     "auto invert",
			want:      map[string]string{"outline-style": "auto", "outline-color": "invert", "outline-width": "medium"},
		},
		{
			name:      "border-image all segments",
			shorthand: "border-image",
			input:     "url(a.png) 30 30% fill / 10px / 2px round",
			want: map[string]string{
				"border-image-source": "url(a.png)", "border-image-slice": "30 30% fill",
				"border-image-width": "10px", "border-image-outset": "2px", "border-image-repeat": "round",
			},
		},
		{
			name:      "border-image empty width segment",
			shorthand: "border-image",
			input:     "repeat space fill 10 / / 1",
			want: map[string]string{
				"border-image-source": "none", "border-image-slice": "10 fill",
				"border-image-width": "1", "border-image-outset": "1", "border-image-repeat": "repeat space",
			},
		},
		{
			name:      "flex single number",
			shorthand: "flex",
			input:     "2",
			want:      map[string]string{"flex-grow": "2", "flex-shrink": "1", "flex-basis": "0%"},
		},
		{
			name:      "flex auto",
			shorthand: "flex",
			input:     "auto",
			want:      map[string]string{"flex-grow": "1", "flex-shrink": "1", "flex-basis": "auto"},
		},
		{
			name:      "flex none",
			shorthand: "flex",
			input:     "none",
			want:      map[string]string{"flex-grow": "0", "flex-shrink": "0", "flex-basis": "auto"},
		},
		{
			name:      "flex basis only",
			shorthand: "flex",
			input:     "10px",
			want:      map[string]string{"flex-grow": "1", "flex-shrink": "1", "flex-basis": "10px"},
		},
		{
			name:      "flex zero after basis is a factor",
			shorthand: "flex",
			input:     "10px 0",
			want:      map[string]string{"flex-grow": "0", "flex-shrink": "1", "flex-basis": "10px"},
		},
		{
			name:      "flex zero after two factors is a basis",
			shorthand: "flex",
			input:     "1 2 0",
			want:      map[string]string{"flex-grow": "1", "flex-shrink": "2", "flex-basis": "0"},
		},
		{
			name:      "flex-flow any order",
			shorthand: "flex-flow",
			input:     "wrap column",
			want:      map[string]string{"flex-direction": "column", "flex-wrap": "wrap"},
		},
		{
			name:      "columns count only",
			shorthand: "columns",
			input:     "3",
			want:      map[string]string{"column-width": "auto", "column-count": "3"},
		},
		{
			name:      "columns auto fills remaining slot",
			shorthand: "columns",
			input:     "auto 10em",
			want:      map[string]string{"column-width": "10em", "column-count": "auto"},
		},
		{
			name:      "list-style none",
			shorthand: "list-style",
			input:     "none",
			want:      map[string]string{"list-style-type": "none", "list-style-image": "none", "list-style-position": "outside"},
		},
		{
			name:      "list-style none goes to image after type",
			shorthand: "list-style",
			input:     "square none inside",
			want:      map[string]string{"list-style-type": "square", "list-style-image": "none", "list-style-position": "inside"},
		},
		{
			name:      "text-decoration multiple lines",
			shorthand: "text-decoration",
			input:     "underline overline dotted red",
			want: map[string]string{
				"text-decoration-line": "underline overline", "text-decoration-style": "dotted",
				"text-decoration-color": "red", "text-decoration-thickness": "auto",
			},
		},
		{
			name:      "font full form",
			shorthand: "font",
			input:     "italic bold 12px/30px Georgia, serif",
			want: map[string]string{
				"font-style": "italic", "font-weight": "bold", "font-size": "12px", "line-height": "30px",
				"font-family": "Georgia, serif", "font-variant-caps": "normal", "font-kerning": "auto",
				"font-variant-numeric": "normal",
			},
		},
		{
			name:      "font normal placeholders",
			shorthand: "font",
			input:     "normal small-caps 700 condensed large \"Helvetica Neue\"",
			want: map[string]string{
				"font-style": "normal", "font-variant-caps": "small-caps", "font-weight": "700",
				"font-stretch": "condensed", "font-size": "large", "font-family": `"Helvetica Neue"`,
			},
		},
		{
			name:      "font system keyword",
			shorthand: "font",
			input:     "caption",
			want:      map[string]string{"font-family": "caption", "font-size": "medium", "font-style": "normal"},
		},
		{
			name:      "font-variant groups",
			shorthand: "font-variant",
			input:     "small-caps slashed-zero common-ligatures",
			want: map[string]string{
				"font-variant-caps": "small-caps", "font-variant-numeric": "slashed-zero",
				"font-variant-ligatures": "common-ligatures", "font-variant-position": "normal",
			},
		},
		{
			name:      "font-variant none",
			shorthand: "font-variant",
			input:     "none",
			want:      map[string]string{"font-variant-ligatures": "none", "font-variant-caps": "normal"},
		},
		{
			name:      "animation single layer",
			shorthand: "animation",
			input:     "3s ease-in 1s 2 reverse both paused slidein",
			want: map[string]string{
				"animation-duration": "3s", "animation-timing-function": "ease-in", "animation-delay": "1s",
				"animation-iteration-count": "2", "animation-direction": "reverse", "animation-fill-mode": "both",
				"animation-play-state": "paused", "animation-name": "slidein", "animation-timeline": "auto",
			},
		},
		{
			name:      "animation layers",
			shorthand: "animation",
			input:     "a 1s infinite, b 2s steps(4)",
			want: map[string]string{
				"animation-name": "a, b", "animation-duration": "1s, 2s",
				"animation-iteration-count": "infinite, 1", "animation-timing-function": "ease, steps(4)",
				"animation-range-start": "normal",
			},
		},
		{
			name:      "animation keyword name after keyword",
			shorthand: "animation",
			input:     "ease ease",
			want:      map[string]string{"animation-timing-function": "ease", "animation-name": "ease"},
		},
		{
			name:      "transition layers",
			shorthand: "transition",
			input:     "opacity 1s ease-in, transform 2s",
			want: map[string]string{
				"transition-property": "opacity, transform", "transition-duration": "1s, 2s",
				"transition-timing-function": "ease-in, ease", "transition-delay": "0s, 0s",
			},
		},
		{
			name:      "background layers",
			shorthand: "background",
			input:     "url(a.png) center / cover no-repeat, red",
			want: map[string]string{
				"background-image": "url(a.png), none", "background-position": "center, 0% 0%",
				"background-size": "cover, auto", "background-repeat": "no-repeat, repeat",
				"background-color": "red",
			},
		},
		{
			name:      "background one box sets both",
			shorthand: "background",
			input:     "content-box #fff",
			want:      map[string]string{"background-origin": "content-box", "background-clip": "content-box", "background-color": "#fff"},
		},
		{
			name:      "grid-row custom ident copies",
			shorthand: "grid-row",
			input:     "header",
			want:      map[string]string{"grid-row-start": "header", "grid-row-end": "header"},
		},
		{
			name:      "grid-column integer end defaults to auto",
			shorthand: "grid-column",
			input:     "2",
			want:      map[string]string{"grid-column-start": "2", "grid-column-end": "auto"},
		},
		{
			name:      "grid-column span",
			shorthand: "grid-column",
			input:     "span 2 / 5",
			want:      map[string]string{"grid-column-start": "span 2", "grid-column-end": "5"},
		},
		{
			name:      "grid-area two lines",
			shorthand: "grid-area",
			input:     "a / b",
			want:      map[string]string{"grid-row-start": "a", "grid-column-start": "b", "grid-row-end": "a", "grid-column-end": "b"},
		},
		{
			name:      "grid-area three lines",
			shorthand: "grid-area",
			input:     "1 / 2 / 3",
			want:      map[string]string{"grid-row-start": "1", "grid-column-start": "2", "grid-row-end": "3", "grid-column-end": "auto"},
		},
		{
			name:      "grid-template rows and columns",
			shorthand: "grid-template",
			input:     "100px 1fr / repeat(2, 1fr)",
			want:      map[string]string{"grid-template-rows": "100px 1fr", "grid-template-columns": "repeat(2, 1fr)", "grid-template-areas": "none"},
		},
		{
			name:      "grid-template areas",
			shorthand: "grid-template",
			input:     `[top] "a a" 40px [mid] "b c" / 1fr 2fr`,
			want: map[string]string{
				"grid-template-rows": "[top] 40px [mid] auto", "grid-template-areas": `"a a" "b c"`,
				"grid-template-columns": "1fr 2fr",
			},
		},
		{
			name:      "gap one value",
			shorthand: "gap",
			input:     "10px",
			want:      map[string]string{"row-gap": "10px", "column-gap": "10px"},
		},
		{
			name:      "place-items two values",
			shorthand: "place-items",
			input:     "first baseline safe center",
			want:      map[string]string{"align-items": "first baseline", "justify-items": "safe center"},
		},
		{
			name:      "overflow",
			shorthand: "overflow",
			input:     "hidden auto",
			want:      map[string]string{"overflow-x": "hidden", "overflow-y": "auto"},
		},
		{
			name:      "pause",
			shorthand: "pause",
			input:     "1s weak",
			want:      map[string]string{"pause-before": "1s", "pause-after": "weak"},
		},
		{
			name:      "css-wide keyword",
			shorthand: "border",
			input:     "inherit",
			want:      map[string]string{"border-top-width": "inherit", "border-image-repeat": "inherit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := decompose(t, tt.shorthand, tt.input)
			for name, want := range tt.want {
				assert.Equal(t, want, text(store, name), name)
			}

			// Every longhand is written
			sh, _ := meta.ByName(tt.shorthand)
			for _, name := range sh.Longhands() {
				assert.True(t, store.IsDeclared(name), "%s not assigned", name)
			}
		})
	}
}

func TestDecomposeErrors(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		input     string
		kind      ProblemKind
	}{
		{"too many box values", "margin", "1px 2px 3px 4px 5px", WrongValueCount},
		{"negative padding", "padding", "-1px", MalformedValue},
		{"unknown style", "border-style", "wavy", UnknownIdentifier},
		{"keyword mixed with values", "margin", "inherit 1px", MalformedValue},
		{"two slashes in radius", "border-radius", "1px / 2px / 3px", MalformedValue},
		{"duplicate width", "border", "1px 2px", MalformedValue},
		{"font without family", "font", "12px", WrongValueCount},
		{"font without size", "font", "bold serif", UnknownIdentifier},
		{"conflicting ligatures", "font-variant", "common-ligatures no-common-ligatures", MalformedValue},
		{"third time in animation", "animation", "1s 2s 3s", UnassignedValue},
		{"empty layer", "animation", "a, , b", MalformedValue},
		{"none in multiple transitions", "transition", "none, opacity 1s", MalformedValue},
		{"color before final layer", "background", "red, url(a.png)", MalformedValue},
		{"zero grid line", "grid-row", "0", MalformedValue},
		{"span without number or name", "grid-column", "span", MalformedValue},
		{"repeat in area form", "grid-template", `"a" repeat(2, 1fr)`, MalformedValue},
		{"uneven area rows", "grid-template", `"a b" "c"`, MalformedValue},
		{"three gap values", "gap", "1px 2px 3px", WrongValueCount},
		{"two list-style nones with type", "list-style", "none none square", UnassignedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, res, problems := run(t, tt.shorthand, tt.input, allShorthands)
			assert.Equal(t, SyntaxError, res)
			assert.Empty(t, store.Order(), "nothing may be written on error")
			require.Len(t, problems, 1)
			assert.Equal(t, tt.kind, problems[0].Kind)
			assert.Equal(t, tt.shorthand, problems[0].Property)
		})
	}
}

func TestVendorEscape(t *testing.T) {
	for _, input := range []string{
		"-webkit-foo(1) 2s",
		"var(--anim)",
		"slide calc(var(--d) * 1s)",
	} {
		t.Run(input, func(t *testing.T) {
			store, res, problems := run(t, "animation", input, allShorthands)
			assert.Equal(t, VendorEscape, res)
			assert.Empty(t, store.Order())
			assert.Empty(t, problems)
		})
	}
}

func TestSequenceShorthandsAreGated(t *testing.T) {
	_, res, problems := run(t, "cue", "none", Options{})
	assert.Equal(t, SyntaxError, res)
	require.Len(t, problems, 1)

	store, res, _ := run(t, "cue", "url(a.wav) none", allShorthands)
	require.Equal(t, OK, res)
	assert.Equal(t, "url(a.wav)", text(store, "cue-before"))
	assert.Equal(t, "none", text(store, "cue-after"))
}

func TestAnimationLayerIsComplete(t *testing.T) {
	store := decompose(t, "animation", "3s ease-in 1s 2 reverse both paused slidein")
	for _, name := range meta.Animation.Subproperties() {
		v, ok := store.Value(name)
		require.True(t, ok, name)
		assert.Equal(t, 1, v.Len(), name)
		assert.False(t, v.IsList(), name)
	}
	assert.Len(t, meta.Animation.Subproperties(), 9)
}
