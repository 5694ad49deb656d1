package cssom

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestSetPropertyShorthand(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("margin", "1px 2px", false))

	require.Equal(t, 4, d.Length())
	assert.Equal(t, "margin-top", d.Item(0))
	assert.Equal(t, "margin-left", d.Item(3))
	assert.Equal(t, "1px", d.GetPropertyValue("margin-top"))
	assert.Equal(t, "2px", d.GetPropertyValue("margin-left"))
	assert.Equal(t, "1px 2px", d.GetPropertyValue("margin"))
	assert.Equal(t, "", d.GetPropertyPriority("margin"))
	assert.Equal(t, "margin: 1px 2px;", d.CSSText())
	assert.Empty(t, d.Issues())
	assert.NoError(t, d.Err())
}

func TestSetPropertyImportant(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		important bool
	}{
		{name: "flag", text: "1px", important: true},
		{name: "suffix in text", text: "1px !important", important: false},
		{name: "both", text: "1px !important", important: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDeclaration(Config{})
			require.NoError(t, d.SetProperty("padding", tt.text, tt.important))

			assert.Equal(t, "important", d.GetPropertyPriority("padding"))
			assert.Equal(t, "important", d.GetPropertyPriority("padding-top"))
			assert.Equal(t, "1px", d.GetPropertyValue("padding"))
			assert.Equal(t, "padding: 1px !important;", d.CSSText())
			assert.Equal(t, "padding:1px!important;", d.MinifiedCSSText())
		})
	}
}

func TestSetPropertyMixedPriority(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("margin", "1px", false))
	require.NoError(t, d.SetProperty("margin-top", "2px", true))

	// A shorthand cannot carry two priorities
	assert.Equal(t, "", d.GetPropertyValue("margin"))
	assert.Equal(t, "", d.GetPropertyPriority("margin"))
	assert.Equal(t, "important", d.GetPropertyPriority("margin-top"))
}

func TestSetPropertyInvalid(t *testing.T) {
	d := NewDeclaration(Config{})
	err := d.SetProperty("margin", "1px 2px 3px 4px 5px", false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Equal(t, 0, d.Length())
	require.Len(t, d.Issues(), 1)
	assert.True(t, strings.HasPrefix(d.Issues()[0].Text, "invalid margin value: "), d.Issues()[0].Text)
	assert.Equal(t, SeverityError, d.Issues()[0].Severity)
	assert.Error(t, d.Err())
}

func TestSetPropertyInvalidKeepsPreviousValue(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("margin", "1px", false))
	require.Error(t, d.SetProperty("margin", "1px 2px 3px 4px 5px", false))

	assert.Equal(t, "1px", d.GetPropertyValue("margin"))
	assert.Equal(t, 4, d.Length())
}

func TestErrCombinesProblems(t *testing.T) {
	d := NewDeclaration(Config{})
	require.Error(t, d.SetProperty("margin", "1px 2px 3px 4px 5px", false))
	require.Error(t, d.SetProperty("padding", "1px 2px 3px 4px 5px", false))

	assert.Len(t, multierr.Errors(d.Err()), 2)
	assert.Len(t, d.Issues(), 2)
}

func TestSetPropertyUnknownName(t *testing.T) {
	d := NewDeclaration(Config{})
	err := d.SetProperty("  ", "red", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProperty))
}

func TestSetPropertyEmptyRemoves(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("color", "red", false))
	require.NoError(t, d.SetProperty("color", "  ", false))

	assert.Equal(t, 0, d.Length())
	assert.Equal(t, "", d.GetPropertyValue("color"))
}

func TestSetPropertyIsCaseInsensitive(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("MARGIN", "0", false))

	assert.Equal(t, "0", d.GetPropertyValue("margin"))
	assert.Equal(t, "0", d.GetPropertyValue("Margin-Top"))
}

func TestSetPropertyCustomProperty(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("--gap", "4px", false))
	require.NoError(t, d.SetProperty("gap", "var(--gap)", false))

	assert.Equal(t, "4px", d.GetPropertyValue("--gap"))
	assert.Equal(t, "var(--gap)", d.GetPropertyValue("gap"))
	assert.Equal(t, "--gap: 4px; gap: var(--gap);", d.CSSText())
}

func TestRewrittenLonghandMovesToEnd(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("color", "red", false))
	require.NoError(t, d.SetProperty("display", "block", false))
	require.NoError(t, d.SetProperty("color", "blue", false))

	assert.Equal(t, "display", d.Item(0))
	assert.Equal(t, "color", d.Item(1))
	assert.Equal(t, "display: block; color: blue;", d.CSSText())
}

func TestItemOutOfRange(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("color", "red", false))

	assert.Equal(t, "", d.Item(-1))
	assert.Equal(t, "", d.Item(1))
}

func TestRemoveProperty(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("margin", "1px 2px", false))
	require.NoError(t, d.SetProperty("color", "red", false))

	assert.Equal(t, "1px 2px", d.RemoveProperty("margin"))
	assert.Equal(t, 1, d.Length())
	assert.Equal(t, "color", d.Item(0))
	_, ok := d.ShorthandValue("margin")
	assert.False(t, ok)

	assert.Equal(t, "red", d.RemoveProperty("color"))
	assert.Equal(t, "", d.RemoveProperty("color"))
	assert.Equal(t, 0, d.Length())
}

func TestShorthandValueOwnership(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("margin", "1px", false))

	sv, ok := d.ShorthandValue("margin")
	require.True(t, ok)
	assert.Equal(t, "margin", sv.Name())
	assert.Equal(t, "1px", sv.Text(false))
	assert.False(t, sv.Important())
	assert.True(t, sv.Owns("margin-top"))

	require.NoError(t, d.SetProperty("margin-top", "2px", false))
	assert.False(t, sv.Owns("margin-top"))
	assert.True(t, sv.Owns("margin-left"))
	assert.True(t, sv.Alive())
	assert.Equal(t, "2px 1px 1px", d.GetPropertyValue("margin"))
	assert.Equal(t, "margin: 2px 1px 1px;", d.CSSText())

	// Writing the same text again still takes ownership away
	for _, side := range []string{"right", "bottom", "left"} {
		require.NoError(t, d.SetProperty("margin-"+side, "1px", false))
	}
	assert.False(t, sv.Alive())
	_, ok = d.ShorthandValue("margin")
	assert.False(t, ok)
}

func TestShorthandValueReassigned(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("margin", "1px", false))
	old, ok := d.ShorthandValue("margin")
	require.True(t, ok)

	require.NoError(t, d.SetProperty("margin", "3px  4px", false))
	assert.False(t, old.Alive())

	sv, ok := d.ShorthandValue("margin")
	require.True(t, ok)
	assert.Equal(t, "3px 4px", sv.Text(false))
}

func TestVendorEscapeKeepsShorthandText(t *testing.T) {
	d := NewDeclaration(Config{})
	require.NoError(t, d.SetProperty("animation", "var(--a)", false))

	assert.Equal(t, "var(--a)", d.GetPropertyValue("animation"))
	assert.Equal(t, "var(--a)", d.GetPropertyValue("animation-name"))
	assert.Equal(t, "animation: var(--a);", d.CSSText())

	require.NoError(t, d.SetProperty("animation-name", "slide", false))
	assert.Equal(t, "", d.GetPropertyValue("animation"))
	assert.Equal(t, "slide", d.GetPropertyValue("animation-name"))
	assert.Equal(t, "animation: var(--a); animation-name: slide;", d.CSSText())

	sv, ok := d.ShorthandValue("animation")
	require.True(t, ok)
	assert.False(t, sv.Owns("animation-name"))
	assert.True(t, sv.Owns("animation-duration"))
}

func TestResetOnlyLonghandAfterShorthand(t *testing.T) {
	tests := []struct {
		name      string
		shorthand [2]string
		extra     [2]string
		want      string
	}{
		{
			name:      "font",
			shorthand: [2]string{"font", "12px serif"},
			extra:     [2]string{"font-kerning", "none"},
			want:      "font: 12px serif; font-kerning: none;",
		},
		{
			name:      "animation",
			shorthand: [2]string{"animation", "1s a"},
			extra:     [2]string{"animation-range-end", "20%"},
			want:      "animation: 1s a; animation-range-end: 20%;",
		},
		{
			name:      "border",
			shorthand: [2]string{"border", "1px solid"},
			extra:     [2]string{"border-image-width", "2"},
			want:      "border: 1px solid; border-image-width: 2;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDeclaration(Config{})
			require.NoError(t, d.SetProperty(tt.shorthand[0], tt.shorthand[1], false))
			require.NoError(t, d.SetProperty(tt.extra[0], tt.extra[1], false))

			assert.Equal(t, tt.want, d.CSSText())
			// The shorthand alone would lose the extra
			assert.Equal(t, "", d.GetPropertyValue(tt.shorthand[0]))
			assert.Equal(t, tt.extra[1], d.GetPropertyValue(tt.extra[0]))
		})
	}
}

func TestShorterLayerListsFold(t *testing.T) {
	d := ParseDeclaration("transition-property: opacity, transform; transition-duration: .3s; "+
		"transition-timing-function: ease; transition-delay: 0s; transition-behavior: normal", Config{})

	assert.Equal(t, "opacity .3s, transform .3s", d.GetPropertyValue("transition"))
	assert.Equal(t, "transition: opacity .3s, transform .3s;", d.CSSText())
	// The longhand keeps its own, shorter list
	assert.Equal(t, ".3s", d.GetPropertyValue("transition-duration"))
}
