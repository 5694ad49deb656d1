package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	sh, ok := ByName("Margin")
	require.True(t, ok)
	assert.Equal(t, Margin, sh)
	assert.Equal(t, "margin", sh.String())

	_, ok = ByName("margin-top")
	assert.False(t, ok)
}

func TestEveryShorthandIsComplete(t *testing.T) {
	for _, sh := range All() {
		t.Run(sh.String(), func(t *testing.T) {
			require.NotEmpty(t, sh.Subproperties())
			back, ok := ByName(sh.String())
			require.True(t, ok)
			assert.Equal(t, sh, back)

			for _, name := range sh.Longhands() {
				if name == "font-family" {
					continue
				}
				_, ok := Initial(name)
				assert.True(t, ok, "missing initial value for %s", name)
			}
		})
	}
}

func TestLonghandsIncludeExtras(t *testing.T) {
	assert.Len(t, Border.Subproperties(), 12)
	assert.Len(t, Border.Longhands(), 17)
	assert.True(t, Border.Covers("border-image-repeat"))
	assert.False(t, BorderWidth.Covers("border-image-repeat"))

	assert.Contains(t, Font.Longhands(), "font-variant-numeric")
	assert.Contains(t, Font.Longhands(), "font-kerning")
	assert.NotContains(t, Font.Extras(), "font-variant-caps")

	assert.Len(t, Animation.Subproperties(), 9)
	assert.Contains(t, Animation.Extras(), "animation-range-start")
}

func TestContainingPriority(t *testing.T) {
	assert.Equal(t, []Shorthand{Border, BorderWidth, BorderTop}, Containing("border-top-width"))
	assert.Equal(t, []Shorthand{Font, FontVariant}, Containing("font-variant-caps"))
	assert.Equal(t, []Shorthand{GridArea, GridRow}, Containing("grid-row-end"))
	assert.Equal(t, []Shorthand{Margin}, Containing("margin-left"))
	assert.Empty(t, Containing("color"))
	// Reset-only longhands are not written by any shorthand
	assert.Equal(t, []Shorthand{BorderImage}, Containing("border-image-source"))
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		property string
		ident    string
		want     bool
	}{
		{"border-top-style", "dashed", true},
		{"border-top-style", "wavy", false},
		{"text-decoration-style", "wavy", true},
		{"animation-direction", "Alternate", true},
		{"border-left-color", "rebeccapurple", true},
		{"outline-color", "invert", true},
		{"margin-top", "auto", true},
		{"padding-top", "auto", false},
		{"flex-wrap", "wrap-reverse", true},
	}
	for _, tt := range tests {
		t.Run(tt.property+"/"+tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKnownIdentifier(tt.property, tt.ident))
		})
	}
}

func TestClosedIdentifierSets(t *testing.T) {
	assert.True(t, HasClosedIdentifierSet("animation-direction"))
	assert.True(t, HasClosedIdentifierSet("flex-wrap"))
	assert.False(t, HasClosedIdentifierSet("animation-name"))
	assert.False(t, HasClosedIdentifierSet("font-family"))
	assert.False(t, HasClosedIdentifierSet("border-top-color"))
	assert.False(t, HasClosedIdentifierSet("color"))
}

func TestFlags(t *testing.T) {
	assert.True(t, Pause.IsSequence())
	assert.False(t, Gap.IsSequence())
	assert.True(t, Transition.Layered())
	assert.False(t, Flex.Layered())
	assert.Equal(t, 2, GridArea.MinDeclared())
	assert.Equal(t, 4, Margin.MinDeclared())

	assert.True(t, AllowsList("font-family"))
	assert.True(t, AllowsList("animation-name"))
	assert.False(t, AllowsList("margin-top"))
}

func TestInitial(t *testing.T) {
	v, ok := Initial("background-position")
	require.True(t, ok)
	assert.Equal(t, "0% 0%", v.Text(false))
	assert.True(t, IsInitial("background-position", v))
	assert.False(t, IsInitial("flex-shrink", v))

	_, ok = Initial("font-family")
	assert.False(t, ok)
}

func TestCategorizeProperty(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"border", CategoryVisual},
		{"border-top-width", CategoryVisual},
		{"margin-left", CategoryLayout},
		{"font-size", CategoryTypography},
		{"animation-name", CategoryEffects},
		{"-webkit-box-shadow", CategoryInternal},
		{"pause", CategorySpeech},
		{"z-index", CategoryLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeProperty(tt.name))
		})
	}

	groups := GroupByCategory([]string{"padding", "margin", "font"})
	assert.Equal(t, []string{"margin", "padding"}, groups[CategoryLayout])
	assert.Equal(t, []string{"font"}, groups[CategoryTypography])
}
