// Package meta is the read-only shorthand database: which longhands each
// shorthand sets, which identifiers each longhand accepts and what its
// initial value is.
//
// Tables are built once at package initialization and never written
// afterwards, so every lookup is safe for concurrent use.
package meta

import "strings"

// Shorthand is one supported shorthand property.
//
// The constants are declared in serialization priority order: a shorthand
// covering more longhands comes before the narrower shorthands sharing
// those longhands (border before border-width and border-top).
type Shorthand int

// Supported shorthands
const (
	Margin Shorthand = iota
	Padding
	Inset
	Border
	BorderWidth
	BorderStyle
	BorderColor
	BorderTop
	BorderRight
	BorderBottom
	BorderLeft
	BorderRadius
	BorderImage
	Outline
	ColumnRule
	Columns
	Flex
	FlexFlow
	ListStyle
	Font
	FontVariant
	TextDecoration
	Animation
	Transition
	Background
	GridArea
	GridRow
	GridColumn
	GridTemplate
	Gap
	PlaceContent
	PlaceItems
	PlaceSelf
	Overflow
	Cue
	Pause
	Rest

	numShorthands
)

type shorthandInfo struct {
	name string
	subs []string
	// extras are reset by the shorthand but never written in it
	extras []string
}

var sides = [4]string{"top", "right", "bottom", "left"}

func fourSides(format string) []string {
	out := make([]string, 4)
	for i, side := range sides {
		out[i] = strings.Replace(format, "%s", side, 1)
	}
	return out
}

var shorthands = [numShorthands]shorthandInfo{
	Margin:       {name: "margin", subs: fourSides("margin-%s")},
	Padding:      {name: "padding", subs: fourSides("padding-%s")},
	Inset:        {name: "inset", subs: fourSides("%s")},
	BorderWidth:  {name: "border-width", subs: fourSides("border-%s-width")},
	BorderStyle:  {name: "border-style", subs: fourSides("border-%s-style")},
	BorderColor:  {name: "border-color", subs: fourSides("border-%s-color")},
	BorderTop:    {name: "border-top", subs: []string{"border-top-width", "border-top-style", "border-top-color"}},
	BorderRight:  {name: "border-right", subs: []string{"border-right-width", "border-right-style", "border-right-color"}},
	BorderBottom: {name: "border-bottom", subs: []string{"border-bottom-width", "border-bottom-style", "border-bottom-color"}},
	BorderLeft:   {name: "border-left", subs: []string{"border-left-width", "border-left-style", "border-left-color"}},
	Border: {
		name: "border",
		subs: append(append(fourSides("border-%s-width"), fourSides("border-%s-style")...), fourSides("border-%s-color")...),
		extras: []string{
			"border-image-source", "border-image-slice", "border-image-width",
			"border-image-outset", "border-image-repeat",
		},
	},
	BorderRadius: {name: "border-radius", subs: []string{
		"border-top-left-radius", "border-top-right-radius",
		"border-bottom-right-radius", "border-bottom-left-radius",
	}},
	BorderImage: {name: "border-image", subs: []string{
		"border-image-source", "border-image-slice", "border-image-width",
		"border-image-outset", "border-image-repeat",
	}},
	Outline:    {name: "outline", subs: []string{"outline-width", "outline-style", "outline-color"}},
	ColumnRule: {name: "column-rule", subs: []string{"column-rule-width", "column-rule-style", "column-rule-color"}},
	Columns:    {name: "columns", subs: []string{"column-width", "column-count"}},
	Flex:       {name: "flex", subs: []string{"flex-grow", "flex-shrink", "flex-basis"}},
	FlexFlow:   {name: "flex-flow", subs: []string{"flex-direction", "flex-wrap"}},
	ListStyle:  {name: "list-style", subs: []string{"list-style-position", "list-style-image", "list-style-type"}},
	Font: {
		name: "font",
		subs: []string{
			"font-style", "font-variant-caps", "font-weight", "font-stretch",
			"font-size", "line-height", "font-family",
		},
		extras: []string{
			"font-variant-ligatures", "font-variant-alternates", "font-variant-numeric",
			"font-variant-east-asian", "font-variant-position", "font-size-adjust", "font-kerning",
		},
	},
	FontVariant: {name: "font-variant", subs: []string{
		"font-variant-ligatures", "font-variant-caps", "font-variant-alternates",
		"font-variant-numeric", "font-variant-east-asian", "font-variant-position",
	}},
	TextDecoration: {name: "text-decoration", subs: []string{
		"text-decoration-line", "text-decoration-style", "text-decoration-color", "text-decoration-thickness",
	}},
	Animation: {
		name: "animation",
		subs: []string{
			"animation-duration", "animation-timing-function", "animation-delay",
			"animation-iteration-count", "animation-direction", "animation-fill-mode",
			"animation-play-state", "animation-name", "animation-timeline",
		},
		extras: []string{"animation-range-start", "animation-range-end"},
	},
	Transition: {name: "transition", subs: []string{
		"transition-property", "transition-duration", "transition-timing-function",
		"transition-delay", "transition-behavior",
	}},
	Background: {name: "background", subs: []string{
		"background-image", "background-position", "background-size", "background-repeat",
		"background-attachment", "background-origin", "background-clip", "background-color",
	}},
	GridArea: {name: "grid-area", subs: []string{
		"grid-row-start", "grid-column-start", "grid-row-end", "grid-column-end",
	}},
	GridRow:      {name: "grid-row", subs: []string{"grid-row-start", "grid-row-end"}},
	GridColumn:   {name: "grid-column", subs: []string{"grid-column-start", "grid-column-end"}},
	GridTemplate: {name: "grid-template", subs: []string{"grid-template-rows", "grid-template-columns", "grid-template-areas"}},
	Gap:          {name: "gap", subs: []string{"row-gap", "column-gap"}},
	PlaceContent: {name: "place-content", subs: []string{"align-content", "justify-content"}},
	PlaceItems:   {name: "place-items", subs: []string{"align-items", "justify-items"}},
	PlaceSelf:    {name: "place-self", subs: []string{"align-self", "justify-self"}},
	Overflow:     {name: "overflow", subs: []string{"overflow-x", "overflow-y"}},
	Cue:          {name: "cue", subs: []string{"cue-before", "cue-after"}},
	Pause:        {name: "pause", subs: []string{"pause-before", "pause-after"}},
	Rest:         {name: "rest", subs: []string{"rest-before", "rest-after"}},
}

var (
	byName     = map[string]Shorthand{}
	longhands  [numShorthands][]string
	containing = map[string][]Shorthand{}
)

func init() {
	for sh := Shorthand(0); sh < numShorthands; sh++ {
		info := shorthands[sh]
		byName[info.name] = sh
		longhands[sh] = append(append([]string(nil), info.subs...), info.extras...)
		// Shorthands are visited in priority order, so each slice stays sorted
		for _, sub := range info.subs {
			containing[sub] = append(containing[sub], sh)
		}
	}
}

// All returns every supported shorthand in priority order.
func All() []Shorthand {
	out := make([]Shorthand, numShorthands)
	for i := range out {
		out[i] = Shorthand(i)
	}
	return out
}

// ByName looks up a shorthand by property name (case-insensitive).
func ByName(name string) (Shorthand, bool) {
	sh, ok := byName[strings.ToLower(name)]
	return sh, ok
}

// IsShorthand reports whether name is a supported shorthand.
func IsShorthand(name string) bool {
	_, ok := ByName(name)
	return ok
}

func (sh Shorthand) String() string {
	if sh < 0 || sh >= numShorthands {
		return "unknown"
	}
	return shorthands[sh].name
}

// Subproperties returns the longhands written in the shorthand's text, in
// canonical order. The slice must not be modified.
func (sh Shorthand) Subproperties() []string {
	return shorthands[sh].subs
}

// Longhands returns every longhand an assignment of the shorthand sets:
// the subproperties followed by the reset-only extras.
func (sh Shorthand) Longhands() []string {
	return longhands[sh]
}

// Extras returns the reset-only longhands.
func (sh Shorthand) Extras() []string {
	return shorthands[sh].extras
}

// Covers reports whether longhand is one of the shorthand's longhands,
// extras included.
func (sh Shorthand) Covers(longhand string) bool {
	for _, name := range longhands[sh] {
		if name == longhand {
			return true
		}
	}
	return false
}

// IsSequence reports whether the shorthand is one of the aural
// before/after pairs, which are only decomposed on request.
func (sh Shorthand) IsSequence() bool {
	return sh == Cue || sh == Pause || sh == Rest
}

// Layered reports whether the shorthand takes comma-separated layers.
func (sh Shorthand) Layered() bool {
	return sh == Animation || sh == Transition || sh == Background
}

// MinDeclared is the smallest declared set worth handing to the builder.
// Only grid-area can be split into narrower declarations; every other
// shorthand needs all of its subproperties.
func (sh Shorthand) MinDeclared() int {
	if sh == GridArea {
		return 2
	}
	return len(shorthands[sh].subs)
}

// Containing returns the shorthands listing longhand as a subproperty,
// in priority order.
func Containing(longhand string) []Shorthand {
	return containing[strings.ToLower(longhand)]
}
