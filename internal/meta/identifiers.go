package meta

import "strings"

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func union(sets ...map[string]bool) map[string]bool {
	m := map[string]bool{}
	for _, s := range sets {
		for w := range s {
			m[w] = true
		}
	}
	return m
}

var (
	lineStyles     = set("none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset")
	lineWidths     = set("thin", "medium", "thick")
	colorSpecials  = set("currentcolor", "transparent")
	timingKeywords = set("ease", "linear", "ease-in", "ease-out", "ease-in-out", "step-start", "step-end")
	boxKeywords    = set("border-box", "padding-box", "content-box")
	breathStrength = set("none", "x-weak", "weak", "medium", "strong", "x-strong")

	contentDistribution = set("space-between", "space-around", "space-evenly", "stretch")
	contentPosition     = set("center", "start", "end", "flex-start", "flex-end")
	selfPosition        = set("center", "start", "end", "self-start", "self-end", "flex-start", "flex-end", "anchor-center")
	baselinePosition    = set("baseline", "first", "last")
	overflowPosition    = set("safe", "unsafe")
)

// identifiers lists the keywords each longhand accepts, CSS-wide keywords
// excluded.
var identifiers = map[string]map[string]bool{
	"margin-top": set("auto"), "margin-right": set("auto"), "margin-bottom": set("auto"), "margin-left": set("auto"),
	"top": set("auto"), "right": set("auto"), "bottom": set("auto"), "left": set("auto"),

	"border-top-width": lineWidths, "border-right-width": lineWidths,
	"border-bottom-width": lineWidths, "border-left-width": lineWidths,
	"border-top-style": lineStyles, "border-right-style": lineStyles,
	"border-bottom-style": lineStyles, "border-left-style": lineStyles,
	"border-top-color": colorSpecials, "border-right-color": colorSpecials,
	"border-bottom-color": colorSpecials, "border-left-color": colorSpecials,

	"border-image-source": set("none"),
	"border-image-slice":  set("fill"),
	"border-image-width":  set("auto"),
	"border-image-repeat": set("stretch", "repeat", "round", "space"),

	"outline-width":     lineWidths,
	"outline-style":     union(lineStyles, set("auto")),
	"outline-color":     union(colorSpecials, set("invert")),
	"column-rule-width": lineWidths,
	"column-rule-style": lineStyles,
	"column-rule-color": colorSpecials,

	"column-width": set("auto"),
	"column-count": set("auto"),

	"flex-basis":     set("auto", "content", "max-content", "min-content", "fit-content"),
	"flex-direction": set("row", "row-reverse", "column", "column-reverse"),
	"flex-wrap":      set("nowrap", "wrap", "wrap-reverse"),

	"list-style-position": set("inside", "outside"),
	"list-style-image":    set("none"),
	"list-style-type": set("none", "disc", "circle", "square", "decimal", "decimal-leading-zero",
		"lower-roman", "upper-roman", "lower-greek", "lower-latin", "upper-latin",
		"lower-alpha", "upper-alpha", "armenian", "georgian", "disclosure-open", "disclosure-closed"),

	"font-style":        set("normal", "italic", "oblique"),
	"font-variant-caps": set("normal", "small-caps", "all-small-caps", "petite-caps", "all-petite-caps", "unicase", "titling-caps"),
	"font-weight":       set("normal", "bold", "bolder", "lighter"),
	"font-stretch": set("normal", "ultra-condensed", "extra-condensed", "condensed", "semi-condensed",
		"semi-expanded", "expanded", "extra-expanded", "ultra-expanded"),
	"font-size": set("xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "xxx-large",
		"larger", "smaller"),
	"line-height": set("normal"),
	"font-family": set("serif", "sans-serif", "monospace", "cursive", "fantasy", "system-ui",
		"ui-serif", "ui-sans-serif", "ui-monospace", "ui-rounded", "math", "emoji", "fangsong"),
	"font-variant-ligatures": set("normal", "none", "common-ligatures", "no-common-ligatures",
		"discretionary-ligatures", "no-discretionary-ligatures", "historical-ligatures",
		"no-historical-ligatures", "contextual", "no-contextual"),
	"font-variant-alternates": set("normal", "historical-forms"),
	"font-variant-numeric": set("normal", "lining-nums", "oldstyle-nums", "proportional-nums", "tabular-nums",
		"diagonal-fractions", "stacked-fractions", "ordinal", "slashed-zero"),
	"font-variant-east-asian": set("normal", "jis78", "jis83", "jis90", "jis04", "simplified", "traditional",
		"full-width", "proportional-width", "ruby"),
	"font-variant-position": set("normal", "sub", "super"),
	"font-size-adjust":      set("none", "from-font"),
	"font-kerning":          set("auto", "normal", "none"),

	"text-decoration-line":      set("none", "underline", "overline", "line-through", "blink"),
	"text-decoration-style":     set("solid", "double", "dotted", "dashed", "wavy"),
	"text-decoration-color":     colorSpecials,
	"text-decoration-thickness": set("auto", "from-font"),

	"animation-timing-function": timingKeywords,
	"animation-iteration-count": set("infinite"),
	"animation-direction":       set("normal", "reverse", "alternate", "alternate-reverse"),
	"animation-fill-mode":       set("none", "forwards", "backwards", "both"),
	"animation-play-state":      set("running", "paused"),
	"animation-name":            set("none"),
	"animation-timeline":        set("auto", "none"),
	"animation-range-start":     set("normal"),
	"animation-range-end":       set("normal"),

	"transition-property":        set("none", "all"),
	"transition-timing-function": timingKeywords,
	"transition-behavior":        set("normal", "allow-discrete"),

	"background-image":      set("none"),
	"background-position":   set("left", "center", "right", "top", "bottom"),
	"background-size":       set("auto", "cover", "contain"),
	"background-repeat":     set("repeat", "repeat-x", "repeat-y", "no-repeat", "space", "round"),
	"background-attachment": set("scroll", "fixed", "local"),
	"background-origin":     boxKeywords,
	"background-clip":       union(boxKeywords, set("text")),
	"background-color":      colorSpecials,

	"grid-row-start": set("auto", "span"), "grid-row-end": set("auto", "span"),
	"grid-column-start": set("auto", "span"), "grid-column-end": set("auto", "span"),
	"grid-template-rows":    set("none", "auto", "min-content", "max-content"),
	"grid-template-columns": set("none", "auto", "min-content", "max-content"),
	"grid-template-areas":   set("none"),

	"row-gap":    set("normal"),
	"column-gap": set("normal"),

	"align-content":   union(set("normal"), baselinePosition, contentDistribution, contentPosition, overflowPosition),
	"justify-content": union(set("normal", "left", "right"), contentDistribution, contentPosition, overflowPosition),
	"align-items":     union(set("normal", "stretch"), baselinePosition, selfPosition, overflowPosition),
	"justify-items":   union(set("normal", "stretch", "legacy", "left", "right"), baselinePosition, selfPosition, overflowPosition),
	"align-self":      union(set("auto", "normal", "stretch"), baselinePosition, selfPosition, overflowPosition),
	"justify-self":    union(set("auto", "normal", "stretch", "left", "right"), baselinePosition, selfPosition, overflowPosition),

	"overflow-x": set("visible", "hidden", "clip", "scroll", "auto"),
	"overflow-y": set("visible", "hidden", "clip", "scroll", "auto"),

	"cue-before": set("none"), "cue-after": set("none"),
	"pause-before": breathStrength, "pause-after": breathStrength,
	"rest-before": breathStrength, "rest-after": breathStrength,
}

// openSets are the longhands that also take author-defined identifiers
// (names, counter styles, grid lines), or every color keyword.
var openSets = set(
	"list-style-type", "font-family", "animation-name", "animation-timeline", "transition-property",
	"grid-row-start", "grid-row-end", "grid-column-start", "grid-column-end",
	"grid-template-rows", "grid-template-columns",
	"border-top-color", "border-right-color", "border-bottom-color", "border-left-color",
	"outline-color", "column-rule-color", "text-decoration-color", "background-color",
)

// IsKnownIdentifier reports whether ident is one of the keywords of
// property. Color properties accept every named color.
func IsKnownIdentifier(property, ident string) bool {
	property = strings.ToLower(property)
	ident = strings.ToLower(ident)
	if identifiers[property][ident] {
		return true
	}
	return isColorProperty(property) && IsColorKeyword(ident)
}

// HasClosedIdentifierSet reports whether every identifier property
// accepts is listed in the database.
func HasClosedIdentifierSet(property string) bool {
	property = strings.ToLower(property)
	_, known := identifiers[property]
	return known && !openSets[property]
}

// Identifiers returns the keyword set of property. The map must not be
// modified.
func Identifiers(property string) map[string]bool {
	return identifiers[strings.ToLower(property)]
}

func isColorProperty(property string) bool {
	return strings.HasSuffix(property, "-color")
}

// SystemFonts are the keywords the font shorthand accepts alone.
var SystemFonts = set("caption", "icon", "menu", "message-box", "small-caption", "status-bar")
