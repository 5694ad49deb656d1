package meta

import (
	"strings"

	"github.com/yacobolo/cssom/internal/value"
)

// initialText is the initial value of every longhand a shorthand sets.
// font-family has none: it is user-agent dependent.
var initialText = map[string]string{
	"margin-top": "0", "margin-right": "0", "margin-bottom": "0", "margin-left": "0",
	"padding-top": "0", "padding-right": "0", "padding-bottom": "0", "padding-left": "0",
	"top": "auto", "right": "auto", "bottom": "auto", "left": "auto",

	"border-top-width": "medium", "border-right-width": "medium",
	"border-bottom-width": "medium", "border-left-width": "medium",
	"border-top-style": "none", "border-right-style": "none",
	"border-bottom-style": "none", "border-left-style": "none",
	"border-top-color": "currentcolor", "border-right-color": "currentcolor",
	"border-bottom-color": "currentcolor", "border-left-color": "currentcolor",

	"border-top-left-radius": "0", "border-top-right-radius": "0",
	"border-bottom-right-radius": "0", "border-bottom-left-radius": "0",

	"border-image-source": "none",
	"border-image-slice":  "100%",
	"border-image-width":  "1",
	"border-image-outset": "0",
	"border-image-repeat": "stretch",

	"outline-width":     "medium",
	"outline-style":     "none",
	"outline-color":     "currentcolor",
	"column-rule-width": "medium",
	"column-rule-style": "none",
	"column-rule-color": "currentcolor",

	"column-width": "auto",
	"column-count": "auto",

	"flex-grow":      "0",
	"flex-shrink":    "1",
	"flex-basis":     "auto",
	"flex-direction": "row",
	"flex-wrap":      "nowrap",

	"list-style-position": "outside",
	"list-style-image":    "none",
	"list-style-type":     "disc",

	"font-style":              "normal",
	"font-variant-caps":       "normal",
	"font-weight":             "normal",
	"font-stretch":            "normal",
	"font-size":               "medium",
	"line-height":             "normal",
	"font-variant-ligatures":  "normal",
	"font-variant-alternates": "normal",
	"font-variant-numeric":    "normal",
	"font-variant-east-asian": "normal",
	"font-variant-position":   "normal",
	"font-size-adjust":        "none",
	"font-kerning":            "auto",

	"text-decoration-line":      "none",
	"text-decoration-style":     "solid",
	"text-decoration-color":     "currentcolor",
	"text-decoration-thickness": "auto",

	"animation-duration":        "0s",
	"animation-timing-function": "ease",
	"animation-delay":           "0s",
	"animation-iteration-count": "1",
	"animation-direction":       "normal",
	"animation-fill-mode":       "none",
	"animation-play-state":      "running",
	"animation-name":            "none",
	"animation-timeline":        "auto",
	"animation-range-start":     "normal",
	"animation-range-end":       "normal",

	"transition-property":        "all",
	"transition-duration":        "0s",
	"transition-timing-function": "ease",
	"transition-delay":           "0s",
	"transition-behavior":        "normal",

	"background-image":      "none",
	"background-position":   "0% 0%",
	"background-size":       "auto",
	"background-repeat":     "repeat",
	"background-attachment": "scroll",
	"background-origin":     "padding-box",
	"background-clip":       "border-box",
	"background-color":      "transparent",

	"grid-row-start": "auto", "grid-row-end": "auto",
	"grid-column-start": "auto", "grid-column-end": "auto",
	"grid-template-rows":    "none",
	"grid-template-columns": "none",
	"grid-template-areas":   "none",

	"row-gap":         "normal",
	"column-gap":      "normal",
	"align-content":   "normal",
	"justify-content": "normal",
	"align-items":     "normal",
	"justify-items":   "legacy",
	"align-self":      "auto",
	"justify-self":    "auto",
	"overflow-x":      "visible",
	"overflow-y":      "visible",

	"cue-before": "none", "cue-after": "none",
	"pause-before": "none", "pause-after": "none",
	"rest-before": "none", "rest-after": "none",
}

var initials = map[string]value.Value{}

func init() {
	for name, text := range initialText {
		initials[name] = value.MustParse(text)
	}
}

// Initial returns the initial value of longhand.
func Initial(longhand string) (value.Value, bool) {
	v, ok := initials[strings.ToLower(longhand)]
	return v, ok
}

// IsInitial reports whether v equals the initial value of longhand.
func IsInitial(longhand string, v value.Value) bool {
	initial, ok := Initial(longhand)
	return ok && initial.Equal(v)
}

// AllowsList reports whether a comma-separated value of longhand can be
// written inside its shorthand: layered longhands and font-family.
func AllowsList(longhand string) bool {
	longhand = strings.ToLower(longhand)
	if longhand == "font-family" {
		return true
	}
	for _, sh := range Containing(longhand) {
		if sh.Layered() {
			return true
		}
	}
	return false
}
