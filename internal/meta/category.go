package meta

import (
	"sort"
	"strings"
)

// Category groups related shorthands in reports.
type Category string

// Shorthand categories
const (
	CategoryVisual     Category = "Visual"
	CategoryLayout     Category = "Layout"
	CategoryTypography Category = "Typography"
	CategoryEffects    Category = "Effects"
	CategorySpeech     Category = "Speech"
	CategoryInternal   Category = "Internal"
)

// shorthandCategories maps shorthands to categories
var shorthandCategories = map[Shorthand]Category{
	// Visual
	Border:       CategoryVisual,
	BorderWidth:  CategoryVisual,
	BorderStyle:  CategoryVisual,
	BorderColor:  CategoryVisual,
	BorderTop:    CategoryVisual,
	BorderRight:  CategoryVisual,
	BorderBottom: CategoryVisual,
	BorderLeft:   CategoryVisual,
	BorderRadius: CategoryVisual,
	BorderImage:  CategoryVisual,
	Outline:      CategoryVisual,
	ColumnRule:   CategoryVisual,
	Background:   CategoryVisual,

	// Layout
	Margin:       CategoryLayout,
	Padding:      CategoryLayout,
	Inset:        CategoryLayout,
	Columns:      CategoryLayout,
	Flex:         CategoryLayout,
	FlexFlow:     CategoryLayout,
	GridArea:     CategoryLayout,
	GridRow:      CategoryLayout,
	GridColumn:   CategoryLayout,
	GridTemplate: CategoryLayout,
	Gap:          CategoryLayout,
	PlaceContent: CategoryLayout,
	PlaceItems:   CategoryLayout,
	PlaceSelf:    CategoryLayout,
	Overflow:     CategoryLayout,

	// Typography
	Font:           CategoryTypography,
	FontVariant:    CategoryTypography,
	TextDecoration: CategoryTypography,
	ListStyle:      CategoryTypography,

	// Effects
	Animation:  CategoryEffects,
	Transition: CategoryEffects,

	// Speech
	Cue:   CategorySpeech,
	Pause: CategorySpeech,
	Rest:  CategorySpeech,
}

// Category returns the report category of the shorthand.
func (sh Shorthand) Category() Category {
	if cat, exists := shorthandCategories[sh]; exists {
		return cat
	}
	return CategoryLayout
}

// CategorizeProperty determines the category of any property name, the
// way a stylesheet report groups it.
func CategorizeProperty(name string) Category {
	name = strings.ToLower(name)

	if sh, ok := ByName(name); ok {
		return sh.Category()
	}

	// Vendor-prefixed properties are never decomposed
	if IsVendorPrefixed(name) {
		return CategoryInternal
	}

	// A longhand takes the category of its widest shorthand
	if owners := Containing(name); len(owners) > 0 {
		return owners[0].Category()
	}

	return CategoryLayout
}

// IsVendorPrefixed reports whether a property name carries a vendor
// prefix.
func IsVendorPrefixed(name string) bool {
	return strings.HasPrefix(name, "-webkit-") ||
		strings.HasPrefix(name, "-moz-") ||
		strings.HasPrefix(name, "-ms-") ||
		strings.HasPrefix(name, "-o-")
}

// GroupByCategory groups shorthand names by category, sorted by name
// within each category.
func GroupByCategory(names []string) map[Category][]string {
	result := make(map[Category][]string)

	for _, name := range names {
		cat := CategorizeProperty(name)
		result[cat] = append(result[cat], name)
	}

	for cat := range result {
		sort.Strings(result[cat])
	}

	return result
}
