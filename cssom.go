// Package cssom keeps CSS declaration blocks as longhand properties and
// writes them back in their shortest lossless form.
//
// Setting a shorthand decomposes it into its longhands; reading the block
// folds the longhands back into shorthands wherever that round-trips.
//
// # Declarations
//
//	decl := cssom.ParseDeclaration("margin: 1px 2px; margin-left: 3px", cssom.Config{})
//	decl.GetPropertyValue("margin-left") // "3px"
//	decl.CSSText()                       // "margin: 1px 2px 1px 3px;"
//	decl.MinifiedCSSText()               // "margin:1px 2px 1px 3px;"
//
// Values that cannot be decomposed statically, such as var() references or
// vendor-prefixed functions, are kept as written and re-emitted verbatim.
//
// # Checking stylesheets
//
// Check reports shorthands that fail to parse and groups of longhands that
// could be written as one shorthand:
//
//	result, err := cssom.Check(cssom.CheckConfig{
//		Paths: []string{"web/**/*.css"},
//	})
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssom/cmd/cssom@latest
package cssom
