/*
Package style holds the CSS side of the builder: the catalog of style
property blocks the CSS palette offers, and the ordered store of
selector-scoped rules the CSS editor assembles from them.

Property values are opaque strings throughout; the store never interprets
or normalizes them. Within one rule, duplicate property names are allowed
and preserved in insertion order, so synthesis renders every entry the
user placed, duplicates included.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/
package style

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'pagesmith.style'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.style")
}

// Category groups property kinds for palette display.
type Category string

// Palette categories.
const (
	Layout     Category = "Layout"
	Spacing    Category = "Spacing"
	Typography Category = "Typography"
	Background Category = "Background & Border"
	Effects    Category = "Effects"
)

// Descriptor describes one style property block: the CSS property it sets
// (camel-cased, hyphenated at synthesis time) and the value a fresh
// instance starts with.
type Descriptor struct {
	Kind     string
	Name     string
	Category Category
	Property string
	Default  string
}

var catalog = []Descriptor{
	{Kind: "color", Name: "Text Color", Category: Typography, Property: "color", Default: "#000000"},
	{Kind: "fontSize", Name: "Font Size", Category: Typography, Property: "fontSize", Default: "16px"},
	{Kind: "fontWeight", Name: "Font Weight", Category: Typography, Property: "fontWeight", Default: "normal"},
	{Kind: "backgroundColor", Name: "Background Color", Category: Background, Property: "backgroundColor", Default: "#ffffff"},
	{Kind: "border", Name: "Border", Category: Background, Property: "border", Default: "1px solid #cccccc"},
	{Kind: "borderRadius", Name: "Border Radius", Category: Background, Property: "borderRadius", Default: "4px"},
	{Kind: "padding", Name: "Padding", Category: Spacing, Property: "padding", Default: "10px"},
	{Kind: "margin", Name: "Margin", Category: Spacing, Property: "margin", Default: "10px"},
	{Kind: "displayFlex", Name: "Flex Layout", Category: Layout, Property: "display", Default: "flex"},
	{Kind: "flexDirection", Name: "Flex Direction", Category: Layout, Property: "flexDirection", Default: "row"},
	{Kind: "justifyContent", Name: "Justify Content", Category: Layout, Property: "justifyContent", Default: "flex-start"},
	{Kind: "alignItems", Name: "Align Items", Category: Layout, Property: "alignItems", Default: "flex-start"},
}

var byKind = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(catalog))
	for _, d := range catalog {
		m[d.Kind] = d
	}
	return m
}()

// Lookup returns the descriptor for a property kind.
func Lookup(kind string) (Descriptor, bool) {
	d, ok := byKind[kind]
	return d, ok
}

// Kinds lists all property kind identifiers in catalog order.
func Kinds() []string {
	kinds := make([]string, len(catalog))
	for i, d := range catalog {
		kinds[i] = d.Kind
	}
	return kinds
}

// Hyphenate converts a camel-cased property name to its hyphenated CSS
// form: every upper-case letter becomes a hyphen followed by its
// lower-case form, e.g. "backgroundColor" to "background-color".
func Hyphenate(property string) string {
	var sb strings.Builder
	for _, r := range property {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
