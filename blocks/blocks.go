/*
Package blocks is the static catalog of block kinds the builder offers.

The registry is pure data: a descriptor classifies a kind as container or
leaf, names it for palette display, and carries the template defaults a
fresh node of that kind starts with. Presentation concerns (icons, drag
widgets) live entirely in the embedding UI, which queries this registry;
rendering markup for a kind is the code synthesizer's business.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/
package blocks

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/pagesmith/pagesmith/forest"
	"github.com/pagesmith/pagesmith/omap"
)

// tracer traces to 'pagesmith.blocks'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.blocks")
}

// Category groups block kinds for palette display.
type Category string

// Palette categories.
const (
	Document   Category = "Document"
	Structure  Category = "Structure"
	Typography Category = "Typography"
	Media      Category = "Media"
	Form       Category = "Form"
	Navigation Category = "Navigation"
	Lists      Category = "Lists"
	Utility    Category = "Utility"
)

// Descriptor describes one block kind. Descriptors are immutable static
// data; Instantiate is the only way to obtain a node of the kind.
type Descriptor struct {
	Kind      string
	Name      string
	Category  Category
	Container bool
	content   string
	attrs     []string
	styles    []string
	events    []string
}

// Instantiate builds a fresh node of this kind under the given identity,
// with the kind's default attributes, styles, events and content, and no
// children. The carrier kinds "style" and "script" are instantiated like
// any other leaf; flagging them dynamic is the bootstrap builder's job.
func (d Descriptor) Instantiate(id string) *forest.Node {
	return &forest.Node{
		ID:         id,
		Kind:       d.Kind,
		Name:       d.Name,
		Content:    d.content,
		Attributes: omap.From(d.attrs...),
		Styles:     omap.From(d.styles...),
		Events:     omap.From(d.events...),
	}
}

// Lookup returns the descriptor for a kind. Unknown kinds report ok=false
// and are treated by callers as invalid-shape no-ops.
func Lookup(kind string) (Descriptor, bool) {
	d, ok := byKind[kind]
	if !ok {
		tracer().Debugf("lookup: unknown block kind %q", kind)
	}
	return d, ok
}

// Kinds lists all kind identifiers in catalog order.
func Kinds() []string {
	kinds := make([]string, len(catalog))
	for i, d := range catalog {
		kinds[i] = d.Kind
	}
	return kinds
}

// Registry adapts the catalog to forest.Catalog for the tree engine.
// Unknown kinds are not containers.
type Registry struct{}

// IsContainer reports whether nodes of the given kind may hold children.
func (Registry) IsContainer(kind string) bool {
	d, ok := byKind[kind]
	return ok && d.Container
}

var _ forest.Catalog = Registry{}

var catalog = []Descriptor{
	// Document
	{Kind: "html", Name: "HTML Document", Category: Document, Container: true,
		attrs: []string{"lang", "en"}},
	{Kind: "head", Name: "Head Section", Category: Document, Container: true},
	{Kind: "body", Name: "Body Section", Category: Document, Container: true,
		styles: []string{"fontFamily", "sans-serif", "padding", "1rem", "backgroundColor", "#ffffff"}},
	{Kind: "title", Name: "Page Title", Category: Document,
		content: "My Web Page"},

	// Utility carriers
	{Kind: "style", Name: "CSS Styles", Category: Utility,
		content: "/* body { background-color: #f0f0f0; } */"},
	{Kind: "script", Name: "JavaScript", Category: Utility,
		content: `// console.log("Hello!");`},

	// Structure
	{Kind: "div", Name: "Block (div)", Category: Structure, Container: true,
		attrs: []string{"class", "p-4 border border-dashed border-gray-300 min-h-[50px]", "id", ""}},
	{Kind: "header", Name: "Header", Category: Structure, Container: true,
		attrs: []string{"class", "p-4 bg-gray-100 border-b", "id", ""}},
	{Kind: "footer", Name: "Footer", Category: Structure, Container: true,
		attrs: []string{"class", "p-4 bg-gray-800 text-white text-center", "id", ""}},
	{Kind: "main", Name: "Main Content", Category: Structure, Container: true,
		attrs: []string{"class", "container mx-auto p-4", "id", ""}},
	{Kind: "section", Name: "Section", Category: Structure, Container: true,
		attrs: []string{"class", "py-8", "id", ""}},

	// Typography
	{Kind: "h1", Name: "Heading 1", Category: Typography,
		content: "Main heading",
		attrs:   []string{"class", "text-4xl font-bold", "id", ""}},
	{Kind: "h2", Name: "Heading 2", Category: Typography,
		content: "Subheading",
		attrs:   []string{"class", "text-3xl font-bold", "id", ""}},
	{Kind: "h3", Name: "Heading 3", Category: Typography,
		content: "Smaller heading",
		attrs:   []string{"class", "text-2xl font-bold", "id", ""}},
	{Kind: "p", Name: "Paragraph", Category: Typography,
		content: "This is a paragraph of text. You can edit this content.",
		attrs:   []string{"class", "my-2", "id", ""}},
	{Kind: "span", Name: "Inline Text (span)", Category: Typography,
		content: "Inline text",
		attrs:   []string{"class", "", "id", ""}},
	{Kind: "strong", Name: "Bold Text", Category: Typography,
		content: "Important text",
		attrs:   []string{"class", "", "id", ""}},
	{Kind: "hr", Name: "Horizontal Rule", Category: Typography,
		attrs: []string{"class", "my-4 border-gray-300", "id", ""}},

	// Navigation
	{Kind: "a", Name: "Link", Category: Navigation,
		content: "Click here",
		attrs:   []string{"href", "#", "class", "text-blue-600 hover:underline", "id", ""}},

	// Media
	{Kind: "img", Name: "Image", Category: Media,
		attrs: []string{"src", "https://picsum.photos/400/200", "alt", "Sample image", "class", "rounded-lg", "id", ""}},

	// Form
	{Kind: "form", Name: "Form", Category: Form, Container: true,
		attrs: []string{"action", "#", "method", "post", "class", "space-y-4", "id", ""}},
	{Kind: "label", Name: "Label", Category: Form,
		content: "This is a label",
		attrs:   []string{"for", "", "class", "block text-sm font-medium text-gray-700", "id", ""}},
	{Kind: "button", Name: "Button", Category: Form,
		content: "Press me",
		attrs:   []string{"class", "px-4 py-2 bg-blue-600 text-white font-semibold rounded-lg shadow-md hover:bg-blue-700", "id", ""},
		events:  []string{"onclick", ""}},
	{Kind: "input", Name: "Text Input", Category: Form,
		attrs:  []string{"type", "text", "placeholder", "Type here...", "class", "px-3 py-2 border border-gray-300 rounded-md shadow-sm", "id", ""},
		events: []string{"onchange", "", "oninput", ""}},
	{Kind: "textarea", Name: "Text Area", Category: Form,
		attrs: []string{"placeholder", "Enter longer content...", "class", "px-3 py-2 border border-gray-300 rounded-md shadow-sm w-full", "id", ""}},

	// Lists
	{Kind: "ul", Name: "List (unordered)", Category: Lists, Container: true,
		attrs: []string{"class", "list-disc list-inside ml-4", "id", ""}},
	{Kind: "ol", Name: "List (ordered)", Category: Lists, Container: true,
		attrs: []string{"class", "list-decimal list-inside ml-4", "id", ""}},
	{Kind: "li", Name: "List Item", Category: Lists,
		content: "List item content",
		attrs:   []string{"class", "", "id", ""}},
}

var byKind = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(catalog))
	for _, d := range catalog {
		m[d.Kind] = d
	}
	return m
}()
