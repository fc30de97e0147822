package gen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/

import (
	"strings"

	"github.com/pagesmith/pagesmith/blocks"
	"github.com/pagesmith/pagesmith/forest"
	"github.com/pagesmith/pagesmith/omap"
	"github.com/pagesmith/pagesmith/style"
)

// fallback is rendered for an empty forest; synthesis degrades to a
// minimal valid document rather than failing.
const fallback = "<!DOCTYPE html>\n<html>\n<head></head>\n<body></body>\n</html>"

// headPreamble is emitted at the top of every head element, ahead of its
// children: charset, viewport, and the Tailwind CDN the block templates'
// utility classes rely on.
const headPreamble = "  <meta charset=\"UTF-8\">\n" +
	"  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n" +
	"  <script src=\"https://cdn.tailwindcss.com\"></script>\n"

// voidKinds render as self-closing tags without content or children.
var voidKinds = map[string]bool{"hr": true, "img": true, "input": true}

// rawKinds are the carrier kinds whose content embeds unescaped.
var rawKinds = map[string]bool{"style": true, "script": true}

// Document renders the forest into a complete markup document. Before
// rendering, the freshly synthesized stylesheet and script text are
// injected as the content of the dynamic style and script carrier nodes;
// the injection happens on a local snapshot on every call and is never
// persisted back into user-edited state. An empty forest yields a minimal
// fallback document.
func Document(f forest.Forest, css string, js string) string {
	if len(f) == 0 {
		tracer().Debugf("document: empty forest, rendering fallback")
		return fallback
	}
	f = injectCarriers(f, css, js)
	parts := make([]string, len(f))
	for i, root := range f {
		parts[i] = renderNode(root)
	}
	return strings.Join(parts, "\n")
}

// injectCarriers overwrites the content of the dynamic style/script
// carriers. Carriers are located by their dynamic flag anywhere in the
// forest, not by position, so they survive being moved around. A missing
// carrier simply drops that output from the document.
func injectCarriers(f forest.Forest, css string, js string) forest.Forest {
	if carrier, ok := findCarrier(f, "style"); ok {
		f = forest.Update(f, carrier.ID, forest.Patch{Content: &css})
	} else {
		tracer().Debugf("document: no style carrier in forest")
	}
	if carrier, ok := findCarrier(f, "script"); ok {
		f = forest.Update(f, carrier.ID, forest.Patch{Content: &js})
	} else {
		tracer().Debugf("document: no script carrier in forest")
	}
	return f
}

func findCarrier(list []*forest.Node, kind string) (*forest.Node, bool) {
	for _, n := range list {
		if n.Dynamic && n.Kind == kind {
			return n, true
		}
		if found, ok := findCarrier(n.Children, kind); ok {
			return found, true
		}
	}
	return nil, false
}

// renderNode emits the markup for one node and its subtree.
func renderNode(n *forest.Node) string {
	switch n.Kind {
	case "html":
		return "<!DOCTYPE html>\n<html" + attributeString(n) + ">\n" +
			renderChildren(n) + "\n</html>"
	case "head":
		return "<head>\n" + headPreamble + renderChildren(n) + "\n</head>"
	case "body":
		return "<body" + attributeString(n) + ">\n" + renderChildren(n) + "\n</body>"
	case "title":
		return "<title>" + EscapeHTML(n.Content) + "</title>"
	}
	if rawKinds[n.Kind] {
		return "<" + n.Kind + ">" + n.Content + "</" + n.Kind + ">"
	}
	if voidKinds[n.Kind] {
		return "<" + n.Kind + attributeString(n) + " />"
	}
	if (blocks.Registry{}).IsContainer(n.Kind) || len(n.Children) > 0 {
		return "<" + n.Kind + attributeString(n) + ">" + renderChildren(n) + "</" + n.Kind + ">"
	}
	return "<" + n.Kind + attributeString(n) + ">" + EscapeHTML(n.Content) + "</" + n.Kind + ">"
}

func renderChildren(n *forest.Node) string {
	parts := make([]string, len(n.Children))
	for i, ch := range n.Children {
		parts[i] = renderNode(ch)
	}
	return strings.Join(parts, "\n")
}

// attributeString flattens a node's attributes, inline styles and events
// into one attribute run, each value escaped. Entries with empty values
// are omitted; an empty run renders as the empty string (no stray space).
func attributeString(n *forest.Node) string {
	var parts []string
	for _, k := range n.Attributes.Keys() {
		if v, _ := n.Attributes.Get(k); v != "" {
			parts = append(parts, k+`="`+EscapeHTML(v)+`"`)
		}
	}
	if s := inlineStyle(n.Styles); s != "" {
		parts = append(parts, `style="`+EscapeHTML(s)+`"`)
	}
	for _, k := range n.Events.Keys() {
		if v, _ := n.Events.Get(k); v != "" {
			parts = append(parts, k+`="`+EscapeHTML(v)+`"`)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

// inlineStyle flattens a style map into "key: value" pairs joined by
// "; ", property names hyphenated, empty values omitted.
func inlineStyle(styles *omap.Map) string {
	var pairs []string
	for _, k := range styles.Keys() {
		if v, _ := styles.Get(k); v != "" {
			pairs = append(pairs, style.Hyphenate(k)+": "+v)
		}
	}
	return strings.Join(pairs, "; ")
}
