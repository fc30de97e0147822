/*
Package pagesmith assembles web pages from predefined building blocks.

A Session owns the three independently edited models of one page: the
block forest (the document tree), a CSS rule store and a JS rule store,
connected only through the shared selector vocabulary derived from the
tree. Every mutation recomputes the selector index and re-synthesizes
stylesheet, script and document text from scratch; the resulting markup
string is what an embedding application hands to its preview sandbox and
source view.

The heavy lifting lives in the subpackages: forest implements the tree
engine, blocks the static block registry, style and script the rule
stores, gen the code synthesizer. This package wires them into the
single-owner editing loop.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/
package pagesmith

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/pagesmith/pagesmith/blocks"
	"github.com/pagesmith/pagesmith/forest"
	"github.com/pagesmith/pagesmith/gen"
	"github.com/pagesmith/pagesmith/ident"
	"github.com/pagesmith/pagesmith/omap"
	"github.com/pagesmith/pagesmith/script"
	"github.com/pagesmith/pagesmith/style"
)

// tracer traces to 'pagesmith.session'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.session")
}

// Session is the single logical owner of one page being edited. It is
// not safe for concurrent use; operations are applied strictly
// sequentially and each runs to completion, leaving the session in a
// fully recomputed state.
type Session struct {
	ids ident.Generator
	reg blocks.Registry

	doc forest.Forest
	css *style.Store
	js  *script.Store

	selectors  []string
	stylesheet string
	scripttext string
	document   string
}

// NewSession creates a session holding the fixed bootstrap document:
// an html root with a head (title and dynamic style carrier) and a body
// (dynamic script carrier). A nil generator defaults to the random
// production source; tests pass ident.Sequence for reproducible output.
func NewSession(gen ident.Generator) *Session {
	if gen == nil {
		gen = ident.Source()
	}
	s := &Session{
		ids: gen,
		css: style.NewStore(gen),
		js:  script.NewStore(gen),
	}
	s.doc = bootstrap(gen)
	s.recompute()
	return s
}

// bootstrap builds the initial two-level structure. The style and script
// carriers are flagged dynamic here, by the structure builder, with their
// template content cleared; the registry knows nothing about carriers.
func bootstrap(gen ident.Generator) forest.Forest {
	instantiate := func(kind string) *forest.Node {
		d, ok := blocks.Lookup(kind)
		if !ok {
			return nil
		}
		return d.Instantiate(gen.NewID())
	}
	title := instantiate("title")
	styleCarrier := instantiate("style")
	scriptCarrier := instantiate("script")
	head := instantiate("head")
	body := instantiate("body")
	html := instantiate("html")
	if title == nil || styleCarrier == nil || scriptCarrier == nil ||
		head == nil || body == nil || html == nil {
		tracer().Errorf("bootstrap: block catalog is missing a document kind")
		return forest.Forest{}
	}
	styleCarrier.Dynamic = true
	styleCarrier.Content = ""
	scriptCarrier.Dynamic = true
	scriptCarrier.Content = ""
	head.Children = []*forest.Node{title, styleCarrier}
	body.Children = []*forest.Node{scriptCarrier}
	html.Children = []*forest.Node{head, body}
	return forest.Forest{html}
}

// recompute re-derives everything that depends on the three models. It
// runs after every mutation; there is no incremental path.
func (s *Session) recompute() {
	s.stylesheet = gen.CSS(s.css.Rules())
	s.scripttext = gen.JS(s.js.Rules())
	s.document = gen.Document(s.doc, s.stylesheet, s.scripttext)
	s.selectors = forest.Selectors(s.doc)
}

// --- Tree editing ----------------------------------------------------

// DropRequest is the drag/drop contract of the palette and workspace:
// either Kind is set (a new block dragged from the palette) or NodeID is
// set (an existing block being moved). TargetID and Position say where it
// lands; an empty TargetID on a new block defaults into the body.
type DropRequest struct {
	Kind     string
	NodeID   string
	TargetID string
	Position forest.Position
}

// Drop resolves a drag/drop request against the registry and the tree
// engine. Unknown kinds, stale identities and leaf targets degrade to
// no-ops, mirroring the forgiving editing UX.
func (s *Session) Drop(req DropRequest) {
	defer s.recompute()
	if req.NodeID != "" {
		s.doc = forest.Move(s.doc, req.NodeID, req.TargetID, req.Position, s.reg)
		return
	}
	d, ok := blocks.Lookup(req.Kind)
	if !ok {
		return
	}
	node := d.Instantiate(s.ids.NewID())
	targetID, pos := req.TargetID, req.Position
	if targetID == "" {
		if body, found := findByKind(s.doc, "body"); found {
			targetID, pos = body.ID, forest.Inside
		}
	}
	s.doc = forest.Insert(s.doc, node, targetID, pos, s.reg)
}

// UpdateNode applies a partial update (content, name, attribute/style/
// event merges) to one node.
func (s *Session) UpdateNode(id string, patch forest.Patch) {
	s.doc = forest.Update(s.doc, id, patch)
	s.recompute()
}

// RemoveNode deletes a node and its whole subtree.
func (s *Session) RemoveNode(id string) {
	s.doc, _ = forest.Remove(s.doc, id)
	s.recompute()
}

// DuplicateNode deep-clones a node under fresh identities and places the
// clone right after the original.
func (s *Session) DuplicateNode(id string) {
	s.doc = forest.Duplicate(s.doc, id, s.ids)
	s.recompute()
}

// MoveNode reparents or reorders a node, identities preserved.
func (s *Session) MoveNode(id string, targetID string, pos forest.Position) {
	s.doc = forest.Move(s.doc, id, targetID, pos, s.reg)
	s.recompute()
}

// NodeStyles reads the current inline styles of a node, as a copy safe
// to hold across further edits. Together with PasteStyles this is the
// whole style-clipboard flow.
func (s *Session) NodeStyles(id string) (*omap.Map, bool) {
	n, ok := forest.FindByID(s.doc, id)
	if !ok {
		return nil, false
	}
	return n.Styles.Clone(), true
}

// PasteStyles merges the given styles into a node's inline styles.
func (s *Session) PasteStyles(id string, styles *omap.Map) {
	if styles == nil || styles.Len() == 0 {
		return
	}
	s.UpdateNode(id, forest.Patch{Styles: styles})
}

// --- Rule editing ----------------------------------------------------

// AddCSSRule adds a stylesheet rule for a selector; duplicate selectors
// are rejected.
func (s *Session) AddCSSRule(selector string) (string, bool) {
	defer s.recompute()
	return s.css.AddRule(selector)
}

// AddCSSProperty appends a catalog property with its default value.
func (s *Session) AddCSSProperty(ruleID string, kind string) (string, bool) {
	defer s.recompute()
	return s.css.AddProperty(ruleID, kind)
}

// UpdateCSSValue edits one property value.
func (s *Session) UpdateCSSValue(ruleID string, propertyID string, value string) bool {
	defer s.recompute()
	return s.css.UpdateValue(ruleID, propertyID, value)
}

// AddJSRule adds an event rule for a selector.
func (s *Session) AddJSRule(selector string, event script.Event) (string, bool) {
	defer s.recompute()
	return s.js.AddRule(selector, event)
}

// AddJSAction appends a catalog action with its default parameters.
func (s *Session) AddJSAction(ruleID string, kind string) (string, bool) {
	defer s.recompute()
	return s.js.AddAction(ruleID, kind)
}

// UpdateJSParam edits one action parameter.
func (s *Session) UpdateJSParam(ruleID string, actionID string, key string, value string) bool {
	defer s.recompute()
	return s.js.UpdateParam(ruleID, actionID, key, value)
}

// --- Reads -----------------------------------------------------------

// Document returns the synthesized markup for the current state. The
// preview sandbox and the source view both consume this same opaque
// string.
func (s *Session) Document() string { return s.document }

// StyleSheet returns the synthesized stylesheet text.
func (s *Session) StyleSheet() string { return s.stylesheet }

// Script returns the synthesized script text.
func (s *Session) Script() string { return s.scripttext }

// Selectors returns the selector vocabulary of the current tree, in
// first-occurrence order.
func (s *Session) Selectors() []string {
	out := make([]string, len(s.selectors))
	copy(out, s.selectors)
	return out
}

// Forest returns the current document snapshot. Treat it as immutable;
// the next mutation replaces it wholesale.
func (s *Session) Forest() forest.Forest { return s.doc }

func findByKind(list []*forest.Node, kind string) (*forest.Node, bool) {
	for _, n := range list {
		if n.Kind == kind {
			return n, true
		}
		if found, ok := findByKind(n.Children, kind); ok {
			return found, true
		}
	}
	return nil, false
}
