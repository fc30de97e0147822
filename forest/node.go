/*
Package forest implements the document tree engine of the page builder.

A document is an ordered forest of block nodes. All editing operations
are snapshot-pure: they take a Forest, leave it untouched, and return a
new Forest that shares every unchanged subtree with its input. This keeps
change detection in embedding applications trivial (pointer comparison)
and makes every state transition safe to hold on to.

Operations that reference a node which does not exist are silent no-ops
returning the input forest. The editing surface is driven by trusted UI
affordances; a stale identity is an everyday occurrence during drag and
drop, not an error.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/
package forest

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pagesmith/pagesmith/omap"
)

// tracer traces to 'pagesmith.forest'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.forest")
}

// Node is a single block in the document tree.
//
// ID is unique across the whole forest and immutable once assigned.
// Kind references a block registry entry, which decides whether the node
// is a container (may hold children) or a leaf. Content carries the
// textual payload of leaf nodes; for nodes flagged Dynamic it is
// machine-managed by the code synthesizer and overwritten on every
// recompute.
type Node struct {
	ID         string
	Kind       string
	Name       string
	Content    string
	Dynamic    bool
	Attributes *omap.Map
	Styles     *omap.Map
	Events     *omap.Map
	Children   []*Node
}

func (n *Node) String() string {
	return fmt.Sprintf("(%s #%s ch=%d)", n.Kind, n.ID, len(n.Children))
}

// Forest is an ordered list of root nodes. Documents built through the
// session facade have a single root, but the model permits more.
type Forest []*Node

// Catalog answers container/leaf classification for block kinds. The
// block registry implements it; Insert and Move consult it before
// placing children inside a target.
type Catalog interface {
	IsContainer(kind string) bool
}

// Position selects where an inserted node lands relative to its target.
type Position int

const (
	Inside Position = iota // as last child of the target
	Before                 // as sibling immediately before the target
	After                  // as sibling immediately after the target
)

func (p Position) String() string {
	switch p {
	case Inside:
		return "inside"
	case Before:
		return "before"
	case After:
		return "after"
	}
	return "invalid"
}

// Patch is a partial node update. Nil fields are left alone; scalar
// fields replace wholesale, map fields are shallow-merged (patch entries
// overwrite same-key entries, all other keys survive).
type Patch struct {
	Name       *string
	Content    *string
	Dynamic    *bool
	Attributes *omap.Map
	Styles     *omap.Map
	Events     *omap.Map
}

// apply returns a copy of n with the patch applied. n is not modified.
func (p Patch) apply(n *Node) *Node {
	cp := *n
	if p.Name != nil {
		cp.Name = *p.Name
	}
	if p.Content != nil {
		cp.Content = *p.Content
	}
	if p.Dynamic != nil {
		cp.Dynamic = *p.Dynamic
	}
	if p.Attributes != nil {
		cp.Attributes = n.Attributes.Merge(p.Attributes)
	}
	if p.Styles != nil {
		cp.Styles = n.Styles.Merge(p.Styles)
	}
	if p.Events != nil {
		cp.Events = n.Events.Merge(p.Events)
	}
	return &cp
}

// StringPtr is a convenience for building Patch scalar fields inline.
func StringPtr(s string) *string { return &s }

// BoolPtr is a convenience for building Patch.Dynamic inline.
func BoolPtr(b bool) *bool { return &b }

// copyList duplicates a child slice so a sibling can be replaced without
// touching the input snapshot.
func copyList(list []*Node) []*Node {
	out := make([]*Node, len(list))
	copy(out, list)
	return out
}

// spliceAt returns a copy of list with n inserted at index i.
func spliceAt(list []*Node, i int, n *Node) []*Node {
	out := make([]*Node, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, n)
	out = append(out, list[i:]...)
	return out
}

// withChildren returns a copy of n holding the given child list.
func withChildren(n *Node, children []*Node) *Node {
	cp := *n
	cp.Children = children
	return &cp
}
