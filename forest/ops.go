package forest

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/

import (
	"github.com/pagesmith/pagesmith/ident"
)

// FindByID locates a node anywhere in the forest. The scan is depth-first
// and left-to-right, descending into a node's children before moving on
// to the next sibling, and returns the first match. Identities are unique,
// so at most one node can match; the scan order is fixed regardless, to
// keep behavior deterministic when debugging a corrupted tree.
func FindByID(f Forest, id string) (*Node, bool) {
	if id == "" {
		return nil, false
	}
	return findInList(f, id)
}

func findInList(list []*Node, id string) (*Node, bool) {
	for _, n := range list {
		if n.ID == id {
			return n, true
		}
		if found, ok := findInList(n.Children, id); ok {
			return found, true
		}
	}
	return nil, false
}

// Update applies a partial update to the node with the given identity and
// returns the resulting forest. Scalar patch fields replace the node's
// values wholesale; map-valued fields are shallow-merged. An unknown
// identity leaves the forest unchanged.
func Update(f Forest, id string, patch Patch) Forest {
	out, changed := updateList(f, id, patch)
	if !changed {
		tracer().Debugf("update: node %s not in forest, no-op", id)
		return f
	}
	return out
}

func updateList(list []*Node, id string, patch Patch) ([]*Node, bool) {
	for i, n := range list {
		if n.ID == id {
			out := copyList(list)
			out[i] = patch.apply(n)
			return out, true
		}
		if len(n.Children) > 0 {
			if kids, changed := updateList(n.Children, id, patch); changed {
				out := copyList(list)
				out[i] = withChildren(n, kids)
				return out, true
			}
		}
	}
	return list, false
}

// Insert places a new node into the forest. With an empty targetID the
// node is appended at root level. Inside appends it as the target's last
// child and requires the target kind to be a container per the catalog;
// Before and After splice it into whichever list currently holds the
// target, directly next to it. A target that cannot be found, or an
// Inside insert against a leaf, is a no-op.
func Insert(f Forest, n *Node, targetID string, pos Position, cat Catalog) Forest {
	if n == nil {
		return f
	}
	if targetID == "" {
		return append(copyList(f), n)
	}
	out, ok := insertList(f, n, targetID, pos, cat)
	if !ok {
		tracer().Debugf("insert %v target %s: not applicable, no-op", pos, targetID)
		return f
	}
	return out
}

func insertList(list []*Node, n *Node, targetID string, pos Position, cat Catalog) ([]*Node, bool) {
	for i, t := range list {
		if t.ID == targetID {
			switch pos {
			case Inside:
				if cat == nil || !cat.IsContainer(t.Kind) {
					return list, false
				}
				kids := append(copyList(t.Children), n)
				out := copyList(list)
				out[i] = withChildren(t, kids)
				return out, true
			case Before:
				return spliceAt(list, i, n), true
			case After:
				return spliceAt(list, i+1, n), true
			}
			return list, false
		}
		if len(t.Children) > 0 {
			if kids, ok := insertList(t.Children, n, targetID, pos, cat); ok {
				out := copyList(list)
				out[i] = withChildren(t, kids)
				return out, true
			}
		}
	}
	return list, false
}

// Remove detaches the node with the given identity together with its
// entire subtree, wherever it sits. It returns the residual forest and
// the detached subtree root, which keeps all identities intact and may
// be re-inserted (this is how Move works). A miss returns the input
// forest and nil.
func Remove(f Forest, id string) (Forest, *Node) {
	out, removed := removeList(f, id)
	if removed == nil {
		tracer().Debugf("remove: node %s not in forest, no-op", id)
		return f, nil
	}
	return out, removed
}

func removeList(list []*Node, id string) ([]*Node, *Node) {
	for i, n := range list {
		if n.ID == id {
			out := make([]*Node, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, n
		}
		if len(n.Children) > 0 {
			if kids, removed := removeList(n.Children, id); removed != nil {
				out := copyList(list)
				out[i] = withChildren(n, kids)
				return out, removed
			}
		}
	}
	return list, nil
}

// Move reparents or reorders a node: it is detached with its subtree and
// re-inserted relative to targetID, all identities unchanged. Moving a
// node onto itself or into its own subtree is a no-op; after detaching,
// such a target no longer exists, and dropping the subtree on the floor
// is not an acceptable outcome of a mis-aimed drag.
func Move(f Forest, id string, targetID string, pos Position, cat Catalog) Forest {
	if id == "" || id == targetID {
		return f
	}
	residual, detached := removeList(f, id)
	if detached == nil {
		tracer().Debugf("move: node %s not in forest, no-op", id)
		return f
	}
	if targetID == "" {
		return append(copyList(residual), detached)
	}
	out, ok := insertList(residual, detached, targetID, pos, cat)
	if !ok {
		tracer().Debugf("move %s %v target %s: not applicable, no-op", id, pos, targetID)
		return f
	}
	return Forest(out)
}

// Duplicate deep-clones the node with the given identity, assigning a
// fresh identity to the clone and to every descendant, and splices the
// clone in as the immediate next sibling of the original. A miss leaves
// the forest unchanged.
func Duplicate(f Forest, id string, gen ident.Generator) Forest {
	if gen == nil {
		return f
	}
	out, ok := duplicateList(f, id, gen)
	if !ok {
		tracer().Debugf("duplicate: node %s not in forest, no-op", id)
		return f
	}
	return out
}

func duplicateList(list []*Node, id string, gen ident.Generator) ([]*Node, bool) {
	for i, n := range list {
		if n.ID == id {
			return spliceAt(list, i+1, cloneWithFreshIDs(n, gen)), true
		}
		if len(n.Children) > 0 {
			if kids, ok := duplicateList(n.Children, id, gen); ok {
				out := copyList(list)
				out[i] = withChildren(n, kids)
				return out, true
			}
		}
	}
	return list, false
}

func cloneWithFreshIDs(n *Node, gen ident.Generator) *Node {
	cp := *n
	cp.ID = gen.NewID()
	cp.Attributes = n.Attributes.Clone()
	cp.Styles = n.Styles.Clone()
	cp.Events = n.Events.Clone()
	cp.Children = make([]*Node, len(n.Children))
	for i, ch := range n.Children {
		cp.Children[i] = cloneWithFreshIDs(ch, gen)
	}
	return &cp
}
