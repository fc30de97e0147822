package forest

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/

import "strings"

// Selectors derives the selector vocabulary shared by the CSS and JS
// editors from the current forest. Nodes are visited depth-first in
// pre-order; each contributes "#id" for a non-empty id attribute, ".c"
// for every whitespace-separated class token, and its bare kind token,
// in that order. Duplicates are dropped, first occurrence wins.
//
// The result is a vocabulary, not a constraint: rule stores accept any
// selector string, and rules referencing selectors that have vanished
// from the tree are a valid, inert state.
func Selectors(f Forest) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	var walk func(list []*Node)
	walk = func(list []*Node) {
		for _, n := range list {
			if id, ok := n.Attributes.Get("id"); ok && id != "" {
				add("#" + id)
			}
			if classes, ok := n.Attributes.Get("class"); ok {
				for _, c := range strings.Fields(classes) {
					add("." + c)
				}
			}
			add(n.Kind)
			walk(n.Children)
		}
	}
	walk(f)
	return out
}
