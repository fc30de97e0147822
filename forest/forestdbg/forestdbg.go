/*
Package forestdbg implements helpers to debug a block forest.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/
package forestdbg

import (
	"fmt"

	"github.com/pagesmith/pagesmith/forest"
	tp "github.com/xlab/treeprint"
)

// Print renders a forest as an indented tree diagram, one line per node
// with kind, identity and addressing hints. Intended for test logs and
// interactive debugging.
func Print(f forest.Forest) string {
	printer := tp.New()
	for _, root := range f {
		printNode(printer, root)
	}
	return printer.String()
}

func printNode(p tp.Tree, n *forest.Node) {
	label := label(n)
	if len(n.Children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range n.Children {
		printNode(branch, ch)
	}
}

func label(n *forest.Node) string {
	l := fmt.Sprintf("%s #%s", n.Kind, n.ID)
	if id, _ := n.Attributes.Get("id"); id != "" {
		l += " id=" + id
	}
	if class, _ := n.Attributes.Get("class"); class != "" {
		l += fmt.Sprintf(" class=%q", class)
	}
	if n.Dynamic {
		l += " (dynamic)"
	}
	return l
}
