package gen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/

import (
	"strings"

	"github.com/pagesmith/pagesmith/style"
)

// CSS renders the rule store into stylesheet text. Rules appear in store
// order, separated by a blank line; within a rule, properties appear in
// insertion order with hyphenated names, duplicates included. Property
// values are emitted verbatim.
func CSS(rules []style.Rule) string {
	blocks := make([]string, len(rules))
	for i, rule := range rules {
		lines := make([]string, len(rule.Properties))
		for j, p := range rule.Properties {
			lines[j] = "  " + style.Hyphenate(p.Property) + ": " + p.Value + ";"
		}
		blocks[i] = rule.Selector + " {\n" + strings.Join(lines, "\n") + "\n}"
	}
	return strings.Join(blocks, "\n\n")
}
