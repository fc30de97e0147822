package gen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/

import (
	"fmt"
	"strings"

	"github.com/pagesmith/pagesmith/script"
)

// JS renders the rule store into script text: one DOMContentLoaded
// listener wrapping, per distinct selector in first-seen order, a
// querySelectorAll/forEach block that registers an event listener for
// every rule on that selector (in store order). Each listener body is the
// concatenation of the rule's actions rendered by kind. Selector text and
// string parameters are escaped for their single-quoted literals.
//
// An empty store renders the bare listener shell, which is valid, inert
// script.
func JS(rules []script.Rule) string {
	var selectors []string
	grouped := make(map[string][]script.Rule)
	for _, r := range rules {
		if _, seen := grouped[r.Selector]; !seen {
			selectors = append(selectors, r.Selector)
		}
		grouped[r.Selector] = append(grouped[r.Selector], r)
	}

	var sb strings.Builder
	sb.WriteString("document.addEventListener('DOMContentLoaded', () => {\n")
	for _, sel := range selectors {
		fmt.Fprintf(&sb, "  document.querySelectorAll('%s').forEach(el => {\n", escapeSingleQuotes(sel))
		for _, rule := range grouped[sel] {
			fmt.Fprintf(&sb, "    el.addEventListener('%s', () => {\n", rule.Event)
			sb.WriteString(renderActions(rule.Actions))
			sb.WriteString("\n    });\n")
		}
		sb.WriteString("  });\n")
	}
	sb.WriteString("});")
	return sb.String()
}

func renderActions(actions []script.Action) string {
	lines := make([]string, len(actions))
	for i, a := range actions {
		lines[i] = renderAction(a)
	}
	return strings.Join(lines, "\n")
}

// renderAction emits one statement per action kind. Unknown kinds render
// as an empty line; the palette cannot produce them, and a stale rule
// should not break the whole script.
func renderAction(a script.Action) string {
	message, _ := a.Params.Get("message")
	switch a.Kind {
	case "alert":
		return fmt.Sprintf("      alert('%s');", escapeSingleQuotes(message))
	case "console.log":
		return fmt.Sprintf("      console.log('%s');", escapeSingleQuotes(message))
	}
	tracer().Debugf("renderAction: unknown action kind %q", a.Kind)
	return ""
}
