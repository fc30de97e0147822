/*
Package gen synthesizes source text from the builder's three models: the
CSS rule store becomes a stylesheet, the JS rule store becomes a script,
and the block forest (with stylesheet and script injected into their
dynamic carrier nodes) becomes a complete markup document.

All entry points are pure functions of their inputs and idempotent;
rendering the same state twice yields byte-identical text. Nodes stay
plain data: markup emission is a stateless kind-dispatched recursion,
never behavior carried by the node itself.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/
package gen

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'pagesmith.gen'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.gen")
}

// htmlEscaper rewrites the five markup-significant characters to their
// entities. Applied to all user-authored text and attribute values
// embedded in markup; carrier contents are exempt.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes user-authored text for embedding in markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeSingleQuotes prepares text for embedding in a single-quoted JS
// string literal.
func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
