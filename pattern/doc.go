/*
Package pattern implements the point-neighborhood pattern language and the
rule table built on top of it.

When a host drags a point, the editing layer wants to know what kind of
neighborhood the point sits in: is it a handle trailing a smooth anchor, an
anchor flanked by two handles, a loose end of an open contour? Neighborhoods
are encoded as short strings of symbolic tokens, one token per point slot:

▪︎ 'N': no point there (the open end of a contour)

▪︎ 'C': a corner anchor

▪︎ 'S': a smooth anchor

▪︎ 'H': an off-curve control handle

▪︎ '@': a neighbor that is itself part of the current selection

Editing rules are written as templates over these tokens, with two notational
conveniences: 'X' stands for any of N, C, S, H, and a bracketed set such as
[CS] stands for a choice between its members. [Expand] compiles a template
into every concrete neighborhood it covers, and [NewRuleSet] builds the
complete lookup table from the built-in rule templates. Matching a live
neighborhood is then a pair of map probes: first the 3-slot window around the
point, then the 5-slot window for rules that need to see further.
*/
package pattern

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphedit.pattern'
func tracer() tracing.Trace {
	return tracing.Select("glyphedit.pattern")
}

// assert panics when condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: %s", msg))
	}
}
