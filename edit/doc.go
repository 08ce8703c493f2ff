/*
Package edit implements interactive editing sessions for glyph outlines.

A [Session] owns one glyph under edit: its contours, the identity source for
new points, and the compiled rule table from package pattern. Hosts build
outlines through the session (adding points to an active contour, starting
new contours, closing and reversing them) and feed pointer drags into
[Session.Apply].

Apply is where editing behavior lives. Every dragged point first moves
literally; then its neighborhood is classified and probed against the rule
table. A matching rule pulls neighbor points along: handles ride with their
anchor, and a handle dragged through a smooth anchor rotates the opposite
handle about the anchor so the pair stays collinear, preserving the opposite
handle's distance. The result reports every point that moved, with positions
before and after, which is exactly what a host needs to maintain its own
undo log; the session itself keeps no history.

Sessions also produce value [Snapshot]s of the glyph geometry, cheap to take
and compare, as the raw material for host-side history or change detection.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package edit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphedit.edit'
func tracer() tracing.Trace {
	return tracing.Select("glyphedit.edit")
}
