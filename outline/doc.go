/*
Package outline implements the geometric model for editable glyph outlines.

A glyph outline is a set of contours. A contour is an ordered run of points,
either open (a stroke with two loose ends) or closed (a loop). Points come in
two roles:

▪︎ on-curve points are anchors the contour passes through. An anchor is either
a "corner" or "smooth"; a smooth anchor promises that the curve runs through
it without a kink, i.e. its two flanking control handles stay collinear.

▪︎ off-curve points are the Bézier control handles between anchors.

Neighborhood navigation (previous/next point) is computed from slice indices
and wraps cyclically for closed contours. There are no stored neighbor links,
so structural edits (insert, remove, reverse, close) can never leave the
navigation stale.

Contours do not store curves. Segments (lines, quadratic and cubic Béziers)
are derived lazily from the point run by [Contour.Segments], and bridge into
the honnef.co/go/curve geometry types for bounding boxes, evaluation and
arc lengths.

Every point and contour carries a stable identity, minted by an [IDSource]
owned by the editing session. Identities survive all structural edits and are
how hosts (UI layers, undo logs, scripts) address model objects.

# Status

Outline data is not safe for concurrent mutation; an editing session is
expected to live on a single goroutine.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package outline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphedit.outline'
func tracer() tracing.Trace {
	return tracing.Select("glyphedit.outline")
}
