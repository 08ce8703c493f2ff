/*
Package glyphedit is an editing core for glyph outlines.

There is a certain confusion with the nomenclature of outline editing. We
will stick to the following definitions:

▪︎ An "anchor" is an on-curve point. The outline passes through it. Anchors
are either "corner" points or "smooth" points; across a smooth anchor the
outline keeps a continuous tangent.

▪︎ A "handle" is an off-curve control point of a quadratic or cubic Bézier
segment. Handles do not lie on the outline, they pull it.

▪︎ A "contour" is a chain of points, open while under construction and
usually closed into a cycle. A glyph is a set of contours plus metrics.

Coordinates follow the convention of font scan-conversion: y grows
downward. Winding queries judge orientation in this frame, where a
TrueType outer contour, clockwise in font units, reads as counter-clockwise.

Editing happens through sessions (package edit). A session owns one glyph,
hands out stable point identities, and applies drag gestures: dragging an
anchor takes its handles along, dragging a handle of a smooth anchor
rotates the opposite handle to keep the tangent. These reactions come from
a small pattern-rule table (package pattern).

# Status

The package edits outlines in memory; it does not render, nor does it
write fonts or interchange formats.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

Point types and smoothness, as in the UFO glyph interchange format:
https://unifiedfontobject.org/versions/ufo3/glyphs/glif/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package glyphedit

import (
	"github.com/npillmayer/glyphedit/edit"
	"github.com/npillmayer/glyphedit/internal/fontload"
	"github.com/npillmayer/glyphedit/outline"
	"github.com/npillmayer/schuko/tracing"
	"honnef.co/go/curve"
)

// tracer writes to trace with key 'glyphedit'
func tracer() tracing.Trace {
	return tracing.Select("glyphedit")
}

// ScalableFont is an internal representation of an outline-font of type
// TTF or OTF.
type ScalableFont = fontload.ScalableFont

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	return fontload.LoadOpenTypeFont(fontfile)
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	return fontload.ParseOpenTypeFont(fbytes)
}

// LoadEmbeddedFont loads a font from the embedded test corpus, e.g.
// "common/Roboto-Regular.ttf".
func LoadEmbeddedFont(name string) (*ScalableFont, error) {
	return fontload.LoadEmbedded(name)
}

// EditGlyph starts an editing session on the outline of the glyph the font
// maps r to. Positions are font units with y growing downward.
func EditGlyph(f *ScalableFont, r rune) (*edit.Session, error) {
	return fontload.GlyphSession(f, r)
}

// NewGlyph starts an editing session on an empty glyph, for building
// outlines from scratch. codepoint may be 0 for unmapped glyphs.
func NewGlyph(name string, codepoint rune) *edit.Session {
	return edit.NewSession(name, codepoint)
}

// Drag moves the given points by delta and lets the session's rule table
// drag control handles along, e.g. to keep the tangent across a smooth
// anchor. If session is nil or no points are given, it does nothing.
//
// This is a convenience API for the common one-gesture case. Clients who
// need more control, such as dragging with a wider selection context or
// building undo entries from the reported positions, use package edit
// directly.
func Drag(session *edit.Session, delta curve.Vec2, points ...outline.PointID) edit.AppliedEdit {
	if session == nil || len(points) == 0 {
		return edit.AppliedEdit{}
	}
	tracer().Debugf("drag %v by %v", points, delta)
	return session.Apply(edit.Edit{Move: delta, Targets: points})
}
