package edit

import (
	"fmt"

	"github.com/npillmayer/glyphedit/outline"
)

// Glyph is one glyph under edit: a set of contours plus the metadata a host
// needs to place it. Fields are exported for hosts to read and amend; all
// structural work on contours goes through the owning Session.
type Glyph struct {
	Name      string  // e.g. "LATIN SMALL LETTER O"
	Codepoint rune    // 0 if the glyph is not mapped to a codepoint
	Advance   float64 // horizontal advance width in font units
	Contours  []*outline.Contour
}

// Contour returns the contour with the given identity, or nil.
func (g *Glyph) Contour(id outline.ContourID) *outline.Contour {
	for _, c := range g.Contours {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// FindPoint locates a point across all contours, returning the owning
// contour and the point's index within it.
func (g *Glyph) FindPoint(id outline.PointID) (*outline.Contour, int, bool) {
	for _, c := range g.Contours {
		if i, ok := c.IndexOf(id); ok {
			return c, i, true
		}
	}
	return nil, -1, false
}

// PointCount totals the points over all contours.
func (g *Glyph) PointCount() int {
	n := 0
	for _, c := range g.Contours {
		n += c.Len()
	}
	return n
}

// Points flattens all contour points into one slice, in contour order.
func (g *Glyph) Points() []outline.Point {
	pts := make([]outline.Point, 0, g.PointCount())
	for _, c := range g.Contours {
		pts = append(pts, c.Points()...)
	}
	return pts
}

func (g *Glyph) String() string {
	return fmt.Sprintf("glyph %q (U+%04X, adv %g, %d contours, %d points)",
		g.Name, g.Codepoint, g.Advance, len(g.Contours), g.PointCount())
}
