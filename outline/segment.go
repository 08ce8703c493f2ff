package outline

import (
	"fmt"
	"iter"
	"strings"

	"honnef.co/go/curve"
)

// Segment is one drawable piece of a contour: a line, a quadratic Bézier or
// a cubic Bézier. It references the defining model points (with their
// identities), so hosts can map derived geometry back onto the outline.
//
// Kind reuses the honnef.co/go/curve segment kinds; Pts holds 2, 3 or 4
// points in drawing order.
type Segment struct {
	Kind curve.PathSegmentKind
	Pts  []Point
}

// Start returns the starting anchor.
func (s Segment) Start() Point { return s.Pts[0] }

// End returns the final point of the segment.
func (s Segment) End() Point { return s.Pts[len(s.Pts)-1] }

// PointIDs lists the identities of the defining points in drawing order.
func (s Segment) PointIDs() []PointID {
	ids := make([]PointID, len(s.Pts))
	for i, p := range s.Pts {
		ids[i] = p.ID
	}
	return ids
}

// PathSegment bridges into the curve library's tagged union, unlocking its
// geometry toolbox (evaluation, arc length, nearest point, …).
func (s Segment) PathSegment() curve.PathSegment {
	seg := curve.PathSegment{Kind: s.Kind}
	switch s.Kind {
	case curve.LineKind:
		seg.P0, seg.P1 = s.Pts[0].Pos, s.Pts[1].Pos
	case curve.QuadKind:
		seg.P0, seg.P1, seg.P2 = s.Pts[0].Pos, s.Pts[1].Pos, s.Pts[2].Pos
	case curve.CubicKind:
		seg.P0, seg.P1, seg.P2, seg.P3 = s.Pts[0].Pos, s.Pts[1].Pos, s.Pts[2].Pos, s.Pts[3].Pos
	}
	return seg
}

// BoundingBox returns the tight axis-aligned bounding box of the segment's
// geometry (not of its control polygon).
func (s Segment) BoundingBox() curve.Rect {
	return s.PathSegment().BoundingBox()
}

// Path renders the segment as a standalone Bézier path.
func (s Segment) Path() curve.BezPath {
	return curve.BezPath{
		curve.MoveTo(s.Pts[0].Pos),
		s.PathSegment().PathElement(),
	}
}

func (s Segment) String() string {
	kind := "line"
	switch s.Kind {
	case curve.QuadKind:
		kind = "quad"
	case curve.CubicKind:
		kind = "cubic"
	}
	ids := make([]string, len(s.Pts))
	for i, p := range s.Pts {
		ids[i] = p.ID.String()
	}
	return fmt.Sprintf("%s(%s)", kind, strings.Join(ids, " "))
}

// --- Deriving segments from the point run ----------------------------------

// Segments walks the contour and yields its segments lazily. The walk is
// restartable: ranging again starts over from the first point.
//
// The point run is interpreted left to right. An anchor followed by an
// anchor yields a line; an anchor, one handle and an anchor yield a
// quadratic; an anchor followed by two handles yields a cubic ending at the
// point after them. For closed contours the run wraps, so the final segment
// returns to the first point. Runs that fit no shape (a leading handle, or
// handles cut off by the end of an open contour) are skipped point by point;
// malformed contours are tolerated, never an error.
func (c *Contour) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		n := len(c.points)
		if n < 2 {
			return
		}
		limit := n
		if !c.closed {
			limit = n - 1
		}
		at := func(i int) (Point, bool) {
			if c.closed {
				return c.points[i%n], true
			}
			if i >= n {
				return Point{}, false
			}
			return c.points[i], true
		}
		pos := 0
		for pos < limit {
			p0 := c.points[pos]
			if !p0.IsOnCurve() {
				pos++
				continue
			}
			p1, ok := at(pos + 1)
			if !ok {
				pos++
				continue
			}
			if p1.IsOnCurve() {
				if !yield(Segment{Kind: curve.LineKind, Pts: []Point{p0, p1}}) {
					return
				}
				pos++
				continue
			}
			p2, ok := at(pos + 2)
			if !ok {
				pos++
				continue
			}
			if p2.IsOnCurve() {
				if !yield(Segment{Kind: curve.QuadKind, Pts: []Point{p0, p1, p2}}) {
					return
				}
				pos += 2
				continue
			}
			p3, ok := at(pos + 3)
			if !ok {
				pos++
				continue
			}
			if !yield(Segment{Kind: curve.CubicKind, Pts: []Point{p0, p1, p2, p3}}) {
				return
			}
			pos += 3
		}
	}
}

// SegmentList collects all segments eagerly.
func (c *Contour) SegmentList() []Segment {
	var segs []Segment
	for seg := range c.Segments() {
		segs = append(segs, seg)
	}
	return segs
}

// Path renders the whole contour as a Bézier path, closing it if the contour
// is closed. Malformed stretches are dropped, mirroring Segments.
func (c *Contour) Path() curve.BezPath {
	var path curve.BezPath
	for seg := range c.Segments() {
		if len(path) == 0 {
			path = append(path, curve.MoveTo(seg.Pts[0].Pos))
		}
		path = append(path, seg.PathSegment().PathElement())
	}
	if c.closed && len(path) > 0 {
		path = append(path, curve.ClosePath())
	}
	return path
}

// --- Upgrading a line to a curve -------------------------------------------

// UpgradeLineSegment replaces the line segment starting at the anchor with
// identity startID by a cubic with the same endpoints. Two fresh control
// handles are inserted at one third and two thirds of the line, so the
// upgrade is visually a no-op until a handle is dragged. Identities for the
// handles are minted from ids.
//
// It returns the identity of the original starting anchor. If startID is
// unknown, not an anchor, or not followed by an anchor, nothing changes and
// ok is false.
func (c *Contour) UpgradeLineSegment(startID PointID, ids *IDSource) (_ PointID, ok bool) {
	i, ok := c.IndexOf(startID)
	if !ok {
		tracer().Debugf("upgrade in %v: no point %v", c.id, startID)
		return NoPoint, false
	}
	start := c.points[i]
	if !start.IsOnCurve() {
		tracer().Debugf("upgrade in %v: %v is not an anchor", c.id, startID)
		return NoPoint, false
	}
	end, ok := c.Next(i)
	if !ok || !end.IsOnCurve() {
		tracer().Debugf("upgrade in %v: %v does not start a line segment", c.id, startID)
		return NoPoint, false
	}
	c1 := NewPoint(ids.NextPoint(), start.Pos.Lerp(end.Pos, 1.0/3.0), OffCurve, false)
	c2 := NewPoint(ids.NextPoint(), start.Pos.Lerp(end.Pos, 2.0/3.0), OffCurve, false)
	c.InsertAt(i+1, c1)
	c.InsertAt(i+2, c2)
	return start.ID, true
}
