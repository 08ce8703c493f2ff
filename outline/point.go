package outline

import (
	"fmt"

	"honnef.co/go/curve"
)

// PointType is the curve role of a point.
type PointType int8

const (
	// OnCurve is an anchor the contour passes through, belonging to line or
	// cubic segments.
	OnCurve PointType = iota
	// QCurve is an anchor belonging to quadratic segments, as found in
	// TrueType outlines. It behaves like OnCurve for all editing purposes.
	QCurve
	// OffCurve is a Bézier control handle.
	OffCurve
)

func (t PointType) String() string {
	switch t {
	case OnCurve:
		return "on-curve"
	case QCurve:
		return "q-curve"
	case OffCurve:
		return "off-curve"
	default:
		return "invalid"
	}
}

// Point is one point of a contour: a position, a curve role, and a stable
// identity. For anchors, Smooth marks G1 continuity, i.e. the promise that
// the flanking control handles stay collinear through this point.
type Point struct {
	ID     PointID
	Pos    curve.Point
	Type   PointType
	Smooth bool // meaningful for anchors only
}

// NewPoint assembles a point. Off-curve points are never smooth; a smooth
// flag passed for one is dropped.
func NewPoint(id PointID, pos curve.Point, typ PointType, smooth bool) Point {
	if typ == OffCurve {
		smooth = false
	}
	return Point{ID: id, Pos: pos, Type: typ, Smooth: smooth}
}

// IsOnCurve reports whether the point is an anchor (cubic or quadratic).
func (p Point) IsOnCurve() bool {
	return p.Type == OnCurve || p.Type == QCurve
}

// IsOffCurve reports whether the point is a control handle.
func (p Point) IsOffCurve() bool {
	return p.Type == OffCurve
}

// Dist returns the Euclidean distance to another point, e.g. for hit-testing
// by a host UI.
func (p Point) Dist(other Point) float64 {
	return p.Pos.Distance(other.Pos)
}

// Translate moves the point by delta.
func (p *Point) Translate(delta curve.Vec2) {
	p.Pos = p.Pos.Translate(delta)
}

// MoveTo moves the point to an absolute position.
func (p *Point) MoveTo(pos curve.Point) {
	p.Pos = pos
}

// SetSmooth sets the smooth flag on anchors and is a no-op on handles.
func (p *Point) SetSmooth(smooth bool) {
	if p.IsOffCurve() {
		return
	}
	p.Smooth = smooth
}

// ToggleSmooth flips the smooth flag on anchors and is a no-op on handles.
func (p *Point) ToggleSmooth() {
	if p.IsOffCurve() {
		return
	}
	p.Smooth = !p.Smooth
}

func (p Point) String() string {
	tag := ""
	if p.Smooth {
		tag = " smooth"
	}
	return fmt.Sprintf("%v[%s%s](%g,%g)", p.ID, p.Type, tag, p.Pos.X, p.Pos.Y)
}
