package outline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"honnef.co/go/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func segKinds(c *Contour) []curve.PathSegmentKind {
	var kinds []curve.PathSegmentKind
	for seg := range c.Segments() {
		kinds = append(kinds, seg.Kind)
	}
	return kinds
}

func TestSegmentsLineRun(t *testing.T) {
	c := triangle(false)
	diff(t, []curve.PathSegmentKind{curve.LineKind, curve.LineKind}, segKinds(c))
	c.Close()
	diff(t, []curve.PathSegmentKind{curve.LineKind, curve.LineKind, curve.LineKind}, segKinds(c))
}

func TestSegmentsQuad(t *testing.T) {
	c := NewContour(1)
	c.Append(NewPoint(1, curve.Pt(0, 0), QCurve, false))
	c.Append(NewPoint(2, curve.Pt(5, 10), OffCurve, false))
	c.Append(NewPoint(3, curve.Pt(10, 0), QCurve, false))
	segs := c.SegmentList()
	if len(segs) != 1 || segs[0].Kind != curve.QuadKind {
		t.Fatalf("expected a single quad segment, got %v", segs)
	}
	diff(t, []PointID{1, 2, 3}, segs[0].PointIDs())
}

func TestSegmentsCubicWithClosingLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.outline")
	defer teardown()
	//
	c := NewContour(1)
	c.Append(NewPoint(1, curve.Pt(0, 0), OnCurve, false))
	c.Append(NewPoint(2, curve.Pt(3, -4), OffCurve, false))
	c.Append(NewPoint(3, curve.Pt(7, -4), OffCurve, false))
	c.Append(NewPoint(4, curve.Pt(10, 0), OnCurve, false))
	c.Append(NewPoint(5, curve.Pt(10, 10), OnCurve, false))
	c.Append(NewPoint(6, curve.Pt(0, 10), OnCurve, false))
	c.Close()
	kinds := segKinds(c)
	diff(t, []curve.PathSegmentKind{curve.CubicKind, curve.LineKind, curve.LineKind, curve.LineKind}, kinds)
	segs := c.SegmentList()
	last := segs[len(segs)-1]
	if last.Start().ID != 6 || last.End().ID != 1 {
		t.Errorf("expected final segment to wrap back to the first point, is %v", last)
	}
}

func TestSegmentsTolerateMalformedRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.outline")
	defer teardown()
	//
	c := NewContour(1)
	c.Append(NewPoint(1, curve.Pt(0, 5), OffCurve, false)) // stray leading handle
	c.Append(NewPoint(2, curve.Pt(0, 0), OnCurve, false))
	c.Append(NewPoint(3, curve.Pt(10, 0), OnCurve, false))
	c.Append(NewPoint(4, curve.Pt(12, 2), OffCurve, false)) // handle cut off by the open end
	diff(t, []curve.PathSegmentKind{curve.LineKind}, segKinds(c))
}

func TestSegmentsDegenerateContours(t *testing.T) {
	c := NewContour(1)
	if got := c.SegmentList(); got != nil {
		t.Errorf("expected no segments from empty contour, got %v", got)
	}
	c.Append(NewPoint(1, curve.Pt(0, 0), OnCurve, false))
	c.Close()
	if got := c.SegmentList(); got != nil {
		t.Errorf("expected no segments from 1-point contour, got %v", got)
	}
}

func TestSegmentsAreRestartable(t *testing.T) {
	c := triangle(true)
	seq := c.Segments()
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Errorf("expected both walks to yield 3 segments, got %d then %d", first, second)
	}
}

func TestSegmentGeometryBridge(t *testing.T) {
	c := triangle(false)
	segs := c.SegmentList()
	box := segs[0].BoundingBox()
	diff(t, curve.Rect{X0: 0, Y0: 0, X1: 10, Y1: 0}, box)
	path := segs[0].Path()
	if len(path) != 2 || path[0].Kind != curve.MoveToKind {
		t.Errorf("expected MoveTo+LineTo path, got %v", path)
	}
}

func TestContourPath(t *testing.T) {
	c := triangle(true)
	path := c.Path()
	if len(path) != 5 {
		t.Fatalf("expected MoveTo + 3 lines + ClosePath, got %d elements", len(path))
	}
	if path[len(path)-1].Kind != curve.ClosePathKind {
		t.Error("expected closed contour path to end in ClosePath")
	}
}

// --- Upgrading segments ----------------------------------------------------

func TestUpgradeLineSegment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.outline")
	defer teardown()
	//
	var ids IDSource
	c := NewContour(ids.NextContour())
	start := NewPoint(ids.NextPoint(), curve.Pt(0, 0), OnCurve, false)
	end := NewPoint(ids.NextPoint(), curve.Pt(9, 0), OnCurve, false)
	c.Append(start)
	c.Append(end)
	anchor, ok := c.UpgradeLineSegment(start.ID, &ids)
	if !ok || anchor != start.ID {
		t.Fatalf("expected upgrade to succeed returning %v, got %v (ok=%v)", start.ID, anchor, ok)
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4 points after upgrade, got %v", c)
	}
	c1, c2 := c.points[1], c.points[2]
	if !c1.IsOffCurve() || !c2.IsOffCurve() {
		t.Errorf("expected inserted points to be handles, got %v and %v", c1, c2)
	}
	if math.Abs(c1.Pos.X-3) > 1e-9 || math.Abs(c2.Pos.X-6) > 1e-9 {
		t.Errorf("expected handles at thirds of the line, got x=%g and x=%g", c1.Pos.X, c2.Pos.X)
	}
	diff(t, []curve.PathSegmentKind{curve.CubicKind}, segKinds(c))
}

func TestUpgradeRejectsNonLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.outline")
	defer teardown()
	//
	var ids IDSource
	c := NewContour(ids.NextContour())
	a := NewPoint(ids.NextPoint(), curve.Pt(0, 0), OnCurve, false)
	h := NewPoint(ids.NextPoint(), curve.Pt(5, 5), OffCurve, false)
	b := NewPoint(ids.NextPoint(), curve.Pt(10, 0), OnCurve, false)
	c.Append(a)
	c.Append(h)
	c.Append(b)
	if _, ok := c.UpgradeLineSegment(a.ID, &ids); ok {
		t.Error("expected upgrade to reject a quad start")
	}
	if _, ok := c.UpgradeLineSegment(h.ID, &ids); ok {
		t.Error("expected upgrade to reject a handle")
	}
	if _, ok := c.UpgradeLineSegment(999, &ids); ok {
		t.Error("expected upgrade to reject an unknown id")
	}
	if c.Len() != 3 {
		t.Errorf("expected contour to be unchanged, is %v", c)
	}
}

func TestUpgradeWrapsOnClosedContours(t *testing.T) {
	var ids IDSource
	c := NewContour(ids.NextContour())
	a := NewPoint(ids.NextPoint(), curve.Pt(0, 0), OnCurve, false)
	b := NewPoint(ids.NextPoint(), curve.Pt(0, 9), OnCurve, false)
	c.Append(a)
	c.Append(b)
	c.Close()
	anchor, ok := c.UpgradeLineSegment(b.ID, &ids)
	if !ok || anchor != b.ID {
		t.Fatalf("expected wrapping upgrade to succeed, got %v (ok=%v)", anchor, ok)
	}
	// drawing order is now a, b, handle, handle with the cubic wrapping to a
	if c.Len() != 4 || !c.points[2].IsOffCurve() || !c.points[3].IsOffCurve() {
		t.Fatalf("expected handles appended after the last anchor, is %v", c)
	}
	if math.Abs(c.points[2].Pos.Y-6) > 1e-9 || math.Abs(c.points[3].Pos.Y-3) > 1e-9 {
		t.Errorf("expected handles at thirds of b→a, got y=%g and y=%g",
			c.points[2].Pos.Y, c.points[3].Pos.Y)
	}
}
