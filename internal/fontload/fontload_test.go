package fontload

import (
	"errors"
	"testing"

	"github.com/npillmayer/glyphedit/edit"
	"github.com/npillmayer/glyphedit/outline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/curve"
)

const robotoPath = "common/Roboto-Regular.ttf"

func TestLoadEmbedded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.fontload")
	defer teardown()
	//
	f, err := LoadEmbedded(robotoPath)
	if err != nil {
		t.Fatal(err)
	}
	if f.Fontname == "" {
		t.Error("expected embedded font to carry a name")
	}
	if f.SFNT.UnitsPerEm() == 0 {
		t.Errorf("expected a units-per-em value, is 0")
	}
}

func TestGlyphSessionRoundGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.fontload")
	defer teardown()
	//
	f, err := LoadEmbedded(robotoPath)
	if err != nil {
		t.Fatal(err)
	}
	s, err := GlyphSession(f, 'o')
	if err != nil {
		t.Fatal(err)
	}
	g := s.Glyph()
	if g.Name != "LATIN SMALL LETTER O" {
		t.Errorf("expected session to adopt the Unicode name, is %q", g.Name)
	}
	if g.Advance <= 0 {
		t.Errorf("expected a positive advance, is %f", g.Advance)
	}
	if len(g.Contours) != 2 {
		t.Fatalf("expected 'o' to have 2 contours, has %d", len(g.Contours))
	}
	for _, c := range g.Contours {
		if !c.IsClosed() {
			t.Errorf("expected contour %v to be closed", c.ID())
		}
	}
	quads, smooth, spread := 0, 0, 0.0
	for _, c := range g.Contours {
		for _, p := range c.Points() {
			if p.Type == outline.QCurve {
				quads++
			}
			if p.Smooth {
				smooth++
			}
			if x := p.Pos.X; x > spread {
				spread = x
			}
		}
	}
	if quads == 0 {
		t.Error("expected TrueType quadratic anchors in 'o'")
	}
	if smooth == 0 {
		t.Error("expected smooth anchors to be inferred on a round glyph")
	}
	if spread < 100 {
		t.Errorf("expected font-unit coordinates, widest x is %f", spread)
	}
}

func TestGlyphSessionNoGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.fontload")
	defer teardown()
	//
	f, err := LoadEmbedded(robotoPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = GlyphSession(f, '͸'); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("expected ErrNoGlyph for an unassigned codepoint, is %v", err)
	}
}

func TestGlyphSessionEmptyOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.fontload")
	defer teardown()
	//
	f, err := LoadEmbedded(robotoPath)
	if err != nil {
		t.Fatal(err)
	}
	s, err := GlyphSession(f, ' ')
	if err != nil {
		t.Fatal(err)
	}
	if s.PointCount() != 0 {
		t.Errorf("expected a space to have no outline points, has %d", s.PointCount())
	}
	if s.Glyph().Advance <= 0 {
		t.Errorf("expected a space to keep its advance, is %f", s.Glyph().Advance)
	}
}

func TestReplaySealsDuplicateAnchor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.fontload")
	defer teardown()
	//
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fxy(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fxy(10, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fxy(10, 10)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fxy(0, 0)}},
	}
	s := edit.NewSession("probe", 0)
	replay(s, segs)
	c := s.ActiveContour()
	if c.Len() != 3 {
		t.Errorf("expected the duplicate closing anchor to be dropped, have %d points", c.Len())
	}
	if !c.IsClosed() {
		t.Error("expected the replayed contour to be closed")
	}
}

func TestReplaySplitsContoursAtMoveTo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.fontload")
	defer teardown()
	//
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fxy(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fxy(10, 0)}},
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fxy(20, 0)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{fxy(30, 0), fxy(30, 10)}},
	}
	s := edit.NewSession("probe", 0)
	replay(s, segs)
	g := s.Glyph()
	if len(g.Contours) != 2 {
		t.Fatalf("expected 2 contours after a second MoveTo, have %d", len(g.Contours))
	}
	if g.Contours[0].Len() != 2 || g.Contours[1].Len() != 3 {
		t.Errorf("expected contours of 2 and 3 points, have %d and %d",
			g.Contours[0].Len(), g.Contours[1].Len())
	}
	if !g.Contours[0].IsClosed() || !g.Contours[1].IsClosed() {
		t.Error("expected both replayed contours to be closed")
	}
}

func TestInferSmooth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.fontload")
	defer teardown()
	//
	s := edit.NewSession("probe", 0)
	s.AddPoint(curve.Pt(0, 0), outline.OnCurve, false)
	s.AddPoint(curve.Pt(50, 0), outline.OffCurve, false)
	collinear := s.AddPoint(curve.Pt(100, 0), outline.OnCurve, false)
	s.AddPoint(curve.Pt(150, 0), outline.OffCurve, false)
	kinked := s.AddPoint(curve.Pt(200, 0), outline.OnCurve, false)
	s.AddPoint(curve.Pt(250, 50), outline.OffCurve, false)
	s.AddPoint(curve.Pt(300, 100), outline.OnCurve, false)
	inferSmooth(s)
	c, i, _ := s.FindPoint(collinear)
	if !c.At(i).Smooth {
		t.Error("expected the collinear anchor to be inferred smooth")
	}
	c, i, _ = s.FindPoint(kinked)
	if c.At(i).Smooth {
		t.Error("expected the kinked anchor to stay a corner")
	}
}

func fxy(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
}
