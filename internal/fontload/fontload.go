// Package fontload seeds editing sessions from real font files. It parses
// fonts with golang.org/x/image/font/sfnt, loads glyph outlines at font-unit
// scale, and replays them into session contours. Coordinates keep the sfnt
// convention of a downward y axis.
package fontload

import (
	"errors"
	"fmt"
	"os"

	td "github.com/go-text/typesetting-utils/opentype"
	"github.com/npillmayer/glyphedit/edit"
	"github.com/npillmayer/glyphedit/outline"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/runenames"
	"honnef.co/go/curve"
)

// tracer writes to trace with key 'glyphedit.fontload'
func tracer() tracing.Trace {
	return tracing.Select("glyphedit.fontload")
}

// ErrNoGlyph means the font does not map the requested rune to an outline.
var ErrNoGlyph = errors.New("font has no glyph for rune")

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez)
}

// LoadEmbedded loads a font from the embedded test corpus, e.g.
// "common/Roboto-Regular.ttf". It serves tests and demos that must not
// depend on fonts being installed.
func LoadEmbedded(name string) (*ScalableFont, error) {
	bytez, err := td.Files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("embedded font corpus: %w", err)
	}
	return ParseOpenTypeFont(bytez)
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}

// --- Seeding sessions ------------------------------------------------------

// GlyphSession starts an editing session on the outline of the glyph the
// font maps r to. Outlines load at font-unit scale (ppem = unitsPerEm), so
// positions are the font's own integers; the y axis grows downward. Glyphs
// without an outline, such as a space, yield a session with an empty contour
// but a valid advance.
func GlyphSession(f *ScalableFont, r rune) (*edit.Session, error) {
	var buf sfnt.Buffer
	gid, err := f.SFNT.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("glyph lookup: %w", err)
	}
	if gid == 0 {
		tracer().Debugf("font %s maps %q to .notdef", f.Fontname, r)
		return nil, ErrNoGlyph
	}
	upem := fixed.I(int(f.SFNT.UnitsPerEm()))
	segs, err := f.SFNT.LoadGlyph(&buf, gid, upem, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot load glyph %d: %w", gid, err)
	}
	session := edit.NewSession(runenames.Name(r), r)
	if adv, err := f.SFNT.GlyphAdvance(&buf, gid, upem, font.HintingNone); err == nil {
		session.Glyph().Advance = fixedToFloat(adv)
	}
	replay(session, segs)
	inferSmooth(session)
	tracer().Debugf("seeded session for %q: %v", r, session.Glyph())
	return session, nil
}

// replay translates an sfnt segment stream into session contours. Each
// MoveTo seals the contour built so far and starts a fresh one; quadratic
// on-curve points come in as QCurve so the outline remembers its TrueType
// heritage.
func replay(session *edit.Session, segs sfnt.Segments) {
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if session.ActiveContour().Len() > 0 {
				seal(session)
				session.NewContour()
			}
			session.AddPoint(fixedPt(seg.Args[0]), outline.OnCurve, false)
		case sfnt.SegmentOpLineTo:
			session.AddPoint(fixedPt(seg.Args[0]), outline.OnCurve, false)
		case sfnt.SegmentOpQuadTo:
			session.AddPoint(fixedPt(seg.Args[0]), outline.OffCurve, false)
			session.AddPoint(fixedPt(seg.Args[1]), outline.QCurve, false)
		case sfnt.SegmentOpCubeTo:
			session.AddPoint(fixedPt(seg.Args[0]), outline.OffCurve, false)
			session.AddPoint(fixedPt(seg.Args[1]), outline.OffCurve, false)
			session.AddPoint(fixedPt(seg.Args[2]), outline.OnCurve, false)
		}
	}
	if session.ActiveContour().Len() > 0 {
		seal(session)
	}
}

// seal closes the active contour, first dropping a final anchor that
// duplicates the first one. Fonts commonly draw explicitly back to the
// start; the closed contour's wrap makes that point redundant.
func seal(session *edit.Session) {
	c := session.ActiveContour()
	if c.Len() >= 2 {
		first := c.At(0)
		last := c.At(c.Len() - 1)
		if first.IsOnCurve() && last.IsOnCurve() && first.Pos == last.Pos {
			c.RemoveID(last.ID)
		}
	}
	session.CloseActive()
}

// inferSmooth marks anchors whose incoming and outgoing directions are
// collinear, provided at least one neighbor is a handle. Fonts do not store
// the flag; editors re-derive it on import.
func inferSmooth(session *edit.Session) {
	const maxKink = 1e-3 // radians, roughly
	for _, c := range session.Glyph().Contours {
		for i := 0; i < c.Len(); i++ {
			p := c.At(i)
			if !p.IsOnCurve() {
				continue
			}
			prev, okP := c.Prev(i)
			next, okN := c.Next(i)
			if !okP || !okN {
				continue
			}
			if !prev.IsOffCurve() && !next.IsOffCurve() {
				continue
			}
			in := p.Pos.Sub(prev.Pos)
			out := next.Pos.Sub(p.Pos)
			if in.Hypot() < 1e-10 || out.Hypot() < 1e-10 {
				continue
			}
			in = in.Normalize()
			out = out.Normalize()
			if in.Dot(out) > 0 && abs(in.Cross(out)) < maxKink {
				p.SetSmooth(true)
			}
		}
	}
}

func fixedPt(p fixed.Point26_6) curve.Point {
	return curve.Pt(fixedToFloat(p.X), fixedToFloat(p.Y))
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
