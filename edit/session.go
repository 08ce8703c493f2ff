package edit

import (
	"github.com/npillmayer/glyphedit/outline"
	"github.com/npillmayer/glyphedit/pattern"
	"honnef.co/go/curve"
)

// Session is an editing session for one glyph. It owns the identity source
// all points and contours of the glyph draw from, and it maintains an active
// contour that point-building operations append to.
//
// A session is not safe for concurrent use; it is expected to live on the
// host's editing goroutine.
type Session struct {
	glyph  *Glyph
	ids    outline.IDSource
	rules  *pattern.RuleSet
	active outline.ContourID
}

// NewSession starts a session on a fresh glyph with one empty, open, active
// contour. codepoint may be 0 for unmapped glyphs.
func NewSession(name string, codepoint rune) *Session {
	s := &Session{
		glyph: &Glyph{Name: name, Codepoint: codepoint},
		rules: pattern.Rules(),
	}
	s.NewContour()
	return s
}

// Glyph exposes the glyph under edit.
func (s *Session) Glyph() *Glyph {
	return s.glyph
}

// ActiveContour returns the contour new points are appended to. A session
// always has one.
func (s *Session) ActiveContour() *outline.Contour {
	return s.glyph.Contour(s.active)
}

// SetActiveContour switches the active contour. Unknown identities are a
// no-op returning false.
func (s *Session) SetActiveContour(id outline.ContourID) bool {
	if s.glyph.Contour(id) == nil {
		tracer().Debugf("session: no contour %v to activate", id)
		return false
	}
	s.active = id
	return true
}

// NewContour appends a fresh empty contour and makes it active.
func (s *Session) NewContour() outline.ContourID {
	c := outline.NewContour(s.ids.NextContour())
	s.glyph.Contours = append(s.glyph.Contours, c)
	s.active = c.ID()
	return c.ID()
}

// RemoveContour deletes a contour and all its points. Removing an unknown
// identity is a no-op returning false. If the active contour goes away, the
// last remaining contour becomes active; a session never ends up without one.
func (s *Session) RemoveContour(id outline.ContourID) bool {
	for i, c := range s.glyph.Contours {
		if c.ID() != id {
			continue
		}
		s.glyph.Contours = append(s.glyph.Contours[:i], s.glyph.Contours[i+1:]...)
		if s.active == id {
			if n := len(s.glyph.Contours); n > 0 {
				s.active = s.glyph.Contours[n-1].ID()
			} else {
				s.NewContour()
			}
		}
		return true
	}
	tracer().Debugf("session: no contour %v to remove", id)
	return false
}

// AddPoint appends a point to the active contour and returns its identity.
func (s *Session) AddPoint(pos curve.Point, typ outline.PointType, smooth bool) outline.PointID {
	p := outline.NewPoint(s.ids.NextPoint(), pos, typ, smooth)
	s.ActiveContour().Append(p)
	return p.ID
}

// CloseActive closes the active contour; closing an empty one fails.
func (s *Session) CloseActive() bool {
	return s.ActiveContour().Close()
}

// OpenActive reopens the active contour.
func (s *Session) OpenActive() {
	s.ActiveContour().Open()
}

// FindPoint locates a point across all contours of the glyph.
func (s *Session) FindPoint(id outline.PointID) (*outline.Contour, int, bool) {
	return s.glyph.FindPoint(id)
}

// MovePoints translates the given points by delta, wherever they live, and
// returns the identities actually moved. Unknown identities are skipped.
func (s *Session) MovePoints(delta curve.Vec2, ids ...outline.PointID) []outline.PointID {
	var moved []outline.PointID
	for _, id := range ids {
		c, i, ok := s.FindPoint(id)
		if !ok {
			tracer().Debugf("move: no point %v in glyph", id)
			continue
		}
		c.At(i).Translate(delta)
		moved = append(moved, id)
	}
	return moved
}

// RemovePoints removes the given points, wherever they live, and reports how
// many were actually removed.
func (s *Session) RemovePoints(ids ...outline.PointID) int {
	n := 0
	for _, id := range ids {
		if c, _, ok := s.FindPoint(id); ok {
			if c.RemoveID(id) {
				n++
			}
		} else {
			tracer().Debugf("remove: no point %v in glyph", id)
		}
	}
	return n
}

// ToggleSmooth flips the corner/smooth state of an anchor. Handles and
// unknown identities are no-ops returning false.
func (s *Session) ToggleSmooth(id outline.PointID) bool {
	c, i, ok := s.FindPoint(id)
	if !ok {
		tracer().Debugf("smooth: no point %v in glyph", id)
		return false
	}
	p := c.At(i)
	if p.IsOffCurve() {
		return false
	}
	p.ToggleSmooth()
	return true
}

// UpgradeLine replaces the line segment starting at the given anchor by an
// equivalent cubic, minting the two control handles from the session's
// identity source. See outline.Contour.UpgradeLineSegment.
func (s *Session) UpgradeLine(startID outline.PointID) (outline.PointID, bool) {
	c, _, ok := s.FindPoint(startID)
	if !ok {
		tracer().Debugf("upgrade: no point %v in glyph", startID)
		return outline.NoPoint, false
	}
	return c.UpgradeLineSegment(startID, &s.ids)
}

// PointCount totals the points over all contours.
func (s *Session) PointCount() int {
	return s.glyph.PointCount()
}
