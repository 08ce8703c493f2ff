package edit

import (
	"github.com/npillmayer/glyphedit/outline"
)

// Snapshot is a deep value copy of a glyph's geometry and metadata. Taking
// one is cheap relative to glyph sizes in practice; hosts stack snapshots to
// build undo histories or diff them for change detection. A snapshot shares
// no storage with the live session.
type Snapshot struct {
	Name      string
	Codepoint rune
	Advance   float64
	Contours  []*outline.Contour
}

// Snapshot captures the current state of the glyph under edit.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Name:      s.glyph.Name,
		Codepoint: s.glyph.Codepoint,
		Advance:   s.glyph.Advance,
		Contours:  make([]*outline.Contour, len(s.glyph.Contours)),
	}
	for i, c := range s.glyph.Contours {
		snap.Contours[i] = c.Clone()
	}
	return snap
}

// Restore replaces the live glyph geometry with the snapshot's. Identities
// come back as captured; the session's identity source is not rewound, so
// identities minted after the snapshot are never reused. The active contour
// is preserved when it still exists, otherwise the last contour takes over.
func (s *Session) Restore(snap Snapshot) {
	s.glyph.Name = snap.Name
	s.glyph.Codepoint = snap.Codepoint
	s.glyph.Advance = snap.Advance
	s.glyph.Contours = make([]*outline.Contour, len(snap.Contours))
	for i, c := range snap.Contours {
		s.glyph.Contours[i] = c.Clone()
	}
	if s.glyph.Contour(s.active) == nil {
		if n := len(s.glyph.Contours); n > 0 {
			s.active = s.glyph.Contours[n-1].ID()
		} else {
			s.NewContour()
		}
	}
}

// Equal reports whether two snapshots capture identical glyph state,
// identities included.
func (snap Snapshot) Equal(other Snapshot) bool {
	if snap.Name != other.Name || snap.Codepoint != other.Codepoint ||
		snap.Advance != other.Advance || len(snap.Contours) != len(other.Contours) {
		return false
	}
	for i := range snap.Contours {
		if !snap.Contours[i].Equal(other.Contours[i]) {
			return false
		}
	}
	return true
}
