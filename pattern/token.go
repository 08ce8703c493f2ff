package pattern

import (
	"strings"

	"github.com/npillmayer/glyphedit/outline"
)

// Token classifies one point slot of a neighborhood.
type Token int8

const (
	// Absent marks a slot with no point, i.e. beyond the end of an open
	// contour.
	Absent Token = iota
	// Corner marks a non-smooth anchor.
	Corner
	// Smooth marks a smooth anchor.
	Smooth
	// Handle marks an off-curve control point.
	Handle
	// Selected marks a neighbor that is part of the current selection,
	// whatever its curve role. The central slot of a window is never
	// classified Selected.
	Selected
)

// Symbol returns the token's one-byte notation used by the pattern language.
func (t Token) Symbol() byte {
	switch t {
	case Absent:
		return 'N'
	case Corner:
		return 'C'
	case Smooth:
		return 'S'
	case Handle:
		return 'H'
	case Selected:
		return '@'
	}
	return '?'
}

func (t Token) String() string {
	return string(t.Symbol())
}

// tokenFor maps a symbol byte back to its token.
func tokenFor(b byte) (Token, bool) {
	switch b {
	case 'N':
		return Absent, true
	case 'C':
		return Corner, true
	case 'S':
		return Smooth, true
	case 'H':
		return Handle, true
	case '@':
		return Selected, true
	}
	return Absent, false
}

// Tokenize converts a concrete neighborhood string into tokens. It fails on
// any byte outside the alphabet.
func Tokenize(s string) ([]Token, bool) {
	toks := make([]Token, len(s))
	for i := 0; i < len(s); i++ {
		t, ok := tokenFor(s[i])
		if !ok {
			return nil, false
		}
		toks[i] = t
	}
	return toks, true
}

// Symbols renders tokens back into their string notation.
func Symbols(toks []Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteByte(t.Symbol())
	}
	return sb.String()
}

// --- Selections ------------------------------------------------------------

// Selection is the set of point identities the host currently has selected.
// A nil Selection is a valid empty selection.
type Selection map[outline.PointID]struct{}

// NewSelection builds a selection from ids.
func NewSelection(ids ...outline.PointID) Selection {
	sel := make(Selection, len(ids))
	for _, id := range ids {
		sel[id] = struct{}{}
	}
	return sel
}

// Has reports membership.
func (sel Selection) Has(id outline.PointID) bool {
	_, ok := sel[id]
	return ok
}

// Add inserts an id into the selection.
func (sel Selection) Add(id outline.PointID) {
	sel[id] = struct{}{}
}
