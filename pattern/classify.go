package pattern

import (
	"github.com/npillmayer/glyphedit/outline"
)

// classify maps one point slot to its token. central suppresses the
// Selected classification: a window describes the neighborhood of its
// central point, and the center itself is always classified by role.
func classify(p *outline.Point, sel Selection, central bool) Token {
	if p == nil {
		return Absent
	}
	if !central && sel.Has(p.ID) {
		return Selected
	}
	if p.IsOffCurve() {
		return Handle
	}
	if p.Smooth {
		return Smooth
	}
	return Corner
}

// Window3 builds the 3-slot neighborhood (previous, center, next) around the
// point at index i. Neighbors are resolved through the contour's navigation,
// so closed contours wrap and open-contour ends classify as Absent. On small
// closed contours the same point may occupy several slots; each slot is
// classified on its own.
func Window3(c *outline.Contour, i int, sel Selection) [3]Token {
	prev, _ := c.Prev(i)
	next, _ := c.Next(i)
	return [3]Token{
		classify(prev, sel, false),
		classify(c.At(i), sel, true),
		classify(next, sel, false),
	}
}

// Window5 builds the 5-slot neighborhood around the point at index i,
// reaching two points out on each side.
func Window5(c *outline.Contour, i int, sel Selection) [5]Token {
	var prev2, prev, next, next2 *outline.Point
	if j, ok := c.PrevIndex(i); ok {
		prev = c.At(j)
		if k, ok := c.PrevIndex(j); ok {
			prev2 = c.At(k)
		}
	}
	if j, ok := c.NextIndex(i); ok {
		next = c.At(j)
		if k, ok := c.NextIndex(j); ok {
			next2 = c.At(k)
		}
	}
	return [5]Token{
		classify(prev2, sel, false),
		classify(prev, sel, false),
		classify(c.At(i), sel, true),
		classify(next, sel, false),
		classify(next2, sel, false),
	}
}

// MatchAt classifies the neighborhood of the point at index i and probes the
// rule set, narrow window first. A miss reports NoRule and false; callers
// treat that as "move the point literally".
func MatchAt(rs *RuleSet, c *outline.Contour, i int, sel Selection) (RuleName, bool) {
	narrow := Window3(c, i, sel)
	if r, ok := rs.Lookup3(narrow); ok {
		tracer().Debugf("point %v matches %v as %s", c.At(i).ID, r, Symbols(narrow[:]))
		return r, true
	}
	wide := Window5(c, i, sel)
	if r, ok := rs.Lookup5(wide); ok {
		tracer().Debugf("point %v matches %v as %s", c.At(i).ID, r, Symbols(wide[:]))
		return r, true
	}
	return NoRule, false
}
