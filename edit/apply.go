package edit

import (
	"github.com/npillmayer/glyphedit/outline"
	"github.com/npillmayer/glyphedit/pattern"
	"honnef.co/go/curve"
)

// Edit is one drag gesture: a translation applied to a set of target points.
// Selected is the host's full selection, used to classify neighborhoods; it
// normally contains the targets. A nil Selected defaults to the targets
// themselves.
type Edit struct {
	Move     curve.Vec2
	Targets  []outline.PointID
	Selected pattern.Selection
}

// AppliedEdit reports what an Edit did: every point that actually moved,
// listed once with targets before constraint-dragged neighbors, and the
// positions before and after. Hosts build undo entries from Before/After;
// the session keeps no history of its own.
type AppliedEdit struct {
	Affected []outline.PointID
	Before   map[outline.PointID]curve.Point
	After    map[outline.PointID]curve.Point
	Rules    map[outline.PointID]pattern.RuleName // matched rule per target
}

// Apply performs a drag. Each target first moves literally by e.Move; then
// its neighborhood is classified and probed against the rule table, and a
// matching rule drags neighbor points along. A rule miss is a normal
// outcome: the literal move simply stands.
//
// Every point moves at most once per Apply. Unknown target identities are
// skipped with a trace message.
func (s *Session) Apply(e Edit) AppliedEdit {
	res := AppliedEdit{
		Before: make(map[outline.PointID]curve.Point),
		After:  make(map[outline.PointID]curve.Point),
		Rules:  make(map[outline.PointID]pattern.RuleName),
	}
	sel := e.Selected
	if sel == nil {
		sel = pattern.NewSelection(e.Targets...)
	}

	// phase 1: literal moves
	type located struct {
		c  *outline.Contour
		i  int
		id outline.PointID
	}
	var targets []located
	for _, id := range e.Targets {
		c, i, ok := s.FindPoint(id)
		if !ok {
			tracer().Debugf("apply: no point %v in glyph", id)
			continue
		}
		if _, seen := res.Before[id]; seen {
			continue
		}
		p := c.At(i)
		res.Before[id] = p.Pos
		p.Translate(e.Move)
		res.After[id] = p.Pos
		res.Affected = append(res.Affected, id)
		targets = append(targets, located{c: c, i: i, id: id})
	}

	// phase 2: constraints; classification is independent of positions, so
	// the order of phases does not change which rules match
	for _, tg := range targets {
		rule, ok := pattern.MatchAt(s.rules, tg.c, tg.i, sel)
		if !ok {
			continue
		}
		res.Rules[tg.id] = rule
		s.applyRule(rule, tg.c, tg.i, e.Move, &res)
	}
	return res
}

// applyRule runs the action of a matched rule for the dragged point at
// index i. Neighbor slots are resolved through contour navigation, wrapping
// on closed contours; a missing slot voids that part of the action.
func (s *Session) applyRule(rule pattern.RuleName, c *outline.Contour, i int, delta curve.Vec2, res *AppliedEdit) {
	switch rule {
	case pattern.MoveRightHandle:
		if j, ok := c.NextIndex(i); ok {
			followHandle(c, j, delta, res)
		}
	case pattern.MoveLeftHandle:
		if j, ok := c.PrevIndex(i); ok {
			followHandle(c, j, delta, res)
		}
	case pattern.MoveBothHandles:
		if j, ok := c.PrevIndex(i); ok {
			followHandle(c, j, delta, res)
		}
		if j, ok := c.NextIndex(i); ok {
			followHandle(c, j, delta, res)
		}
	case pattern.MaintainTangencyRight:
		anchor, ok := c.PrevIndex(i)
		if !ok {
			return
		}
		opposite, ok := c.PrevIndex(anchor)
		if !ok {
			return
		}
		maintainTangency(c, anchor, i, opposite, res)
	case pattern.MaintainTangencyLeft:
		anchor, ok := c.NextIndex(i)
		if !ok {
			return
		}
		opposite, ok := c.NextIndex(anchor)
		if !ok {
			return
		}
		maintainTangency(c, anchor, i, opposite, res)
	}
}

// followHandle translates the handle at index j by the same delta as its
// anchor. Points that already moved in this Apply stay where they are.
func followHandle(c *outline.Contour, j int, delta curve.Vec2, res *AppliedEdit) {
	p := c.At(j)
	if _, seen := res.Before[p.ID]; seen {
		return
	}
	res.Before[p.ID] = p.Pos
	p.Translate(delta)
	res.After[p.ID] = p.Pos
	res.Affected = append(res.Affected, p.ID)
}

// maintainTangency keeps the opposite handle of a smooth anchor collinear
// with the dragged point: it rotates about the anchor onto the ray opposite
// the dragged point, preserving its own distance to the anchor. Degenerate
// drags that land on the anchor itself leave the opposite handle untouched,
// as do points that already moved in this Apply.
func maintainTangency(c *outline.Contour, anchorIdx, draggedIdx, oppositeIdx int, res *AppliedEdit) {
	anchor := c.At(anchorIdx)
	dragged := c.At(draggedIdx)
	opposite := c.At(oppositeIdx)
	if _, seen := res.Before[opposite.ID]; seen {
		return
	}
	v := dragged.Pos.Sub(anchor.Pos)
	if v.Hypot() < 1e-10 {
		tracer().Debugf("tangency: %v sits on anchor %v, leaving %v in place",
			dragged.ID, anchor.ID, opposite.ID)
		return
	}
	radius := opposite.Pos.Sub(anchor.Pos).Hypot()
	res.Before[opposite.ID] = opposite.Pos
	opposite.MoveTo(anchor.Pos.Translate(v.Normalize().Negate().Mul(radius)))
	res.After[opposite.ID] = opposite.Pos
	res.Affected = append(res.Affected, opposite.ID)
}
