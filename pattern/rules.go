package pattern

// RuleName identifies one of the built-in editing rules.
type RuleName int8

const (
	// NoRule means no rule matched; the host's move is applied literally.
	NoRule RuleName = iota
	// MoveRightHandle drags the handle to the right of a moving anchor along.
	MoveRightHandle
	// MoveLeftHandle drags the handle to the left of a moving anchor along.
	MoveLeftHandle
	// MoveBothHandles drags both flanking handles of a moving anchor along.
	MoveBothHandles
	// MaintainTangencyRight keeps the handle on the far (left) side of a
	// smooth anchor collinear while the point right of the anchor moves.
	MaintainTangencyRight
	// MaintainTangencyLeft keeps the handle on the far (right) side of a
	// smooth anchor collinear while the handle left of the anchor moves.
	MaintainTangencyLeft
)

func (r RuleName) String() string {
	switch r {
	case NoRule:
		return "none"
	case MoveRightHandle:
		return "move-right-handle"
	case MoveLeftHandle:
		return "move-left-handle"
	case MoveBothHandles:
		return "move-both-handles"
	case MaintainTangencyRight:
		return "maintain-tangency-right"
	case MaintainTangencyLeft:
		return "maintain-tangency-left"
	}
	return "invalid"
}

// ruleTemplates are the built-in rules in priority order. Templates are
// expanded in slice order and inserted into the lookup tables as they come,
// so on overlapping expansions the later template wins.
//
// The window is centered on the point being dragged. Three-slot templates
// read (previous, dragged, next); the five-slot tangency template reads two
// neighbors out on each side, because it must see the handle on the far side
// of the smooth anchor it protects.
var ruleTemplates = []struct {
	name     RuleName
	template string
}{
	{MoveRightHandle, "[X@][CS]H"},
	{MoveLeftHandle, "H[CS][X@]"},
	{MoveBothHandles, "H[CS]H"},
	{MaintainTangencyRight, "HS[HC][@X][@X]"},
	{MaintainTangencyLeft, "[@X]HS"},
}

// --- Rule table ------------------------------------------------------------

// RuleSet is the compiled lookup table: every concrete neighborhood covered
// by some rule template, keyed for O(1) probing. A RuleSet is immutable after
// construction and safe for concurrent readers.
type RuleSet struct {
	narrow map[[3]Token]RuleName
	wide   map[[5]Token]RuleName
}

// builtin is compiled once at package initialization.
var builtin = NewRuleSet()

// Rules returns the shared rule set compiled from the built-in templates.
func Rules() *RuleSet {
	return builtin
}

// NewRuleSet compiles the built-in rule templates into a fresh lookup table.
func NewRuleSet() *RuleSet {
	rs := &RuleSet{
		narrow: make(map[[3]Token]RuleName),
		wide:   make(map[[5]Token]RuleName),
	}
	for _, rt := range ruleTemplates {
		for _, concrete := range Expand(rt.template) {
			toks, ok := Tokenize(concrete)
			assert(ok, "rule template "+rt.template+" expands outside the alphabet")
			switch len(toks) {
			case 3:
				rs.narrow[[3]Token(toks)] = rt.name
			case 5:
				rs.wide[[5]Token(toks)] = rt.name
			default:
				assert(false, "rule template "+rt.template+" has unsupported width")
			}
		}
	}
	tracer().Debugf("compiled rule table: %d narrow, %d wide entries",
		len(rs.narrow), len(rs.wide))
	return rs
}

// Lookup3 probes the table with a 3-slot neighborhood. A miss is a normal
// outcome, not an error.
func (rs *RuleSet) Lookup3(w [3]Token) (RuleName, bool) {
	r, ok := rs.narrow[w]
	return r, ok
}

// Lookup5 probes the table with a 5-slot neighborhood.
func (rs *RuleSet) Lookup5(w [5]Token) (RuleName, bool) {
	r, ok := rs.wide[w]
	return r, ok
}

// Match probes the narrow window first and falls back to the wide one,
// mirroring the window sizes the rule templates are written for.
func (rs *RuleSet) Match(narrow [3]Token, wide [5]Token) (RuleName, bool) {
	if r, ok := rs.Lookup3(narrow); ok {
		return r, true
	}
	return rs.Lookup5(wide)
}
