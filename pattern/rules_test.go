package pattern

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func win3(t *testing.T, s string) [3]Token {
	t.Helper()
	toks, ok := Tokenize(s)
	if !ok || len(toks) != 3 {
		t.Fatalf("bad test window %q", s)
	}
	return [3]Token(toks)
}

func win5(t *testing.T, s string) [5]Token {
	t.Helper()
	toks, ok := Tokenize(s)
	if !ok || len(toks) != 5 {
		t.Fatalf("bad test window %q", s)
	}
	return [5]Token(toks)
}

func TestTokenizeRoundTrip(t *testing.T) {
	toks, ok := Tokenize("NCSH@")
	if !ok {
		t.Fatal("expected alphabet string to tokenize")
	}
	if got := Symbols(toks); got != "NCSH@" {
		t.Errorf("expected round trip to NCSH@, got %q", got)
	}
	if _, ok := Tokenize("NCx"); ok {
		t.Error("expected tokenizing to reject bytes outside the alphabet")
	}
}

func TestRuleTableSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.pattern")
	defer teardown()
	//
	rs := NewRuleSet()
	// 10 + 10 + 2 + 5 narrow expansions; HCH and HSH are claimed by three
	// rules each, so 27 insertions collapse to 23 keys
	if len(rs.narrow) != 23 {
		t.Errorf("expected 23 narrow entries, got %d", len(rs.narrow))
	}
	if len(rs.wide) != 50 {
		t.Errorf("expected 50 wide entries, got %d", len(rs.wide))
	}
}

func TestNarrowProbes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphedit.pattern")
	defer teardown()
	//
	cases := []struct {
		window string
		want   RuleName
		hit    bool
	}{
		{"CSH", MoveRightHandle, true},
		{"@SH", MoveRightHandle, true},
		{"NCH", MoveRightHandle, true},
		{"HSN", MoveLeftHandle, true},
		{"HC@", MoveLeftHandle, true},
		{"HSH", MoveBothHandles, true}, // priority over both move-handle rules
		{"HCH", MoveBothHandles, true},
		{"CHS", MaintainTangencyLeft, true},
		{"@HS", MaintainTangencyLeft, true},
		{"SHC", NoRule, false}, // right-side tangency needs the wide window
		{"CCC", NoRule, false},
		{"NNN", NoRule, false},
	}
	rs := Rules()
	for _, c := range cases {
		got, ok := rs.Lookup3(win3(t, c.window))
		if ok != c.hit || got != c.want {
			t.Errorf("expected %q to yield %v (hit=%v), got %v (hit=%v)",
				c.window, c.want, c.hit, got, ok)
		}
	}
}

func TestWideProbes(t *testing.T) {
	cases := []struct {
		window string
		want   RuleName
		hit    bool
	}{
		{"HSHCN", MaintainTangencyRight, true},
		{"HSH@@", MaintainTangencyRight, true},
		{"HSCNN", MaintainTangencyRight, true}, // dragging the corner endpoint of a line
		{"CSHNN", NoRule, false},               // far handle missing
		{"HSSNN", NoRule, false},
	}
	rs := Rules()
	for _, c := range cases {
		got, ok := rs.Lookup5(win5(t, c.window))
		if ok != c.hit || got != c.want {
			t.Errorf("expected %q to yield %v (hit=%v), got %v (hit=%v)",
				c.window, c.want, c.hit, got, ok)
		}
	}
}

func TestMatchPrefersNarrowWindow(t *testing.T) {
	rs := Rules()
	// narrow window hits MoveBothHandles; the wide window passed alongside
	// would hit MaintainTangencyRight if it were consulted
	got, ok := rs.Match(win3(t, "HSH"), win5(t, "HSHCN"))
	if !ok || got != MoveBothHandles {
		t.Errorf("expected narrow match to win, got %v (hit=%v)", got, ok)
	}
	got, ok = rs.Match(win3(t, "SHC"), win5(t, "HSHCN"))
	if !ok || got != MaintainTangencyRight {
		t.Errorf("expected fallback to wide window, got %v (hit=%v)", got, ok)
	}
	if _, ok := rs.Match(win3(t, "CCC"), win5(t, "CCCCC")); ok {
		t.Error("expected clean miss on both windows")
	}
}
