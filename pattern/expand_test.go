package pattern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestExpandLiterals(t *testing.T) {
	diff(t, []string{"CSH"}, Expand("CSH"))
}

func TestExpandWildcardSet(t *testing.T) {
	diff(t, []string{"NCH", "CCH", "SCH", "HCH"}, Expand("[X]CH"))
}

func TestExpandBareWildcard(t *testing.T) {
	diff(t, []string{"NH", "CH", "SH", "HH"}, Expand("XH"))
}

func TestExpandEmptySetKillsAllCombinations(t *testing.T) {
	if got := Expand("[]H"); len(got) != 0 {
		t.Errorf("expected empty expansion for \"[]H\", got %v", got)
	}
}

func TestExpandEmptyTemplate(t *testing.T) {
	if got := Expand(""); len(got) != 0 {
		t.Errorf("expected empty expansion for empty template, got %v", got)
	}
}

func TestExpandIsDeterministic(t *testing.T) {
	first := Expand("[X@][CS]H")
	second := Expand("[X@][CS]H")
	diff(t, first, second)
	if len(first) != 10 {
		t.Errorf("expected 10 expansions of \"[X@][CS]H\", got %d", len(first))
	}
}

func TestExpandSplicesWildcardInsideSets(t *testing.T) {
	diff(t, []string{"@", "N", "C", "S", "H"}, Expand("[@X]"))
}

func TestExpandLeftmostVariesSlowest(t *testing.T) {
	diff(t, []string{"NC", "NS", "CC", "CS", "SC", "SS", "HC", "HS"}, Expand("X[CS]"))
}

func TestExpandPassesUnknownCharactersThrough(t *testing.T) {
	diff(t, []string{"zb", "zC"}, Expand("z[bC]"))
}

func TestExpandToleratesUnterminatedSet(t *testing.T) {
	diff(t, []string{"C", "S"}, Expand("[CS"))
}
