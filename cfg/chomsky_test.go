package cfg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChomskyNormalize_singleTerminalRule(t *testing.T) {
	g, err := New(Rules{
		"S": {{"a"}},
	}, "S")
	if err != nil {
		t.Fatal(err)
	}
	n, err := g.ChomskyNormalize()
	if err != nil {
		t.Fatal(err)
	}

	if n.StartVariable() != "V" {
		t.Fatalf("unexpected start variable: %v", n.StartVariable())
	}
	want := Rules{
		"S": {{"a"}},
		"V": {{"a"}},
	}
	if diff := cmp.Diff(want, n.RuleMap()); diff != "" {
		t.Fatalf("unexpected rules:\n%v", diff)
	}
}

func TestChomskyNormalize_epsilonStaysAtStartOnly(t *testing.T) {
	g, err := New(Rules{
		"S": {{"a"}, {Epsilon}},
	}, "S")
	if err != nil {
		t.Fatal(err)
	}
	n, err := g.ChomskyNormalize()
	if err != nil {
		t.Fatal(err)
	}

	want := Rules{
		"S": {{"a"}},
		"V": {{"a"}, {Epsilon}},
	}
	if diff := cmp.Diff(want, n.RuleMap()); diff != "" {
		t.Fatalf("unexpected rules:\n%v", diff)
	}
}

// assertCNF checks the structural invariants of Chomsky Normal Form: every
// substitution is a single terminal or a pair of variables, and only the
// start variable may derive the empty string.
func assertCNF(t *testing.T, g *CFG) {
	t.Helper()
	variables := g.Variables()
	for v, subs := range g.RuleMap() {
		for _, sub := range subs {
			switch len(sub) {
			case 1:
				if variables.Contains(sub[0]) {
					t.Errorf("unit rule survives: %v -> %v", v, sub[0])
				}
				if sub[0] == Epsilon && v != g.StartVariable() {
					t.Errorf("epsilon rule survives outside the start variable: %v", v)
				}
			case 2:
				for _, sym := range sub {
					if !variables.Contains(sym) {
						t.Errorf("terminal inside a pair: %v -> %v", v, sub)
					}
				}
			default:
				t.Errorf("substitution of length %v: %v -> %v", len(sub), v, sub)
			}
		}
	}
}

func TestChomskyNormalize_shape(t *testing.T) {
	tests := []struct {
		caption string
		rules   Rules
		start   string
	}{
		{
			caption: "balanced parentheses",
			rules: Rules{
				"S": {
					{"(", "S", ")"},
					{"S", "S"},
					{Epsilon},
				},
			},
			start: "S",
		},
		{
			caption: "nullable variables inside long substitutions",
			rules: Rules{
				"S": {{"A", "S", "A"}, {"a", "B"}},
				"A": {{"B"}, {"S"}},
				"B": {{"b"}, {Epsilon}},
			},
			start: "S",
		},
		{
			caption: "a unit cycle",
			rules: Rules{
				"S": {{"A"}, {"a"}},
				"A": {{"S"}, {"b"}},
			},
			start: "S",
		},
		{
			caption: "a long all-terminal substitution",
			rules: Rules{
				"S": {{"a", "b", "c", "d"}},
			},
			start: "S",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g, err := New(tt.rules, tt.start)
			if err != nil {
				t.Fatal(err)
			}
			n, err := g.ChomskyNormalize()
			if err != nil {
				t.Fatal(err)
			}
			assertCNF(t, n)
			if !n.Terminals().SubsetOf(g.Terminals()) {
				t.Errorf("normalization invented terminals: %v", n.Terminals().Diff(g.Terminals()).Members())
			}
		})
	}
}

func TestChomskyNormalize_isReproducible(t *testing.T) {
	g := balancedParens(t)
	n1, err := g.ChomskyNormalize()
	if err != nil {
		t.Fatal(err)
	}
	n2, err := g.ChomskyNormalize()
	if err != nil {
		t.Fatal(err)
	}
	if n1.StartVariable() != n2.StartVariable() {
		t.Fatalf("start variables differ: %v vs %v", n1.StartVariable(), n2.StartVariable())
	}
	if diff := cmp.Diff(n1.RuleMap(), n2.RuleMap()); diff != "" {
		t.Fatalf("conversions differ:\n%v", diff)
	}
}

func TestChomskyNormalize_doesNotMutateTheSource(t *testing.T) {
	g := balancedParens(t)
	before := g.RuleMap()
	if _, err := g.ChomskyNormalize(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, g.RuleMap()); diff != "" {
		t.Fatalf("the source grammar changed:\n%v", diff)
	}
}
