package cfg

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/machina-dev/machina/check"
)

// balancedParens generates all balanced strings of parentheses.
func balancedParens(t *testing.T) *CFG {
	t.Helper()
	g, err := New(Rules{
		"S": {
			{"(", "S", ")"},
			{"S", "S"},
			{Epsilon},
		},
	}, "S")
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNew_validation(t *testing.T) {
	tests := []struct {
		caption string
		rules   Rules
		start   string
		cause   error
		members []string
	}{
		{
			caption: "a grammar needs at least one rule",
			rules:   Rules{},
			start:   "S",
			cause:   ErrEmptyRules,
		},
		{
			caption: "substitutions must be non-empty sequences",
			rules: Rules{
				"S": {{"a"}},
				"A": {{}},
				"B": {{}},
			},
			start:   "S",
			cause:   ErrSubstitution,
			members: []string{"A", "B"},
		},
		{
			caption: "the grammar needs at least one terminal",
			rules: Rules{
				"S": {{"A"}},
				"A": {{"S"}},
			},
			start: "S",
			cause: ErrNoTerminals,
		},
		{
			caption: "the start variable must be a rule key",
			rules: Rules{
				"S": {{"a"}},
			},
			start:   "T",
			cause:   ErrStartVariable,
			members: []string{"T"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := New(tt.rules, tt.start)
			if !errors.Is(err, tt.cause) {
				t.Fatalf("unexpected error; want: %v, got: %v", tt.cause, err)
			}
			if tt.members == nil {
				return
			}
			var cErr *check.Error
			if !errors.As(err, &cErr) {
				t.Fatalf("error is not a *check.Error: %v", err)
			}
			if diff := cmp.Diff(tt.members, cErr.Members); diff != "" {
				t.Fatalf("unexpected members:\n%v", diff)
			}
		})
	}
}

func TestNew_derivedSets(t *testing.T) {
	g := balancedParens(t)

	if diff := cmp.Diff([]string{"S"}, g.Variables().Members()); diff != "" {
		t.Fatalf("unexpected variables:\n%v", diff)
	}
	if diff := cmp.Diff([]string{"(", ")", Epsilon}, g.Terminals().Members()); diff != "" {
		t.Fatalf("unexpected terminals:\n%v", diff)
	}
	if g.StartVariable() != "S" {
		t.Fatalf("unexpected start variable: %v", g.StartVariable())
	}
}

func TestNew_duplicateSubstitutionsAreDropped(t *testing.T) {
	g, err := New(Rules{
		"S": {{"a"}, {"a"}, {"b"}},
	}, "S")
	if err != nil {
		t.Fatal(err)
	}
	want := Rules{
		"S": {{"a"}, {"b"}},
	}
	if diff := cmp.Diff(want, g.RuleMap()); diff != "" {
		t.Fatalf("unexpected rules:\n%v", diff)
	}
}

func TestCFG_RuleMapCopies(t *testing.T) {
	g := balancedParens(t)
	rules := g.RuleMap()
	rules["S"][0][0] = "["
	if g.RuleMap()["S"][0][0] == "[" {
		t.Fatal("RuleMap must return a deep copy")
	}
}

func TestCFG_IsValidDerivation(t *testing.T) {
	g := balancedParens(t)

	tests := []struct {
		caption    string
		derivation [][]string
		valid      bool
	}{
		{
			caption:    "a single form derives trivially",
			derivation: [][]string{{"S"}},
			valid:      true,
		},
		{
			caption: "identical adjacent forms derive trivially",
			derivation: [][]string{
				{"(", "S", ")"},
				{"(", "S", ")"},
			},
			valid: true,
		},
		{
			caption: "one substitution per step",
			derivation: [][]string{
				{"S"},
				{"(", "S", ")"},
				{"(", Epsilon, ")"},
			},
			valid: true,
		},
		{
			caption: "parallel substitutions in one step",
			derivation: [][]string{
				{"S"},
				{"S", "S"},
				{"(", "S", ")", "(", "S", ")"},
			},
			valid: true,
		},
		{
			caption: "a step must follow a rule",
			derivation: [][]string{
				{"S"},
				{"(", ")"},
			},
			valid: false,
		},
		{
			caption: "terminals cannot be rewritten",
			derivation: [][]string{
				{"(", Epsilon, ")"},
				{"(", "S", ")"},
			},
			valid: false,
		},
		{
			caption: "every step is checked, not just the first",
			derivation: [][]string{
				{"S"},
				{"(", "S", ")"},
				{"S", "S"},
			},
			valid: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if got := g.IsValidDerivation(tt.derivation); got != tt.valid {
				t.Fatalf("unexpected result; want: %v, got: %v", tt.valid, got)
			}
		})
	}
}
