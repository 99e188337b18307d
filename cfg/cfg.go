// Package cfg implements context-free grammars: derivation validation and
// conversion to Chomsky Normal Form.
//
// A grammar is a map from variable names to sets of substitutions. The
// variables are the keys of the map; every other symbol appearing in a
// substitution is a terminal. The empty substitution is written as the
// one-element sequence containing Epsilon.
package cfg

import (
	"errors"
	"sort"
	"strings"

	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/sets"
)

// Epsilon marks the empty substitution.
const Epsilon = "€"

var (
	ErrEmptyRules    = errors.New("a grammar needs at least one rule")
	ErrSubstitution  = errors.New("substitutions must be non-empty sequences")
	ErrNoTerminals   = errors.New("there are no terminals among the substitutions")
	ErrStartVariable = errors.New("start variable is not one of the grammar's variables")
)

// Substitution is one right-hand side of a rule: a sequence of variables
// and terminals, or the single Epsilon marker.
type Substitution []string

func (s Substitution) clone() Substitution {
	c := make(Substitution, len(s))
	copy(c, s)
	return c
}

func (s Substitution) equal(other Substitution) bool {
	if len(s) != len(other) {
		return false
	}
	for i, sym := range s {
		if other[i] != sym {
			return false
		}
	}
	return true
}

func (s Substitution) key() string {
	return strings.Join(s, "\x1f")
}

// Rules maps each variable to its possible substitutions.
type Rules map[string][]Substitution

// CFG is a context-free grammar. Instances are immutable once constructed;
// ChomskyNormalize returns a brand-new grammar.
type CFG struct {
	rules     Rules
	start     string
	variables sets.Set
	terminals sets.Set
}

// New builds a CFG from a rule map and a start variable. The variables are
// the keys of rules; the terminals are every symbol of a substitution that
// is not a variable (the Epsilon marker included, when used). New fails
// when rules is empty, when a substitution is an empty sequence, when the
// derived terminal set is empty, or when the start variable is not a rule
// key. Duplicate substitutions are dropped.
func New(rules Rules, start string) (*CFG, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyRules
	}

	variables := sets.New()
	for v := range rules {
		variables.Add(v)
	}

	badVars := sets.New()
	normalized := make(Rules, len(rules))
	for v, subs := range rules {
		seen := sets.New()
		for _, sub := range subs {
			if len(sub) == 0 {
				badVars.Add(v)
				continue
			}
			if seen.Contains(sub.key()) {
				continue
			}
			seen.Add(sub.key())
			normalized[v] = append(normalized[v], sub.clone())
		}
		sort.Slice(normalized[v], func(i, j int) bool {
			return normalized[v][i].key() < normalized[v][j].key()
		})
	}
	if err := check.New(
		ErrSubstitution,
		badVars,
		"variable %v has an empty substitution",
		"variables %v have empty substitutions",
	); err != nil {
		return nil, err
	}

	terminals := sets.New()
	for _, subs := range normalized {
		for _, sub := range subs {
			for _, sym := range sub {
				if !variables.Contains(sym) {
					terminals.Add(sym)
				}
			}
		}
	}
	if terminals.Empty() {
		return nil, ErrNoTerminals
	}
	if !variables.Contains(start) {
		return nil, check.New(
			ErrStartVariable,
			sets.New(start),
			"start variable %v is not one of the grammar's variables",
			"start variables %v are not among the grammar's variables",
		)
	}

	return &CFG{
		rules:     normalized,
		start:     start,
		variables: variables,
		terminals: terminals,
	}, nil
}

// RuleMap returns a deep copy of the rules; mutating the copy does not
// affect the grammar.
func (g *CFG) RuleMap() Rules {
	rules := make(Rules, len(g.rules))
	for v, subs := range g.rules {
		copied := make([]Substitution, len(subs))
		for i, sub := range subs {
			copied[i] = sub.clone()
		}
		rules[v] = copied
	}
	return rules
}

func (g *CFG) StartVariable() string {
	return g.start
}

// Variables returns a copy of the variable set.
func (g *CFG) Variables() sets.Set {
	return g.variables.Clone()
}

// Terminals returns a copy of the terminal set.
func (g *CFG) Terminals() sets.Set {
	return g.terminals.Clone()
}

// IsValidDerivation reports whether every sentential form of the
// derivation follows from the previous one by grammar rules. Adjacent
// forms are matched left to right: each leading symbol is either kept, or,
// when it is a variable, replaced by one of its substitutions; the
// remainder is validated recursively, backtracking over the alternatives.
func (g *CFG) IsValidDerivation(derivation [][]string) bool {
	for i := 0; i+1 < len(derivation); i++ {
		if !g.yields(derivation[i], derivation[i+1]) {
			return false
		}
	}
	return true
}

func (g *CFG) yields(line1, line2 []string) bool {
	if Substitution(line1).equal(line2) {
		return true
	}
	if len(line1) < 1 {
		return false
	}
	first := line1[0]
	candidates := []Substitution{{first}}
	if g.variables.Contains(first) {
		candidates = append(candidates, g.rules[first]...)
	}
	for _, sub := range candidates {
		if len(line2) < len(sub) {
			continue
		}
		if Substitution(line2[:len(sub)]).equal(sub) && g.yields(line1[1:], line2[len(sub):]) {
			return true
		}
	}
	return false
}
