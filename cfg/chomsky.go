package cfg

import (
	"sort"

	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/sets"
)

// rule is one flattened (variable, substitution) pair, the unit the
// normalization passes rewrite.
type rule struct {
	variable string
	sub      Substitution
}

func (r rule) key() string {
	return r.variable + "\x00" + r.sub.key()
}

// ruleSet is a set of flattened rules keyed by their canonical encoding.
type ruleSet map[string]rule

func (rs ruleSet) add(r rule) {
	rs[r.key()] = r
}

func (rs ruleSet) remove(r rule) {
	delete(rs, r.key())
}

// sorted returns the rules in a fixed order so the rewriting passes are
// deterministic.
func (rs ruleSet) sorted() []rule {
	keys := make([]string, 0, len(rs))
	for k := range rs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]rule, 0, len(keys))
	for _, k := range keys {
		out = append(out, rs[k])
	}
	return out
}

// ChomskyNormalize returns a new grammar generating the same language in
// Chomsky Normal Form: every substitution is a single terminal or a pair
// of variables, and only the fresh start variable may derive Epsilon. The
// result is usually far larger than the smallest CNF grammar for the
// language.
//
// The conversion is the standard four-pass pipeline over a flattened rule
// set: isolate a fresh start variable, eliminate epsilon rules, eliminate
// unit rules, then break long substitutions apart and hoist terminals out
// of pairs. Fresh variables are counter-allocated against the variables in
// use, so conversions are reproducible.
func (g *CFG) ChomskyNormalize() (*CFG, error) {
	rs := ruleSet{}
	for v, subs := range g.rules {
		for _, sub := range subs {
			rs.add(rule{variable: v, sub: sub.clone()})
		}
	}

	used := g.variables.Clone()
	start := check.FreshName(used, "V")
	used.Add(start)
	rs.add(rule{variable: start, sub: Substitution{g.start}})

	eliminateEpsilons(rs, start)
	eliminateUnitRules(rs, used)
	breakLongRules(rs, used)
	hoistTerminals(rs, g.terminals, used)

	rules := Rules{}
	for _, r := range rs.sorted() {
		rules[r.variable] = append(rules[r.variable], r.sub)
	}
	return New(rules, start)
}

func isEpsilonRule(r rule) bool {
	return len(r.sub) == 1 && r.sub[0] == Epsilon
}

// eliminateEpsilons removes every epsilon rule except the start's,
// compensating by adding, for each substitution mentioning the nullable
// variable, one variant per non-empty subset of the occurrences dropped.
// Removed rules are remembered so a variable never becomes nullable twice;
// the loop runs to a fixed point because eliminations can cascade.
func eliminateEpsilons(rs ruleSet, start string) {
	removed := sets.New()
	for {
		var epsilons []rule
		for _, r := range rs.sorted() {
			if r.variable != start && isEpsilonRule(r) {
				epsilons = append(epsilons, r)
			}
		}
		if len(epsilons) == 0 {
			return
		}
		for _, eps := range epsilons {
			rs.remove(eps)
			removed.Add(eps.key())
			for _, r := range rs.sorted() {
				if len(r.sub) == 1 && r.sub[0] == eps.variable {
					ne := rule{variable: r.variable, sub: Substitution{Epsilon}}
					if !removed.Contains(ne.key()) {
						rs.add(ne)
					}
					continue
				}
				var occurrences []int
				for i, sym := range r.sub {
					if sym == eps.variable {
						occurrences = append(occurrences, i)
					}
				}
				if len(occurrences) == 0 {
					continue
				}
				for mask := 1; mask < 1<<len(occurrences); mask++ {
					var variant Substitution
					for i, sym := range r.sub {
						inMask := false
						for j, pos := range occurrences {
							if pos == i && mask&(1<<j) != 0 {
								inMask = true
								break
							}
						}
						if !inMask {
							variant = append(variant, sym)
						}
					}
					if len(variant) == 0 {
						ne := rule{variable: r.variable, sub: Substitution{Epsilon}}
						if !removed.Contains(ne.key()) {
							rs.add(ne)
						}
						continue
					}
					rs.add(rule{variable: r.variable, sub: variant})
				}
			}
		}
	}
}

// eliminateUnitRules removes every rule whose substitution is a single
// variable, copying all of the target variable's productions onto the
// left-hand variable. Removed rules are remembered so unit cycles
// terminate; the loop runs to a fixed point because copying can expose new
// unit rules.
func eliminateUnitRules(rs ruleSet, variables sets.Set) {
	removed := sets.New()
	for {
		var units []rule
		for _, r := range rs.sorted() {
			if len(r.sub) == 1 && variables.Contains(r.sub[0]) {
				units = append(units, r)
			}
		}
		if len(units) == 0 {
			return
		}
		for _, unit := range units {
			rs.remove(unit)
			removed.Add(unit.key())
			target := unit.sub[0]
			for _, r := range rs.sorted() {
				if r.variable != target {
					continue
				}
				ne := rule{variable: unit.variable, sub: r.sub}
				if len(ne.sub) == 1 && ne.sub[0] == ne.variable {
					continue
				}
				if !removed.Contains(ne.key()) {
					rs.add(ne)
				}
			}
		}
	}
}

// breakLongRules chains every substitution of length three or more down
// into length-2 rules through fresh variables.
func breakLongRules(rs ruleSet, used sets.Set) {
	for _, r := range rs.sorted() {
		if len(r.sub) < 3 {
			continue
		}
		rs.remove(r)
		lhs := r.variable
		for i := 0; i < len(r.sub)-2; i++ {
			fresh := check.FreshName(used, "V")
			used.Add(fresh)
			rs.add(rule{variable: lhs, sub: Substitution{r.sub[i], fresh}})
			lhs = fresh
		}
		rs.add(rule{variable: lhs, sub: Substitution{r.sub[len(r.sub)-2], r.sub[len(r.sub)-1]}})
	}
}

// hoistTerminals replaces every terminal inside a length-2 substitution
// with a fresh variable deriving exactly that terminal.
func hoistTerminals(rs ruleSet, terminals sets.Set, used sets.Set) {
	for _, r := range rs.sorted() {
		if len(r.sub) != 2 {
			continue
		}
		if !terminals.Contains(r.sub[0]) && !terminals.Contains(r.sub[1]) {
			continue
		}
		rs.remove(r)
		variant := r.sub.clone()
		for i, sym := range r.sub {
			if !terminals.Contains(sym) {
				continue
			}
			fresh := check.FreshName(used, "V")
			used.Add(fresh)
			variant[i] = fresh
			rs.add(rule{variable: fresh, sub: Substitution{sym}})
		}
		rs.add(rule{variable: r.variable, sub: variant})
	}
}
