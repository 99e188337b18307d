package fsa

import (
	"fmt"
	"sort"

	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/sets"
)

// gnfa is the generalized NFA used internally by Encode. Its transitions
// are keyed by ordered state pairs and labeled with regex strings; every
// pair except accept->anything and anything->start carries exactly one
// label, EmptySet standing for "no edge".
type gnfa struct {
	transitions map[statePair]string
	body        sets.Set
	start       string
	accept      string
}

type statePair struct {
	from string
	to   string
}

// unionMainScope reports whether the regex contains an alternation operator
// outside all parentheses. Such operands must be parenthesized before they
// are concatenated or starred.
func unionMainScope(regex string) bool {
	depth := 0
	for _, r := range regex {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

func regexStar(regex string) string {
	if regex == EmptyString || regex == EmptySet {
		return EmptyString
	}
	if len([]rune(regex)) == 1 {
		return regex + "*"
	}
	return fmt.Sprintf("(%v)*", regex)
}

func regexConcat(regex1, regex2 string) string {
	if regex1 == EmptySet || regex2 == EmptySet {
		return EmptySet
	}
	if regex1 == EmptyString {
		return regex2
	}
	if regex2 == EmptyString {
		return regex1
	}
	if unionMainScope(regex1) {
		regex1 = fmt.Sprintf("(%v)", regex1)
	}
	if unionMainScope(regex2) {
		regex2 = fmt.Sprintf("(%v)", regex2)
	}
	return regex1 + regex2
}

func regexUnion(regex1, regex2 string) string {
	if regex1 == EmptySet {
		return regex2
	}
	if regex2 == EmptySet {
		return regex1
	}
	return fmt.Sprintf("%v|%v", regex1, regex2)
}

// reduce returns an equivalent GNFA with one body state eliminated. The
// lowest-sorting body state is ripped out so reductions are reproducible;
// any elimination order yields a language-equivalent result. Every path
// through the ripped state r folds into the surviving pairs as
// R1 R2* R3 | R4, where R2 is r's self-loop label.
func (g *gnfa) reduce() *gnfa {
	rip := g.body.Members()[0]
	r2 := g.transitions[statePair{from: rip, to: rip}]

	states := g.body.Union(sets.New(g.start, g.accept))
	tf := map[statePair]string{}
	for from := range states {
		if from == g.accept || from == rip {
			continue
		}
		r1 := g.transitions[statePair{from: from, to: rip}]
		for to := range states {
			if to == g.start || to == rip {
				continue
			}
			r3 := g.transitions[statePair{from: rip, to: to}]
			r4 := g.transitions[statePair{from: from, to: to}]
			tf[statePair{from: from, to: to}] = regexUnion(
				regexConcat(regexConcat(r1, regexStar(r2)), r3),
				r4,
			)
		}
	}
	return &gnfa{
		transitions: tf,
		body:        g.body.Diff(sets.New(rip)),
		start:       g.start,
		accept:      g.accept,
	}
}

// gnfize lifts the DFA into a GNFA: parallel single-symbol edges merge into
// alternations, fresh start and accept states are wired in with
// empty-string edges, and every remaining ordered pair is filled with the
// empty-set label.
func (d *DFA) gnfize() *gnfa {
	tf := map[statePair]string{}
	for _, mv := range sortedMoves(d.transitions) {
		pair := statePair{from: mv.State, to: d.transitions[mv]}
		if label, ok := tf[pair]; ok {
			tf[pair] = label + "|" + mv.Symbol
		} else {
			tf[pair] = mv.Symbol
		}
	}
	start := check.FreshName(d.states, "state")
	accept := check.FreshName(d.states.Union(sets.New(start)), "state")
	tf[statePair{from: start, to: d.start}] = EmptyString
	for state := range d.accept {
		tf[statePair{from: state, to: accept}] = EmptyString
	}
	for from := range d.states.Union(sets.New(start)) {
		for to := range d.states.Union(sets.New(accept)) {
			pair := statePair{from: from, to: to}
			if _, ok := tf[pair]; !ok {
				tf[pair] = EmptySet
			}
		}
	}
	return &gnfa{
		transitions: tf,
		body:        d.states.Clone(),
		start:       start,
		accept:      accept,
	}
}

// sortedMoves returns the keys of a DFA transition function in a fixed
// order, so merged alternation labels come out the same on every run.
func sortedMoves(tf map[Move]string) []Move {
	moves := make([]Move, 0, len(tf))
	for mv := range tf {
		moves = append(moves, mv)
	}
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].State != moves[j].State {
			return moves[i].State < moves[j].State
		}
		return moves[i].Symbol < moves[j].Symbol
	})
	return moves
}

// Encode extracts a regex string generating the DFA's language by reducing
// the GNFA one body state at a time until only the start and accept states
// remain. The result is language-equivalent to the DFA but usually far
// from the shortest such regex.
func (d *DFA) Encode() string {
	g := d.gnfize()
	for !g.body.Empty() {
		g = g.reduce()
	}
	return g.transitions[statePair{from: g.start, to: g.accept}]
}
