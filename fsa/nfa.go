package fsa

import (
	"strings"

	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/sets"
)

// NFA is a nondeterministic finite automaton: zero or more successor states
// per state/symbol pair. Keys whose Symbol is the empty string are epsilon
// moves. An empty successor set is a valid value and must be spelled out;
// the transition function is required to be total over states x alphabet.
// Instances are immutable once constructed.
type NFA struct {
	transitions map[Move]sets.Set
	start       string
	accept      sets.Set
	states      sets.Set
	alphabet    sets.Set
}

// NewNFA builds an NFA from a transition function, a start state, and a set
// of accept states. The state set and the alphabet are inferred from the
// keys of transitions; the empty-string symbol of epsilon moves never joins
// the alphabet. The validation rules are those of NewDFA, except that
// transition values are state sets whose members must all belong to the
// inferred state set.
func NewNFA(transitions map[Move]sets.Set, start string, accept sets.Set) (*NFA, error) {
	tf := make(map[Move]sets.Set, len(transitions))
	moves := make([]Move, 0, len(transitions))
	for mv, to := range transitions {
		tf[mv] = to.Clone()
		moves = append(moves, mv)
	}
	states, alphabet := deriveStatesAlphabet(moves)

	if err := checkStart(start, states); err != nil {
		return nil, err
	}
	if err := checkAccept(accept, states); err != nil {
		return nil, err
	}
	if err := check.Alphabet(ErrAlphabet, alphabet, "alphabet"); err != nil {
		return nil, err
	}
	rangeStates := sets.New()
	for _, to := range tf {
		for state := range to {
			rangeStates.Add(state)
		}
	}
	if err := checkRange(rangeStates, states); err != nil {
		return nil, err
	}
	present := make(map[Move]struct{}, len(tf))
	for mv := range tf {
		if mv.Symbol == "" {
			continue
		}
		present[mv] = struct{}{}
	}
	if err := checkDomain(present, states, alphabet); err != nil {
		return nil, err
	}

	return &NFA{
		transitions: tf,
		start:       start,
		accept:      accept.Clone(),
		states:      states,
		alphabet:    alphabet,
	}, nil
}

// TransitionFunction returns a copy of the transition function; mutating the
// copy or its successor sets does not affect the NFA.
func (n *NFA) TransitionFunction() map[Move]sets.Set {
	tf := make(map[Move]sets.Set, len(n.transitions))
	for mv, to := range n.transitions {
		tf[mv] = to.Clone()
	}
	return tf
}

func (n *NFA) StartState() string {
	return n.start
}

// AcceptStates returns a copy of the accept-state set.
func (n *NFA) AcceptStates() sets.Set {
	return n.accept.Clone()
}

// States returns a copy of the state set inferred from the transition
// function.
func (n *NFA) States() sets.Set {
	return n.states.Clone()
}

// Alphabet returns a copy of the alphabet inferred from the transition
// function.
func (n *NFA) Alphabet() sets.Set {
	return n.alphabet.Clone()
}

// successors returns the union of the symbol-successors of every state in
// stateSet. Absent keys contribute nothing.
func (n *NFA) successors(stateSet sets.Set, symbol string) sets.Set {
	succ := sets.New()
	for state := range stateSet {
		for to := range n.transitions[Move{State: state, Symbol: symbol}] {
			succ.Add(to)
		}
	}
	return succ
}

// epsilonClose adds to stateSet every state reachable through epsilon moves
// alone. The loop terminates because the state set is finite and the
// closure only grows.
func (n *NFA) epsilonClose(stateSet sets.Set) sets.Set {
	closed := stateSet.Clone()
	neighbours := n.successors(closed, "")
	for !neighbours.Diff(closed).Empty() {
		closed = closed.Union(neighbours)
		neighbours = n.successors(neighbours, "")
	}
	return closed
}

// step consumes one symbol: symbol-successors of the current set, then the
// epsilon closure of the result.
func (n *NFA) step(stateSet sets.Set, symbol string) sets.Set {
	return n.epsilonClose(n.successors(stateSet, symbol))
}

// Accepts reports whether the NFA accepts input. It fails with
// ErrInputSymbol when input contains characters outside the alphabet.
func (n *NFA) Accepts(input string) (bool, error) {
	if err := checkInput(input, n.alphabet); err != nil {
		return false, err
	}
	current := n.epsilonClose(sets.New(n.start))
	for _, r := range input {
		current = n.step(current, string(r))
	}
	return !current.Intersect(n.accept).Empty(), nil
}

// stringifyStates canonicalizes a state set into a single order-independent
// state name.
func stringifyStates(stateSet sets.Set) string {
	return strings.Join(stateSet.Members(), "")
}

// Determinize builds a DFA recognizing the same language via the power-set
// construction. Every subset of the NFA's states becomes a DFA state, named
// by the sorted concatenation of its members.
//
// WARNING: the construction enumerates the full power set of the NFA's
// states up front, so both the state count and the running time are
// exponential in the size of the NFA. Do not determinize big NFAs.
func (n *NFA) Determinize() (*DFA, error) {
	members := n.states.Members()
	tf := map[Move]string{}
	accept := sets.New()
	for mask := 0; mask < 1<<len(members); mask++ {
		subset := sets.New()
		for i, state := range members {
			if mask&(1<<i) != 0 {
				subset.Add(state)
			}
		}
		name := stringifyStates(subset)
		for sym := range n.alphabet {
			tf[Move{State: name, Symbol: sym}] = stringifyStates(n.step(subset, sym))
		}
		if !subset.Intersect(n.accept).Empty() {
			accept.Add(name)
		}
	}
	start := stringifyStates(n.epsilonClose(sets.New(n.start)))
	return NewDFA(tf, start, accept)
}

// prime renames every state of the NFA by appending a backtick. Renaming is
// deterministic so repeated applications resolve any state collision.
func (n *NFA) prime() *NFA {
	re := func(state string) string { return state + "`" }
	tf := make(map[Move]sets.Set, len(n.transitions))
	for mv, to := range n.transitions {
		renamed := sets.New()
		for state := range to {
			renamed.Add(re(state))
		}
		tf[Move{State: re(mv.State), Symbol: mv.Symbol}] = renamed
	}
	accept := sets.New()
	for state := range n.accept {
		accept.Add(re(state))
	}
	states := sets.New()
	for state := range n.states {
		states.Add(re(state))
	}
	return &NFA{
		transitions: tf,
		start:       re(n.start),
		accept:      accept,
		states:      states,
		alphabet:    n.alphabet.Clone(),
	}
}

// withAlphabet totalizes the transition function over alphabet by adding
// empty successor sets for the symbols the NFA does not know.
func (n *NFA) withAlphabet(alphabet sets.Set) *NFA {
	extra := alphabet.Diff(n.alphabet)
	if extra.Empty() {
		return n
	}
	tf := n.TransitionFunction()
	for state := range n.states {
		for sym := range extra {
			tf[Move{State: state, Symbol: sym}] = sets.New()
		}
	}
	return &NFA{
		transitions: tf,
		start:       n.start,
		accept:      n.accept.Clone(),
		states:      n.states.Clone(),
		alphabet:    n.alphabet.Union(extra),
	}
}

// combine prepares two NFAs for an algebraic composition: the second
// operand is renamed until the state sets are disjoint, both are closed
// over the union alphabet, and their transition functions are merged into
// one map.
func (n *NFA) combine(other *NFA) (*NFA, *NFA, map[Move]sets.Set) {
	for !other.states.Intersect(n.states).Empty() {
		other = other.prime()
	}
	unionAlphabet := n.alphabet.Union(other.alphabet)
	left := n.withAlphabet(unionAlphabet)
	right := other.withAlphabet(unionAlphabet)

	tf := left.TransitionFunction()
	for mv, to := range right.TransitionFunction() {
		tf[mv] = to
	}
	return left, right, tf
}

// Union builds an NFA recognizing the union of the two languages: a fresh
// start state with epsilon moves into both operands. The operands may have
// different alphabets.
func (n *NFA) Union(other *NFA) (*NFA, error) {
	left, right, tf := n.combine(other)
	start := check.FreshName(left.states.Union(right.states), "state")
	tf[Move{State: start, Symbol: ""}] = sets.New(left.start, right.start)
	for sym := range left.alphabet.Union(right.alphabet) {
		tf[Move{State: start, Symbol: sym}] = sets.New()
	}
	return NewNFA(tf, start, left.accept.Union(right.accept))
}

// Concat builds an NFA recognizing the concatenation of the two languages:
// epsilon moves from the first operand's accept states into the second
// operand's start state. Concatenation is not commutative.
func (n *NFA) Concat(other *NFA) (*NFA, error) {
	left, right, tf := n.combine(other)
	for state := range left.accept {
		mv := Move{State: state, Symbol: ""}
		if to, ok := tf[mv]; ok {
			to.Add(right.start)
		} else {
			tf[mv] = sets.New(right.start)
		}
	}
	return NewNFA(tf, left.start, right.accept)
}

// Star builds an NFA recognizing the Kleene closure of the language: a
// fresh accepting start state with an epsilon move to the old start, and
// epsilon moves from the old accept states back to the old start. The
// result always accepts the empty string.
func (n *NFA) Star() (*NFA, error) {
	start := check.FreshName(n.states, "state")
	tf := n.TransitionFunction()
	tf[Move{State: start, Symbol: ""}] = sets.New(n.start)
	for sym := range n.alphabet {
		tf[Move{State: start, Symbol: sym}] = sets.New()
	}
	for state := range n.accept {
		mv := Move{State: state, Symbol: ""}
		if to, ok := tf[mv]; ok {
			to.Add(n.start)
		} else {
			tf[mv] = sets.New(n.start)
		}
	}
	return NewNFA(tf, start, n.accept.Union(sets.New(start)))
}
