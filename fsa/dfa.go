package fsa

import (
	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/sets"
)

// DFA is a deterministic finite automaton: exactly one successor state per
// state/symbol pair. Instances are immutable once constructed.
type DFA struct {
	transitions map[Move]string
	start       string
	accept      sets.Set
	states      sets.Set
	alphabet    sets.Set
}

// NewDFA builds a DFA from a transition function, a start state, and a set
// of accept states. The state set and the alphabet are inferred from the
// keys of transitions. NewDFA fails when the start state or an accept state
// is not in the inferred state set, when an alphabet symbol is not a single
// character, when a transition leads out of the state set, or when the
// transition function is not total.
func NewDFA(transitions map[Move]string, start string, accept sets.Set) (*DFA, error) {
	tf := make(map[Move]string, len(transitions))
	moves := make([]Move, 0, len(transitions))
	for mv, to := range transitions {
		tf[mv] = to
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
		rangeStates.Add(to)
	}
	if err := checkRange(rangeStates, states); err != nil {
		return nil, err
	}
	present := make(map[Move]struct{}, len(tf))
	for mv := range tf {
		present[mv] = struct{}{}
	}
	if err := checkDomain(present, states, alphabet); err != nil {
		return nil, err
	}

	return &DFA{
		transitions: tf,
		start:       start,
		accept:      accept.Clone(),
		states:      states,
		alphabet:    alphabet,
	}, nil
}

// TransitionFunction returns a copy of the transition function; mutating the
// copy does not affect the DFA.
func (d *DFA) TransitionFunction() map[Move]string {
	tf := make(map[Move]string, len(d.transitions))
	for mv, to := range d.transitions {
		tf[mv] = to
	}
	return tf
}

func (d *DFA) StartState() string {
	return d.start
}

// AcceptStates returns a copy of the accept-state set.
func (d *DFA) AcceptStates() sets.Set {
	return d.accept.Clone()
}

// States returns a copy of the state set inferred from the transition
// function.
func (d *DFA) States() sets.Set {
	return d.states.Clone()
}

// Alphabet returns a copy of the alphabet inferred from the transition
// function.
func (d *DFA) Alphabet() sets.Set {
	return d.alphabet.Clone()
}

// Accepts reports whether the DFA accepts input. It fails with
// ErrInputSymbol when input contains characters outside the alphabet.
func (d *DFA) Accepts(input string) (bool, error) {
	if err := checkInput(input, d.alphabet); err != nil {
		return false, err
	}
	current := d.start
	for _, r := range input {
		current = d.transitions[Move{State: current, Symbol: string(r)}]
	}
	return d.accept.Contains(current), nil
}

// Union builds the product automaton recognizing the union of the two
// languages. The operands may have different alphabets; each DFA is first
// closed over the union alphabet by adding a fresh sink state that absorbs
// the symbols it does not know.
func (d *DFA) Union(other *DFA) (*DFA, error) {
	unionAlphabet := d.alphabet.Union(other.alphabet)

	dStates, dTF := d.closeOver(unionAlphabet)
	oStates, oTF := other.closeOver(unionAlphabet)

	tf := map[Move]string{}
	for s1 := range dStates {
		for s2 := range oStates {
			for sym := range unionAlphabet {
				tf[Move{State: s1 + s2, Symbol: sym}] =
					dTF[Move{State: s1, Symbol: sym}] + oTF[Move{State: s2, Symbol: sym}]
			}
		}
	}
	accept := sets.New()
	for s1 := range d.accept {
		for s2 := range oStates {
			accept.Add(s1 + s2)
		}
	}
	for s1 := range dStates {
		for s2 := range other.accept {
			accept.Add(s1 + s2)
		}
	}
	return NewDFA(tf, d.start+other.start, accept)
}

// closeOver totalizes the transition function over alphabet. When the DFA
// lacks some of the symbols, a fresh sink state is added that self-loops on
// every symbol and absorbs the extra ones. The sink name is allocated
// against the existing state set, never a fixed sentinel.
func (d *DFA) closeOver(alphabet sets.Set) (sets.Set, map[Move]string) {
	states := d.states.Clone()
	tf := d.TransitionFunction()
	extra := alphabet.Diff(d.alphabet)
	if extra.Empty() {
		return states, tf
	}
	sink := check.FreshName(states, "sink")
	states.Add(sink)
	for sym := range alphabet {
		tf[Move{State: sink, Symbol: sym}] = sink
	}
	for sym := range extra {
		for state := range d.states {
			tf[Move{State: state, Symbol: sym}] = sink
		}
	}
	return states, tf
}

// Concat builds a DFA recognizing the concatenation of the two languages.
// It rides on the NFA concatenation and determinizes the result, which is
// simple but exponential in the worst case.
func (d *DFA) Concat(other *DFA) (*DFA, error) {
	nfa, err := d.NonDeterminize().Concat(other.NonDeterminize())
	if err != nil {
		return nil, err
	}
	return nfa.Determinize()
}

// NonDeterminize converts the DFA into an equivalent NFA by wrapping every
// successor in a singleton set.
func (d *DFA) NonDeterminize() *NFA {
	tf := make(map[Move]sets.Set, len(d.transitions))
	for mv, to := range d.transitions {
		tf[mv] = sets.New(to)
	}
	return &NFA{
		transitions: tf,
		start:       d.start,
		accept:      d.accept.Clone(),
		states:      d.states.Clone(),
		alphabet:    d.alphabet.Clone(),
	}
}
