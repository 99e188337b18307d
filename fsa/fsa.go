// Package fsa implements deterministic and nondeterministic finite automata
// over single-character alphabets, together with the algorithms that convert
// and combine them: power-set determinization, union, concatenation, Kleene
// star, regex compilation (Fit) and regex extraction (Encode).
//
// The state set and the alphabet of an automaton are never supplied
// separately; both are inferred from the domain of the transition function.
// A transition function must be total: every pair of a state and an alphabet
// symbol must appear as a key. On an NFA, keys whose Symbol is the empty
// string define epsilon moves; they are extra and are not counted against
// totality.
//
// Constructors validate fully before returning, so no partially-valid
// automaton is ever observable, and every combinator builds a new automaton
// without mutating its operands.
package fsa

import (
	"fmt"

	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/sets"
)

// EmptyString and EmptySet are the regex markers for the language containing
// only the empty string and for the empty language. They are reserved: Fit
// rejects alphabets containing them.
const (
	EmptyString = "€"
	EmptySet    = "Ø"
)

// Move is a key of a transition function: a state paired with an input
// symbol. On an NFA an empty Symbol denotes an epsilon move.
type Move struct {
	State  string
	Symbol string
}

// deriveStatesAlphabet infers the state set and the alphabet from the domain
// of a transition function. The empty string never becomes an alphabet
// symbol.
func deriveStatesAlphabet(moves []Move) (sets.Set, sets.Set) {
	states := sets.New()
	alphabet := sets.New()
	for _, mv := range moves {
		states.Add(mv.State)
		if mv.Symbol != "" {
			alphabet.Add(mv.Symbol)
		}
	}
	return states, alphabet
}

func checkStart(start string, states sets.Set) error {
	if states.Contains(start) {
		return nil
	}
	return check.New(
		ErrStartState,
		sets.New(start),
		"start state %v is not a member of the state set",
		"start states %v are not members of the state set",
	)
}

func checkAccept(accept, states sets.Set) error {
	return check.New(
		ErrAcceptStates,
		accept.Diff(states),
		"accept state %v is not a member of the state set",
		"accept states %v are not members of the state set",
	)
}

func checkRange(rangeStates, states sets.Set) error {
	return check.New(
		ErrRange,
		rangeStates.Diff(states),
		"state %v in the range of the transition function is not in the state set",
		"states %v in the range of the transition function are not in the state set",
	)
}

// checkDomain verifies totality of the transition function over
// states x alphabet. present holds the non-epsilon keys of the function.
func checkDomain(present map[Move]struct{}, states, alphabet sets.Set) error {
	missing := sets.New()
	for _, state := range states.Members() {
		for _, symbol := range alphabet.Members() {
			if _, ok := present[Move{State: state, Symbol: symbol}]; !ok {
				missing.Add(fmt.Sprintf("(%v, %v)", state, symbol))
			}
		}
	}
	return check.New(
		ErrDomain,
		missing,
		"pair %v is missing from the transition function domain",
		"pairs %v are missing from the transition function domain",
	)
}

func checkInput(input string, alphabet sets.Set) error {
	return check.Input(ErrInputSymbol, input, alphabet)
}
