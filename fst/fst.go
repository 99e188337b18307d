// Package fst implements deterministic finite-state transducers: automata
// that emit one output symbol per consumed input symbol. A transducer has
// two alphabets and no accept states; every input string over the input
// alphabet produces an output string.
package fst

import (
	"errors"
	"fmt"

	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/sets"
)

var (
	ErrStartState     = errors.New("start state is not a member of the state set")
	ErrInputAlphabet  = errors.New("input-alphabet symbols must be single-character strings")
	ErrOutputAlphabet = errors.New("output-alphabet symbols must be single-character strings")
	ErrRange          = errors.New("transition range must be a subset of the state set")
	ErrDomain         = errors.New("transition function is not total over states and input alphabet")
	ErrInputSymbol    = errors.New("input contains symbols outside the input alphabet")
)

// Move is a key of the transition function: a state paired with an input
// symbol.
type Move struct {
	State  string
	Symbol string
}

// Output is a value of the transition function: the successor state paired
// with the emitted output symbol.
type Output struct {
	State  string
	Symbol string
}

// FST is a deterministic finite-state transducer. The state set and the
// input alphabet are inferred from the keys of the transition function; the
// output alphabet is inferred from the values. Instances are immutable once
// constructed.
type FST struct {
	transitions    map[Move]Output
	start          string
	states         sets.Set
	inputAlphabet  sets.Set
	outputAlphabet sets.Set
}

// New builds an FST from a transition function and a start state. It fails
// when the start state is outside the inferred state set, when a transition
// leads out of the state set, when a symbol of either alphabet is not a
// single character, or when the transition function is not total over
// states x input alphabet.
func New(transitions map[Move]Output, start string) (*FST, error) {
	tf := make(map[Move]Output, len(transitions))
	states := sets.New()
	inputAlphabet := sets.New()
	rangeStates := sets.New()
	outputAlphabet := sets.New()
	for mv, out := range transitions {
		tf[mv] = out
		states.Add(mv.State)
		inputAlphabet.Add(mv.Symbol)
		rangeStates.Add(out.State)
		outputAlphabet.Add(out.Symbol)
	}

	if !states.Contains(start) {
		return nil, check.New(
			ErrStartState,
			sets.New(start),
			"start state %v is not a member of the state set",
			"start states %v are not members of the state set",
		)
	}
	if err := check.New(
		ErrRange,
		rangeStates.Diff(states),
		"state %v in the range of the transition function is not in the state set",
		"states %v in the range of the transition function are not in the state set",
	); err != nil {
		return nil, err
	}
	if err := check.Alphabet(ErrInputAlphabet, inputAlphabet, "input alphabet"); err != nil {
		return nil, err
	}
	if err := check.Alphabet(ErrOutputAlphabet, outputAlphabet, "output alphabet"); err != nil {
		return nil, err
	}
	missing := sets.New()
	for _, state := range states.Members() {
		for _, symbol := range inputAlphabet.Members() {
			if _, ok := tf[Move{State: state, Symbol: symbol}]; !ok {
				missing.Add(fmt.Sprintf("(%v, %v)", state, symbol))
			}
		}
	}
	if err := check.New(
		ErrDomain,
		missing,
		"pair %v is missing from the transition function domain",
		"pairs %v are missing from the transition function domain",
	); err != nil {
		return nil, err
	}

	return &FST{
		transitions:    tf,
		start:          start,
		states:         states,
		inputAlphabet:  inputAlphabet,
		outputAlphabet: outputAlphabet,
	}, nil
}

// TransitionFunction returns a copy of the transition function; mutating
// the copy does not affect the FST.
func (f *FST) TransitionFunction() map[Move]Output {
	tf := make(map[Move]Output, len(f.transitions))
	for mv, out := range f.transitions {
		tf[mv] = out
	}
	return tf
}

func (f *FST) StartState() string {
	return f.start
}

// States returns a copy of the state set.
func (f *FST) States() sets.Set {
	return f.states.Clone()
}

// InputAlphabet returns a copy of the input alphabet.
func (f *FST) InputAlphabet() sets.Set {
	return f.inputAlphabet.Clone()
}

// OutputAlphabet returns a copy of the output alphabet.
func (f *FST) OutputAlphabet() sets.Set {
	return f.outputAlphabet.Clone()
}

// Process runs the transducer over input and returns the concatenation of
// the emitted output symbols. It fails with ErrInputSymbol when input
// contains characters outside the input alphabet.
func (f *FST) Process(input string) (string, error) {
	if err := check.Input(ErrInputSymbol, input, f.inputAlphabet); err != nil {
		return "", err
	}
	current := f.start
	var output []byte
	for _, r := range input {
		next := f.transitions[Move{State: current, Symbol: string(r)}]
		output = append(output, next.Symbol...)
		current = next.State
	}
	return string(output), nil
}
