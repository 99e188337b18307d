// Package spec defines the JSON interchange form of automata, transducers
// and grammars, and the conversions between the interchange form and the
// engine types. Transition functions are keyed by struct pairs in memory,
// so the interchange form flattens them into arrays of labeled entries.
package spec

import (
	"errors"
	"sort"

	"github.com/machina-dev/machina/cfg"
	"github.com/machina-dev/machina/check"
	"github.com/machina-dev/machina/fsa"
	"github.com/machina-dev/machina/fst"
	"github.com/machina-dev/machina/sets"
)

const (
	AutomatonTypeDFA = "dfa"
	AutomatonTypeNFA = "nfa"
)

var (
	ErrAutomatonType = errors.New("automaton type must be \"dfa\" or \"nfa\"")
	ErrDFASuccessors = errors.New("dfa transitions must have exactly one successor")
	ErrDFAEpsilon    = errors.New("dfa transitions cannot be epsilon moves")
)

// Automaton is the interchange form of a DFA or NFA.
type Automaton struct {
	Type         string       `json:"type"`
	StartState   string       `json:"start_state"`
	AcceptStates []string     `json:"accept_states"`
	Transitions  []Transition `json:"transitions"`
}

// Transition is one entry of an automaton's transition function. An empty
// Symbol denotes an epsilon move (NFA only). To lists the successor states;
// a DFA entry must list exactly one, an NFA entry any number including
// zero.
type Transition struct {
	From   string   `json:"from"`
	Symbol string   `json:"symbol"`
	To     []string `json:"to"`
}

// DFA converts the interchange form into a validated DFA.
func (a *Automaton) DFA() (*fsa.DFA, error) {
	if a.Type != AutomatonTypeDFA {
		return nil, ErrAutomatonType
	}
	tf := map[fsa.Move]string{}
	bad := sets.New()
	for _, t := range a.Transitions {
		if t.Symbol == "" {
			return nil, ErrDFAEpsilon
		}
		if len(t.To) != 1 {
			bad.Add(t.From + ", " + t.Symbol)
			continue
		}
		tf[fsa.Move{State: t.From, Symbol: t.Symbol}] = t.To[0]
	}
	if err := check.New(
		ErrDFASuccessors,
		bad,
		"transition (%v) must have exactly one successor",
		"transitions (%v) must have exactly one successor",
	); err != nil {
		return nil, err
	}
	return fsa.NewDFA(tf, a.StartState, sets.New(a.AcceptStates...))
}

// NFA converts the interchange form into a validated NFA.
func (a *Automaton) NFA() (*fsa.NFA, error) {
	if a.Type != AutomatonTypeNFA {
		return nil, ErrAutomatonType
	}
	tf := map[fsa.Move]sets.Set{}
	for _, t := range a.Transitions {
		tf[fsa.Move{State: t.From, Symbol: t.Symbol}] = sets.New(t.To...)
	}
	return fsa.NewNFA(tf, a.StartState, sets.New(a.AcceptStates...))
}

// FromDFA flattens a DFA into the interchange form, with transitions in a
// fixed order.
func FromDFA(d *fsa.DFA) *Automaton {
	var transitions []Transition
	for mv, to := range d.TransitionFunction() {
		transitions = append(transitions, Transition{
			From:   mv.State,
			Symbol: mv.Symbol,
			To:     []string{to},
		})
	}
	sortTransitions(transitions)
	return &Automaton{
		Type:         AutomatonTypeDFA,
		StartState:   d.StartState(),
		AcceptStates: d.AcceptStates().Members(),
		Transitions:  transitions,
	}
}

// FromNFA flattens an NFA into the interchange form, with transitions in a
// fixed order.
func FromNFA(n *fsa.NFA) *Automaton {
	var transitions []Transition
	for mv, to := range n.TransitionFunction() {
		transitions = append(transitions, Transition{
			From:   mv.State,
			Symbol: mv.Symbol,
			To:     to.Members(),
		})
	}
	sortTransitions(transitions)
	return &Automaton{
		Type:         AutomatonTypeNFA,
		StartState:   n.StartState(),
		AcceptStates: n.AcceptStates().Members(),
		Transitions:  transitions,
	}
}

func sortTransitions(transitions []Transition) {
	sort.Slice(transitions, func(i, j int) bool {
		if transitions[i].From != transitions[j].From {
			return transitions[i].From < transitions[j].From
		}
		return transitions[i].Symbol < transitions[j].Symbol
	})
}

// Transducer is the interchange form of an FST.
type Transducer struct {
	StartState  string                 `json:"start_state"`
	Transitions []TransducerTransition `json:"transitions"`
}

// TransducerTransition is one entry of a transducer's transition function:
// reading Symbol in From moves to To and emits Output.
type TransducerTransition struct {
	From   string `json:"from"`
	Symbol string `json:"symbol"`
	To     string `json:"to"`
	Output string `json:"output"`
}

// FST converts the interchange form into a validated transducer.
func (t *Transducer) FST() (*fst.FST, error) {
	tf := map[fst.Move]fst.Output{}
	for _, tr := range t.Transitions {
		tf[fst.Move{State: tr.From, Symbol: tr.Symbol}] = fst.Output{State: tr.To, Symbol: tr.Output}
	}
	return fst.New(tf, t.StartState)
}

// FromFST flattens a transducer into the interchange form, with transitions
// in a fixed order.
func FromFST(f *fst.FST) *Transducer {
	var transitions []TransducerTransition
	for mv, out := range f.TransitionFunction() {
		transitions = append(transitions, TransducerTransition{
			From:   mv.State,
			Symbol: mv.Symbol,
			To:     out.State,
			Output: out.Symbol,
		})
	}
	sort.Slice(transitions, func(i, j int) bool {
		if transitions[i].From != transitions[j].From {
			return transitions[i].From < transitions[j].From
		}
		return transitions[i].Symbol < transitions[j].Symbol
	})
	return &Transducer{
		StartState:  f.StartState(),
		Transitions: transitions,
	}
}

// Grammar is the interchange form of a CFG. The empty substitution is
// written as the one-element sequence containing cfg.Epsilon.
type Grammar struct {
	StartVariable string `json:"start_variable"`
	Rules         []Rule `json:"rules"`
}

// Rule is one variable of a grammar together with all of its
// substitutions.
type Rule struct {
	Variable      string     `json:"variable"`
	Substitutions [][]string `json:"substitutions"`
}

// CFG converts the interchange form into a validated grammar.
func (g *Grammar) CFG() (*cfg.CFG, error) {
	rules := cfg.Rules{}
	for _, r := range g.Rules {
		for _, sub := range r.Substitutions {
			rules[r.Variable] = append(rules[r.Variable], cfg.Substitution(sub))
		}
	}
	return cfg.New(rules, g.StartVariable)
}

// FromCFG flattens a grammar into the interchange form, with rules in a
// fixed order.
func FromCFG(g *cfg.CFG) *Grammar {
	ruleMap := g.RuleMap()
	variables := make([]string, 0, len(ruleMap))
	for v := range ruleMap {
		variables = append(variables, v)
	}
	sort.Strings(variables)
	rules := make([]Rule, 0, len(variables))
	for _, v := range variables {
		subs := make([][]string, 0, len(ruleMap[v]))
		for _, sub := range ruleMap[v] {
			subs = append(subs, sub)
		}
		rules = append(rules, Rule{Variable: v, Substitutions: subs})
	}
	return &Grammar{
		StartVariable: g.StartVariable(),
		Rules:         rules,
	}
}
