package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/machina-dev/machina/spec"
)

func readAutomaton(path string) (*spec.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read an automaton file: %w", err)
	}
	a := &spec.Automaton{}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, fmt.Errorf("cannot parse an automaton file: %w", err)
	}
	return a, nil
}

func readGrammar(path string) (*spec.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read a grammar file: %w", err)
	}
	g := &spec.Grammar{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("cannot parse a grammar file: %w", err)
	}
	return g, nil
}

func readTransducer(path string) (*spec.Transducer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read a transducer file: %w", err)
	}
	t := &spec.Transducer{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("cannot parse a transducer file: %w", err)
	}
	return t, nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is
// empty.
func writeJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
