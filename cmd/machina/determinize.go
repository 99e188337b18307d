package main

import (
	"github.com/machina-dev/machina/spec"
	"github.com/spf13/cobra"
)

var determinizeFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "determinize <automaton file path>",
		Short:   "Convert an NFA into an equivalent DFA (exponential in the NFA's state count)",
		Example: `  machina determinize my-nfa.json -o my-dfa.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDeterminize,
	}
	determinizeFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runDeterminize(cmd *cobra.Command, args []string) error {
	a, err := readAutomaton(args[0])
	if err != nil {
		return err
	}
	n, err := a.NFA()
	if err != nil {
		return err
	}
	d, err := n.Determinize()
	if err != nil {
		return err
	}
	return writeJSON(spec.FromDFA(d), *determinizeFlags.output)
}
