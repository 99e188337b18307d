package main

import (
	"fmt"

	"github.com/machina-dev/machina/spec"
	"github.com/spf13/cobra"
)

func init() {
	union := &cobra.Command{
		Use:     "union <automaton file path> <automaton file path>",
		Short:   "Build an automaton recognizing the union of two languages",
		Example: `  machina union a.json b.json -o a-or-b.json`,
		Args:    cobra.ExactArgs(2),
		RunE:    runUnion,
	}
	concat := &cobra.Command{
		Use:     "concat <automaton file path> <automaton file path>",
		Short:   "Build an automaton recognizing the concatenation of two languages",
		Example: `  machina concat a.json b.json -o ab.json`,
		Args:    cobra.ExactArgs(2),
		RunE:    runConcat,
	}
	star := &cobra.Command{
		Use:     "star <automaton file path>",
		Short:   "Build an NFA recognizing the Kleene closure of an NFA's language",
		Example: `  machina star a.json -o a-star.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runStar,
	}
	for _, cmd := range []*cobra.Command{union, concat, star} {
		cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
		rootCmd.AddCommand(cmd)
	}
}

func runUnion(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	a1, err := readAutomaton(args[0])
	if err != nil {
		return err
	}
	a2, err := readAutomaton(args[1])
	if err != nil {
		return err
	}
	if a1.Type != a2.Type {
		return fmt.Errorf("cannot combine a %v with a %v", a1.Type, a2.Type)
	}
	if a1.Type == spec.AutomatonTypeDFA {
		d1, err := a1.DFA()
		if err != nil {
			return err
		}
		d2, err := a2.DFA()
		if err != nil {
			return err
		}
		d, err := d1.Union(d2)
		if err != nil {
			return err
		}
		return writeJSON(spec.FromDFA(d), output)
	}
	n1, err := a1.NFA()
	if err != nil {
		return err
	}
	n2, err := a2.NFA()
	if err != nil {
		return err
	}
	n, err := n1.Union(n2)
	if err != nil {
		return err
	}
	return writeJSON(spec.FromNFA(n), output)
}

func runConcat(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	a1, err := readAutomaton(args[0])
	if err != nil {
		return err
	}
	a2, err := readAutomaton(args[1])
	if err != nil {
		return err
	}
	if a1.Type != a2.Type {
		return fmt.Errorf("cannot combine a %v with a %v", a1.Type, a2.Type)
	}
	if a1.Type == spec.AutomatonTypeDFA {
		d1, err := a1.DFA()
		if err != nil {
			return err
		}
		d2, err := a2.DFA()
		if err != nil {
			return err
		}
		d, err := d1.Concat(d2)
		if err != nil {
			return err
		}
		return writeJSON(spec.FromDFA(d), output)
	}
	n1, err := a1.NFA()
	if err != nil {
		return err
	}
	n2, err := a2.NFA()
	if err != nil {
		return err
	}
	n, err := n1.Concat(n2)
	if err != nil {
		return err
	}
	return writeJSON(spec.FromNFA(n), output)
}

func runStar(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	a, err := readAutomaton(args[0])
	if err != nil {
		return err
	}
	n, err := a.NFA()
	if err != nil {
		return err
	}
	starred, err := n.Star()
	if err != nil {
		return err
	}
	return writeJSON(spec.FromNFA(starred), output)
}
