package main

import (
	"fmt"
	"os"

	"github.com/machina-dev/machina/spec"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "accepts <automaton file path> <string>...",
		Short:   "Run an automaton over input strings",
		Example: `  machina accepts even-ones.json 0101 101000`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runAccepts,
	}
	rootCmd.AddCommand(cmd)
}

func runAccepts(cmd *cobra.Command, args []string) error {
	a, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	var accepts func(string) (bool, error)
	switch a.Type {
	case spec.AutomatonTypeDFA:
		d, err := a.DFA()
		if err != nil {
			return err
		}
		accepts = d.Accepts
	case spec.AutomatonTypeNFA:
		n, err := a.NFA()
		if err != nil {
			return err
		}
		accepts = n.Accepts
	default:
		return fmt.Errorf("unknown automaton type: %v", a.Type)
	}

	for _, input := range args[1:] {
		ok, err := accepts(input)
		if err != nil {
			return err
		}
		verdict := "accept"
		if !ok {
			verdict = "reject"
		}
		fmt.Fprintf(os.Stdout, "%v\t%v\n", verdict, input)
	}
	return nil
}
