package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "encode <automaton file path>",
		Short:   "Extract a regex generating a DFA's language",
		Example: `  machina encode my-dfa.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runEncode,
	}
	rootCmd.AddCommand(cmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	a, err := readAutomaton(args[0])
	if err != nil {
		return err
	}
	d, err := a.DFA()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%v\n", d.Encode())
	return nil
}
