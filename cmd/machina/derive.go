package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "derive <grammar file path> <sentential form>...",
		Short: "Check that a derivation follows a grammar's rules",
		Long: `derive checks that each sentential form is obtainable from the previous
one by the grammar's rules. A sentential form is one argument; its symbols
are separated by spaces.`,
		Example: `  machina derive balanced.json 'S' '( S )' '( )'`,
		Args:    cobra.MinimumNArgs(3),
		RunE:    runDerive,
	}
	rootCmd.AddCommand(cmd)
}

func runDerive(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	grammar, err := g.CFG()
	if err != nil {
		return err
	}
	derivation := make([][]string, 0, len(args)-1)
	for _, form := range args[1:] {
		derivation = append(derivation, strings.Fields(form))
	}
	if !grammar.IsValidDerivation(derivation) {
		return fmt.Errorf("the derivation does not follow the grammar's rules")
	}
	fmt.Fprintln(os.Stdout, "valid")
	return nil
}
