package main

import (
	"github.com/machina-dev/machina/spec"
	"github.com/spf13/cobra"
)

var normalizeFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "normalize <grammar file path>",
		Short:   "Convert a context-free grammar into Chomsky Normal Form",
		Example: `  machina normalize balanced.json -o balanced-cnf.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runNormalize,
	}
	normalizeFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	grammar, err := g.CFG()
	if err != nil {
		return err
	}
	normalized, err := grammar.ChomskyNormalize()
	if err != nil {
		return err
	}
	return writeJSON(spec.FromCFG(normalized), *normalizeFlags.output)
}
