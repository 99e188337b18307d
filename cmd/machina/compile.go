package main

import (
	"github.com/machina-dev/machina/fsa"
	"github.com/machina-dev/machina/sets"
	"github.com/machina-dev/machina/spec"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	alphabet    *string
	determinize *bool
	output      *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile <regex>",
		Short:   "Compile a regex into an automaton",
		Example: `  machina compile '(ab)*' -a ab -o ab-star.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.alphabet = cmd.Flags().StringP("alphabet", "a", "", "alphabet symbols, one character each (required)")
	compileFlags.determinize = cmd.Flags().Bool("determinize", false, "determinize the compiled NFA")
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	cobra.CheckErr(cmd.MarkFlagRequired("alphabet"))
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	alphabet := sets.New()
	for _, r := range *compileFlags.alphabet {
		alphabet.Add(string(r))
	}
	n, err := fsa.Fit(args[0], alphabet)
	if err != nil {
		return err
	}
	if *compileFlags.determinize {
		d, err := n.Determinize()
		if err != nil {
			return err
		}
		return writeJSON(spec.FromDFA(d), *compileFlags.output)
	}
	return writeJSON(spec.FromNFA(n), *compileFlags.output)
}
