package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "machina",
	Short: "Work with finite automata, transducers, and context-free grammars",
	Long: `machina converts and combines formal-language artifacts:
- Runs automata and transducers over input strings.
- Determinizes NFAs and combines automata by union, concatenation, and star.
- Compiles regexes into automata and extracts regexes from DFAs.
- Converts context-free grammars into Chomsky Normal Form.
- Tokenizes text according to a lexical specification.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
