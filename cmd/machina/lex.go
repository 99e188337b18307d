package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/machina-dev/machina/lexer"
	"github.com/spf13/cobra"
)

var lexFlags = struct {
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "lex <lexical specification file path>",
		Short:   "Tokenize a text stream according to a lexical specification",
		Example: `  cat src | machina lex lexspec.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runLex,
	}
	lexFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read a lexical specification file: %w", err)
	}
	s := &lexer.Spec{}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("cannot parse a lexical specification file: %w", err)
	}
	l, err := lexer.Compile(s)
	if err != nil {
		return err
	}

	src := os.Stdin
	if *lexFlags.source != "" {
		f, err := os.Open(*lexFlags.source)
		if err != nil {
			return fmt.Errorf("cannot open the source file %s: %w", *lexFlags.source, err)
		}
		defer f.Close()
		src = f
	}
	tokens, err := l.Tokenize(src)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintf(os.Stdout, "%v\t%q\n", tok.Kind, tok.Lexeme)
	}
	return nil
}
