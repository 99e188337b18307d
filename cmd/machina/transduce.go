package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "transduce <transducer file path> <string>...",
		Short:   "Run a finite-state transducer over input strings",
		Example: `  machina transduce rot13.json hello world`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runTransduce,
	}
	rootCmd.AddCommand(cmd)
}

func runTransduce(cmd *cobra.Command, args []string) error {
	t, err := readTransducer(args[0])
	if err != nil {
		return err
	}
	f, err := t.FST()
	if err != nil {
		return err
	}
	for _, input := range args[1:] {
		output, err := f.Process(input)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%v\n", output)
	}
	return nil
}
