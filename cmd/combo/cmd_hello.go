package main

import (
	"fmt"

	c "github.com/dhamidi/combo/combinator"
	"github.com/spf13/cobra"
)

func newHelloCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "hello",
		Short:         `Match "h" followed by one or more "o" against a word read from stdin`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readWord(cmd)
			if err != nil {
				return err
			}

			parser := c.Seq(c.Literal("h"), c.Plus(c.Literal("o")))

			out := cmd.OutOrStdout()
			r, ok := c.Parse(parser, input)
			if !ok {
				fmt.Fprintln(out, "Failed parsing")
				return errFailedParsing
			}
			fmt.Fprintf(out, "Parsed:    %v\nRemainder: %v\n", r.Value, r.Remainder)
			return nil
		},
	}
}
