package main

import (
	"errors"
	"fmt"

	"github.com/dhamidi/combo/grammars/float"
	"github.com/spf13/cobra"
)

var errFailedParsing = errors.New("failed parsing")

func newFloatCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "float",
		Short:         "Parse a floating point number read from stdin",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readWord(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			v, rest, ok := float.Parse(input)
			if !ok {
				fmt.Fprintln(out, "Failed parsing")
				return errFailedParsing
			}
			fmt.Fprintf(out, "Parsed: %v\t\"%s\" remaining\n", v, rest)
			return nil
		},
	}
}
