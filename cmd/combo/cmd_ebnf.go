package main

import (
	"fmt"
	"io"
	"reflect"

	"github.com/dhamidi/combo/ebnf/grammar"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			out := cmd.OutOrStdout()

			g, err := grammar.Load(filename)
			if err != nil {
				printErrors(out, err)
				return err
			}

			if startProduction == "" {
				return nil
			}

			if _, err := grammar.Compile(g, startProduction); err != nil {
				printErrors(out, err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

// printErrors prints one line per error. The ebnf package reports all errors
// of a grammar at once as a slice; any other error is printed whole.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(errors.Cause(err))
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
