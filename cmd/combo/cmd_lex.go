package main

import (
	"fmt"

	"github.com/dhamidi/combo/ebnflex"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lex [file]",
		Short:        "Tokenize a file (or stdin) with the lexical productions of a grammar",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			grammarFile, err := requireString(conf, "grammar")
			if err != nil {
				return err
			}
			start, err := requireString(conf, "start")
			if err != nil {
				return err
			}

			g, err := ebnflex.LoadGrammar(grammarFile, start)
			if err != nil {
				return err
			}

			filename, input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tokens, err := ebnflex.NewLexer(g, []byte(input), filename).Tokenize()
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}

			out := cmd.OutOrStdout()
			errorCount := 0
			for _, tok := range tokens {
				if tok.Kind == "ERROR" {
					errorCount++
				}
				fmt.Fprintln(out, tok)
			}
			if errorCount > 0 && conf.GetBool("strict") {
				return fmt.Errorf("%d unrecognized byte(s)", errorCount)
			}
			return nil
		},
	}

	cmd.Flags().String("grammar", "", "EBNF grammar file")
	cmd.Flags().String("start", "", "start production used to verify the grammar")
	cmd.Flags().Bool("strict", false, "fail if any input is not matched by a token")

	return cmd
}
