package main

import (
	"fmt"

	"github.com/dhamidi/combo/combinator"
	"github.com/dhamidi/combo/ebnf/grammar"
	"github.com/dhamidi/combo/ebnflex"
	"github.com/dhamidi/combo/format"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [input]",
		Short: "Match input against a production of an EBNF grammar",
		Long: `Match input against a production of an EBNF grammar.

The input is the first argument, or all of stdin when no argument is given.
Without --tree the matched text and the remainder are printed; with --tree
the concrete syntax tree is printed in the selected --format.`,
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
			log.Debugf("loaded %s with %d productions", grammarFile, len(g.Productions()))

			var input string
			if len(args) > 0 {
				input = args[0]
			} else if _, input, err = readInput(cmd, nil); err != nil {
				return err
			}

			var rest combinator.View
			if conf.GetBool("tree") {
				rest, err = matchTree(cmd, g, start, input, conf.GetString("format"))
			} else {
				rest, err = matchText(cmd, g, start, input)
			}
			if err != nil {
				return err
			}

			if conf.GetBool("full") && !rest.Empty() {
				return fmt.Errorf("unexpected input at offset %d: %q", rest.Offset(), rest.String())
			}
			return nil
		},
	}

	cmd.Flags().String("grammar", "", "EBNF grammar file")
	cmd.Flags().String("start", "", "production to match")
	cmd.Flags().Bool("tree", false, "print the concrete syntax tree")
	cmd.Flags().String("format", "text", "tree output format (text, json)")
	cmd.Flags().Bool("full", false, "fail unless the whole input is consumed")

	return cmd
}

func matchText(cmd *cobra.Command, g *grammar.Grammar, start, input string) (combinator.View, error) {
	r, ok, err := g.Match(start, input)
	if err != nil {
		return combinator.View{}, err
	}
	if !ok {
		return combinator.View{}, fmt.Errorf("input does not match %s", start)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Matched:   %q\nRemainder: %q\n", r.Value.String(), r.Remainder.String())
	return r.Remainder, nil
}

func matchTree(cmd *cobra.Command, g *grammar.Grammar, start, input, formatName string) (combinator.View, error) {
	encoder, err := format.New(formatName, cmd.OutOrStdout())
	if err != nil {
		return combinator.View{}, err
	}
	p, err := g.Tree(start)
	if err != nil {
		return combinator.View{}, err
	}
	r, ok := combinator.Parse(p, input)
	if !ok {
		return combinator.View{}, fmt.Errorf("input does not match %s", start)
	}
	if err := encoder.Encode(r.Value); err != nil {
		return combinator.View{}, fmt.Errorf("encode: %w", err)
	}
	return r.Remainder, nil
}
