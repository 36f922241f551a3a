package main

import (
	"github.com/dhamidi/combo/ebnflex"
	"github.com/dhamidi/combo/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a Language Server that checks documents against a grammar",
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

			server, err := lsp.NewServer(g, start, version)
			if err != nil {
				return err
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().String("grammar", "", "EBNF grammar file")
	cmd.Flags().String("start", "", "production every document must match")

	return cmd
}
