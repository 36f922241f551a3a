package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "combo",
		Short: "Parser combinators and EBNF grammar tools",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			configureLogging(conf)
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "",
		"Configuration file. Overridden by COMBO_* environment variables and flags.")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newFloatCmd())
	rootCmd.AddCommand(newHelloCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newEbnfCmd())
	rootCmd.AddCommand(newLexCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
