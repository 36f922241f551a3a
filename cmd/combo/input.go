package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readWord reads the first whitespace separated word of stdin.
func readWord(cmd *cobra.Command) (string, error) {
	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Split(bufio.ScanWords)
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", nil
}

// readInput returns the contents of the file named by the first argument, or
// all of stdin when there is none.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return args[0], string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return "", string(data), nil
}
