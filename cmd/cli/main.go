// Package main is the entry point for the expense-split CLI.
package main

import (
	"fmt"
	"os"

	"expense-split/cmd/cli/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cmd.ExitCode(err))
}
