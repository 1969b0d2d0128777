// Package main provides the entry point for the navdemo CLI, a scripted host
// for autonav actions on an in-memory page stack.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/autonav/cmd/navdemo/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "navdemo",
		Short: "Run autonav navigation actions against an in-memory page stack",
		Long: `navdemo hosts an in-memory page stack and executes named navigation
actions on it, printing what each action popped and pushed.

Commands:
  run       Execute a script of actions
  actions   List the registered actions`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddPersistentFlags(rootCmd)

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewActionsCommand())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
