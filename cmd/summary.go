package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the total of all expenses" }
func (*summaryCmd) Usage() string {
	return `extracker summary

  Displays the exact sum of all expense amounts.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	expenses, err := openStore().Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	if expenses.IsEmpty() {
		fmt.Fprintln(stdout, "No Expenses found !")
		return subcommands.ExitSuccess
	}

	fmt.Fprintf(stdout, "Total expenses: %s\n", expenses.Total().Format(Currency()))
	return subcommands.ExitSuccess
}
