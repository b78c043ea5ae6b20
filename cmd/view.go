package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "list all expenses" }
func (*viewCmd) Usage() string {
	return `extracker view

  Lists all expenses in a table, in the order they were added.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	expenses, err := openStore().Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	if expenses.IsEmpty() {
		fmt.Fprintln(stdout, "No expenses found")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Expenses(expenses, Currency()))
	return subcommands.ExitSuccess
}
