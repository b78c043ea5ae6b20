package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type removeCmd struct {
	id int
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an expense" }
func (*removeCmd) Usage() string {
	return `extracker remove -id <id>

  Removes the expense with this id. The expenses file is rewritten even when
  no expense has this id.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the expense to remove (required).")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isSet(f, "id") {
		fmt.Fprintln(stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	expenses, err := store.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	found := expenses.Remove(c.id)

	if err := store.Save(expenses); err != nil {
		fmt.Fprintf(stderr, "Error saving expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	if !found {
		fmt.Fprintf(stderr, "Expense with id %d not found.\n", c.id)
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(stdout, "Expense %d removed successfully.\n", c.id)
	return subcommands.ExitSuccess
}
