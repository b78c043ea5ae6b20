package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id          int
	description string
	amount      string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change the description or the amount of an expense" }
func (*updateCmd) Usage() string {
	return `extracker update -id <id> [-description <text>] [-amount <number>]

  Changes the given fields of an expense, other fields are kept. A negative
  amount rejects the whole update and nothing is saved.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the expense to update (required).")
	f.StringVar(&c.description, "description", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount, a decimal number.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isSet(f, "id") {
		fmt.Fprintln(stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	var patch expense.Patch
	if isSet(f, "description") {
		patch.Description = &c.description
	}
	if isSet(f, "amount") {
		amount, err := expense.ParseAmount(c.amount)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.Amount = &amount
	}
	if patch.Description == nil && patch.Amount == nil {
		fmt.Fprintln(stderr, "Error: nothing to update, use -description or -amount.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	expenses, err := store.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	updated, err := expenses.Update(c.id, patch)
	switch {
	case errors.Is(err, expense.ErrNotFound):
		fmt.Fprintf(stderr, "Expense with id %d not found.\n", c.id)
		return subcommands.ExitSuccess
	case errors.Is(err, expense.ErrNegativeAmount):
		fmt.Fprintln(stderr, "Amount must be positive.")
		return subcommands.ExitSuccess
	case errors.Is(err, expense.ErrEmptyDescription):
		fmt.Fprintln(stderr, "Description must not be empty.")
		return subcommands.ExitUsageError
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.Save(expenses); err != nil {
		fmt.Fprintf(stderr, "Error saving expenses: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Printf("updated %s", renderer.Expense(updated, Currency()))
	fmt.Fprintf(stdout, "Expense %d updated successfully.\n", c.id)
	return subcommands.ExitSuccess
}
