package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	description string
	amount      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense dated today" }
func (*addCmd) Usage() string {
	return `extracker add -description <text> -amount <number>

  Appends an expense to the expenses file. Its id is one more than the highest
  existing id. The amount must not be negative.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "Expense description (required).")
	f.StringVar(&c.amount, "amount", "", "Expense amount, a decimal number (required).")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !isSet(f, "description") || !isSet(f, "amount") {
		fmt.Fprintln(stderr, "Error: -description and -amount are required.")
		return subcommands.ExitUsageError
	}
	amount, err := expense.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store := openStore()
	expenses, err := store.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	e, err := expenses.Add(c.description, amount, date.Today())
	switch {
	case errors.Is(err, expense.ErrNegativeAmount):
		fmt.Fprintln(stderr, "Amount must be positive.")
		return subcommands.ExitFailure
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
	log.Printf("added %s", renderer.Expense(e, Currency()))
	fmt.Fprintf(stdout, "Successfully saved at %d\n", e.ID)
	return subcommands.ExitSuccess
}

// isSet reports whether the flag was given on the command line.
func isSet(f *flag.FlagSet, name string) (found bool) {
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}
