package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all expenses" }
func (*clearCmd) Usage() string {
	return `extracker clear

  Overwrites the expenses file with an empty list, whatever it contained.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := openStore().Save(expense.NewCollection()); err != nil {
		fmt.Fprintf(stderr, "Error saving expenses: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, "All expenses cleared.")
	return subcommands.ExitSuccess
}
