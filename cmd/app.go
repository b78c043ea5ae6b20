// Package cmd implements the CLI application to manage expenses.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

const (
	EnvFile      = "EXTRACKER_FILE"
	EnvOnCorrupt = "EXTRACKER_ON_CORRUPT"
	EnvCurrency  = "EXTRACKER_CURRENCY"
	EnvVerbose   = "EXTRACKER_VERBOSE"
)

// DefaultCurrency is the display currency when none is configured.
const DefaultCurrency = "USD"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataFile        = flag.String("file", "", "Path to the expenses file. Defaults to $"+EnvFile+" or "+expense.DefaultFilename+" next to the executable.")
	onCorrupt       = flag.String("on-corrupt", "", "What to do with an unreadable expenses file: 'reset' starts with an empty list, 'fail' stops with an error. Defaults to $"+EnvOnCorrupt+" or reset.")
	displayCurrency = flag.String("currency", "", "ISO 4217 currency used to display amounts. Defaults to $"+EnvCurrency+" or "+DefaultCurrency+".")
	raw             = flag.Bool("raw", false, "Print markdown as is, without terminal styling.")
	Verbose         = flag.Bool("v", false, "Print diagnostics on stderr.")
)

// Commands returns the subcommands of the application.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&addCmd{},
		&removeCmd{},
		&updateCmd{},
		&viewCmd{},
		&summaryCmd{},
		&clearCmd{},
		&topicCmd{},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		group := "expenses"
		if cmd.Name() == "topic" {
			group = "documentation"
		}
		c.Register(cmd, group)
	}
}

// LoadEnv reads the .env file of the working directory, if any, into the environment.
// Variables already set in the environment are kept.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env file: %v\n", err)
	}
}

// Configure applies the global flags once they are parsed.
func Configure() error {
	log.SetFlags(0)
	log.SetPrefix("extracker: ")
	if *Verbose || envBool(EnvVerbose) {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	if cur := Currency(); !expense.ValidCurrency(cur) {
		return fmt.Errorf("unknown currency %q", cur)
	}
	if _, err := policy(); err != nil {
		return err
	}
	return nil
}

// StorePath returns the path of the expenses file.
func StorePath() string {
	if *dataFile != "" {
		return *dataFile
	}
	if p := os.Getenv(EnvFile); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		log.Printf("cannot locate the executable, using the working directory: %v", err)
		return expense.DefaultFilename
	}
	return filepath.Join(filepath.Dir(exe), expense.DefaultFilename)
}

// Policy returns how unreadable expenses files are handled.
func Policy() expense.CorruptPolicy {
	p, err := policy()
	if err != nil {
		log.Printf("%v, using %v", err, expense.ResetToEmpty)
		return expense.ResetToEmpty
	}
	return p
}

func policy() (expense.CorruptPolicy, error) {
	if *onCorrupt != "" {
		return expense.ParseCorruptPolicy(*onCorrupt)
	}
	if p := os.Getenv(EnvOnCorrupt); p != "" {
		return expense.ParseCorruptPolicy(p)
	}
	return expense.ResetToEmpty, nil
}

// Currency returns the currency used to display amounts.
func Currency() string {
	if *displayCurrency != "" {
		return *displayCurrency
	}
	if c := os.Getenv(EnvCurrency); c != "" {
		return c
	}
	return DefaultCurrency
}

// OpenStore is the central function to open the expenses store.
func OpenStore() expense.Store {
	path := StorePath()
	log.Printf("using expenses file %q (on unreadable content: %v)", path, Policy())
	return expense.NewFileStore(path, Policy())
}

// openStore is the store used by the commands, replaced in tests.
var openStore = OpenStore

// envBool reads a boolean environment variable, false when unset or invalid.
func envBool(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return false
	}
	return b
}
