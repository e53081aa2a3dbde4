package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"divtrack"

	"github.com/google/subcommands"
)

type addCmd struct {
	name     string
	currency string
	upcoming bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an instrument to the navigation file" }
func (*addCmd) Usage() string {
	return `dvt add [-name <name>] [-currency <code>] [-upcoming] <symbol>

  Declares a new instrument. Its history starts empty and fills up on the
  next update.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Human readable name of the instrument.")
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 currency code of the instrument.")
	f.BoolVar(&c.upcoming, "upcoming", false, "Mark the instrument as announced but not yet trading.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one symbol")
		return subcommands.ExitUsageError
	}

	store := openStore()
	instruments, err := store.Instruments()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		// A missing navigation file is a valid empty start.
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	inst, err := divtrack.NewInstrument(f.Arg(0), c.name, c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.upcoming {
		inst.MarkUpcoming()
	}

	for _, existing := range instruments {
		if existing.Symbol() == inst.Symbol() {
			fmt.Fprintf(os.Stderr, "instrument %q already exists\n", inst.Symbol())
			return subcommands.ExitFailure
		}
	}

	if err := store.SaveInstruments(append(instruments, inst)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("added %s to %s\n", inst.Symbol(), *navFile)
	return subcommands.ExitSuccess
}
