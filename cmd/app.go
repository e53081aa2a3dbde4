// Package cmd implements the CLI application to track dividend histories.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"divtrack"
	"divtrack/date"

	"github.com/google/subcommands"
)

// Register registers every subcommand on the commander.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "instruments")
	c.Register(&updateCmd{}, "instruments")
	c.Register(&fixCmd{}, "instruments")
	c.Register(&fmtCmd{}, "instruments")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")
	c.Register(&frequencyCmd{}, "reports")
	c.Register(&yieldCmd{}, "reports")
	c.Register(&quoteCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// Names returns the name of every registered subcommand, for shell completion.
func Names() []string {
	return []string{
		"add", "update", "fix", "fmt",
		"summary", "history", "project", "frequency", "yield", "quote",
		"topic", "assist",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataPath = flag.String("data-path", "data", "Path to the folder holding one history file per instrument")
var navFile = flag.String("nav-file", "instruments.jsonl", "Path to the instruments navigation file (JSONL format)")
var holidaysPath = flag.String("holidays-path", "holidays", "Path to the folder holding the market holiday files")

// openStore returns the store configured by the global flags.
func openStore() *divtrack.Store {
	return divtrack.NewStore(*dataPath, *navFile)
}

// loadInstrument resolves a symbol and loads its canonical sequence.
func loadInstrument(store *divtrack.Store, symbol string) (divtrack.Instrument, divtrack.Sequence, error) {
	instruments, err := store.Instruments()
	if err != nil {
		return divtrack.Instrument{}, nil, err
	}
	for _, inst := range instruments {
		if inst.Symbol() == symbol {
			seq, _, err := store.Load(inst)
			return inst, seq, err
		}
	}
	return divtrack.Instrument{}, nil, fmt.Errorf("unknown instrument %q", symbol)
}

// now returns today's date, or the date frozen by DVT_TESTING_NOW so the
// documentation scenarios produce stable output.
func now() date.Date {
	if frozen := os.Getenv("DVT_TESTING_NOW"); frozen != "" {
		if d, err := date.Parse(frozen); err == nil {
			return d
		}
	}
	return date.Today()
}
