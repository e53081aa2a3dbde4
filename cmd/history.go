package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"divtrack"
	"divtrack/renderer"

	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the full event history of one instrument" }
func (*historyCmd) Usage() string {
	return `dvt history <symbol>

  Shows every recorded payment, price and projected date of the instrument.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one symbol")
		return subcommands.ExitUsageError
	}

	report, err := divtrack.NewHistoryReport(openStore(), f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
