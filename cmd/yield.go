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

type yieldCmd struct{}

func (*yieldCmd) Name() string     { return "yield" }
func (*yieldCmd) Synopsis() string { return "show the trailing yield history of one instrument" }
func (*yieldCmd) Usage() string {
	return `dvt yield <symbol>

  Shows the trailing 12-month yield of each confirmed payment.
`
}

func (*yieldCmd) SetFlags(f *flag.FlagSet) {}

func (c *yieldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one symbol")
		return subcommands.ExitUsageError
	}

	report, err := divtrack.NewHistoryReport(openStore(), f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report.Events = report.Events.DropForecasts()
	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
