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

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show a one-line digest of every instrument" }
func (*summaryCmd) Usage() string {
	return `dvt summary

  Shows every tracked instrument with its cadence, last payment, next
  expected payment and trailing yield.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := divtrack.NewSummaryReport(openStore())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
