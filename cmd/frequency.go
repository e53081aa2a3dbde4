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

type frequencyCmd struct{}

func (*frequencyCmd) Name() string     { return "frequency" }
func (*frequencyCmd) Synopsis() string { return "classify the payment cadence of one instrument" }
func (*frequencyCmd) Usage() string {
	return `dvt frequency <symbol>

  Classifies the payment cadence from the recorded history and prints it.
  The stored cadence is not modified; run "dvt update" for that.
`
}

func (*frequencyCmd) SetFlags(f *flag.FlagSet) {}

func (c *frequencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one symbol")
		return subcommands.ExitUsageError
	}

	report, err := divtrack.NewHistoryReport(openStore(), f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	profile := divtrack.ClassifyRecent(report.Events)
	printMarkdown(renderer.ProfileMarkdown(report.Symbol, profile))
	return subcommands.ExitSuccess
}
