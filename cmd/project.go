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

type projectCmd struct{}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "show the projected payment dates of one instrument" }
func (*projectCmd) Usage() string {
	return `dvt project <symbol>

  Shows the projected payment dates generated by the last update.
`
}

func (*projectCmd) SetFlags(f *flag.FlagSet) {}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one symbol")
		return subcommands.ExitUsageError
	}

	report, err := divtrack.NewProjectionReport(openStore(), f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProjectionMarkdown(report))
	return subcommands.ExitSuccess
}
