package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"divtrack"
	"divtrack/renderer"
	"divtrack/yfin"

	"github.com/google/subcommands"
)

type updateCmd struct {
	workers int
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "refresh every instrument from the price feed"
}
func (*updateCmd) Usage() string {
	return `dvt update [-workers <n>]

  Fetches dividends and prices for every instrument, merges them into the
  canonical histories, reclassifies the cadences and regenerates the
  projected payment dates. Files are only rewritten when they changed.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.workers, "workers", 4, "Number of instruments refreshed concurrently.")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	calendars, err := divtrack.LoadCalendars(*holidaysPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary := divtrack.UpdateAll(openStore(), yfin.NewClient(), calendars, now(), c.workers)
	printMarkdown(renderer.UpdateMarkdown(summary))

	if summary.Failed > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
