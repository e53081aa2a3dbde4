package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"divtrack"
	"divtrack/yfin"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show the latest traded price of one instrument" }
func (*quoteCmd) Usage() string {
	return `dvt quote <symbol>

  Fetches and shows the latest traded price from the feed.
`
}

func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one symbol")
		return subcommands.ExitUsageError
	}

	inst, _, err := loadInstrument(openStore(), f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	price, err := yfin.NewClient().Latest(inst.Symbol())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s %s\n", inst.Symbol(), divtrack.M(decimal.NewFromFloat(price), inst.Currency()))
	return subcommands.ExitSuccess
}
