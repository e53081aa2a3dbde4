package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"divtrack"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type fixCmd struct {
	date   string
	amount string
}

func (*fixCmd) Name() string     { return "fix" }
func (*fixCmd) Synopsis() string { return "record a manual payment amount for one date" }
func (*fixCmd) Usage() string {
	return `dvt fix -d <date> -amount <value> <symbol>

  Records a hand-checked payment amount. It takes precedence over the
  auto-collected amount for that date and is never overwritten by updates.
`
}

func (c *fixCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Payment date (YYYY-MM-DD).")
	f.StringVar(&c.amount, "amount", "", "Payment amount per share.")
}

func (c *fixCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.date == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "expected -d, -amount and exactly one symbol")
		return subcommands.ExitUsageError
	}

	store := openStore()
	symbol := f.Arg(0)

	inst, seq, err := loadInstrument(store, symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitFailure
	}
	manual := []divtrack.Record{{Date: c.date, Amount: amount}}

	calendars, err := divtrack.LoadCalendars(*holidaysPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	refreshed, _, stats := divtrack.Refresh(seq, nil, manual, calendars.ForCurrency(inst.Currency()), now())
	if stats.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "invalid date %q\n", c.date)
		return subcommands.ExitFailure
	}

	if _, err := store.Save(inst, refreshed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("fixed %s on %s to %s\n", symbol, c.date, amount)
	return subcommands.ExitSuccess
}
