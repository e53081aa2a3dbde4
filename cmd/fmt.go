package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite all data files in canonical form" }
func (*fmtCmd) Usage() string {
	return `dvt fmt

  Reads and rewrites the navigation file and every history file, normalizing
  field order, date padding and sort order. Unchanged files are not touched.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	instruments, err := store.Instruments()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rewritten := 0
	for _, inst := range instruments {
		seq, skipped, err := store.Load(inst)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if skipped > 0 {
			fmt.Fprintf(os.Stderr, "warning: %s: dropped %d unreadable records\n", inst.Symbol(), skipped)
		}
		written, err := store.Save(inst, seq)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if written {
			rewritten++
		}
	}

	if err := store.SaveInstruments(instruments); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("rewrote %d of %d history files\n", rewritten, len(instruments))
	return subcommands.ExitSuccess
}
