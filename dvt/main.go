// Command dvt tracks dividend payment histories, classifies their cadence
// and projects upcoming payment dates.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"divtrack/cmd"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this exits early when invoked by the shell.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	status := int(commander.Execute(context.Background()))

	// An unknown subcommand falls through to a dvt-<name> extension binary.
	if status == int(subcommands.ExitUsageError) && flag.NArg() > 0 {
		if ran, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); ran {
			status = code
		}
	}
	os.Exit(status)
}

// completion declares the command tree to the shell completion engine.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Names()))
	for _, name := range cmd.Names() {
		sub[name] = &complete.Command{}
	}
	sub["topic"] = &complete.Command{Args: predict.Something}

	c := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-path":     predict.Dirs("*"),
			"nav-file":      predict.Files("*.jsonl"),
			"holidays-path": predict.Dirs("*"),
		},
	}
	c.Complete("dvt")
}
