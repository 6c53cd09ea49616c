// Command pfa analyzes portfolio spreadsheets from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/folio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. Complete() takes over and exits when invoked by
	// the shell's completion hook.
	workbooks := predict.Files("*.xlsx")
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"analyze":    {Args: workbooks},
			"allocation": {Args: workbooks},
			"reconcile": {
				Args:  workbooks,
				Flags: map[string]complete.Predictor{"w": predict.Something},
			},
			"dashboard": {},
			"assist": {
				Flags: map[string]complete.Predictor{"f": workbooks},
			},
			"topic": {},
		},
	}
	completion.Complete("pfa")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
