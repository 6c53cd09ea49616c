package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/etnz/folio/yahoo"
	"github.com/google/subcommands"
)

// reconcileCmd holds the flags for the 'reconcile' subcommand.
type reconcileCmd struct {
	workers int
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "mark holdings to market with live prices" }
func (*reconcileCmd) Usage() string {
	return `pfa reconcile [-w <workers>] <file.xlsx>

  Analyzes the spreadsheet, then refreshes every holding against live
  market prices. Holdings without a resolvable symbol keep their
  cost-basis values and are listed separately.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.workers, "w", 4, "Number of concurrent price lookups")
}

func (c *reconcileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := readAnalysis(f.Args())
	if err != nil {
		return fail(err)
	}

	rec := folio.NewReconciler(yahoo.NewClient(), folio.DefaultSymbolTable(), c.workers)
	report := rec.Reconcile(ctx, a.Holdings)

	printMarkdown(renderer.ReconcileMarkdown(report))
	return subcommands.ExitSuccess
}
