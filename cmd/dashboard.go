package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/etnz/folio/yahoo"
	"github.com/google/subcommands"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display a snapshot of the major market indices" }
func (*dashboardCmd) Usage() string {
	return `pfa dashboard

  Fetches a snapshot of the major market indices and displays their
  current level and daily move. Unreachable indices are skipped.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes, err := yahoo.NewClient().IndexQuotes(ctx)
	if len(quotes) == 0 {
		return fail(fmt.Errorf("no market index could be reached: %w", err))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some indices could not be reached: %v\n", err)
	}

	printMarkdown(renderer.DashboardMarkdown(quotes))
	return subcommands.ExitSuccess
}
