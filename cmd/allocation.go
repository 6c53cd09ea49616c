package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// allocationCmd holds the flags for the 'allocation' subcommand.
type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the asset allocation of a spreadsheet" }
func (*allocationCmd) Usage() string {
	return `pfa allocation <file.xlsx>

  Displays only the asset allocation table of the analyzed spreadsheet.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := readAnalysis(f.Args())
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.AllocationMarkdown(a.Allocation))
	return subcommands.ExitSuccess
}
