package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct{}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a portfolio spreadsheet" }
func (*analyzeCmd) Usage() string {
	return `pfa analyze <file.xlsx>

  Detects the spreadsheet format, normalizes the rows into holdings,
  classifies them into asset classes and reports the allocation.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := readAnalysis(f.Args())
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.AnalysisMarkdown(a))
	return subcommands.ExitSuccess
}
