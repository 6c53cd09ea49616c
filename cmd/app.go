// Package cmd implements the CLI application to analyze a portfolio
// spreadsheet.
package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

// Commands lists all the subcommands of the application.
// A main package registers them on a commander and executes the
// user-selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&reconcileCmd{},
	&allocationCmd{},
	&dashboardCmd{},
	&assistCmd{},
	&topicCmd{},
}

// readAnalysis loads the workbook given as the command's single argument
// and runs the full analysis pipeline on it.
func readAnalysis(args []string) (*folio.Analysis, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one workbook file, got %d arguments", len(args))
	}
	table, err := folio.OpenWorkbook(args[0])
	if err != nil {
		return nil, err
	}
	return folio.Analyze(table)
}

// fail reports a fatal command error on stderr.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
