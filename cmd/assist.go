package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/etnz/folio/agent"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	file string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `pfa assist [-f <file.xlsx>] [initial prompt...]

  Start an interactive session with the AI assistant. With -f the
  assistant is grounded in the analyzed portfolio and can answer
  questions about the actual holdings.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio workbook to ground the assistant in")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	experts := []*agent.Expert{agent.NewMarketWatcher()}
	if c.file != "" {
		a, err := readAnalysis([]string{c.file})
		if err != nil {
			return fail(err)
		}
		experts = append(experts, agent.NewAnalyst(renderer.AnalysisMarkdown(a)))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}

	a := agent.New(os.Stdout, os.Stdin, experts...)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}
