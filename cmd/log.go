package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/AraAlexandru/banksim"
	"github.com/AraAlexandru/banksim/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	inputFile string
	email     string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display user record histories" }
func (*logCmd) Usage() string {
	return `log -i <input.json> [-email <address>]

  Replays the batch and renders each user's record history as markdown.
  With -email only that user's history is shown.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "i", "", "batch input file (JSON)")
	f.StringVar(&c.email, "email", "", "show a single user's history")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.inputFile == "" {
		fmt.Fprintln(os.Stderr, "-i is required")
		return subcommands.ExitUsageError
	}
	in, err := DecodeInput(c.inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}

	r := banksim.NewRunner(in)
	r.Log = Logger()
	r.Run(in.Commands)

	for _, u := range r.Bank.Users() {
		if c.email != "" && u.Email != c.email {
			continue
		}
		printMarkdown(renderer.HistoryMarkdown(u))
	}
	return subcommands.ExitSuccess
}
