package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/AraAlexandru/banksim"
	"github.com/AraAlexandru/banksim/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	inputFile string
	account   string
	business  bool
	from, to  int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display an account report" }
func (*reportCmd) Usage() string {
	return `report -i <input.json> -account <iban> [-business] [-from <ts>] [-to <ts>]

  Replays the batch and renders a report for one account: its records over
  the timestamp range, or the per-associate statistics with -business.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "i", "", "batch input file (JSON)")
	f.StringVar(&c.account, "account", "", "account IBAN to report on")
	f.BoolVar(&c.business, "business", false, "render the business statistics report")
	f.IntVar(&c.from, "from", 0, "start timestamp")
	f.IntVar(&c.to, "to", math.MaxInt32, "end timestamp")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.inputFile == "" || c.account == "" {
		fmt.Fprintln(os.Stderr, "-i and -account are required")
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

	user, account := r.Bank.FindAccount(c.account)
	if account == nil {
		fmt.Fprintf(os.Stderr, "Account %q not found\n", c.account)
		return subcommands.ExitFailure
	}

	if c.business {
		if !account.IsBusiness() {
			fmt.Fprintf(os.Stderr, "Account %q is not a business account\n", c.account)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.BusinessMarkdown(r.Bank, account, c.from, c.to))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.AccountMarkdown(user, account, c.from, c.to))
	return subcommands.ExitSuccess
}
