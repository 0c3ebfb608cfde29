package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/AraAlexandru/banksim"
	"github.com/google/subcommands"
)

type runCmd struct {
	inputFile  string
	outputFile string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "replay a batch of banking operations" }
func (*runCmd) Usage() string {
	return `run -i <input.json> [-o <output.json>]

  Replays the batch against a fresh in-memory bank and writes the output
  array. Without -o the output goes to stdout.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "i", "", "batch input file (JSON)")
	f.StringVar(&c.outputFile, "o", "", "output file, stdout by default")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.inputFile == "" {
		fmt.Fprintln(os.Stderr, "-i is required")
		return subcommands.ExitUsageError
	}
	in, err := DecodeInput(c.inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := banksim.RunBatch(in, Logger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling output: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile == "" {
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.outputFile, append(out, '\n'), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
