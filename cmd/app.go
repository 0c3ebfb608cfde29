// Package cmd implements the CLI application to replay banking batches.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/AraAlexandru/banksim"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "batch")

	c.Register(&logCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var verbose = flag.Bool("v", false, "enable debug logging")

// Logger builds the application logger: console output on stderr, debug
// level only with -v.
func Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// DecodeInput reads one batch input file.
func DecodeInput(path string) (*banksim.BatchInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file %q: %w", path, err)
	}
	defer f.Close()
	return banksim.DecodeBatch(f)
}
