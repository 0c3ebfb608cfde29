package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. On render failure the raw
// markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not render markdown: %v\n", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
