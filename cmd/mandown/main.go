package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mandown",
	Short: "Post-process pandoc man->markdown conversions",
	Long: `mandown rewrites the pandoc JSON tree produced by a man->markdown
conversion: it auto-links URIs, man-page cross references and section
references, restores escaped dashes inside strong spans, and turns the NAME
section into a page title followed by a table of contents.

Typical use, as a pandoc filter:

  pandoc -r man -w gfm -F mandown nosig.1 > nosig.md`,
	// pandoc invokes a filter with the writer name as the only argument, so
	// the bare binary behaves like the filter subcommand.
	Args:          cobra.MaximumNArgs(1),
	RunE:          runFilter,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
