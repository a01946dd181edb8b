package main

import (
	"fmt"
	"os"

	"github.com/dgallion1/mandown/internal/config"
	"github.com/dgallion1/mandown/internal/filter"
	"github.com/dgallion1/mandown/internal/pandoc"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter [format]",
	Short: "Run the rewrite pipeline as a pandoc JSON filter (stdin to stdout)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	doc, err := pandoc.ReadDoc(os.Stdin)
	if err != nil {
		return err
	}

	format := ""
	if len(args) > 0 {
		format = args[0]
	}
	opts := filter.Options{
		ManURLHost: cfg.ManURLHost,
		ManSection: cfg.ManSection,
	}
	if err := filter.Run(doc, format, opts); err != nil {
		return err
	}

	return doc.Write(os.Stdout)
}
