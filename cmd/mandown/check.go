package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/mandown/internal/check"
	"github.com/spf13/cobra"
)

var (
	// okStyle for resolved-link indicators
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// failStyle for dangling-link indicators
	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var checkCmd = &cobra.Command{
	Use:   "check <file.md>",
	Short: "Verify in-page links in rendered markdown",
	Long: `check parses a rendered markdown file, derives the anchor of every
heading with the same rule the filter uses when generating section links,
and reports in-page links that resolve to no heading.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	rep := check.Run(src)
	fmt.Printf("%s %s\n", dimStyle.Render(args[0]),
		fmt.Sprintf("%d headings, %d in-page links", len(rep.Headings), len(rep.Links)))

	if rep.OK() {
		fmt.Println(okStyle.Render("ok") + " all in-page links resolve")
		return nil
	}
	for _, d := range rep.Dangling {
		fmt.Println(failStyle.Render("dangling") + " " + d)
	}
	return fmt.Errorf("%d dangling in-page link(s)", len(rep.Dangling))
}
