package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"biodesign/internal/export"
)

var reportPlain bool

// reportCmd renders the design report in the terminal.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the design report in the terminal",
	Long: `Builds the Markdown design report and renders it with terminal styling.
Use --plain to print the raw Markdown instead (e.g. when piping to a file).`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportPlain, "plain", false, "Print raw Markdown without styling")
}

func runReport(cmd *cobra.Command, args []string) error {
	d, err := loadDesignOrDefault(cmd.Flags().Changed("design"))
	if err != nil {
		return err
	}

	md := export.Report(d)
	if reportPlain {
		fmt.Print(md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Print(out)
	return nil
}
