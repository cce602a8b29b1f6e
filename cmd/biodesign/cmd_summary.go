package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"biodesign/internal/summary"
)

var (
	summaryFormat string
	summaryOutput string
	summaryFull   bool
)

// summaryCmd prints the parameter summary table.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the design's parameter summary",
	Long: `Flattens the design document into the canonical parameter summary.

--full appends the media, control, PAT and safety sections after the core
parameter rows.

Example:
  biodesign summary -f design.yaml --format csv -o summary.csv`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "table", "Output format: table or csv")
	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "", "Output file (default: stdout)")
	summaryCmd.Flags().BoolVar(&summaryFull, "full", false, "Include media, control, PAT and safety rows")
}

func runSummary(cmd *cobra.Command, args []string) error {
	d, err := loadDesignOrDefault(cmd.Flags().Changed("design"))
	if err != nil {
		return err
	}

	rows := summary.Format(d.Config, d.Parameters)
	if summaryFull {
		rows = append(rows, summary.FormatMedia(d.Media)...)
		rows = append(rows, summary.FormatControls(d.Controls)...)
		rows = append(rows, summary.FormatPAT(d.PAT)...)
		rows = append(rows, summary.FormatSafety(d.Safety)...)
	}

	out, done, err := openOutput(summaryOutput)
	if err != nil {
		return err
	}
	defer done()

	switch strings.ToLower(summaryFormat) {
	case "csv":
		return summary.WriteCSV(out, rows)
	case "table":
		width := 0
		for _, r := range rows {
			if len(r.Label) > width {
				width = len(r.Label)
			}
		}
		for _, r := range rows {
			fmt.Fprintf(out, "%-*s  %s\n", width, r.Label, r.Value)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected table or csv)", summaryFormat)
	}
}
