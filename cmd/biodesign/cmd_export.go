package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"biodesign/internal/export"
)

var exportDir string

// exportCmd writes every artifact for the design.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all design artifacts (summary CSV, curves CSV, YAML, report)",
	Long: `Validates the design document and writes the complete artifact set into
the output directory: summary.csv, curves.csv, design.yaml and report.md.

Example:
  biodesign export -f design.yaml -o exports/`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "exports", "Output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := loadDesignOrDefault(cmd.Flags().Changed("design"))
	if err != nil {
		return err
	}

	if err := export.WriteAll(cmd.Context(), exportDir, d); err != nil {
		return err
	}

	logger.Info("exported design artifacts", zap.String("dir", exportDir))
	fmt.Printf("Exported %s, %s, %s and %s to %s\n",
		export.SummaryFileName, export.CurvesFileName, export.DesignFileName, export.ReportFileName, exportDir)
	return nil
}
