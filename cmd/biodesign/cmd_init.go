package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"biodesign/internal/design"
)

var initForce bool

// initCmd writes a default design document.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default design document",
	Long: `Creates a design document with the default configuration: batch culture of
CHO cells at laboratory scale, 30.0-37.0°C, pH 6.8-7.2, 168 hours.

Example:
  biodesign init -f my-experiment.yaml`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		if _, err := os.Stat(designPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", designPath)
		}
	}

	if err := design.Default().Save(designPath); err != nil {
		return err
	}
	fmt.Printf("Wrote default design to %s\n", designPath)
	return nil
}
