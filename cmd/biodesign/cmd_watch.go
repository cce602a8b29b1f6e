package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"biodesign/internal/watch"
)

var watchDir string

// watchCmd keeps the export directory in sync with the design file.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the design file and re-export artifacts on change",
	Long: `Watches the design document and rewrites the artifact set whenever the
file changes. Edits that leave the design invalid are reported and skipped.

Example:
  biodesign watch -f design.yaml -o exports/`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchDir, "out", "o", "exports", "Output directory")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(designPath); err != nil {
		return fmt.Errorf("cannot watch %s: %w", designPath, err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	w, err := watch.New(designPath, watchDir, logger)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	logger.Info("watching design",
		zap.String("design", designPath),
		zap.String("out", watchDir))
	fmt.Printf("Watching %s, exporting to %s. Press Ctrl+C to stop.\n", designPath, watchDir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	return nil
}
