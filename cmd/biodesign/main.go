package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"biodesign/cmd/biodesign/ui"
	"biodesign/internal/design"
	"biodesign/internal/history"
	"biodesign/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// Global flags
	verbose    bool
	logFile    string
	designPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "biodesign",
	Short: "Bioprocess Designer - interactive bioprocess experiment design",
	Long: `biodesign is a terminal dashboard for designing bioprocess experiments.

Configure the cultivation (process type, organism, scale), operating
parameters, media recipe, PID control gains, monitoring strategy and safety
alarms; preview the
reference growth, substrate and product curves; and export the design as
CSV, YAML and Markdown artifacts.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The dashboard owns the terminal; log to file or not at all.
		if cmd.Use == "biodesign" && cmd.CalledAs() == "biodesign" && logFile == "" {
			logger = logging.Nop()
			return nil
		}

		var err error
		logger, err = logging.New(verbose, logFile)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.Flags().Changed("design"))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a file instead of stderr")
	rootCmd.PersistentFlags().StringVarP(&designPath, "design", "f", design.DefaultFileName, "Design document to operate on")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runDashboard launches the interactive TUI.
func runDashboard(explicitDesign bool) error {
	d, err := loadDesignOrDefault(explicitDesign)
	if err != nil {
		return err
	}

	store, err := history.NewStore()
	if err != nil {
		return err
	}
	defer store.Close()

	p := tea.NewProgram(
		ui.NewDashboard(d, designPath, store),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
